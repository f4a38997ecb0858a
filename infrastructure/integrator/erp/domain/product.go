package erpdomain

// Item é o registro bruto de produto retornado pelo ERP. Os campos de preço e
// custo chegam sob chaves inconsistentes dependendo da versão da integração,
// por isso a leitura passa pelos métodos SalePrice e CostPrice.
type Item struct {
	Code        string  `json:"codigo,omitempty"`
	Description string  `json:"descricao,omitempty"`
	Brand       string  `json:"marca,omitempty"`
	Category    string  `json:"categoria,omitempty"`
	Active      bool    `json:"ativo,omitempty"`
	Price       float64 `json:"preco,omitempty"`
	SaleValue   float64 `json:"valor_venda,omitempty"`
	PriceSale   float64 `json:"preco_venda,omitempty"`
	Cost        float64 `json:"custo,omitempty"`
	CostValue   float64 `json:"valor_custo,omitempty"`
	PriceCost   float64 `json:"preco_custo,omitempty"`
}

// SalePrice devolve o preço de venda independentemente da chave usada pelo ERP
func (i Item) SalePrice() float64 {
	switch {
	case i.PriceSale > 0:
		return i.PriceSale
	case i.SaleValue > 0:
		return i.SaleValue
	default:
		return i.Price
	}
}

// CostPrice devolve o custo independentemente da chave usada pelo ERP
func (i Item) CostPrice() float64 {
	switch {
	case i.PriceCost > 0:
		return i.PriceCost
	case i.CostValue > 0:
		return i.CostValue
	default:
		return i.Cost
	}
}

type PriceUpdateRequest struct {
	Code  string  `json:"codigo"`
	Price float64 `json:"preco"`
}
