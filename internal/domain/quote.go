package domain

// PriceQuote é a resposta de uma cotação pontual (suggest price).
// MarginPercent é calculada sobre o custo e fica ausente quando o custo
// do produto não é conhecido.
type PriceQuote struct {
	ProductID      string             `json:"product_id"`
	CurrentPrice   float64            `json:"current_price"`
	SuggestedPrice float64            `json:"suggested_price"`
	Cost           float64            `json:"cost"`
	MarginPercent  *float64           `json:"margin_percent,omitempty"`
	Reason         string             `json:"reason"`
	IsSafe         bool               `json:"is_safe"`
	ChannelPrices  map[string]float64 `json:"channel_prices"`
}
