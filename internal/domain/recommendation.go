package domain

type PriceAction string

const (
	PriceActionIncrease PriceAction = "increase"
	PriceActionDecrease PriceAction = "decrease"
	PriceActionMaintain PriceAction = "maintain"
)

func (a PriceAction) IsValid() bool {
	switch a {
	case PriceActionIncrease, PriceActionDecrease, PriceActionMaintain:
		return true
	}
	return false
}

// PriceRecommendation é o resultado transiente da análise de um produto.
// Nunca é persistida; o Ledger registra apenas ajustes aplicados.
type PriceRecommendation struct {
	ProductID         string      `json:"product_id"`
	ProductName       string      `json:"product_name"`
	CurrentPrice      float64     `json:"current_price"`
	SuggestedPrice    float64     `json:"suggested_price"`
	Action            PriceAction `json:"action"`
	Reason            string      `json:"reason"`
	DeviationPercent  float64     `json:"deviation_percent"`
	Confidence        float64     `json:"confidence"`
	SourceCount       int         `json:"source_count"`
	AutoApplyEligible bool        `json:"auto_apply_eligible"`
}

// MarketSummary agrega as observações frescas usadas por uma recomendação.
type MarketSummary struct {
	MeanPrice   float64 `json:"mean_price"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	SourceCount int     `json:"source_count"`
	SampleSize  int     `json:"sample_size"`
}
