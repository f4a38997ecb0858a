package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafetyGuard_ValidatePriceChange(t *testing.T) {
	guard := NewSafetyGuard(DefaultSafetyLimits())

	tests := []struct {
		name          string
		currentPrice  float64
		proposedPrice float64
		cost          float64
		wantValid     bool
		wantPrice     float64
	}{
		{
			name:          "Aumento no limite exato de variação é aceito",
			currentPrice:  100.0,
			proposedPrice: 115.0,
			cost:          80.0,
			wantValid:     true,
			wantPrice:     115.0,
		},
		{
			name:          "Preço abaixo do piso de margem é elevado ao piso",
			currentPrice:  100.0,
			proposedPrice: 90.0,
			cost:          100.0,
			wantValid:     false,
			wantPrice:     120.0,
		},
		{
			name:          "Preço exatamente no piso de margem é aceito",
			currentPrice:  100.0,
			proposedPrice: 108.0,
			cost:          90.0,
			wantValid:     true,
			wantPrice:     108.0,
		},
		{
			name:          "Variação acima do limite é contida na borda",
			currentPrice:  100.0,
			proposedPrice: 130.0,
			cost:          80.0,
			wantValid:     false,
			wantPrice:     115.0,
		},
		{
			name:          "Redução acima do limite é contida na borda inferior",
			currentPrice:  100.0,
			proposedPrice: 80.0,
			cost:          0,
			wantValid:     false,
			wantPrice:     85.0,
		},
		{
			name:          "Piso de margem prevalece quando os dois limites são violados",
			currentPrice:  100.0,
			proposedPrice: 80.0,
			cost:          100.0,
			wantValid:     false,
			wantPrice:     120.0,
		},
		{
			name:          "Preço proposto não positivo mantém o preço atual",
			currentPrice:  100.0,
			proposedPrice: 0,
			cost:          80.0,
			wantValid:     false,
			wantPrice:     100.0,
		},
		{
			name:          "Sem preço atual não há limite de variação",
			currentPrice:  0,
			proposedPrice: 500.0,
			cost:          100.0,
			wantValid:     true,
			wantPrice:     500.0,
		},
		{
			name:          "Custo zerado desativa a checagem de margem",
			currentPrice:  100.0,
			proposedPrice: 95.0,
			cost:          0,
			wantValid:     true,
			wantPrice:     95.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isValid, message, safePrice := guard.ValidatePriceChange(tt.currentPrice, tt.proposedPrice, tt.cost)

			assert.Equal(t, tt.wantValid, isValid)
			assert.Equal(t, tt.wantPrice, safePrice)

			if tt.wantValid {
				assert.Equal(t, "OK", message)
			} else {
				assert.NotEqual(t, "OK", message)
			}
		})
	}
}

func TestSafetyGuard_CalculateSafePrice_Idempotente(t *testing.T) {
	guard := NewSafetyGuard(DefaultSafetyLimits())

	tests := []struct {
		name         string
		currentPrice float64
		targetPrice  float64
		cost         float64
	}{
		{name: "Contenção por variação", currentPrice: 100.0, targetPrice: 130.0, cost: 80.0},
		{name: "Contenção por margem", currentPrice: 100.0, targetPrice: 90.0, cost: 100.0},
		{name: "Alvo já seguro", currentPrice: 100.0, targetPrice: 110.0, cost: 80.0},
		{name: "Contenção com arredondamento", currentPrice: 99.99, targetPrice: 140.0, cost: 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := guard.CalculateSafePrice(tt.currentPrice, tt.targetPrice, tt.cost)
			second := guard.CalculateSafePrice(tt.currentPrice, first, tt.cost)

			assert.Equal(t, first, second)
		})
	}
}

func TestSafetyGuard_LimitesCustomizados(t *testing.T) {
	guard := NewSafetyGuard(SafetyLimits{
		MinMarginPercent: 30,
		MaxSwingPercent:  10,
	})

	isValid, _, safePrice := guard.ValidatePriceChange(100.0, 112.0, 0)
	assert.False(t, isValid)
	assert.Equal(t, 110.0, safePrice)

	isValid, _, safePrice = guard.ValidatePriceChange(125.0, 120.0, 100.0)
	assert.False(t, isValid)
	assert.Equal(t, 130.0, safePrice)
}
