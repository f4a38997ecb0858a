// Package pricing contém o motor de decisão de preços: limites de segurança,
// multiplicadores por canal, cascata de regras e o pipeline de recomendação
// e aplicação de ajustes.
package pricing

import (
	"fmt"
	"math"

	"github.com/vfg2006/pricing-manager-api/pkg/utils"
)

// Tolerância para comparações de percentual sobre float64
const swingEpsilon = 1e-9

// SafetyLimits são os limites globais de segurança aplicados a qualquer
// mudança de preço, independentemente da regra comercial resolvida.
type SafetyLimits struct {
	MinMarginPercent float64
	MaxSwingPercent  float64
}

func DefaultSafetyLimits() SafetyLimits {
	return SafetyLimits{
		MinMarginPercent: 20,
		MaxSwingPercent:  15,
	}
}

// SafetyGuard valida e corrige preços propostos. Violações de limite nunca
// viram erro: o preço é ajustado para a borda válida mais próxima e a
// mensagem explica o motivo.
type SafetyGuard struct {
	limits SafetyLimits
}

func NewSafetyGuard(limits SafetyLimits) *SafetyGuard {
	return &SafetyGuard{
		limits: limits,
	}
}

// ValidatePriceChange avalia o preço proposto contra a variação máxima por
// ajuste e o piso de margem. Os dois limites são avaliados de forma
// independente sobre o preço proposto; quando ambos são violados, o
// resultado do piso de margem prevalece.
func (g *SafetyGuard) ValidatePriceChange(currentPrice, proposedPrice, cost float64) (bool, string, float64) {
	if proposedPrice <= 0 {
		return false, "Preço proposto deve ser positivo", utils.RoundWithTwoDecimalPlace(currentPrice)
	}

	isValid := true
	message := "OK"
	safePrice := proposedPrice

	// Sem preço atual não há base relativa para o limite de variação
	if currentPrice > 0 {
		changePercent := math.Abs(proposedPrice-currentPrice) / currentPrice * 100
		if changePercent > g.limits.MaxSwingPercent+swingEpsilon {
			direction := 1.0
			if proposedPrice < currentPrice {
				direction = -1.0
			}

			isValid = false
			safePrice = currentPrice * (1 + direction*g.limits.MaxSwingPercent/100)
			message = fmt.Sprintf(
				"Variação de %.1f%% excede o limite de %.1f%% por ajuste",
				changePercent, g.limits.MaxSwingPercent,
			)
		}
	}

	// Custo ausente ou zerado desativa a checagem de margem
	if cost > 0 {
		minPrice := cost * (1 + g.limits.MinMarginPercent/100)
		if proposedPrice < minPrice-swingEpsilon {
			isValid = false
			safePrice = minPrice
			message = fmt.Sprintf(
				"Preço abaixo do piso de margem de %.1f%% (mínimo %.2f)",
				g.limits.MinMarginPercent, minPrice,
			)
		}
	}

	return isValid, message, utils.RoundWithTwoDecimalPlace(safePrice)
}

// CalculateSafePrice devolve apenas o preço seguro para o alvo desejado.
// Idempotente: aplicar o resultado de novo devolve o mesmo valor.
func (g *SafetyGuard) CalculateSafePrice(currentPrice, targetPrice, cost float64) float64 {
	_, _, safePrice := g.ValidatePriceChange(currentPrice, targetPrice, cost)
	return safePrice
}
