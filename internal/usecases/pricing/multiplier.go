package pricing

import (
	"strings"

	"github.com/vfg2006/pricing-manager-api/pkg/utils"
)

// ChannelFactor associa um canal de venda ao seu fator de markup, que
// compensa a estrutura de taxas do canal.
type ChannelFactor struct {
	Channel string
	Factor  float64
}

// DefaultChannelFactors é a tabela padrão de canais. A ordem importa: a
// primeira entrada que casar com o nome consultado vence, e a entrada
// genérica "marketplace" cobre marketplaces não listados explicitamente.
func DefaultChannelFactors() []ChannelFactor {
	return []ChannelFactor{
		{Channel: "site", Factor: 1.00},
		{Channel: "mercado_livre", Factor: 1.18},
		{Channel: "shopee", Factor: 1.12},
		{Channel: "marketplace", Factor: 1.15},
		{Channel: "instagram", Factor: 1.05},
	}
}

// StoreMultiplier calcula preços por canal a partir de um preço base
type StoreMultiplier struct {
	factors []ChannelFactor
}

// NewStoreMultiplier parte da tabela padrão; overrides substituem a entrada
// de mesmo nome ou são acrescentados ao final da tabela.
func NewStoreMultiplier(overrides ...ChannelFactor) *StoreMultiplier {
	factors := DefaultChannelFactors()

	for _, override := range overrides {
		replaced := false
		for i, factor := range factors {
			if strings.EqualFold(factor.Channel, override.Channel) {
				factors[i].Factor = override.Factor
				replaced = true
				break
			}
		}
		if !replaced {
			factors = append(factors, override)
		}
	}

	return &StoreMultiplier{
		factors: factors,
	}
}

// GetMultiplier resolve o fator do canal por casamento de substring,
// sem diferenciar maiúsculas. Canais desconhecidos não recebem markup.
func (m *StoreMultiplier) GetMultiplier(channel string) float64 {
	name := strings.ToLower(strings.TrimSpace(channel))
	if name == "" {
		return 1.0
	}

	for _, entry := range m.factors {
		key := strings.ToLower(entry.Channel)
		if strings.Contains(name, key) || strings.Contains(key, name) {
			return entry.Factor
		}
	}

	return 1.0
}

// CalculateStorePrice aplica o fator do canal ao preço base
func (m *StoreMultiplier) CalculateStorePrice(basePrice float64, channel string) float64 {
	return utils.RoundWithTwoDecimalPlace(basePrice * m.GetMultiplier(channel))
}

// CalculateAllPrices devolve o preço por canal para todos os canais configurados
func (m *StoreMultiplier) CalculateAllPrices(basePrice float64) map[string]float64 {
	prices := make(map[string]float64, len(m.factors))
	for _, entry := range m.factors {
		prices[entry.Channel] = utils.RoundWithTwoDecimalPlace(basePrice * entry.Factor)
	}
	return prices
}
