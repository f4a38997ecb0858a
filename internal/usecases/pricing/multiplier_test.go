package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreMultiplier_GetMultiplier(t *testing.T) {
	multiplier := NewStoreMultiplier()

	tests := []struct {
		name    string
		channel string
		want    float64
	}{
		{name: "Canal exato", channel: "shopee", want: 1.12},
		{name: "Canal com sufixo", channel: "shopee_oficial", want: 1.12},
		{name: "Maiúsculas são ignoradas", channel: "MERCADO_LIVRE", want: 1.18},
		{name: "Marketplace genérico", channel: "marketplace-parceiro", want: 1.15},
		{name: "Canal próprio sem markup", channel: "site", want: 1.0},
		{name: "Canal desconhecido sem markup", channel: "loja_fisica", want: 1.0},
		{name: "Canal vazio sem markup", channel: "", want: 1.0},
		{name: "Espaços são descartados", channel: "  instagram  ", want: 1.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, multiplier.GetMultiplier(tt.channel))
		})
	}
}

func TestStoreMultiplier_CalculateStorePrice(t *testing.T) {
	multiplier := NewStoreMultiplier()

	tests := []struct {
		name      string
		basePrice float64
		channel   string
		want      float64
	}{
		{name: "Markup de marketplace genérico", basePrice: 99.99, channel: "marketplace", want: 114.99},
		{name: "Markup do Mercado Livre", basePrice: 100.0, channel: "mercado_livre", want: 118.0},
		{name: "Canal base mantém o preço", basePrice: 100.0, channel: "site", want: 100.0},
		{name: "Arredondamento para duas casas", basePrice: 33.33, channel: "shopee", want: 37.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, multiplier.CalculateStorePrice(tt.basePrice, tt.channel))
		})
	}
}

func TestStoreMultiplier_CalculateAllPrices(t *testing.T) {
	multiplier := NewStoreMultiplier()

	prices := multiplier.CalculateAllPrices(100.0)

	assert.Len(t, prices, 5)
	assert.Equal(t, 100.0, prices["site"])
	assert.Equal(t, 118.0, prices["mercado_livre"])
	assert.Equal(t, 112.0, prices["shopee"])
	assert.Equal(t, 115.0, prices["marketplace"])
	assert.Equal(t, 105.0, prices["instagram"])
}

func TestNewStoreMultiplier_Overrides(t *testing.T) {
	multiplier := NewStoreMultiplier(
		ChannelFactor{Channel: "shopee", Factor: 1.20},
		ChannelFactor{Channel: "amazon", Factor: 1.10},
	)

	// Override substitui o fator da entrada existente
	assert.Equal(t, 1.20, multiplier.GetMultiplier("shopee"))

	// Canal novo é acrescentado ao final da tabela
	assert.Equal(t, 1.10, multiplier.GetMultiplier("amazon"))

	// Demais canais permanecem com o fator padrão
	assert.Equal(t, 1.18, multiplier.GetMultiplier("mercado_livre"))
}
