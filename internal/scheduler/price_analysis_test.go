package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	erpmocks "github.com/vfg2006/pricing-manager-api/infrastructure/integrator/erp/mocks"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
	pricingmocks "github.com/vfg2006/pricing-manager-api/internal/usecases/pricing/mocks"
	"go.uber.org/mock/gomock"
)

func TestPriceAnalysisService_analyseAllProducts(t *testing.T) {
	recommendations := []*domain.PriceRecommendation{
		{
			ProductID:         "SKU_CARO",
			SuggestedPrice:    115.0,
			Action:            domain.PriceActionDecrease,
			Reason:            "Preço acima da média de mercado",
			AutoApplyEligible: true,
		},
		{
			ProductID:         "SKU_MANUAL",
			SuggestedPrice:    95.0,
			Action:            domain.PriceActionDecrease,
			Reason:            "Preço acima da média de mercado",
			AutoApplyEligible: false,
		},
	}

	tests := []struct {
		name        string
		autoApply   bool
		setup       func(engine *pricingmocks.MockPricingEngine, erpService *erpmocks.MockERPIntegrator)
		wantTotal   int
		wantApplied int
	}{
		{
			name:      "Com auto_apply só as recomendações elegíveis são aplicadas",
			autoApply: true,
			setup: func(engine *pricingmocks.MockPricingEngine, erpService *erpmocks.MockERPIntegrator) {
				engine.EXPECT().AnalyseAll().Return(recommendations, nil)
				engine.EXPECT().
					ApplyPriceChange(gomock.Any(), "SKU_CARO", 115.0, "Preço acima da média de mercado").
					Return(true, nil)
			},
			wantTotal:   2,
			wantApplied: 1,
		},
		{
			name:      "Sem auto_apply nenhuma recomendação é aplicada",
			autoApply: false,
			setup: func(engine *pricingmocks.MockPricingEngine, erpService *erpmocks.MockERPIntegrator) {
				engine.EXPECT().AnalyseAll().Return(recommendations, nil)
			},
			wantTotal:   2,
			wantApplied: 0,
		},
		{
			name:      "Erro em uma aplicação não interrompe as demais",
			autoApply: true,
			setup: func(engine *pricingmocks.MockPricingEngine, erpService *erpmocks.MockERPIntegrator) {
				failing := []*domain.PriceRecommendation{
					{ProductID: "SKU_A", SuggestedPrice: 90.0, AutoApplyEligible: true},
					{ProductID: "SKU_B", SuggestedPrice: 80.0, AutoApplyEligible: true},
				}
				engine.EXPECT().AnalyseAll().Return(failing, nil)
				engine.EXPECT().
					ApplyPriceChange(gomock.Any(), "SKU_A", 90.0, gomock.Any()).
					Return(false, errors.New("ERP indisponível"))
				engine.EXPECT().
					ApplyPriceChange(gomock.Any(), "SKU_B", 80.0, gomock.Any()).
					Return(true, nil)
			},
			wantTotal:   2,
			wantApplied: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			engine := pricingmocks.NewMockPricingEngine(ctrl)
			erpService := erpmocks.NewMockERPIntegrator(ctrl)

			tt.setup(engine, erpService)

			service := &PriceAnalysisService{
				config:        PriceAnalysisConfig{AutoApply: tt.autoApply},
				pricingEngine: engine,
				erpService:    erpService,
			}

			service.analyseAllProducts()

			assert.Equal(t, tt.wantTotal, service.lastRunTotal)
			assert.Equal(t, tt.wantApplied, service.lastRunApplied)
			assert.False(t, service.lastRunCompletedAt.IsZero())
		})
	}
}

func TestPriceAnalysisService_analyseAllProducts_ErroNaAnalise(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := pricingmocks.NewMockPricingEngine(ctrl)
	erpService := erpmocks.NewMockERPIntegrator(ctrl)

	engine.EXPECT().AnalyseAll().Return(nil, errors.New("banco indisponível"))

	service := &PriceAnalysisService{
		config:        PriceAnalysisConfig{AutoApply: true},
		pricingEngine: engine,
		erpService:    erpService,
	}

	service.analyseAllProducts()

	assert.True(t, service.lastRunCompletedAt.IsZero())
	assert.Equal(t, 0, service.lastRunApplied)
}
