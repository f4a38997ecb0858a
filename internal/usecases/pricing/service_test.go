package pricing

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	erpmocks "github.com/vfg2006/pricing-manager-api/infrastructure/integrator/erp/mocks"
	"github.com/vfg2006/pricing-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 {
	return &v
}

func newTestService(
	productRepo *mocks.MockProductRepository,
	adjustmentRepo *mocks.MockAdjustmentRepository,
	ruleRepo *mocks.MockPricingRuleRepository,
) PricingEngine {
	resolver := NewRuleResolver(ruleRepo, DefaultRule())
	guard := NewSafetyGuard(DefaultSafetyLimits())
	multiplier := NewStoreMultiplier()

	return NewService(productRepo, adjustmentRepo, resolver, guard, multiplier, nil)
}

func TestService_SuggestPrice(t *testing.T) {
	tests := []struct {
		name            string
		product         *domain.Product
		competitorPrice *float64
		targetMargin    *float64
		setup           func(ruleRepo *mocks.MockPricingRuleRepository)
		validate        func(t *testing.T, quote *domain.PriceQuote)
	}{
		{
			name:    "Estratégia agressiva cobre o concorrente",
			product: &domain.Product{ID: "SKU001", CurrentPrice: 100.0, Cost: 70.0},
			competitorPrice: floatPtr(98.0),
			setup: func(ruleRepo *mocks.MockPricingRuleRepository) {
				aggressive := &domain.PricingRule{
					ScopeType:        domain.RuleScopeProduct,
					ScopeValue:       "SKU001",
					MinMarginPercent: 20,
					Strategy:         domain.StrategyAggressive,
				}
				ruleRepo.EXPECT().
					GetByScope(domain.RuleScopeProduct, "SKU001").
					Return(aggressive, nil)
			},
			validate: func(t *testing.T, quote *domain.PriceQuote) {
				assert.Equal(t, 97.99, quote.SuggestedPrice)
				assert.True(t, quote.IsSafe)
			},
		},
		{
			name:    "Preço abaixo do piso é reposicionado",
			product: &domain.Product{ID: "SKU001", CurrentPrice: 110.0, Cost: 100.0},
			setup: func(ruleRepo *mocks.MockPricingRuleRepository) {
				ruleRepo.EXPECT().GetByScope(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			validate: func(t *testing.T, quote *domain.PriceQuote) {
				// Piso de margem da regra padrão: 100 * 1.20 = 120
				assert.Equal(t, 120.0, quote.SuggestedPrice)
				assert.NotNil(t, quote.MarginPercent)
				assert.Equal(t, 20.0, *quote.MarginPercent)
			},
		},
		{
			name:         "Margem alvo informada reposiciona o preço",
			product:      &domain.Product{ID: "SKU001", CurrentPrice: 125.0, Cost: 100.0},
			targetMargin: floatPtr(30.0),
			setup: func(ruleRepo *mocks.MockPricingRuleRepository) {
				ruleRepo.EXPECT().GetByScope(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			validate: func(t *testing.T, quote *domain.PriceQuote) {
				assert.Equal(t, 130.0, quote.SuggestedPrice)
				assert.True(t, quote.IsSafe)
				assert.Equal(t, 30.0, *quote.MarginPercent)
			},
		},
		{
			name:    "Sem custo e sem concorrente mantém o preço atual",
			product: &domain.Product{ID: "SKU001", CurrentPrice: 100.0, Cost: 0},
			setup: func(ruleRepo *mocks.MockPricingRuleRepository) {
				ruleRepo.EXPECT().GetByScope(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			validate: func(t *testing.T, quote *domain.PriceQuote) {
				assert.Equal(t, 100.0, quote.SuggestedPrice)
				assert.True(t, quote.IsSafe)
				assert.Nil(t, quote.MarginPercent)
			},
		},
		{
			name:    "Alvo inseguro é contido pelo guardião",
			product: &domain.Product{ID: "SKU001", CurrentPrice: 101.0, Cost: 50.0},
			targetMargin: floatPtr(160.0),
			setup: func(ruleRepo *mocks.MockPricingRuleRepository) {
				ruleRepo.EXPECT().GetByScope(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			validate: func(t *testing.T, quote *domain.PriceQuote) {
				// Alvo 130 excede a variação máxima: contido em 101 * 1.15
				assert.Equal(t, 116.15, quote.SuggestedPrice)
				assert.False(t, quote.IsSafe)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := mocks.NewMockProductRepository(ctrl)
			adjustmentRepo := mocks.NewMockAdjustmentRepository(ctrl)
			ruleRepo := mocks.NewMockPricingRuleRepository(ctrl)

			tt.setup(ruleRepo)

			service := newTestService(productRepo, adjustmentRepo, ruleRepo)

			quote := service.SuggestPrice(tt.product, tt.competitorPrice, tt.targetMargin)

			assert.NotNil(t, quote)
			assert.Len(t, quote.ChannelPrices, 5)
			tt.validate(t, quote)
		})
	}
}

func TestService_ApplyPriceChange(t *testing.T) {
	product := &domain.Product{ID: "SKU001", CurrentPrice: 101.0, Cost: 100.0}

	t.Run("Aplicação registra no livro antes de chamar o ERP", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		productRepo := mocks.NewMockProductRepository(ctrl)
		adjustmentRepo := mocks.NewMockAdjustmentRepository(ctrl)
		ruleRepo := mocks.NewMockPricingRuleRepository(ctrl)
		updater := erpmocks.NewMockERPIntegrator(ctrl)

		productRepo.EXPECT().GetByID("SKU001").Return(product, nil)

		// O livro é escrito antes do atualizador remoto
		gomock.InOrder(
			adjustmentRepo.EXPECT().
				Append(gomock.Any()).
				DoAndReturn(func(record *domain.AdjustmentRecord) (string, error) {
					assert.Equal(t, "SKU001", record.ProductID)
					assert.Equal(t, 101.0, record.PreviousPrice)
					// Alvo 120 contido pela variação máxima: 101 * 1.15 = 116.15
					assert.Equal(t, 116.15, record.NewPrice)
					assert.Equal(t, domain.AdjustmentStatusPending, record.Status)
					return "adj_001", nil
				}),
			updater.EXPECT().ApplyRemotePrice("SKU001", 116.15).Return(nil),
			adjustmentRepo.EXPECT().MarkStatus("adj_001", domain.AdjustmentStatusApplied).Return(nil),
		)

		service := newTestService(productRepo, adjustmentRepo, ruleRepo)

		applied, err := service.ApplyPriceChange(updater, "SKU001", 120.0, "Reposicionamento")

		assert.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("Falha remota mantém o registro e devolve erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		productRepo := mocks.NewMockProductRepository(ctrl)
		adjustmentRepo := mocks.NewMockAdjustmentRepository(ctrl)
		ruleRepo := mocks.NewMockPricingRuleRepository(ctrl)
		updater := erpmocks.NewMockERPIntegrator(ctrl)

		productRepo.EXPECT().GetByID("SKU001").Return(product, nil)

		gomock.InOrder(
			adjustmentRepo.EXPECT().Append(gomock.Any()).Return("adj_002", nil),
			updater.EXPECT().ApplyRemotePrice("SKU001", gomock.Any()).Return(errors.New("ERP indisponível")),
			adjustmentRepo.EXPECT().MarkStatus("adj_002", domain.AdjustmentStatusRejected).Return(nil),
		)

		service := newTestService(productRepo, adjustmentRepo, ruleRepo)

		applied, err := service.ApplyPriceChange(updater, "SKU001", 110.0, "Reposicionamento")

		assert.Error(t, err)
		assert.False(t, applied)
	})

	t.Run("Produto inexistente devolve erro conhecido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		productRepo := mocks.NewMockProductRepository(ctrl)
		adjustmentRepo := mocks.NewMockAdjustmentRepository(ctrl)
		ruleRepo := mocks.NewMockPricingRuleRepository(ctrl)
		updater := erpmocks.NewMockERPIntegrator(ctrl)

		productRepo.EXPECT().GetByID("SKU404").Return(nil, nil)

		service := newTestService(productRepo, adjustmentRepo, ruleRepo)

		applied, err := service.ApplyPriceChange(updater, "SKU404", 110.0, "Reposicionamento")

		assert.False(t, applied)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Falha ao registrar no livro interrompe a aplicação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		productRepo := mocks.NewMockProductRepository(ctrl)
		adjustmentRepo := mocks.NewMockAdjustmentRepository(ctrl)
		ruleRepo := mocks.NewMockPricingRuleRepository(ctrl)
		updater := erpmocks.NewMockERPIntegrator(ctrl)

		productRepo.EXPECT().GetByID("SKU001").Return(product, nil)
		adjustmentRepo.EXPECT().Append(gomock.Any()).Return("", errors.New("banco indisponível"))

		service := newTestService(productRepo, adjustmentRepo, ruleRepo)

		applied, err := service.ApplyPriceChange(updater, "SKU001", 110.0, "Reposicionamento")

		assert.False(t, applied)
		assert.Error(t, err)
	})
}
