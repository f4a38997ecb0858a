package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/pricing-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// Data de referência fixa para os testes de recomendação
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func observation(source string, price float64, collectedAt time.Time) *domain.CompetitorObservation {
	return &domain.CompetitorObservation{
		ProductID:   "SKU001",
		Source:      source,
		Price:       price,
		Available:   true,
		CollectedAt: collectedAt,
	}
}

func newTestEngine(
	productRepo *mocks.MockProductRepository,
	observationRepo *mocks.MockCompetitorObservationRepository,
	adjustmentRepo *mocks.MockAdjustmentRepository,
	ruleRepo *mocks.MockPricingRuleRepository,
) *RecommendationEngine {
	resolver := NewRuleResolver(ruleRepo, DefaultRule())
	return NewRecommendationEngine(productRepo, observationRepo, adjustmentRepo, resolver, DefaultRecommendationConfig())
}

func TestRecommendationEngine_RecommendAt(t *testing.T) {
	fresh := testNow.Add(-24 * time.Hour)

	tests := []struct {
		name     string
		product  *domain.Product
		setup    func(productRepo *mocks.MockProductRepository, observationRepo *mocks.MockCompetitorObservationRepository, adjustmentRepo *mocks.MockAdjustmentRepository, ruleRepo *mocks.MockPricingRuleRepository)
		validate func(t *testing.T, recommendation *domain.PriceRecommendation)
	}{
		{
			name:    "Preço muito acima do mercado recomenda redução",
			product: &domain.Product{ID: "SKU001", Name: "Produto A", CurrentPrice: 130.0, Cost: 80.0},
			setup: func(productRepo *mocks.MockProductRepository, observationRepo *mocks.MockCompetitorObservationRepository, adjustmentRepo *mocks.MockAdjustmentRepository, ruleRepo *mocks.MockPricingRuleRepository) {
				observationRepo.EXPECT().
					ListSince("SKU001", gomock.Any()).
					Return([]*domain.CompetitorObservation{
						observation("mercado_livre", 95.0, fresh),
						observation("shopee", 105.0, fresh),
					}, nil)
				ruleRepo.EXPECT().GetByScope(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				adjustmentRepo.EXPECT().GetLastByProductID("SKU001").Return(nil, nil)
			},
			validate: func(t *testing.T, recommendation *domain.PriceRecommendation) {
				// Média 100, desvio +30% acima do prêmio máximo de 15%
				assert.Equal(t, domain.PriceActionDecrease, recommendation.Action)
				assert.Equal(t, 115.0, recommendation.SuggestedPrice)
				assert.Equal(t, 30.0, recommendation.DeviationPercent)
				assert.Equal(t, 0.8, recommendation.Confidence)
				assert.Equal(t, 2, recommendation.SourceCount)
				assert.True(t, recommendation.AutoApplyEligible)
			},
		},
		{
			name:    "Preço muito abaixo do mercado recomenda aumento contido",
			product: &domain.Product{ID: "SKU001", Name: "Produto B", CurrentPrice: 80.0, Cost: 50.0},
			setup: func(productRepo *mocks.MockProductRepository, observationRepo *mocks.MockCompetitorObservationRepository, adjustmentRepo *mocks.MockAdjustmentRepository, ruleRepo *mocks.MockPricingRuleRepository) {
				observationRepo.EXPECT().
					ListSince("SKU001", gomock.Any()).
					Return([]*domain.CompetitorObservation{
						observation("mercado_livre", 100.0, fresh),
					}, nil)
				ruleRepo.EXPECT().GetByScope(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				adjustmentRepo.EXPECT().GetLastByProductID("SKU001").Return(nil, nil)
			},
			validate: func(t *testing.T, recommendation *domain.PriceRecommendation) {
				// Alvo 95 (média * 0.95) contido pela variação máxima: 80 * 1.15 = 92
				assert.Equal(t, domain.PriceActionIncrease, recommendation.Action)
				assert.Equal(t, 92.0, recommendation.SuggestedPrice)
				assert.Equal(t, -20.0, recommendation.DeviationPercent)
				assert.Equal(t, 0.5, recommendation.Confidence)
				assert.Equal(t, 1, recommendation.SourceCount)
			},
		},
		{
			name:    "Preço alinhado com o mercado recomenda manutenção",
			product: &domain.Product{ID: "SKU001", Name: "Produto C", CurrentPrice: 102.0, Cost: 60.0},
			setup: func(productRepo *mocks.MockProductRepository, observationRepo *mocks.MockCompetitorObservationRepository, adjustmentRepo *mocks.MockAdjustmentRepository, ruleRepo *mocks.MockPricingRuleRepository) {
				observationRepo.EXPECT().
					ListSince("SKU001", gomock.Any()).
					Return([]*domain.CompetitorObservation{
						observation("mercado_livre", 100.0, fresh),
						observation("shopee", 100.0, fresh),
					}, nil)
				ruleRepo.EXPECT().GetByScope(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				adjustmentRepo.EXPECT().GetLastByProductID("SKU001").Return(nil, nil).AnyTimes()
			},
			validate: func(t *testing.T, recommendation *domain.PriceRecommendation) {
				assert.Equal(t, domain.PriceActionMaintain, recommendation.Action)
				assert.Equal(t, 102.0, recommendation.SuggestedPrice)
				assert.Equal(t, 0.9, recommendation.Confidence)
				// Manutenção nunca é aplicada automaticamente
				assert.False(t, recommendation.AutoApplyEligible)
			},
		},
		{
			name:    "Observações indisponíveis são descartadas da média",
			product: &domain.Product{ID: "SKU001", Name: "Produto D", CurrentPrice: 130.0, Cost: 80.0},
			setup: func(productRepo *mocks.MockProductRepository, observationRepo *mocks.MockCompetitorObservationRepository, adjustmentRepo *mocks.MockAdjustmentRepository, ruleRepo *mocks.MockPricingRuleRepository) {
				unavailable := observation("shopee", 10.0, fresh)
				unavailable.Available = false

				observationRepo.EXPECT().
					ListSince("SKU001", gomock.Any()).
					Return([]*domain.CompetitorObservation{
						observation("mercado_livre", 100.0, fresh),
						unavailable,
					}, nil)
				ruleRepo.EXPECT().GetByScope(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				adjustmentRepo.EXPECT().GetLastByProductID("SKU001").Return(nil, nil)
			},
			validate: func(t *testing.T, recommendation *domain.PriceRecommendation) {
				// Só a observação disponível conta: média 100, desvio +30%
				assert.Equal(t, domain.PriceActionDecrease, recommendation.Action)
				assert.Equal(t, 30.0, recommendation.DeviationPercent)
				assert.Equal(t, 1, recommendation.SourceCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := mocks.NewMockProductRepository(ctrl)
			observationRepo := mocks.NewMockCompetitorObservationRepository(ctrl)
			adjustmentRepo := mocks.NewMockAdjustmentRepository(ctrl)
			ruleRepo := mocks.NewMockPricingRuleRepository(ctrl)

			productRepo.EXPECT().GetByID("SKU001").Return(tt.product, nil)
			tt.setup(productRepo, observationRepo, adjustmentRepo, ruleRepo)

			engine := newTestEngine(productRepo, observationRepo, adjustmentRepo, ruleRepo)

			recommendation, err := engine.recommendAt("SKU001", testNow)

			assert.NoError(t, err)
			assert.NotNil(t, recommendation)
			tt.validate(t, recommendation)
		})
	}
}

func TestRecommendationEngine_RecommendAt_SemDados(t *testing.T) {
	tests := []struct {
		name  string
		setup func(productRepo *mocks.MockProductRepository, observationRepo *mocks.MockCompetitorObservationRepository)
	}{
		{
			name: "Produto inexistente",
			setup: func(productRepo *mocks.MockProductRepository, observationRepo *mocks.MockCompetitorObservationRepository) {
				productRepo.EXPECT().GetByID("SKU001").Return(nil, nil)
			},
		},
		{
			name: "Produto sem preço atual",
			setup: func(productRepo *mocks.MockProductRepository, observationRepo *mocks.MockCompetitorObservationRepository) {
				productRepo.EXPECT().GetByID("SKU001").
					Return(&domain.Product{ID: "SKU001", CurrentPrice: 0}, nil)
			},
		},
		{
			name: "Sem observações frescas",
			setup: func(productRepo *mocks.MockProductRepository, observationRepo *mocks.MockCompetitorObservationRepository) {
				productRepo.EXPECT().GetByID("SKU001").
					Return(&domain.Product{ID: "SKU001", CurrentPrice: 100.0}, nil)
				observationRepo.EXPECT().
					ListSince("SKU001", gomock.Any()).
					Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := mocks.NewMockProductRepository(ctrl)
			observationRepo := mocks.NewMockCompetitorObservationRepository(ctrl)
			adjustmentRepo := mocks.NewMockAdjustmentRepository(ctrl)
			ruleRepo := mocks.NewMockPricingRuleRepository(ctrl)

			tt.setup(productRepo, observationRepo)

			engine := newTestEngine(productRepo, observationRepo, adjustmentRepo, ruleRepo)

			recommendation, err := engine.recommendAt("SKU001", testNow)

			// Ausência de recomendação é resultado normal, não erro
			assert.NoError(t, err)
			assert.Nil(t, recommendation)
		})
	}
}

func TestRecommendationEngine_AutoApplyCooldown(t *testing.T) {
	fresh := testNow.Add(-24 * time.Hour)

	tests := []struct {
		name           string
		lastAdjustment *domain.AdjustmentRecord
		wantEligible   bool
	}{
		{
			name:           "Sem ajuste anterior é elegível",
			lastAdjustment: nil,
			wantEligible:   true,
		},
		{
			name: "Ajuste recente bloqueia aplicação automática",
			lastAdjustment: &domain.AdjustmentRecord{
				ProductID: "SKU001",
				AppliedAt: testNow.Add(-24 * time.Hour),
			},
			wantEligible: false,
		},
		{
			name: "Cooldown vencido libera aplicação automática",
			lastAdjustment: &domain.AdjustmentRecord{
				ProductID: "SKU001",
				AppliedAt: testNow.Add(-4 * 24 * time.Hour),
			},
			wantEligible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := mocks.NewMockProductRepository(ctrl)
			observationRepo := mocks.NewMockCompetitorObservationRepository(ctrl)
			adjustmentRepo := mocks.NewMockAdjustmentRepository(ctrl)
			ruleRepo := mocks.NewMockPricingRuleRepository(ctrl)

			productRepo.EXPECT().GetByID("SKU001").
				Return(&domain.Product{ID: "SKU001", CurrentPrice: 130.0, Cost: 80.0}, nil)
			observationRepo.EXPECT().
				ListSince("SKU001", gomock.Any()).
				Return([]*domain.CompetitorObservation{
					observation("mercado_livre", 100.0, fresh),
				}, nil)
			ruleRepo.EXPECT().GetByScope(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			adjustmentRepo.EXPECT().GetLastByProductID("SKU001").Return(tt.lastAdjustment, nil)

			engine := newTestEngine(productRepo, observationRepo, adjustmentRepo, ruleRepo)

			recommendation, err := engine.recommendAt("SKU001", testNow)

			assert.NoError(t, err)
			assert.NotNil(t, recommendation)
			assert.Equal(t, tt.wantEligible, recommendation.AutoApplyEligible)
		})
	}
}

func TestRecommendationEngine_AnalyseAllAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fresh := testNow.Add(-24 * time.Hour)

	productRepo := mocks.NewMockProductRepository(ctrl)
	observationRepo := mocks.NewMockCompetitorObservationRepository(ctrl)
	adjustmentRepo := mocks.NewMockAdjustmentRepository(ctrl)
	ruleRepo := mocks.NewMockPricingRuleRepository(ctrl)

	products := []*domain.Product{
		{ID: "SKU_ALINHADO", Name: "Alinhado", CurrentPrice: 102.0, Cost: 60.0},
		{ID: "SKU_CARO", Name: "Caro", CurrentPrice: 130.0, Cost: 80.0},
		{ID: "SKU_BARATO", Name: "Barato", CurrentPrice: 80.0, Cost: 50.0},
		{ID: "SKU_SEM_DADOS", Name: "Sem dados", CurrentPrice: 50.0, Cost: 30.0},
	}

	productRepo.EXPECT().ListActive().Return(products, nil)
	for _, product := range products {
		productRepo.EXPECT().GetByID(product.ID).Return(product, nil)
	}

	marketObservations := map[string][]*domain.CompetitorObservation{
		"SKU_ALINHADO":  {observation("mercado_livre", 100.0, fresh)},
		"SKU_CARO":      {observation("mercado_livre", 100.0, fresh)},
		"SKU_BARATO":    {observation("mercado_livre", 100.0, fresh)},
		"SKU_SEM_DADOS": nil,
	}
	for productID, observations := range marketObservations {
		observationRepo.EXPECT().ListSince(productID, gomock.Any()).Return(observations, nil)
	}

	ruleRepo.EXPECT().GetByScope(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	adjustmentRepo.EXPECT().GetLastByProductID(gomock.Any()).Return(nil, nil).AnyTimes()

	engine := newTestEngine(productRepo, observationRepo, adjustmentRepo, ruleRepo)

	recommendations, err := engine.analyseAllAt(testNow)

	assert.NoError(t, err)
	assert.Len(t, recommendations, 3)

	// Ordenação decrescente por desvio absoluto: +30%, -20%, +2%
	assert.Equal(t, "SKU_CARO", recommendations[0].ProductID)
	assert.Equal(t, "SKU_BARATO", recommendations[1].ProductID)
	assert.Equal(t, "SKU_ALINHADO", recommendations[2].ProductID)
}
