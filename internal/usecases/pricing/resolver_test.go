package pricing

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/pricing-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestRuleResolver_Resolve(t *testing.T) {
	productRule := &domain.PricingRule{
		ScopeType:        domain.RuleScopeProduct,
		ScopeValue:       "SKU001",
		MinMarginPercent: 25,
		Strategy:         domain.StrategyProtectMargin,
	}

	brandRule := &domain.PricingRule{
		ScopeType:        domain.RuleScopeBrand,
		ScopeValue:       "Acme",
		MinMarginPercent: 18,
		Strategy:         domain.StrategyAggressive,
	}

	categoryRule := &domain.PricingRule{
		ScopeType:        domain.RuleScopeCategory,
		ScopeValue:       "Eletrônicos",
		MinMarginPercent: 15,
		Strategy:         domain.StrategyProtectMargin,
	}

	tests := []struct {
		name     string
		setup    func(mockRepo *mocks.MockPricingRuleRepository)
		validate func(t *testing.T, rule *domain.PricingRule)
	}{
		{
			name: "Regra de produto vence a cascata",
			setup: func(mockRepo *mocks.MockPricingRuleRepository) {
				mockRepo.EXPECT().
					GetByScope(domain.RuleScopeProduct, "SKU001").
					Return(productRule, nil)
			},
			validate: func(t *testing.T, rule *domain.PricingRule) {
				assert.Equal(t, domain.RuleScopeProduct, rule.ScopeType)
				assert.Equal(t, 25.0, rule.MinMarginPercent)
			},
		},
		{
			name: "Sem regra de produto cai para a marca",
			setup: func(mockRepo *mocks.MockPricingRuleRepository) {
				mockRepo.EXPECT().
					GetByScope(domain.RuleScopeProduct, "SKU001").
					Return(nil, nil)
				mockRepo.EXPECT().
					GetByScope(domain.RuleScopeBrand, "Acme").
					Return(brandRule, nil)
			},
			validate: func(t *testing.T, rule *domain.PricingRule) {
				assert.Equal(t, domain.RuleScopeBrand, rule.ScopeType)
				assert.Equal(t, domain.StrategyAggressive, rule.Strategy)
			},
		},
		{
			name: "Sem regra de produto nem marca cai para a categoria",
			setup: func(mockRepo *mocks.MockPricingRuleRepository) {
				mockRepo.EXPECT().
					GetByScope(domain.RuleScopeProduct, "SKU001").
					Return(nil, nil)
				mockRepo.EXPECT().
					GetByScope(domain.RuleScopeBrand, "Acme").
					Return(nil, nil)
				mockRepo.EXPECT().
					GetByScope(domain.RuleScopeCategory, "Eletrônicos").
					Return(categoryRule, nil)
			},
			validate: func(t *testing.T, rule *domain.PricingRule) {
				assert.Equal(t, domain.RuleScopeCategory, rule.ScopeType)
				assert.Equal(t, 15.0, rule.MinMarginPercent)
			},
		},
		{
			name: "Sem regra em nenhum escopo devolve a regra padrão",
			setup: func(mockRepo *mocks.MockPricingRuleRepository) {
				mockRepo.EXPECT().
					GetByScope(gomock.Any(), gomock.Any()).
					Return(nil, nil).
					Times(3)
			},
			validate: func(t *testing.T, rule *domain.PricingRule) {
				assert.Equal(t, domain.RuleScopeDefault, rule.ScopeType)
				assert.Equal(t, 20.0, rule.MinMarginPercent)
				assert.Equal(t, 35.0, rule.TargetMarginPercent)
			},
		},
		{
			name: "Erro de armazenamento vale como escopo sem regra",
			setup: func(mockRepo *mocks.MockPricingRuleRepository) {
				mockRepo.EXPECT().
					GetByScope(domain.RuleScopeProduct, "SKU001").
					Return(nil, errors.New("conexão perdida"))
				mockRepo.EXPECT().
					GetByScope(domain.RuleScopeBrand, "Acme").
					Return(brandRule, nil)
			},
			validate: func(t *testing.T, rule *domain.PricingRule) {
				assert.Equal(t, domain.RuleScopeBrand, rule.ScopeType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockPricingRuleRepository(ctrl)
			tt.setup(mockRepo)

			resolver := NewRuleResolver(mockRepo, DefaultRule())

			rule := resolver.Resolve("SKU001", "Acme", "Eletrônicos")

			assert.NotNil(t, rule)
			tt.validate(t, rule)
		})
	}
}

func TestRuleResolver_Resolve_EscoposVazios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPricingRuleRepository(ctrl)

	// Marca e categoria vazias não geram consulta
	mockRepo.EXPECT().
		GetByScope(domain.RuleScopeProduct, "SKU002").
		Return(nil, nil)

	resolver := NewRuleResolver(mockRepo, DefaultRule())

	rule := resolver.Resolve("SKU002", "", "")

	assert.Equal(t, domain.RuleScopeDefault, rule.ScopeType)
}

func TestRuleResolver_Resolve_NaoCompartilhaFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPricingRuleRepository(ctrl)
	mockRepo.EXPECT().
		GetByScope(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	resolver := NewRuleResolver(mockRepo, DefaultRule())

	first := resolver.Resolve("SKU003", "", "")
	first.MinMarginPercent = 99

	second := resolver.Resolve("SKU003", "", "")
	assert.Equal(t, 20.0, second.MinMarginPercent)
}
