package pricing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pricing-manager-api/infrastructure/repository"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
)

// DefaultRule é a regra aplicada quando nenhum escopo tem regra cadastrada.
// A resolução nunca falha: na ausência de configuração o comportamento é este.
func DefaultRule() domain.PricingRule {
	return domain.PricingRule{
		ScopeType:           domain.RuleScopeDefault,
		MinMarginPercent:    20,
		TargetMarginPercent: 35,
		MaxPremiumPercent:   15,
		AutoAdjustAllowed:   true,
		Strategy:            domain.StrategyProtectMargin,
	}
}

// RuleResolver resolve a regra de precificação aplicável a um produto pela
// cascata de escopos: produto > marca > categoria > padrão. O primeiro
// escopo com regra cadastrada vence.
type RuleResolver struct {
	ruleRepo repository.PricingRuleRepository
	fallback domain.PricingRule
}

func NewRuleResolver(ruleRepo repository.PricingRuleRepository, fallback domain.PricingRule) *RuleResolver {
	return &RuleResolver{
		ruleRepo: ruleRepo,
		fallback: fallback,
	}
}

func (r *RuleResolver) Resolve(productID, brand, category string) *domain.PricingRule {
	lookups := []struct {
		scope domain.RuleScope
		value string
	}{
		{domain.RuleScopeProduct, productID},
		{domain.RuleScopeBrand, brand},
		{domain.RuleScopeCategory, category},
	}

	for _, lookup := range lookups {
		if lookup.value == "" {
			continue
		}

		rule, err := r.ruleRepo.GetByScope(lookup.scope, lookup.value)
		if err != nil {
			// Falha de armazenamento vale como escopo sem regra: a cascata
			// segue e a resolução termina de forma determinística
			logrus.WithError(err).WithFields(logrus.Fields{
				"scope_type":  lookup.scope,
				"scope_value": lookup.value,
			}).Warn("Erro ao buscar regra de precificação; seguindo para o próximo escopo")
			continue
		}

		if rule != nil {
			return rule
		}
	}

	fallback := r.fallback
	return &fallback
}
