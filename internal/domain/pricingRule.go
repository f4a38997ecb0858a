package domain

import "time"

type RuleScope string

const (
	RuleScopeProduct  RuleScope = "product"
	RuleScopeBrand    RuleScope = "brand"
	RuleScopeCategory RuleScope = "category"
	RuleScopeDefault  RuleScope = "default"
)

type PricingStrategy string

const (
	StrategyProtectMargin PricingStrategy = "protect_margin"
	StrategyAggressive    PricingStrategy = "aggressive"
)

// PricingRule define os limites comerciais aplicáveis a um escopo
// (produto, marca, categoria ou padrão). Invariante: MinMarginPercent <= TargetMarginPercent.
type PricingRule struct {
	ID                  int             `json:"id"`
	ScopeType           RuleScope       `json:"scope_type"`
	ScopeValue          string          `json:"scope_value"`
	MinMarginPercent    float64         `json:"min_margin_percent"`
	TargetMarginPercent float64         `json:"target_margin_percent"`
	MaxPremiumPercent   float64         `json:"max_premium_percent"`
	AutoAdjustAllowed   bool            `json:"auto_adjust_allowed"`
	Strategy            PricingStrategy `json:"strategy"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type UpsertPricingRuleRequest struct {
	ScopeType           RuleScope       `json:"scope_type"`
	ScopeValue          string          `json:"scope_value"`
	MinMarginPercent    float64         `json:"min_margin_percent"`
	TargetMarginPercent float64         `json:"target_margin_percent"`
	MaxPremiumPercent   float64         `json:"max_premium_percent"`
	AutoAdjustAllowed   bool            `json:"auto_adjust_allowed"`
	Strategy            PricingStrategy `json:"strategy"`
}

func (s RuleScope) IsValid() bool {
	switch s {
	case RuleScopeProduct, RuleScopeBrand, RuleScopeCategory, RuleScopeDefault:
		return true
	}
	return false
}

func (s PricingStrategy) IsValid() bool {
	return s == StrategyProtectMargin || s == StrategyAggressive
}
