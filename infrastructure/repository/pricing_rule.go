package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/pricing-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
)

const (
	pricingRulesTable = "pricing_rules pr"
)

type PricingRuleRepository interface {
	GetByScope(scopeType domain.RuleScope, scopeValue string) (*domain.PricingRule, error)
	SaveOrUpdate(rule *domain.PricingRule) error
}

type pricingRuleRepository struct {
	conn *postgres.Connection
}

func NewPricingRuleRepository(conn *postgres.Connection) PricingRuleRepository {
	return &pricingRuleRepository{
		conn: conn,
	}
}

func (r *pricingRuleRepository) GetByScope(scopeType domain.RuleScope, scopeValue string) (*domain.PricingRule, error) {
	query, args, err := squirrel.
		Select("pr.id, pr.scope_type, pr.scope_value, pr.min_margin_percent, pr.target_margin_percent, pr.max_premium_percent, pr.auto_adjust_allowed, pr.strategy, pr.created_at, pr.updated_at").
		From(pricingRulesTable).
		Where(squirrel.Eq{"pr.scope_type": scopeType, "pr.scope_value": scopeValue}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	rule := &domain.PricingRule{}
	if err := row.Scan(
		&rule.ID,
		&rule.ScopeType,
		&rule.ScopeValue,
		&rule.MinMarginPercent,
		&rule.TargetMarginPercent,
		&rule.MaxPremiumPercent,
		&rule.AutoAdjustAllowed,
		&rule.Strategy,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear regra de precificação: %w", err)
	}

	return rule, nil
}

func (r *pricingRuleRepository) SaveOrUpdate(rule *domain.PricingRule) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("pricing_rules").
		Columns("scope_type", "scope_value", "min_margin_percent", "target_margin_percent", "max_premium_percent", "auto_adjust_allowed", "strategy").
		Values(
			rule.ScopeType,
			rule.ScopeValue,
			rule.MinMarginPercent,
			rule.TargetMarginPercent,
			rule.MaxPremiumPercent,
			rule.AutoAdjustAllowed,
			rule.Strategy,
		).
		Suffix(`
			ON CONFLICT (scope_type, scope_value) DO UPDATE SET
				min_margin_percent = EXCLUDED.min_margin_percent,
				target_margin_percent = EXCLUDED.target_margin_percent,
				max_premium_percent = EXCLUDED.max_premium_percent,
				auto_adjust_allowed = EXCLUDED.auto_adjust_allowed,
				strategy = EXCLUDED.strategy,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
