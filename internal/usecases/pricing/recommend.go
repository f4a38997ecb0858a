package pricing

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pricing-manager-api/infrastructure/repository"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
	"github.com/vfg2006/pricing-manager-api/pkg/utils"
)

// Limiar de desvio abaixo do mercado que dispara recomendação de aumento
const underpricedDeviationPercent = -10

// RecommendationConfig parametriza a análise de mercado. Valores imutáveis
// após a construção do motor.
type RecommendationConfig struct {
	FreshnessWindow time.Duration
	Cooldown        time.Duration
	MaxSwingPercent float64
}

func DefaultRecommendationConfig() RecommendationConfig {
	return RecommendationConfig{
		FreshnessWindow: 7 * 24 * time.Hour,
		Cooldown:        3 * 24 * time.Hour,
		MaxSwingPercent: 15,
	}
}

// RecommendationEngine agrega observações de mercado e produz recomendações
// transitórias de preço por produto.
type RecommendationEngine struct {
	productRepo     repository.ProductRepository
	observationRepo repository.CompetitorObservationRepository
	adjustmentRepo  repository.AdjustmentRepository
	resolver        *RuleResolver
	config          RecommendationConfig
}

func NewRecommendationEngine(
	productRepo repository.ProductRepository,
	observationRepo repository.CompetitorObservationRepository,
	adjustmentRepo repository.AdjustmentRepository,
	resolver *RuleResolver,
	config RecommendationConfig,
) *RecommendationEngine {
	return &RecommendationEngine{
		productRepo:     productRepo,
		observationRepo: observationRepo,
		adjustmentRepo:  adjustmentRepo,
		resolver:        resolver,
		config:          config,
	}
}

// RecommendForProduct produz a recomendação para um produto. Produto ausente
// ou sem observações frescas devolve (nil, nil): ausência de recomendação é
// um resultado normal, não um erro.
func (e *RecommendationEngine) RecommendForProduct(productID string) (*domain.PriceRecommendation, error) {
	return e.recommendAt(productID, time.Now())
}

func (e *RecommendationEngine) recommendAt(productID string, now time.Time) (*domain.PriceRecommendation, error) {
	product, err := e.productRepo.GetByID(productID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar produto")
	}

	if product == nil || product.CurrentPrice <= 0 {
		return nil, nil
	}

	summary, err := e.summarizeMarket(productID, now)
	if err != nil {
		return nil, err
	}

	if summary == nil {
		return nil, nil
	}

	rule := e.resolver.Resolve(product.ID, product.Brand, product.Category)

	deviationPercent := (product.CurrentPrice - summary.MeanPrice) / summary.MeanPrice * 100

	action, targetPrice, confidence, reason := e.decide(product, rule, summary, deviationPercent)

	eligible, err := e.autoApplyEligible(product.ID, rule, action, now)
	if err != nil {
		return nil, err
	}

	return &domain.PriceRecommendation{
		ProductID:         product.ID,
		ProductName:       product.Name,
		CurrentPrice:      product.CurrentPrice,
		SuggestedPrice:    utils.RoundWithTwoDecimalPlace(targetPrice),
		Action:            action,
		Reason:            reason,
		DeviationPercent:  utils.RoundWithTwoDecimalPlace(deviationPercent),
		Confidence:        confidence,
		SourceCount:       summary.SourceCount,
		AutoApplyEligible: eligible,
	}, nil
}

// summarizeMarket agrega as observações disponíveis dentro da janela de
// frescor. Devolve nil quando não há base para análise.
func (e *RecommendationEngine) summarizeMarket(productID string, now time.Time) (*domain.MarketSummary, error) {
	since := now.Add(-e.config.FreshnessWindow)

	observations, err := e.observationRepo.ListSince(productID, since)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar observações de mercado")
	}

	var (
		total   float64
		minimum float64
		maximum float64
		count   int
	)

	sources := make(map[string]struct{})
	for _, observation := range observations {
		if !observation.Available || observation.Price <= 0 {
			continue
		}

		total += observation.Price
		count++
		sources[observation.Source] = struct{}{}

		if minimum == 0 || observation.Price < minimum {
			minimum = observation.Price
		}
		if observation.Price > maximum {
			maximum = observation.Price
		}
	}

	if count == 0 {
		return nil, nil
	}

	return &domain.MarketSummary{
		MeanPrice:   total / float64(count),
		MinPrice:    minimum,
		MaxPrice:    maximum,
		SourceCount: len(sources),
		SampleSize:  count,
	}, nil
}

// decide aplica a política de decisão: o primeiro ramo que casar vence
func (e *RecommendationEngine) decide(
	product *domain.Product,
	rule *domain.PricingRule,
	summary *domain.MarketSummary,
	deviationPercent float64,
) (domain.PriceAction, float64, float64, string) {
	marginFloor := 0.0
	if product.Cost > 0 {
		marginFloor = product.Cost * (1 + rule.MinMarginPercent/100)
	}

	switch {
	case deviationPercent > rule.MaxPremiumPercent:
		// Acima da tolerância de prêmio: reduzir até o teto de prêmio sobre
		// a média, sem furar o piso de margem nem a variação máxima por passo
		targetPrice := summary.MeanPrice * (1 + rule.MaxPremiumPercent/100)
		if targetPrice < marginFloor {
			targetPrice = marginFloor
		}

		lowerBound := product.CurrentPrice * (1 - e.config.MaxSwingPercent/100)
		if targetPrice < lowerBound {
			targetPrice = lowerBound
		}

		confidence := 0.6
		if summary.SourceCount >= 2 {
			confidence = 0.8
		}

		reason := fmt.Sprintf(
			"Preço %.1f%% acima da média de mercado (%.2f); redução recomendada",
			deviationPercent, summary.MeanPrice,
		)

		return domain.PriceActionDecrease, targetPrice, confidence, reason

	case deviationPercent < underpricedDeviationPercent:
		// Bem abaixo do mercado: subir até perto da média, limitado pela
		// variação máxima por passo
		targetPrice := summary.MeanPrice * 0.95

		upperBound := product.CurrentPrice * (1 + e.config.MaxSwingPercent/100)
		if targetPrice > upperBound {
			targetPrice = upperBound
		}

		confidence := 0.5
		if summary.SourceCount >= 2 {
			confidence = 0.7
		}

		reason := fmt.Sprintf(
			"Preço %.1f%% abaixo da média de mercado (%.2f); aumento recomendado",
			math.Abs(deviationPercent), summary.MeanPrice,
		)

		return domain.PriceActionIncrease, targetPrice, confidence, reason

	default:
		return domain.PriceActionMaintain, product.CurrentPrice, 0.9, "Preço alinhado com o mercado"
	}
}

// autoApplyEligible verifica se a recomendação pode ser aplicada sem revisão
// humana: regra permite ajuste automático, a ação não é de manutenção e o
// cooldown desde o último ajuste do produto já venceu.
func (e *RecommendationEngine) autoApplyEligible(
	productID string,
	rule *domain.PricingRule,
	action domain.PriceAction,
	now time.Time,
) (bool, error) {
	if !rule.AutoAdjustAllowed || action == domain.PriceActionMaintain {
		return false, nil
	}

	lastAdjustment, err := e.adjustmentRepo.GetLastByProductID(productID)
	if err != nil {
		return false, errors.Wrap(err, "erro ao buscar último ajuste do produto")
	}

	if lastAdjustment == nil {
		return true, nil
	}

	return now.Sub(lastAdjustment.AppliedAt) > e.config.Cooldown, nil
}

// AnalyseAll analisa todos os produtos ativos e devolve as recomendações em
// ordem decrescente de desvio absoluto, para que os itens mais desalinhados
// sejam tratados primeiro. Produtos sem dados são silenciosamente ignorados.
func (e *RecommendationEngine) AnalyseAll() ([]*domain.PriceRecommendation, error) {
	return e.analyseAllAt(time.Now())
}

func (e *RecommendationEngine) analyseAllAt(now time.Time) ([]*domain.PriceRecommendation, error) {
	products, err := e.productRepo.ListActive()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar produtos ativos")
	}

	recommendations := make([]*domain.PriceRecommendation, 0, len(products))
	for _, product := range products {
		if product.ID == "" {
			continue
		}

		recommendation, err := e.recommendAt(product.ID, now)
		if err != nil {
			logrus.WithError(err).WithField("product_id", product.ID).
				Warn("Erro ao analisar produto; seguindo para o próximo")
			continue
		}

		if recommendation == nil {
			continue
		}

		recommendations = append(recommendations, recommendation)
	}

	sort.Slice(recommendations, func(i, j int) bool {
		return math.Abs(recommendations[i].DeviationPercent) > math.Abs(recommendations[j].DeviationPercent)
	})

	return recommendations, nil
}
