package pricing

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pricing-manager-api/infrastructure/repository"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
	"github.com/vfg2006/pricing-manager-api/pkg/utils"
)

// ErrProductNotFound indica que o produto não existe no catálogo local
var ErrProductNotFound = errors.New("produto não encontrado")

// Origem registrada no livro para ajustes feitos por este motor
const adjustmentSource = "pricing-engine"

// Updater aplica o preço no sistema remoto. Implementado pelo integrador
// ERP; injetado para que o motor nunca conheça o formato externo.
type Updater interface {
	ApplyRemotePrice(productID string, price float64) error
}

// PricingEngine é a interface exposta para as camadas de API e agendamento
type PricingEngine interface {
	SuggestPrice(product *domain.Product, competitorPrice, targetMargin *float64) *domain.PriceQuote
	RecommendForProduct(productID string) (*domain.PriceRecommendation, error)
	AnalyseAll() ([]*domain.PriceRecommendation, error)
	ApplyPriceChange(updater Updater, productID string, newPrice float64, reason string) (bool, error)
}

type Service struct {
	productRepo    repository.ProductRepository
	adjustmentRepo repository.AdjustmentRepository
	resolver       *RuleResolver
	guard          *SafetyGuard
	multiplier     *StoreMultiplier
	engine         *RecommendationEngine
}

func NewService(
	productRepo repository.ProductRepository,
	adjustmentRepo repository.AdjustmentRepository,
	resolver *RuleResolver,
	guard *SafetyGuard,
	multiplier *StoreMultiplier,
	engine *RecommendationEngine,
) PricingEngine {
	return &Service{
		productRepo:    productRepo,
		adjustmentRepo: adjustmentRepo,
		resolver:       resolver,
		guard:          guard,
		multiplier:     multiplier,
		engine:         engine,
	}
}

// SuggestPrice produz uma cotação pontual para o produto. A estratégia da
// regra resolvida escolhe o alvo; o alvo sempre passa pelo SafetyGuard antes
// de ser distribuído pelos canais.
func (s *Service) SuggestPrice(product *domain.Product, competitorPrice, targetMargin *float64) *domain.PriceQuote {
	rule := s.resolver.Resolve(product.ID, product.Brand, product.Category)

	targetPrice := product.CurrentPrice
	reason := "Sem alteração recomendada"

	if rule.Strategy == domain.StrategyAggressive && competitorPrice != nil && *competitorPrice > 0 {
		// Cobrir o concorrente pela menor unidade monetária
		targetPrice = *competitorPrice - 0.01
		reason = fmt.Sprintf("Cobrindo preço do concorrente (%.2f)", *competitorPrice)
	} else if product.Cost > 0 {
		marginFloor := product.Cost * (1 + rule.MinMarginPercent/100)

		if product.CurrentPrice < marginFloor {
			targetPrice = marginFloor
			reason = fmt.Sprintf("Preço atual abaixo do piso de margem de %.1f%%", rule.MinMarginPercent)
		} else if targetMargin != nil {
			targetPrice = product.Cost * (1 + *targetMargin/100)
			reason = fmt.Sprintf("Reposicionando para margem alvo de %.1f%%", *targetMargin)
		}
	}

	// A saída da estratégia nunca é confiada às cegas
	isSafe, message, safePrice := s.guard.ValidatePriceChange(product.CurrentPrice, targetPrice, product.Cost)
	if !isSafe {
		reason = fmt.Sprintf("%s; %s", reason, message)
	}

	quote := &domain.PriceQuote{
		ProductID:      product.ID,
		CurrentPrice:   product.CurrentPrice,
		SuggestedPrice: safePrice,
		Cost:           product.Cost,
		Reason:         reason,
		IsSafe:         isSafe,
		ChannelPrices:  s.multiplier.CalculateAllPrices(safePrice),
	}

	if product.Cost > 0 {
		marginPercent := utils.RoundWithOneDecimalPlace((safePrice - product.Cost) / product.Cost * 100)
		quote.MarginPercent = &marginPercent
	}

	return quote
}

// RecommendForProduct delega ao motor de recomendação
func (s *Service) RecommendForProduct(productID string) (*domain.PriceRecommendation, error) {
	return s.engine.RecommendForProduct(productID)
}

// AnalyseAll delega ao motor de recomendação
func (s *Service) AnalyseAll() ([]*domain.PriceRecommendation, error) {
	return s.engine.AnalyseAll()
}

// ApplyPriceChange aplica um novo preço a um produto: revalida contra o
// estado vivo do catálogo, registra a intenção no livro de ajustes e só
// então invoca o atualizador remoto. Em caso de falha remota o registro não
// é revertido: o livro documenta a intenção e o ERP segue autoritativo;
// cabe ao chamador repetir a aplicação.
func (s *Service) ApplyPriceChange(updater Updater, productID string, newPrice float64, reason string) (bool, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return false, errors.Wrap(err, "erro ao buscar produto")
	}

	if product == nil {
		return false, ErrProductNotFound
	}

	// O chamador pode estar com uma recomendação desatualizada
	isSafe, message, safePrice := s.guard.ValidatePriceChange(product.CurrentPrice, newPrice, product.Cost)
	if !isSafe {
		reason = fmt.Sprintf("%s; %s", reason, message)
	}

	record := &domain.AdjustmentRecord{
		ProductID:     product.ID,
		PreviousPrice: product.CurrentPrice,
		NewPrice:      safePrice,
		Reason:        reason,
		Source:        adjustmentSource,
		Status:        domain.AdjustmentStatusPending,
		AppliedAt:     time.Now(),
	}

	recordID, err := s.adjustmentRepo.Append(record)
	if err != nil {
		return false, errors.Wrap(err, "erro ao registrar ajuste no livro")
	}

	if err := updater.ApplyRemotePrice(product.ID, safePrice); err != nil {
		if markErr := s.adjustmentRepo.MarkStatus(recordID, domain.AdjustmentStatusRejected); markErr != nil {
			logrus.WithError(markErr).WithField("record_id", recordID).
				Error("Erro ao marcar registro de ajuste como rejeitado")
		}

		return false, errors.Wrapf(err, "falha ao aplicar preço remoto (registro %s)", recordID)
	}

	if err := s.adjustmentRepo.MarkStatus(recordID, domain.AdjustmentStatusApplied); err != nil {
		logrus.WithError(err).WithField("record_id", recordID).
			Error("Erro ao marcar registro de ajuste como aplicado")
	}

	logrus.WithFields(logrus.Fields{
		"product_id":     product.ID,
		"previous_price": product.CurrentPrice,
		"new_price":      safePrice,
		"record_id":      recordID,
	}).Info("Ajuste de preço aplicado")

	return true, nil
}
