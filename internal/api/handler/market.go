package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pricing-manager-api/infrastructure/repository"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
	"github.com/vfg2006/pricing-manager-api/pkg/apiErrors"
	"github.com/vfg2006/pricing-manager-api/pkg/utils"
)

// CreateObservation registra uma observação de preço de concorrente
// depositada por um coletor externo
func CreateObservation(observationRepo repository.CompetitorObservationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.NewObservationRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.ProductID == "" || req.Source == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "product_id e source são obrigatórios", nil)
			return
		}

		if req.Price <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Preço observado deve ser positivo", nil)
			return
		}

		collectedAt := time.Now()
		if req.CollectedAt != nil {
			collectedAt = *req.CollectedAt
		}

		observation := &domain.CompetitorObservation{
			ProductID:   req.ProductID,
			Source:      req.Source,
			Price:       req.Price,
			Seller:      req.Seller,
			Available:   req.Available,
			CollectedAt: collectedAt,
		}

		if err := observationRepo.Save(observation); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar observação de mercado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(observation)
	}
}

// ListObservations retorna as observações de mercado de um produto a partir
// de uma data. Sem o parâmetro since, considera a última semana.
func ListObservations(observationRepo repository.CompetitorObservationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := r.URL.Query().Get("product_id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "product_id é obrigatório", nil)
			return
		}

		since := time.Now().AddDate(0, 0, -7)
		if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
			parsed, err := utils.ParseDate(sinceStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro since inválido. Formato esperado: 2006-01-02", nil)
				return
			}
			since = *parsed
		}

		observations, err := observationRepo.ListSince(productID, since)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar observações de mercado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(observations); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpsertPricingRule cria ou atualiza a regra de precificação de um escopo
func UpsertPricingRule(ruleRepo repository.PricingRuleRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertPricingRule")

		var req domain.UpsertPricingRuleRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if !req.ScopeType.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de escopo inválido. Valores aceitos: product, brand, category, default", nil)
			return
		}

		if req.ScopeType != domain.RuleScopeDefault && req.ScopeValue == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Valor do escopo é obrigatório para escopos não padrão", nil)
			return
		}

		if !req.Strategy.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Estratégia inválida. Valores aceitos: protect_margin, aggressive", nil)
			return
		}

		if req.MinMarginPercent > req.TargetMarginPercent {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Margem mínima não pode ser maior que a margem alvo", nil)
			return
		}

		rule := &domain.PricingRule{
			ScopeType:           req.ScopeType,
			ScopeValue:          req.ScopeValue,
			MinMarginPercent:    req.MinMarginPercent,
			TargetMarginPercent: req.TargetMarginPercent,
			MaxPremiumPercent:   req.MaxPremiumPercent,
			AutoAdjustAllowed:   req.AutoAdjustAllowed,
			Strategy:            req.Strategy,
		}

		if err := ruleRepo.SaveOrUpdate(rule); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar regra de precificação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rule)
	}
}
