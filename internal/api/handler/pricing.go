package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pricing-manager-api/infrastructure/integrator/erp"
	"github.com/vfg2006/pricing-manager-api/infrastructure/repository"
	"github.com/vfg2006/pricing-manager-api/internal/usecases/pricing"
	"github.com/vfg2006/pricing-manager-api/pkg/apiErrors"
)

// Limite padrão de registros retornados pelo histórico de ajustes
const defaultHistoryLimit = 50

type ApplyPriceRequest struct {
	NewPrice float64 `json:"new_price"`
	Reason   string  `json:"reason"`
}

// GetPriceSuggestion retorna a cotação de preço sugerido para um produto.
// Aceita os parâmetros opcionais competitor_price e target_margin.
func GetPriceSuggestion(engine pricing.PricingEngine, productRepo repository.ProductRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		product, err := productRepo.GetByID(productID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto", nil)
			return
		}

		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
			return
		}

		competitorPrice, err := parseOptionalFloat(r.URL.Query().Get("competitor_price"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro competitor_price inválido", nil)
			return
		}

		targetMargin, err := parseOptionalFloat(r.URL.Query().Get("target_margin"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro target_margin inválido", nil)
			return
		}

		quote := engine.SuggestPrice(product, competitorPrice, targetMargin)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(quote); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetRecommendations retorna as recomendações de preço. Com o parâmetro
// product_id retorna a recomendação de um único produto; sem ele, a análise
// completa do catálogo em ordem decrescente de desvio.
func GetRecommendations(engine pricing.PricingEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if productID := r.URL.Query().Get("product_id"); productID != "" {
			recommendation, err := engine.RecommendForProduct(productID)
			if err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar recomendação", nil)
				return
			}

			if recommendation == nil {
				// Ausência de recomendação é um resultado normal
				json.NewEncoder(w).Encode(map[string]any{
					"product_id":     productID,
					"recommendation": nil,
					"message":        "Sem dados de mercado suficientes para recomendar",
				})
				return
			}

			json.NewEncoder(w).Encode(recommendation)
			return
		}

		recommendations, err := engine.AnalyseAll()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao analisar catálogo", nil)
			return
		}

		json.NewEncoder(w).Encode(recommendations)
	}
}

// ApplyPrice aplica um novo preço a um produto, registrando o ajuste no
// livro e propagando a alteração para o ERP
func ApplyPrice(engine pricing.PricingEngine, erpService erp.ERPIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ApplyPrice")

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		var req ApplyPriceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.NewPrice <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Novo preço deve ser positivo", nil)
			return
		}

		if req.Reason == "" {
			req.Reason = "Ajuste manual"
		}

		applied, err := engine.ApplyPriceChange(erpService, productID, req.NewPrice, req.Reason)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, pricing.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrApplyFailed, "Erro ao aplicar preço no sistema remoto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"product_id": productID,
			"applied":    applied,
		})
	}
}

// GetPriceHistory retorna o histórico de ajustes de preço de um produto
func GetPriceHistory(adjustmentRepo repository.AdjustmentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		limit := defaultHistoryLimit
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		records, err := adjustmentRepo.ListByProductID(productID, limit)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de ajustes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// parseOptionalFloat converte um parâmetro de query opcional em *float64
func parseOptionalFloat(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
