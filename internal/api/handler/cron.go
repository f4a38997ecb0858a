package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
	"github.com/vfg2006/pricing-manager-api/internal/scheduler"
	"github.com/vfg2006/pricing-manager-api/pkg/apiErrors"
	"github.com/vfg2006/pricing-manager-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCatalog  = "catalog"
	CronJobTypeAnalysis = "analysis"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CatalogSyncService   *scheduler.CatalogSyncService
	PriceAnalysisService *scheduler.PriceAnalysisService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeCatalog:
			// Executar sincronização do catálogo
			if services.CatalogSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do catálogo não disponível", nil)
				return
			}
			services.CatalogSyncService.TriggerManualSync()

		case CronJobTypeAnalysis:
			// Executar análise de preços
			if services.PriceAnalysisService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de análise de preços não disponível", nil)
				return
			}
			services.PriceAnalysisService.TriggerManualSync()

		case CronJobTypeAll:
			// Executar ambas as rotinas
			if services.CatalogSyncService != nil {
				services.CatalogSyncService.TriggerManualSync()
			}
			if services.PriceAnalysisService != nil {
				services.PriceAnalysisService.TriggerManualSync()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: catalog, analysis, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{}

		if services.CatalogSyncService != nil {
			status["catalog"] = services.CatalogSyncService.GetStatus()
		}
		if services.PriceAnalysisService != nil {
			status["analysis"] = services.PriceAnalysisService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
