package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pricing-manager-api/infrastructure/integrator/erp"
	"github.com/vfg2006/pricing-manager-api/infrastructure/repository"
	"github.com/vfg2006/pricing-manager-api/internal/config"
	"github.com/vfg2006/pricing-manager-api/internal/usecases/pricing"
)

// Observações mais antigas que isso são removidas após cada análise
const observationRetentionDays = 30

// PriceAnalysisConfig representa a configuração do agendador de análise de preços
type PriceAnalysisConfig struct {
	CronSchedule    string
	AnalysisEnabled bool
	AutoApply       bool
}

// PriceAnalysisService gerencia o agendamento e execução da análise de preços
// em lote. Quando habilitado, aplica automaticamente as recomendações
// elegíveis via motor de precificação.
type PriceAnalysisService struct {
	scheduler          *gocron.Scheduler
	config             PriceAnalysisConfig
	pricingEngine      pricing.PricingEngine
	erpService         erp.ERPIntegrator
	observationRepo    repository.CompetitorObservationRepository
	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunTotal       int
	lastRunApplied     int
}

// NewPriceAnalysisService cria uma nova instância do serviço de análise de preços
func NewPriceAnalysisService(
	pricingEngine pricing.PricingEngine,
	erpService erp.ERPIntegrator,
	observationRepo repository.CompetitorObservationRepository,
	appConfig *config.Config,
) *PriceAnalysisService {
	analysisConfig := PriceAnalysisConfig{
		CronSchedule:    appConfig.PriceAnalysis.CronSchedule,
		AnalysisEnabled: appConfig.PriceAnalysis.Enabled,
		AutoApply:       appConfig.PriceAnalysis.AutoApply,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    analysisConfig.CronSchedule,
		"analysis_enabled": analysisConfig.AnalysisEnabled,
		"auto_apply":       analysisConfig.AutoApply,
	}).Info("Configuração do agendador de análise de preços carregada")

	return &PriceAnalysisService{
		scheduler:       scheduler,
		config:          analysisConfig,
		pricingEngine:   pricingEngine,
		erpService:      erpService,
		observationRepo: observationRepo,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *PriceAnalysisService) Start(ctx context.Context) error {
	if !s.config.AnalysisEnabled {
		logrus.Info("Análise de preços em lote desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de análise de preços")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.analyseAllProducts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar análise de preços: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de análise de preços")
		s.scheduler.Stop()
	}()

	return nil
}

// analyseAllProducts executa a análise de mercado para todos os produtos
// ativos e, quando habilitado, aplica as recomendações elegíveis
func (s *PriceAnalysisService) analyseAllProducts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Análise de preços já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando análise de preços para todos os produtos ativos")

	recommendations, err := s.pricingEngine.AnalyseAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao analisar preços dos produtos")
		return
	}

	applied := 0
	if s.config.AutoApply {
		for _, recommendation := range recommendations {
			if !recommendation.AutoApplyEligible {
				continue
			}

			ok, err := s.pricingEngine.ApplyPriceChange(
				s.erpService,
				recommendation.ProductID,
				recommendation.SuggestedPrice,
				recommendation.Reason,
			)
			if err != nil {
				logrus.WithError(err).WithField("product_id", recommendation.ProductID).
					Error("Erro ao aplicar recomendação automaticamente; seguindo para a próxima")
				continue
			}

			if ok {
				applied++
			}
		}
	}

	// Observações velhas já não influenciam nenhuma análise
	if s.observationRepo != nil {
		removed, err := s.observationRepo.DeleteOlderThan(observationRetentionDays)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao remover observações antigas")
		} else if removed > 0 {
			logrus.WithField("removed", removed).Info("Observações antigas removidas")
		}
	}

	duration := time.Since(startTime)
	s.lastRunCompletedAt = time.Now()
	s.lastRunTotal = len(recommendations)
	s.lastRunApplied = applied

	logrus.WithFields(logrus.Fields{
		"duration":        duration.String(),
		"recommendations": len(recommendations),
		"auto_applied":    applied,
	}).Info("Análise de preços concluída")
}

// TriggerManualSync inicia manualmente uma análise de preços
func (s *PriceAnalysisService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Análise de preços já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando análise manual de preços")
	go s.analyseAllProducts()
}

// GetStatus retorna o status atual do agendador
func (s *PriceAnalysisService) GetStatus() map[string]any {
	return map[string]any{
		"analysis_enabled":      s.config.AnalysisEnabled,
		"analysis_cron":         s.config.CronSchedule,
		"auto_apply":            s.config.AutoApply,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_run_total":        s.lastRunTotal,
		"last_run_applied":      s.lastRunApplied,
	}
}
