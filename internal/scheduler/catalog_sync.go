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
	"github.com/vfg2006/pricing-manager-api/internal/domain"
)

// CatalogSyncConfig representa a configuração do agendador de sincronização do catálogo
type CatalogSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CatalogSyncService gerencia o agendamento e execução da sincronização do
// catálogo de produtos a partir do ERP
type CatalogSyncService struct {
	scheduler           *gocron.Scheduler
	config              CatalogSyncConfig
	erpService          erp.ERPIntegrator
	productRepo         repository.ProductRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncResult      *domain.SyncCatalogResponse
}

// NewCatalogSyncService cria uma nova instância do serviço de sincronização do catálogo
func NewCatalogSyncService(
	erpService erp.ERPIntegrator,
	productRepo repository.ProductRepository,
	appConfig *config.Config,
) *CatalogSyncService {
	syncConfig := CatalogSyncConfig{
		CronSchedule: appConfig.CatalogSync.CronSchedule,
		SyncEnabled:  appConfig.CatalogSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização do catálogo carregada")

	return &CatalogSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		erpService:  erpService,
		productRepo: productRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *CatalogSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do catálogo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCatalog()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do catálogo: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

// syncCatalog busca o catálogo completo no ERP e persiste os produtos
// normalizados no banco local
func (s *CatalogSyncService) syncCatalog() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do catálogo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização do catálogo de produtos")

	products, err := s.erpService.ListProducts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar catálogo de produtos no ERP")
		return
	}

	if len(products) == 0 {
		logrus.Info("Nenhum produto retornado pelo ERP para sincronização")
		return
	}

	// Produtos sem preço válido não entram no motor de precificação
	valid := make([]*domain.Product, 0, len(products))
	skipped := 0
	for _, product := range products {
		if product.CurrentPrice <= 0 {
			logrus.WithField("product_id", product.ID).Warn("Produto sem preço de venda válido. Pulando.")
			skipped++
			continue
		}
		valid = append(valid, product)
	}

	if err := s.productRepo.SaveOrUpdate(valid); err != nil {
		logrus.WithError(err).Error("Erro ao persistir produtos sincronizados")
		return
	}

	duration := time.Since(startTime)
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncResult = &domain.SyncCatalogResponse{
		TotalFetched: len(products),
		TotalSynced:  len(valid),
		TotalSkipped: skipped,
		Duration:     duration.String(),
	}

	logrus.WithFields(logrus.Fields{
		"duration":      duration.String(),
		"total_fetched": len(products),
		"total_synced":  len(valid),
		"total_skipped": skipped,
	}).Info("Sincronização do catálogo concluída")
}

// TriggerManualSync inicia manualmente uma sincronização do catálogo
func (s *CatalogSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do catálogo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do catálogo")
	go s.syncCatalog()
}

// GetStatus retorna o status atual do agendador
func (s *CatalogSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastSyncResult != nil {
		status["last_sync_result"] = s.lastSyncResult
	}

	return status
}
