package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pricing-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/pricing-manager-api/infrastructure/integrator/erp"
	"github.com/vfg2006/pricing-manager-api/infrastructure/integrator/erp/erpclient"
	"github.com/vfg2006/pricing-manager-api/infrastructure/repository"
	"github.com/vfg2006/pricing-manager-api/internal/api"
	"github.com/vfg2006/pricing-manager-api/internal/config"
	"github.com/vfg2006/pricing-manager-api/internal/scheduler"
	"github.com/vfg2006/pricing-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/pricing-manager-api/internal/usecases/pricing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	productRepo := repository.NewProductRepository(pgConn)
	observationRepo := repository.NewCompetitorObservationRepository(pgConn)
	ruleRepo := repository.NewPricingRuleRepository(pgConn)
	adjustmentRepo := repository.NewAdjustmentRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	erpClient := erpclient.NewClient(cfg)
	erpIntegrator := erp.New(cfg, erpClient)

	// Monta o motor de precificação a partir da configuração
	guard := pricing.NewSafetyGuard(pricing.SafetyLimits{
		MinMarginPercent: cfg.Pricing.DefaultMinMarginPercent,
		MaxSwingPercent:  cfg.Pricing.MaxSwingPercent,
	})

	multiplier := pricing.NewStoreMultiplier()

	fallbackRule := pricing.DefaultRule()
	fallbackRule.MinMarginPercent = cfg.Pricing.DefaultMinMarginPercent
	fallbackRule.TargetMarginPercent = cfg.Pricing.DefaultTargetMarginPercent
	fallbackRule.MaxPremiumPercent = cfg.Pricing.DefaultMaxPremiumPercent

	resolver := pricing.NewRuleResolver(ruleRepo, fallbackRule)

	recommendationEngine := pricing.NewRecommendationEngine(
		productRepo,
		observationRepo,
		adjustmentRepo,
		resolver,
		pricing.RecommendationConfig{
			FreshnessWindow: time.Duration(cfg.Pricing.FreshnessWindowDays) * 24 * time.Hour,
			Cooldown:        time.Duration(cfg.Pricing.CooldownDays) * 24 * time.Hour,
			MaxSwingPercent: cfg.Pricing.MaxSwingPercent,
		},
	)

	pricingEngine := pricing.NewService(
		productRepo,
		adjustmentRepo,
		resolver,
		guard,
		multiplier,
		recommendationEngine,
	)

	// Inicializa os agendadores de sincronização e análise
	catalogSyncService := scheduler.NewCatalogSyncService(erpIntegrator, productRepo, cfg)
	priceAnalysisService := scheduler.NewPriceAnalysisService(pricingEngine, erpIntegrator, observationRepo, cfg)

	// Inicia os agendadores em background
	if err := catalogSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do catálogo")
	} else {
		logrus.Info("Agendador de sincronização do catálogo iniciado com sucesso")
	}

	if err := priceAnalysisService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de análise de preços")
	} else {
		logrus.Info("Agendador de análise de preços iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pricingEngine,
		erpIntegrator,
		authenticator,
		productRepo,
		adjustmentRepo,
		observationRepo,
		ruleRepo,
		catalogSyncService,
		priceAnalysisService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
