package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/attribution-engine-api/infrastructure/repository"
	"github.com/vfg2006/attribution-engine-api/internal/api"
	"github.com/vfg2006/attribution-engine-api/internal/config"
	"github.com/vfg2006/attribution-engine-api/internal/scheduler"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/aggregating"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/attributing"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/authenticating"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/pathbuilding"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/reporting"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/trending"
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

	// Repositórios dos fatos de entrada
	touchpointRepo := repository.NewTouchpointRepository(pgConn)
	purchaseRepo := repository.NewPurchaseRepository(pgConn)
	spendRepo := repository.NewSpendRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)

	// Repositórios das tabelas derivadas
	touchpathRepo := repository.NewTouchpathRepository(pgConn)
	attributionRepo := repository.NewAttributionRepository(pgConn)
	monthlyMetricRepo := repository.NewMonthlyMetricRepository(pgConn)
	funnelMetricRepo := repository.NewFunnelMetricRepository(pgConn)
	runRepo := repository.NewPipelineRunRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Etapas do pipeline de atribuição
	pathBuilder := pathbuilding.NewService()
	attributor := attributing.NewService()
	aggregator := aggregating.NewService(cfg.AttributionSync.MaxConcurrentDimensions)

	// Camada de leitura com análise de tendência
	analyzer := trending.NewService()
	reportService := reporting.NewService(
		monthlyMetricRepo,
		funnelMetricRepo,
		attributionRepo,
		touchpathRepo,
		purchaseRepo,
		campaignRepo,
		analyzer,
	)

	// Inicializa o agendador do pipeline de atribuição
	attributionSyncService := scheduler.NewAttributionSyncService(
		touchpointRepo,
		purchaseRepo,
		spendRepo,
		campaignRepo,
		runRepo,
		funnelMetricRepo,
		snapshotRepo,
		pathBuilder,
		attributor,
		aggregator,
		cfg,
	)

	// Inicia o agendador em background
	if err := attributionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do pipeline de atribuição")
	} else {
		logrus.Info("Agendador do pipeline de atribuição iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		authenticator,
		attributionSyncService,
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
