package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-engine-api/infrastructure/repository"
	"github.com/vfg2006/attribution-engine-api/internal/config"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/aggregating"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/attributing"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/pathbuilding"
	"github.com/vfg2006/attribution-engine-api/pkg/utils"
)

// AttributionSyncConfig representa a configuração do agendador do pipeline de atribuição
type AttributionSyncConfig struct {
	CronSchedule    string
	SyncEnabled     bool
	RetentionMonths int
}

// AttributionSyncService gerencia o agendamento e execução do pipeline de
// atribuição: caminhos, atribuições, agregados mensais e funil são derivados
// do zero a cada execução e substituídos atomicamente.
type AttributionSyncService struct {
	scheduler           *gocron.Scheduler
	config              AttributionSyncConfig
	appConfig           *config.Config
	touchpointRepo      repository.TouchpointRepository
	purchaseRepo        repository.PurchaseRepository
	spendRepo           repository.SpendRepository
	campaignRepo        repository.CampaignRepository
	runRepo             repository.PipelineRunRepository
	funnelRepo          repository.FunnelMetricRepository
	snapshotRepo        repository.SnapshotRepository
	pathBuilder         pathbuilding.PathBuilder
	attributor          attributing.Attributor
	aggregator          aggregating.Aggregator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAttributionSyncService cria uma nova instância do serviço do pipeline de atribuição
func NewAttributionSyncService(
	touchpointRepo repository.TouchpointRepository,
	purchaseRepo repository.PurchaseRepository,
	spendRepo repository.SpendRepository,
	campaignRepo repository.CampaignRepository,
	runRepo repository.PipelineRunRepository,
	funnelRepo repository.FunnelMetricRepository,
	snapshotRepo repository.SnapshotRepository,
	pathBuilder pathbuilding.PathBuilder,
	attributor attributing.Attributor,
	aggregator aggregating.Aggregator,
	appConfig *config.Config,
) *AttributionSyncService {
	// Criar a configuração com base na config global
	syncConfig := AttributionSyncConfig{
		CronSchedule:    appConfig.AttributionSync.CronSchedule,
		SyncEnabled:     appConfig.AttributionSync.Enabled,
		RetentionMonths: appConfig.AttributionSync.RetentionMonths,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    syncConfig.CronSchedule,
		"sync_enabled":     syncConfig.SyncEnabled,
		"retention_months": syncConfig.RetentionMonths,
	}).Info("Configuração do agendador do pipeline de atribuição carregada")

	return &AttributionSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		touchpointRepo: touchpointRepo,
		purchaseRepo:   purchaseRepo,
		spendRepo:      spendRepo,
		campaignRepo:   campaignRepo,
		runRepo:        runRepo,
		funnelRepo:     funnelRepo,
		snapshotRepo:   snapshotRepo,
		pathBuilder:    pathBuilder,
		attributor:     attributor,
		aggregator:     aggregator,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *AttributionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Pipeline de atribuição desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do pipeline de atribuição")

	// Agendar a execução do pipeline
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runPipeline(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pipeline de atribuição: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do pipeline de atribuição")
		s.scheduler.Stop()
	}()

	return nil
}

// runPipeline executa o pipeline completo de atribuição
func (s *AttributionSyncService) runPipeline(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pipeline de atribuição já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar identificador da execução do pipeline")
		return
	}

	run := &domain.PipelineRun{
		ID:        runID,
		StartedAt: startTime,
		Status:    domain.PipelineRunRunning,
	}

	if err := s.runRepo.Create(run); err != nil {
		logrus.WithError(err).Error("Erro ao registrar execução do pipeline")
		return
	}

	logrus.WithField("run_id", runID).Info("Iniciando execução do pipeline de atribuição")

	if err := s.execute(ctx, run); err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Error("Execução do pipeline de atribuição falhou")

		now := time.Now()
		message := err.Error()
		run.CompletedAt = &now
		run.Status = domain.PipelineRunFailed
		run.Error = &message

		if err := s.runRepo.Update(run); err != nil {
			logrus.WithError(err).Error("Erro ao atualizar execução do pipeline após falha")
		}
		return
	}

	now := time.Now()
	run.CompletedAt = &now
	run.Status = domain.PipelineRunCompleted

	if err := s.runRepo.Update(run); err != nil {
		logrus.WithError(err).Error("Erro ao atualizar execução do pipeline")
	}

	s.pruneOldRuns()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"run_id":              runID,
		"duration":            duration.String(),
		"path_entries":        run.PathEntries,
		"last_touch_rows":     run.LastTouchRows,
		"linear_rows":         run.LinearRows,
		"monthly_metric_rows": run.MonthlyMetricRows,
		"tie_break_warnings":  run.TieBreakWarnings,
	}).Info("Execução do pipeline de atribuição concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// execute roda as etapas do pipeline e preenche os contadores da execução
func (s *AttributionSyncService) execute(ctx context.Context, run *domain.PipelineRun) error {
	// Carregar os fatos de entrada
	touchpoints, err := s.touchpointRepo.ListAll()
	if err != nil {
		return fmt.Errorf("erro ao carregar touchpoints: %w", err)
	}

	purchases, err := s.purchaseRepo.ListAll()
	if err != nil {
		return fmt.Errorf("erro ao carregar compras: %w", err)
	}

	spend, err := s.spendRepo.ListAll()
	if err != nil {
		return fmt.Errorf("erro ao carregar spend: %w", err)
	}

	run.SpendRowsRead = len(spend)

	// Construir os caminhos de touchpoints
	paths, buildStats := s.pathBuilder.Build(touchpoints, purchases)
	run.TouchpointsRead = buildStats.TouchpointsRead
	run.PurchasesRead = buildStats.PurchasesRead
	run.SkippedTouchpoints = buildStats.SkippedTouchpoints
	run.SkippedPurchases = buildStats.SkippedPurchases
	run.PathEntries = len(paths)

	// Derivar as duas visões de atribuição sobre os mesmos caminhos
	lastTouch, tieWarnings := s.attributor.LastTouch(paths, purchases)
	linear := s.attributor.Linear(paths, purchases)
	run.LastTouchRows = len(lastTouch)
	run.LinearRows = len(linear)
	run.TieBreakWarnings = tieWarnings

	// Agregar métricas mensais e funil
	metrics, aggStats := s.aggregator.MonthlyMetrics(&aggregating.Inputs{
		Purchases: purchases,
		Spend:     spend,
		LastTouch: lastTouch,
		Linear:    linear,
	})
	run.MonthlyMetricRows = len(metrics)
	run.SkippedSpendRows = aggStats.SkippedSpendRows

	funnel := s.aggregator.Funnel(touchpoints, purchases)
	funnel.RunID = run.ID

	run.OrphanCampaigns = s.countOrphanCampaigns(paths, purchases)

	// Substituir o snapshot derivado em uma única transação
	snapshot := &domain.DerivedSnapshot{
		Paths:          paths,
		LastTouch:      lastTouch,
		Linear:         linear,
		MonthlyMetrics: metrics,
		Funnel:         funnel,
		RunID:          run.ID,
	}

	if err := s.snapshotRepo.ReplaceSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("erro ao gravar snapshot derivado: %w", err)
	}

	return nil
}

// countOrphanCampaigns conta as referências de campanha presentes nos fatos
// mas ausentes na tabela de campanhas. Referência órfã é condição de
// qualidade de dados: o fato permanece, os campos de campanha ficam nulos.
func (s *AttributionSyncService) countOrphanCampaigns(paths []*domain.TouchpointPathEntry, purchases []*domain.Purchase) int {
	referenced := make(map[int64]bool)
	for _, entry := range paths {
		if entry.CampaignID != nil {
			referenced[*entry.CampaignID] = true
		}
	}
	for _, purchase := range purchases {
		if purchase.AcquisitionCampaign != nil {
			referenced[*purchase.AcquisitionCampaign] = true
		}
	}

	if len(referenced) == 0 {
		return 0
	}

	campaigns, err := s.campaignRepo.ListAll()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao carregar campanhas para checagem de órfãs")
		return 0
	}

	known := make(map[int64]bool, len(campaigns))
	for _, campaign := range campaigns {
		known[campaign.ID] = true
	}

	orphans := 0
	for id := range referenced {
		if !known[id] {
			orphans++
		}
	}

	if orphans > 0 {
		logrus.WithField("orphan_campaigns", orphans).Warn("Referências de campanha órfãs encontradas nos fatos")
	}

	return orphans
}

// pruneOldRuns remove execuções e snapshots de funil antigos conforme a
// política de retenção
func (s *AttributionSyncService) pruneOldRuns() {
	if s.config.RetentionMonths <= 0 {
		return
	}

	removed, err := s.runRepo.DeleteOlderThan(s.config.RetentionMonths)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao remover execuções antigas do pipeline")
	} else if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":          removed,
			"retention_months": s.config.RetentionMonths,
		}).Info("Execuções antigas do pipeline removidas")
	}

	removedFunnel, err := s.funnelRepo.DeleteOlderThan(s.config.RetentionMonths)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao remover snapshots de funil antigos")
		return
	}

	if removedFunnel > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":          removedFunnel,
			"retention_months": s.config.RetentionMonths,
		}).Info("Snapshots de funil antigos removidos")
	}
}

// TriggerManualSync inicia manualmente uma execução do pipeline de atribuição
func (s *AttributionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pipeline de atribuição já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do pipeline de atribuição")
	go s.runPipeline(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *AttributionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_months":       s.config.RetentionMonths,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	s.syncMutex.Unlock()

	lastRun, err := s.runRepo.GetLatest()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar última execução do pipeline")
		return status
	}

	if lastRun != nil {
		status["last_run"] = lastRun
	}

	return status
}
