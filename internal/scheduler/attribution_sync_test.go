package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/attribution-engine-api/infrastructure/repository/mocks"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/aggregating"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/attributing"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/pathbuilding"
	"go.uber.org/mock/gomock"
)

func TestAttributionSyncService_execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockTouchpointRepo := mocks.NewMockTouchpointRepository(ctrl)
	mockPurchaseRepo := mocks.NewMockPurchaseRepository(ctrl)
	mockSpendRepo := mocks.NewMockSpendRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockRunRepo := mocks.NewMockPipelineRunRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

	// Service com as etapas reais do pipeline
	service := &AttributionSyncService{
		touchpointRepo: mockTouchpointRepo,
		purchaseRepo:   mockPurchaseRepo,
		spendRepo:      mockSpendRepo,
		campaignRepo:   mockCampaignRepo,
		runRepo:        mockRunRepo,
		snapshotRepo:   mockSnapshotRepo,
		pathBuilder:    pathbuilding.NewService(),
		attributor:     attributing.NewService(),
		aggregator:     aggregating.NewService(1),
	}

	campaign101 := int64Ptr(101)
	campaign999 := int64Ptr(999)

	tests := []struct {
		name     string
		setup    func() *capturedSnapshot
		hasError bool
		validate func(t *testing.T, run *domain.PipelineRun, captured *capturedSnapshot)
	}{
		{
			name: "Pipeline completo preenche contadores e grava o snapshot derivado",
			setup: func() *capturedSnapshot {
				mockTouchpointRepo.EXPECT().ListAll().Return([]*domain.Touchpoint{
					{UserID: 1, OccurredAt: tsPtr(2025, 6, 1, 9, 0), Channel: "facebook_ads", CampaignID: campaign101, InteractionType: domain.InteractionImpression},
					{UserID: 1, OccurredAt: tsPtr(2025, 6, 3, 10, 0), Channel: "google_search", InteractionType: domain.InteractionClick},
					{UserID: 2, OccurredAt: tsPtr(2025, 6, 2, 9, 0), Channel: "email", InteractionType: domain.InteractionImpression},
				}, nil)

				mockPurchaseRepo.EXPECT().ListAll().Return([]*domain.Purchase{
					{ID: 5001, UserID: 1, PurchasedAt: tsPtr(2025, 6, 5, 12, 0), Revenue: 100.0},
				}, nil)

				mockSpendRepo.EXPECT().ListAll().Return([]*domain.Spend{
					{Date: tsPtr(2025, 6, 1, 0, 0), Channel: strPtr("facebook_ads"), CampaignID: campaign101, Amount: 40.0},
				}, nil)

				mockCampaignRepo.EXPECT().ListAll().Return([]*domain.Campaign{
					{ID: 101, Name: "Lançamento Junho", Channel: "facebook_ads"},
				}, nil)

				captured := &capturedSnapshot{}
				mockSnapshotRepo.EXPECT().
					ReplaceSnapshot(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, snapshot *domain.DerivedSnapshot) error {
						captured.snapshot = snapshot
						return nil
					})

				return captured
			},
			hasError: false,
			validate: func(t *testing.T, run *domain.PipelineRun, captured *capturedSnapshot) {
				assert.Equal(t, 3, run.TouchpointsRead)
				assert.Equal(t, 1, run.PurchasesRead)
				assert.Equal(t, 1, run.SpendRowsRead)
				assert.Equal(t, 2, run.PathEntries)
				assert.Equal(t, 1, run.LastTouchRows)
				assert.Equal(t, 2, run.LinearRows)
				assert.Equal(t, 0, run.TieBreakWarnings)
				assert.Equal(t, 0, run.OrphanCampaigns)

				assert.NotNil(t, captured.snapshot)
				assert.Equal(t, run.ID, captured.snapshot.RunID)
				assert.Len(t, captured.snapshot.Paths, 2)
				assert.Len(t, captured.snapshot.LastTouch, 1)
				assert.Equal(t, "google_search", captured.snapshot.LastTouch[0].Channel)
				assert.Len(t, captured.snapshot.Linear, 2)

				assert.NotNil(t, captured.snapshot.Funnel)
				assert.Equal(t, run.ID, captured.snapshot.Funnel.RunID)
				assert.Equal(t, 2, captured.snapshot.Funnel.ImpressedUsers)
				assert.Equal(t, 1, captured.snapshot.Funnel.NonConverters)
			},
		},
		{
			name: "Campanha referenciada mas desconhecida conta como órfã",
			setup: func() *capturedSnapshot {
				mockTouchpointRepo.EXPECT().ListAll().Return([]*domain.Touchpoint{
					{UserID: 1, OccurredAt: tsPtr(2025, 6, 1, 9, 0), Channel: "facebook_ads", CampaignID: campaign999, InteractionType: domain.InteractionClick},
				}, nil)

				mockPurchaseRepo.EXPECT().ListAll().Return([]*domain.Purchase{
					{ID: 5001, UserID: 1, PurchasedAt: tsPtr(2025, 6, 5, 12, 0), Revenue: 50.0},
				}, nil)

				mockSpendRepo.EXPECT().ListAll().Return([]*domain.Spend{}, nil)

				mockCampaignRepo.EXPECT().ListAll().Return([]*domain.Campaign{
					{ID: 101, Name: "Lançamento Junho", Channel: "facebook_ads"},
				}, nil)

				captured := &capturedSnapshot{}
				mockSnapshotRepo.EXPECT().
					ReplaceSnapshot(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, snapshot *domain.DerivedSnapshot) error {
						captured.snapshot = snapshot
						return nil
					})

				return captured
			},
			hasError: false,
			validate: func(t *testing.T, run *domain.PipelineRun, captured *capturedSnapshot) {
				assert.Equal(t, 1, run.OrphanCampaigns)
			},
		},
		{
			name: "Empate de timestamp no last-touch alimenta o contador da execução",
			setup: func() *capturedSnapshot {
				mockTouchpointRepo.EXPECT().ListAll().Return([]*domain.Touchpoint{
					{UserID: 1, OccurredAt: tsPtr(2025, 6, 10, 11, 20), Channel: "google_search", InteractionType: domain.InteractionClick},
					{UserID: 1, OccurredAt: tsPtr(2025, 6, 10, 11, 20), Channel: "facebook_ads", InteractionType: domain.InteractionImpression},
				}, nil)

				mockPurchaseRepo.EXPECT().ListAll().Return([]*domain.Purchase{
					{ID: 5001, UserID: 1, PurchasedAt: tsPtr(2025, 6, 12, 12, 0), Revenue: 75.0},
				}, nil)

				mockSpendRepo.EXPECT().ListAll().Return([]*domain.Spend{}, nil)

				captured := &capturedSnapshot{}
				mockSnapshotRepo.EXPECT().
					ReplaceSnapshot(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, snapshot *domain.DerivedSnapshot) error {
						captured.snapshot = snapshot
						return nil
					})

				return captured
			},
			hasError: false,
			validate: func(t *testing.T, run *domain.PipelineRun, captured *capturedSnapshot) {
				assert.Equal(t, 1, run.TieBreakWarnings)

				// O vencedor do empate é a maior sequência
				assert.Len(t, captured.snapshot.LastTouch, 1)
				assert.Equal(t, "facebook_ads", captured.snapshot.LastTouch[0].Channel)
			},
		},
		{
			name: "Falha ao carregar touchpoints interrompe a execução antes do snapshot",
			setup: func() *capturedSnapshot {
				mockTouchpointRepo.EXPECT().ListAll().Return(nil, errors.New("conexão recusada"))
				return nil
			},
			hasError: true,
			validate: func(t *testing.T, run *domain.PipelineRun, captured *capturedSnapshot) {},
		},
		{
			name: "Falha ao gravar o snapshot propaga o erro",
			setup: func() *capturedSnapshot {
				mockTouchpointRepo.EXPECT().ListAll().Return([]*domain.Touchpoint{}, nil)
				mockPurchaseRepo.EXPECT().ListAll().Return([]*domain.Purchase{}, nil)
				mockSpendRepo.EXPECT().ListAll().Return([]*domain.Spend{}, nil)

				mockSnapshotRepo.EXPECT().
					ReplaceSnapshot(gomock.Any(), gomock.Any()).
					Return(errors.New("transação abortada"))

				return nil
			},
			hasError: true,
			validate: func(t *testing.T, run *domain.PipelineRun, captured *capturedSnapshot) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured := tt.setup()

			run := &domain.PipelineRun{
				ID:        "abc123",
				StartedAt: time.Now(),
				Status:    domain.PipelineRunRunning,
			}

			err := service.execute(context.Background(), run)

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			tt.validate(t, run, captured)
		})
	}
}

func TestAttributionSyncService_pruneOldRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunRepo := mocks.NewMockPipelineRunRepository(ctrl)
	mockFunnelRepo := mocks.NewMockFunnelMetricRepository(ctrl)

	tests := []struct {
		name            string
		retentionMonths int
		setup           func()
	}{
		{
			name:            "Retenção positiva remove execuções e snapshots de funil antigos",
			retentionMonths: 6,
			setup: func() {
				mockRunRepo.EXPECT().DeleteOlderThan(6).Return(int64(3), nil)
				mockFunnelRepo.EXPECT().DeleteOlderThan(6).Return(int64(3), nil)
			},
		},
		{
			name:            "Retenção zero desliga a limpeza",
			retentionMonths: 0,
			setup:           func() {},
		},
		{
			name:            "Erro na limpeza das execuções não impede a limpeza do funil",
			retentionMonths: 6,
			setup: func() {
				mockRunRepo.EXPECT().DeleteOlderThan(6).Return(int64(0), errors.New("timeout"))
				mockFunnelRepo.EXPECT().DeleteOlderThan(6).Return(int64(2), nil)
			},
		},
		{
			name:            "Erro na limpeza do funil não derruba o pipeline",
			retentionMonths: 6,
			setup: func() {
				mockRunRepo.EXPECT().DeleteOlderThan(6).Return(int64(1), nil)
				mockFunnelRepo.EXPECT().DeleteOlderThan(6).Return(int64(0), errors.New("timeout"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service := &AttributionSyncService{
				config:     AttributionSyncConfig{RetentionMonths: tt.retentionMonths},
				runRepo:    mockRunRepo,
				funnelRepo: mockFunnelRepo,
			}

			service.pruneOldRuns()
		})
	}
}

func TestAttributionSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunRepo := mocks.NewMockPipelineRunRepository(ctrl)

	service := &AttributionSyncService{
		config: AttributionSyncConfig{
			CronSchedule:    "0 3 * * *",
			SyncEnabled:     true,
			RetentionMonths: 6,
		},
		runRepo: mockRunRepo,
	}

	t.Run("Status inclui a última execução quando existe", func(t *testing.T) {
		lastRun := &domain.PipelineRun{
			ID:     "abc123",
			Status: domain.PipelineRunCompleted,
		}
		mockRunRepo.EXPECT().GetLatest().Return(lastRun, nil)

		status := service.GetStatus()

		assert.Equal(t, true, status["sync_enabled"])
		assert.Equal(t, "0 3 * * *", status["sync_cron"])
		assert.Equal(t, 6, status["retention_months"])
		assert.Equal(t, lastRun, status["last_run"])
	})

	t.Run("Status sem execução anterior omite last_run", func(t *testing.T) {
		mockRunRepo.EXPECT().GetLatest().Return(nil, nil)

		status := service.GetStatus()

		_, present := status["last_run"]
		assert.False(t, present)
	})
}

func TestAttributionSyncService_GetStatusDuranteExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTouchpointRepo := mocks.NewMockTouchpointRepository(ctrl)
	mockPurchaseRepo := mocks.NewMockPurchaseRepository(ctrl)
	mockSpendRepo := mocks.NewMockSpendRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockRunRepo := mocks.NewMockPipelineRunRepository(ctrl)
	mockFunnelRepo := mocks.NewMockFunnelMetricRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

	mockTouchpointRepo.EXPECT().ListAll().Return(nil, nil).AnyTimes()
	mockPurchaseRepo.EXPECT().ListAll().Return(nil, nil).AnyTimes()
	mockSpendRepo.EXPECT().ListAll().Return(nil, nil).AnyTimes()
	mockCampaignRepo.EXPECT().ListAll().Return(nil, nil).AnyTimes()
	mockRunRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()
	mockRunRepo.EXPECT().Update(gomock.Any()).Return(nil).AnyTimes()
	mockRunRepo.EXPECT().DeleteOlderThan(gomock.Any()).Return(int64(0), nil).AnyTimes()
	mockRunRepo.EXPECT().GetLatest().Return(nil, nil).AnyTimes()
	mockFunnelRepo.EXPECT().DeleteOlderThan(gomock.Any()).Return(int64(0), nil).AnyTimes()
	mockSnapshotRepo.EXPECT().ReplaceSnapshot(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := &AttributionSyncService{
		config: AttributionSyncConfig{
			CronSchedule:    "0 3 * * *",
			SyncEnabled:     true,
			RetentionMonths: 6,
		},
		touchpointRepo: mockTouchpointRepo,
		purchaseRepo:   mockPurchaseRepo,
		spendRepo:      mockSpendRepo,
		campaignRepo:   mockCampaignRepo,
		runRepo:        mockRunRepo,
		funnelRepo:     mockFunnelRepo,
		snapshotRepo:   mockSnapshotRepo,
		pathBuilder:    pathbuilding.NewService(),
		attributor:     attributing.NewService(),
		aggregator:     aggregating.NewService(1),
	}

	// Leituras de status concorrentes com uma execução do pipeline
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.runPipeline(context.Background())
	}()

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = service.GetStatus()
		}()
	}

	wg.Wait()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

type capturedSnapshot struct {
	snapshot *domain.DerivedSnapshot
}

func tsPtr(year int, month time.Month, day, hour, minute int) *time.Time {
	d := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(i int64) *int64 {
	return &i
}
