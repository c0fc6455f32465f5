package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/attribution-engine-api/infrastructure/repository/mocks"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/trending"
	"go.uber.org/mock/gomock"
)

func TestService_GetMonthlyMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockMonthlyMetricRepository(ctrl)

	service := &Service{
		metricRepo: mockMetricRepo,
		analyzer:   trending.NewService(),
	}

	t.Run("Série mensal sai com os campos de tendência calculados", func(t *testing.T) {
		roi1 := 0.1
		roi2 := 0.3

		mockMetricRepo.EXPECT().
			GetByDimension(domain.DimensionOverall, "").
			Return([]*domain.MonthlyMetric{
				{Year: 2025, Month: 6, Dimension: domain.DimensionOverall, ROI: &roi1},
				{Year: 2025, Month: 7, Dimension: domain.DimensionOverall, ROI: &roi2},
			}, nil)

		trends, err := service.GetMonthlyMetrics(domain.MetricROI, domain.DimensionOverall, "")

		assert.NoError(t, err)
		assert.Len(t, trends, 2)
		assert.NotNil(t, trends[1].DeltaFromPrevious)
		assert.InDelta(t, 0.2, *trends[1].DeltaFromPrevious, 1e-9)
		assert.Equal(t, domain.TrendImproved, trends[1].TrendLabel)
	})

	t.Run("Métrica desconhecida é rejeitada antes de tocar o banco", func(t *testing.T) {
		_, err := service.GetMonthlyMetrics("ctr", domain.DimensionOverall, "")

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownMetric)
	})

	t.Run("Dimensão desconhecida é rejeitada antes de tocar o banco", func(t *testing.T) {
		_, err := service.GetMonthlyMetrics(domain.MetricROI, "weekday", "")

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownDimension)
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		mockMetricRepo.EXPECT().
			GetByDimension(domain.DimensionChannel, "facebook_ads").
			Return(nil, errors.New("conexão recusada"))

		_, err := service.GetMonthlyMetrics(domain.MetricROAS, domain.DimensionChannel, "facebook_ads")

		assert.Error(t, err)
	})
}

func TestService_GetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockMonthlyMetricRepository(ctrl)

	service := &Service{
		metricRepo: mockMetricRepo,
	}

	t.Run("Períodos, anos e meses saem deduplicados e ordenados", func(t *testing.T) {
		mockMetricRepo.EXPECT().
			GetAllPeriods().
			Return([]string{"07-2025", "06-2025", "07-2025", "12-2024"}, nil)

		periods, err := service.GetAvailablePeriods()

		assert.NoError(t, err)
		assert.Equal(t, []string{"06-2025", "07-2025", "12-2024"}, periods.Periods)
		assert.Equal(t, []string{"2024", "2025"}, periods.Years)
		assert.Equal(t, []string{"06", "07", "12"}, periods.Months)
	})

	t.Run("Sem agregados retorna listas vazias", func(t *testing.T) {
		mockMetricRepo.EXPECT().GetAllPeriods().Return([]string{}, nil)

		periods, err := service.GetAvailablePeriods()

		assert.NoError(t, err)
		assert.Empty(t, periods.Periods)
		assert.Empty(t, periods.Years)
		assert.Empty(t, periods.Months)
	})
}

func TestService_GetAttributionSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAttributionRepo := mocks.NewMockAttributionRepository(ctrl)

	service := &Service{
		attributionRepo: mockAttributionRepo,
	}

	t.Run("Resumo formata o período e repassa os créditos por canal", func(t *testing.T) {
		credits := []*domain.ChannelCredit{
			{Channel: "google_search", Revenue: 300.0, Purchases: 2},
			{Channel: "facebook_ads", Revenue: 120.0, Purchases: 1},
		}

		mockAttributionRepo.EXPECT().
			GetChannelCredits(domain.AttributionModelLastTouch, 2025, 6).
			Return(credits, nil)

		summary, err := service.GetAttributionSummary(domain.AttributionModelLastTouch, 2025, 6)

		assert.NoError(t, err)
		assert.Equal(t, domain.AttributionModelLastTouch, summary.Model)
		assert.Equal(t, "06-2025", summary.Period)
		assert.Equal(t, credits, summary.Channels)
	})

	t.Run("Modelo desconhecido é rejeitado", func(t *testing.T) {
		_, err := service.GetAttributionSummary("first_touch", 2025, 6)

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownModel)
	})
}

func TestService_GetPurchasePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTouchpathRepo := mocks.NewMockTouchpathRepository(ctrl)
	mockPurchaseRepo := mocks.NewMockPurchaseRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		touchpathRepo: mockTouchpathRepo,
		purchaseRepo:  mockPurchaseRepo,
		campaignRepo:  mockCampaignRepo,
	}

	campaign101 := int64Ptr(101)
	campaign999 := int64Ptr(999)

	t.Run("Caminho enriquecido com os dados da campanha", func(t *testing.T) {
		purchasedAt := time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC)

		mockPurchaseRepo.EXPECT().
			GetByID(int64(5001)).
			Return(&domain.Purchase{ID: 5001, UserID: 1, PurchasedAt: &purchasedAt, Revenue: 100.0}, nil)

		mockTouchpathRepo.EXPECT().
			ListByPurchaseID(int64(5001)).
			Return([]*domain.TouchpointPathEntry{
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 1, Channel: "facebook_ads", CampaignID: campaign101},
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 2, Channel: "google_search"},
			}, nil)

		mockCampaignRepo.EXPECT().
			GetByIDs([]int64{101}).
			Return(map[int64]*domain.Campaign{
				101: {ID: 101, Name: "Lançamento Junho", Objective: "conversions"},
			}, nil)

		path, err := service.GetPurchasePath(5001)

		assert.NoError(t, err)
		assert.Equal(t, int64(5001), path.PurchaseID)
		assert.Equal(t, 100.0, path.Revenue)
		assert.Equal(t, 2, path.PathLength)

		assert.NotNil(t, path.Entries[0].CampaignName)
		assert.Equal(t, "Lançamento Junho", *path.Entries[0].CampaignName)
		assert.Nil(t, path.Entries[1].CampaignName)
	})

	t.Run("Campanha órfã deixa os campos de campanha nulos", func(t *testing.T) {
		purchasedAt := time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC)

		mockPurchaseRepo.EXPECT().
			GetByID(int64(5002)).
			Return(&domain.Purchase{ID: 5002, UserID: 2, PurchasedAt: &purchasedAt, Revenue: 40.0}, nil)

		mockTouchpathRepo.EXPECT().
			ListByPurchaseID(int64(5002)).
			Return([]*domain.TouchpointPathEntry{
				{UserID: 2, PurchaseID: 5002, SequenceNumber: 1, Channel: "facebook_ads", CampaignID: campaign999},
			}, nil)

		mockCampaignRepo.EXPECT().
			GetByIDs([]int64{999}).
			Return(map[int64]*domain.Campaign{}, nil)

		path, err := service.GetPurchasePath(5002)

		assert.NoError(t, err)
		assert.Equal(t, 1, path.PathLength)
		assert.Nil(t, path.Entries[0].CampaignName)
		assert.Nil(t, path.Entries[0].CampaignObjective)
	})

	t.Run("Compra inexistente retorna erro de não encontrado", func(t *testing.T) {
		mockPurchaseRepo.EXPECT().GetByID(int64(9999)).Return(nil, nil)

		_, err := service.GetPurchasePath(9999)

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrPurchaseNotFound)
	})

	t.Run("Caminho vazio retorna resposta com zero entradas", func(t *testing.T) {
		purchasedAt := time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC)

		mockPurchaseRepo.EXPECT().
			GetByID(int64(5003)).
			Return(&domain.Purchase{ID: 5003, UserID: 3, PurchasedAt: &purchasedAt, Revenue: 10.0}, nil)

		mockTouchpathRepo.EXPECT().
			ListByPurchaseID(int64(5003)).
			Return([]*domain.TouchpointPathEntry{}, nil)

		path, err := service.GetPurchasePath(5003)

		assert.NoError(t, err)
		assert.Equal(t, 0, path.PathLength)
		assert.Empty(t, path.Entries)
	})
}

func int64Ptr(i int64) *int64 {
	return &i
}
