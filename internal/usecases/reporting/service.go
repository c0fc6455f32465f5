package reporting

import (
	"fmt"
	"sort"

	"github.com/vfg2006/attribution-engine-api/infrastructure/repository"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/trending"
)

// Erros de validação dos parâmetros de relatório.
var (
	ErrUnknownMetric    = fmt.Errorf("métrica desconhecida")
	ErrUnknownDimension = fmt.Errorf("dimensão desconhecida")
	ErrUnknownModel     = fmt.Errorf("modelo de atribuição desconhecido")
	ErrPurchaseNotFound = fmt.Errorf("compra não encontrada")
)

// Reporter é a camada de leitura sobre as tabelas derivadas: métricas mensais
// com tendência, funil, resumo de atribuição e caminho de compra.
type Reporter interface {
	GetMonthlyMetrics(metric domain.MetricType, dimension domain.Dimension, key string) ([]*domain.MonthlyMetricTrend, error)
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
	GetFunnelReport() (*domain.FunnelMetrics, error)
	GetAttributionSummary(model domain.AttributionModel, year, month int) (*domain.AttributionSummary, error)
	GetPurchasePath(purchaseID int64) (*domain.PurchasePathResponse, error)
}

type Service struct {
	metricRepo      repository.MonthlyMetricRepository
	funnelRepo      repository.FunnelMetricRepository
	attributionRepo repository.AttributionRepository
	touchpathRepo   repository.TouchpathRepository
	purchaseRepo    repository.PurchaseRepository
	campaignRepo    repository.CampaignRepository
	analyzer        trending.Analyzer
}

func NewService(
	metricRepo repository.MonthlyMetricRepository,
	funnelRepo repository.FunnelMetricRepository,
	attributionRepo repository.AttributionRepository,
	touchpathRepo repository.TouchpathRepository,
	purchaseRepo repository.PurchaseRepository,
	campaignRepo repository.CampaignRepository,
	analyzer trending.Analyzer,
) Reporter {
	return &Service{
		metricRepo:      metricRepo,
		funnelRepo:      funnelRepo,
		attributionRepo: attributionRepo,
		touchpathRepo:   touchpathRepo,
		purchaseRepo:    purchaseRepo,
		campaignRepo:    campaignRepo,
		analyzer:        analyzer,
	}
}

// GetMonthlyMetrics retorna a série mensal da dimensão pedida com os campos de
// tendência calculados na leitura. A chave é opcional: vazia retorna todas as
// partições da dimensão.
func (s *Service) GetMonthlyMetrics(metric domain.MetricType, dimension domain.Dimension, key string) ([]*domain.MonthlyMetricTrend, error) {
	if !domain.IsValidMetricType(metric) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
	}

	if !domain.IsValidDimension(dimension) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, dimension)
	}

	rows, err := s.metricRepo.GetByDimension(dimension, key)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas mensais: %w", err)
	}

	return s.analyzer.Analyze(rows, metric), nil
}

// GetAvailablePeriods retorna os períodos (meses e anos) disponíveis nos agregados mensais
func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	allPeriods, err := s.metricRepo.GetAllPeriods()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar períodos disponíveis: %w", err)
	}

	// Combinar e remover duplicados
	periodMap := make(map[string]bool)
	yearMap := make(map[string]bool)
	monthMap := make(map[string]bool)

	for _, period := range allPeriods {
		periodMap[period] = true

		// Extrair ano e mês do período (formato mm-yyyy)
		if len(period) == 7 {
			month := period[:2]
			year := period[3:]

			monthMap[month] = true
			yearMap[year] = true
		}
	}

	// Converter mapas para slices
	periods := make([]string, 0, len(periodMap))
	for period := range periodMap {
		periods = append(periods, period)
	}

	years := make([]string, 0, len(yearMap))
	for year := range yearMap {
		years = append(years, year)
	}

	months := make([]string, 0, len(monthMap))
	for month := range monthMap {
		months = append(months, month)
	}

	// Ordenar os slices
	sort.Strings(periods)
	sort.Strings(years)
	sort.Strings(months)

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}

// GetFunnelReport retorna o snapshot de funil da execução mais recente do
// pipeline, ou nil quando o pipeline ainda não rodou.
func (s *Service) GetFunnelReport() (*domain.FunnelMetrics, error) {
	funnel, err := s.funnelRepo.GetLatest()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas de funil: %w", err)
	}

	return funnel, nil
}

func (s *Service) GetAttributionSummary(model domain.AttributionModel, year, month int) (*domain.AttributionSummary, error) {
	if model != domain.AttributionModelLastTouch && model != domain.AttributionModelLinear {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}

	credits, err := s.attributionRepo.GetChannelCredits(model, year, month)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar créditos de atribuição: %w", err)
	}

	return &domain.AttributionSummary{
		Model:    model,
		Period:   fmt.Sprintf("%02d-%04d", month, year),
		Channels: credits,
	}, nil
}

// GetPurchasePath retorna o caminho completo de uma compra, enriquecido com os
// dados da campanha. Campanhas órfãs aparecem com os campos de campanha nulos.
func (s *Service) GetPurchasePath(purchaseID int64) (*domain.PurchasePathResponse, error) {
	purchase, err := s.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar compra: %w", err)
	}
	if purchase == nil {
		return nil, fmt.Errorf("%w: %d", ErrPurchaseNotFound, purchaseID)
	}

	entries, err := s.touchpathRepo.ListByPurchaseID(purchaseID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar caminho da compra: %w", err)
	}

	campaignIDs := make([]int64, 0, len(entries))
	seen := make(map[int64]bool)
	for _, entry := range entries {
		if entry.CampaignID == nil || seen[*entry.CampaignID] {
			continue
		}
		seen[*entry.CampaignID] = true
		campaignIDs = append(campaignIDs, *entry.CampaignID)
	}

	campaigns := make(map[int64]*domain.Campaign)
	if len(campaignIDs) > 0 {
		campaigns, err = s.campaignRepo.GetByIDs(campaignIDs)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar campanhas do caminho: %w", err)
		}
	}

	views := make([]*domain.TouchpointPathEntryView, 0, len(entries))
	for _, entry := range entries {
		view := &domain.TouchpointPathEntryView{TouchpointPathEntry: *entry}

		if entry.CampaignID != nil {
			if campaign, ok := campaigns[*entry.CampaignID]; ok {
				view.CampaignName = &campaign.Name
				view.CampaignObjective = &campaign.Objective
			}
		}

		views = append(views, view)
	}

	return &domain.PurchasePathResponse{
		PurchaseID: purchase.ID,
		UserID:     purchase.UserID,
		Revenue:    purchase.Revenue,
		PathLength: len(views),
		Entries:    views,
	}, nil
}
