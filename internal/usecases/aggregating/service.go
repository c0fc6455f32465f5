package aggregating

import (
	"sort"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
	"github.com/vfg2006/attribution-engine-api/pkg/utils"
)

// AggregateStats expõe os contadores de qualidade de dados da agregação.
type AggregateStats struct {
	SkippedSpendRows int
}

// Inputs reúne os fatos e as visões de atribuição consumidos pelo agregador.
type Inputs struct {
	Purchases []*domain.Purchase
	Spend     []*domain.Spend
	LastTouch []*domain.LastTouchAttribution
	Linear    []*domain.LinearAttribution
}

// Aggregator calcula os agregados mensais por dimensão e as métricas de funil.
type Aggregator interface {
	MonthlyMetrics(in *Inputs) ([]*domain.MonthlyMetric, *AggregateStats)
	Funnel(touchpoints []*domain.Touchpoint, purchases []*domain.Purchase) *domain.FunnelMetrics
}

type Service struct {
	maxWorkers int
}

// NewService cria o agregador. maxWorkers limita quantas dimensões são
// processadas em paralelo; as partições não interagem entre si.
func NewService(maxWorkers int) Aggregator {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Service{maxWorkers: maxWorkers}
}

// bucket identifica uma célula (ano, mês, chave de dimensão) do agregado.
type bucket struct {
	year  int
	month int
	key   string
}

// revenueAgg acumula o lado de receita de uma célula.
type revenueAgg struct {
	revenue   float64
	purchases map[int64]struct{}
}

// MonthlyMetrics produz os agregados mensais de todas as dimensões. O lado de
// receita e o lado de spend são somados separadamente e juntados por união de
// chaves (outer join): meses com spend e sem receita, ou vice-versa, aparecem
// com o lado ausente coalescido para 0. As razões ROI/ROAS/CAC propagam nulo
// quando o denominador é zero.
func (s *Service) MonthlyMetrics(in *Inputs) ([]*domain.MonthlyMetric, *AggregateStats) {
	stats := &AggregateStats{}

	// Filtrar spend inválido uma única vez, antes do fan-out por dimensão
	validSpend := make([]*domain.Spend, 0, len(in.Spend))
	for _, sp := range in.Spend {
		if !sp.IsValid() {
			stats.SkippedSpendRows++
			continue
		}
		validSpend = append(validSpend, sp)
	}

	if stats.SkippedSpendRows > 0 {
		logrus.WithField("skipped_spend_rows", stats.SkippedSpendRows).
			Warn("Registros de spend com campos obrigatórios ausentes foram pulados na agregação")
	}

	purchaseIndex := make(map[int64]*domain.Purchase, len(in.Purchases))
	for _, p := range in.Purchases {
		if p.IsValid() {
			purchaseIndex[p.ID] = p
		}
	}

	// Cada dimensão é uma partição independente: fan-out com semáforo
	semaphore := make(chan struct{}, s.maxWorkers)
	var wg sync.WaitGroup
	var mutex sync.Mutex

	metrics := make([]*domain.MonthlyMetric, 0)

	for _, dimension := range domain.AllDimensions() {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(dimension domain.Dimension) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			rows := s.aggregateDimension(dimension, in, validSpend, purchaseIndex)

			mutex.Lock()
			metrics = append(metrics, rows...)
			mutex.Unlock()
		}(dimension)
	}

	wg.Wait()

	sortMetrics(metrics)

	return metrics, stats
}

// aggregateDimension calcula as linhas mensais de uma única dimensão.
func (s *Service) aggregateDimension(
	dimension domain.Dimension,
	in *Inputs,
	spend []*domain.Spend,
	purchaseIndex map[int64]*domain.Purchase,
) []*domain.MonthlyMetric {
	revenueSide := s.revenueSide(dimension, in, purchaseIndex)
	spendSide := s.spendSide(dimension, spend)

	// União das chaves dos dois lados (outer join em ano, mês e chave)
	cells := make(map[bucket]struct{})
	for b := range revenueSide {
		cells[b] = struct{}{}
	}
	for b := range spendSide {
		cells[b] = struct{}{}
	}

	rows := make([]*domain.MonthlyMetric, 0, len(cells))

	for cell := range cells {
		revenue := 0.0
		purchaseCount := 0
		if agg, ok := revenueSide[cell]; ok {
			revenue = agg.revenue
			purchaseCount = len(agg.purchases)
		}

		totalSpend := spendSide[cell]

		row := &domain.MonthlyMetric{
			Year:          cell.year,
			Month:         cell.month,
			Dimension:     dimension,
			DimensionKey:  cell.key,
			Revenue:       utils.RoundWithTwoDecimalPlace(revenue),
			Spend:         utils.RoundWithTwoDecimalPlace(totalSpend),
			Profit:        utils.RoundWithTwoDecimalPlace(revenue - totalSpend),
			PurchaseCount: purchaseCount,
		}

		// Denominador zero significa razão indefinida, não razão zero
		if totalSpend > 0 {
			roi := (revenue - totalSpend) / totalSpend
			roas := revenue / totalSpend
			row.ROI = &roi
			row.ROAS = &roas
		}

		if purchaseCount > 0 {
			cac := totalSpend / float64(purchaseCount)
			row.CAC = &cac
		}

		rows = append(rows, row)
	}

	return rows
}

// revenueSide soma a receita da dimensão a partir da visão apropriada:
// atribuição Linear para as dimensões multi-touch (channel/campaign),
// Last-Touch para as dimensões last_touch_* e a compra bruta para overall e
// acquisition_*. O mês da célula é sempre o mês da compra.
func (s *Service) revenueSide(
	dimension domain.Dimension,
	in *Inputs,
	purchaseIndex map[int64]*domain.Purchase,
) map[bucket]*revenueAgg {
	side := make(map[bucket]*revenueAgg)

	add := func(b bucket, amount float64, purchaseID int64) {
		agg, ok := side[b]
		if !ok {
			agg = &revenueAgg{purchases: make(map[int64]struct{})}
			side[b] = agg
		}
		agg.revenue += amount
		agg.purchases[purchaseID] = struct{}{}
	}

	switch dimension {
	case domain.DimensionOverall, domain.DimensionAcquisitionChannel, domain.DimensionAcquisitionCampaign:
		for _, p := range purchaseIndex {
			key, ok := purchaseKey(dimension, p)
			if !ok {
				continue
			}
			add(bucket{p.PurchasedAt.Year(), int(p.PurchasedAt.Month()), key}, p.Revenue, p.ID)
		}

	case domain.DimensionChannel, domain.DimensionCampaign:
		for _, row := range in.Linear {
			p, ok := purchaseIndex[row.PurchaseID]
			if !ok {
				continue
			}

			key := row.Channel
			if dimension == domain.DimensionCampaign {
				if row.CampaignID == nil {
					continue
				}
				key = strconv.FormatInt(*row.CampaignID, 10)
			}

			add(bucket{p.PurchasedAt.Year(), int(p.PurchasedAt.Month()), key}, row.RevenueShare, row.PurchaseID)
		}

	case domain.DimensionLastTouchChannel, domain.DimensionLastTouchCampaign:
		for _, row := range in.LastTouch {
			p, ok := purchaseIndex[row.PurchaseID]
			if !ok {
				continue
			}

			key := row.Channel
			if dimension == domain.DimensionLastTouchCampaign {
				if row.CampaignID == nil {
					continue
				}
				key = strconv.FormatInt(*row.CampaignID, 10)
			}

			add(bucket{p.PurchasedAt.Year(), int(p.PurchasedAt.Month()), key}, row.Revenue, row.PurchaseID)
		}
	}

	return side
}

// purchaseKey extrai a chave de dimensão de uma compra bruta. Retorna false
// quando a compra não pertence à partição (campo de aquisição nulo).
func purchaseKey(dimension domain.Dimension, p *domain.Purchase) (string, bool) {
	switch dimension {
	case domain.DimensionOverall:
		return "", true
	case domain.DimensionAcquisitionChannel:
		if p.AcquisitionChannel == nil || *p.AcquisitionChannel == "" {
			return "", false
		}
		return *p.AcquisitionChannel, true
	case domain.DimensionAcquisitionCampaign:
		if p.AcquisitionCampaign == nil {
			return "", false
		}
		return strconv.FormatInt(*p.AcquisitionCampaign, 10), true
	}
	return "", false
}

// spendSide soma o spend mensal pela mesma chave de dimensão. Linhas sem o
// campo da chave (canal ou campanha nulos) não pertencem à partição; o total
// delas continua presente na dimensão overall.
func (s *Service) spendSide(dimension domain.Dimension, spend []*domain.Spend) map[bucket]float64 {
	side := make(map[bucket]float64)

	for _, sp := range spend {
		var key string

		switch dimension {
		case domain.DimensionOverall:
			key = ""
		case domain.DimensionChannel, domain.DimensionAcquisitionChannel, domain.DimensionLastTouchChannel:
			if sp.Channel == nil || *sp.Channel == "" {
				continue
			}
			key = *sp.Channel
		case domain.DimensionCampaign, domain.DimensionAcquisitionCampaign, domain.DimensionLastTouchCampaign:
			if sp.CampaignID == nil {
				continue
			}
			key = strconv.FormatInt(*sp.CampaignID, 10)
		}

		side[bucket{sp.Date.Year(), int(sp.Date.Month()), key}] += sp.Amount
	}

	return side
}

// Funnel calcula as taxas de abandono por estágio e a profundidade média de
// caminho dos usuários que nunca converteram, sobre o snapshot completo.
func (s *Service) Funnel(touchpoints []*domain.Touchpoint, purchases []*domain.Purchase) *domain.FunnelMetrics {
	impressedUsers := make(map[int64]struct{})
	clickingUsers := make(map[int64]struct{})
	touchpointsByUser := make(map[int64]int)

	for _, tp := range touchpoints {
		if !tp.IsValid() {
			continue
		}

		touchpointsByUser[tp.UserID]++

		switch tp.InteractionType {
		case domain.InteractionImpression:
			impressedUsers[tp.UserID] = struct{}{}
		case domain.InteractionClick:
			clickingUsers[tp.UserID] = struct{}{}
		}
	}

	purchasingUsers := make(map[int64]struct{})
	for _, p := range purchases {
		if p.IsValid() {
			purchasingUsers[p.UserID] = struct{}{}
		}
	}

	funnel := &domain.FunnelMetrics{
		ImpressedUsers:  len(impressedUsers),
		ClickingUsers:   len(clickingUsers),
		PurchasingUsers: len(purchasingUsers),
	}

	// Queda impressão -> clique: indefinida sem usuários impactados
	if len(impressedUsers) > 0 {
		dropoff := 1 - float64(len(clickingUsers))/float64(len(impressedUsers))
		funnel.ImpressionClickDropoff = &dropoff
	}

	if len(clickingUsers) > 0 {
		dropoff := 1 - float64(len(purchasingUsers))/float64(len(clickingUsers))
		funnel.ClickPurchaseDropoff = &dropoff
	}

	// Usuários presos no funil: têm touchpoints mas nenhuma compra
	nonConverters := 0
	totalPathLength := 0
	for userID, count := range touchpointsByUser {
		if _, converted := purchasingUsers[userID]; converted {
			continue
		}
		nonConverters++
		totalPathLength += count
	}

	funnel.NonConverters = nonConverters
	if nonConverters > 0 {
		avg := utils.RoundWithTwoDecimalPlace(float64(totalPathLength) / float64(nonConverters))
		funnel.AvgNonConverterPathLength = &avg
	}

	return funnel
}

// sortMetrics ordena os agregados de forma determinística: dimensão na ordem
// de processamento, depois chave, ano e mês. Rodar o pipeline duas vezes sobre
// a mesma entrada produz saída idêntica byte a byte.
func sortMetrics(metrics []*domain.MonthlyMetric) {
	order := make(map[domain.Dimension]int, len(domain.AllDimensions()))
	for i, d := range domain.AllDimensions() {
		order[d] = i
	}

	sort.Slice(metrics, func(i, j int) bool {
		a, b := metrics[i], metrics[j]
		if a.Dimension != b.Dimension {
			return order[a.Dimension] < order[b.Dimension]
		}
		if a.DimensionKey != b.DimensionKey {
			return a.DimensionKey < b.DimensionKey
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Month < b.Month
	})
}
