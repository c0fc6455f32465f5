package trending

import (
	"sort"

	"github.com/vfg2006/attribution-engine-api/internal/domain"
	"github.com/vfg2006/attribution-engine-api/pkg/utils"
)

// Analyzer calcula os campos de tendência (média da partição, desvio, valor
// anterior, delta e variação percentual) sobre uma série de agregados mensais.
// A análise roda na leitura: é uma visão derivada sem estado próprio.
type Analyzer interface {
	Analyze(rows []*domain.MonthlyMetric, metric domain.MetricType) []*domain.MonthlyMetricTrend
}

type Service struct{}

func NewService() Analyzer {
	return &Service{}
}

// Analyze particiona as linhas pela chave de dimensão e, dentro de cada
// partição ordenada por (ano, mês), calcula a média de janela da métrica, o
// desvio com rótulo categórico e os campos de lag (anterior, delta, variação
// percentual). A variação percentual é nula quando não há mês anterior ou
// quando o valor anterior é zero: nunca infinito, nunca erro.
func (s *Service) Analyze(rows []*domain.MonthlyMetric, metric domain.MetricType) []*domain.MonthlyMetricTrend {
	partitions := make(map[string][]*domain.MonthlyMetric)
	keys := make([]string, 0)

	for _, row := range rows {
		if _, seen := partitions[row.DimensionKey]; !seen {
			keys = append(keys, row.DimensionKey)
		}
		partitions[row.DimensionKey] = append(partitions[row.DimensionKey], row)
	}

	sort.Strings(keys)

	result := make([]*domain.MonthlyMetricTrend, 0, len(rows))
	for _, key := range keys {
		result = append(result, s.analyzePartition(partitions[key], metric)...)
	}

	return result
}

// analyzePartition calcula a tendência de uma única partição.
func (s *Service) analyzePartition(rows []*domain.MonthlyMetric, metric domain.MetricType) []*domain.MonthlyMetricTrend {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Month < rows[j].Month
	})

	// Média de janela sobre os meses com valor definido (janela, não cumulativa)
	average := partitionAverage(rows, metric)

	trends := make([]*domain.MonthlyMetricTrend, 0, len(rows))
	var previous *float64

	for _, row := range rows {
		value := row.MetricValue(metric)

		trend := &domain.MonthlyMetricTrend{
			MonthlyMetric:        *row,
			Metric:               metric,
			MetricValue:          value,
			AverageOverPartition: average,
			PreviousPeriodValue:  previous,
		}

		if value != nil && average != nil {
			deviation := *value - *average
			trend.DeviationFromAverage = &deviation

			switch {
			case deviation > 0:
				trend.DeviationLabel = domain.DeviationAboveAverage
			case deviation < 0:
				trend.DeviationLabel = domain.DeviationBelowAverage
			default:
				trend.DeviationLabel = domain.DeviationEqualAverage
			}
		}

		if value != nil && previous != nil {
			delta := *value - *previous
			trend.DeltaFromPrevious = &delta
			trend.TrendLabel = trendLabel(delta, metric)

			// Valor anterior zero deixa a variação percentual indefinida
			if *previous != 0 {
				percent := utils.RoundWithTwoDecimalPlace(delta / *previous * 100)
				trend.PercentChange = &percent
			}
		}

		trends = append(trends, trend)
		previous = value
	}

	return trends
}

// partitionAverage calcula a média da métrica sobre os meses em que ela está
// definida. Retorna nil quando a partição inteira é indefinida.
func partitionAverage(rows []*domain.MonthlyMetric, metric domain.MetricType) *float64 {
	sum := 0.0
	count := 0

	for _, row := range rows {
		if value := row.MetricValue(metric); value != nil {
			sum += *value
			count++
		}
	}

	if count == 0 {
		return nil
	}

	average := sum / float64(count)
	return &average
}

// trendLabel traduz o delta em rótulo respeitando a polaridade da métrica:
// para ROI/ROAS delta positivo é melhora; para CAC é piora.
func trendLabel(delta float64, metric domain.MetricType) string {
	if delta == 0 {
		return domain.TrendStable
	}

	improved := delta > 0
	if !metric.HigherIsBetter() {
		improved = !improved
	}

	if improved {
		return domain.TrendImproved
	}
	return domain.TrendWorsened
}
