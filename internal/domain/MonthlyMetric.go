package domain

import "fmt"

// Dimension identifica a partição usada na agregação mensal.
type Dimension string

const (
	DimensionOverall             Dimension = "overall"
	DimensionChannel             Dimension = "channel"
	DimensionCampaign            Dimension = "campaign"
	DimensionAcquisitionChannel  Dimension = "acquisition_channel"
	DimensionAcquisitionCampaign Dimension = "acquisition_campaign"
	DimensionLastTouchChannel    Dimension = "last_touch_channel"
	DimensionLastTouchCampaign   Dimension = "last_touch_campaign"
)

// AllDimensions retorna todas as dimensões calculadas pelo agregador, na ordem
// em que são processadas.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionOverall,
		DimensionChannel,
		DimensionCampaign,
		DimensionAcquisitionChannel,
		DimensionAcquisitionCampaign,
		DimensionLastTouchChannel,
		DimensionLastTouchCampaign,
	}
}

// IsValidDimension verifica se o valor recebido corresponde a uma dimensão conhecida.
func IsValidDimension(d Dimension) bool {
	for _, known := range AllDimensions() {
		if d == known {
			return true
		}
	}
	return false
}

// MetricType identifica a métrica de razão exposta pela análise de tendência.
type MetricType string

const (
	MetricROI  MetricType = "roi"
	MetricROAS MetricType = "roas"
	MetricCAC  MetricType = "cac"
)

// HigherIsBetter indica a polaridade da métrica: para ROI/ROAS um delta
// positivo é melhora; para CAC é piora (CAC menor é melhor).
func (m MetricType) HigherIsBetter() bool {
	return m != MetricCAC
}

// IsValidMetricType verifica se o valor recebido corresponde a uma métrica conhecida.
func IsValidMetricType(m MetricType) bool {
	return m == MetricROI || m == MetricROAS || m == MetricCAC
}

// MonthlyMetric é o agregado mensal de receita, spend e contagem de compras
// para uma partição. As métricas de razão são ponteiros: nil representa valor
// indefinido (denominador zero), nunca zero nem infinito.
type MonthlyMetric struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	Dimension     Dimension `json:"dimension"`
	DimensionKey  string    `json:"dimension_key,omitempty"`
	Revenue       float64   `json:"revenue"`
	Spend         float64   `json:"spend"`
	Profit        float64   `json:"profit"`
	PurchaseCount int       `json:"purchase_count"`
	ROI           *float64  `json:"roi"`
	ROAS          *float64  `json:"roas"`
	CAC           *float64  `json:"cac"`
}

// Period formata o mês do agregado no formato mm-yyyy usado pela API.
func (m *MonthlyMetric) Period() string {
	return fmt.Sprintf("%02d-%04d", m.Month, m.Year)
}

// MetricValue retorna o valor da métrica de razão pedida (nil quando indefinida).
func (m *MonthlyMetric) MetricValue(metric MetricType) *float64 {
	switch metric {
	case MetricROI:
		return m.ROI
	case MetricROAS:
		return m.ROAS
	case MetricCAC:
		return m.CAC
	}
	return nil
}

// Rótulos categóricos produzidos pela análise de tendência.
const (
	DeviationAboveAverage = "above_average"
	DeviationBelowAverage = "below_average"
	DeviationEqualAverage = "equal_average"

	TrendImproved = "improved"
	TrendWorsened = "worsened"
	TrendStable   = "stable"
)

// MonthlyMetricTrend é o agregado mensal acrescido dos campos de tendência
// calculados por partição na leitura.
type MonthlyMetricTrend struct {
	MonthlyMetric
	Metric               MetricType `json:"metric"`
	MetricValue          *float64   `json:"metric_value"`
	AverageOverPartition *float64   `json:"avg_over_partition"`
	DeviationFromAverage *float64   `json:"deviation_from_avg"`
	DeviationLabel       string     `json:"deviation_label,omitempty"`
	PreviousPeriodValue  *float64   `json:"previous_period_value"`
	DeltaFromPrevious    *float64   `json:"delta_from_previous"`
	PercentChange        *float64   `json:"percent_change"`
	TrendLabel           string     `json:"trend_label,omitempty"`
}

// AvailablePeriods lista os períodos presentes nos agregados mensais.
type AvailablePeriods struct {
	Periods []string `json:"periods"`
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}
