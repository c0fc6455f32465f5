package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/reporting"
	"github.com/vfg2006/attribution-engine-api/pkg/apiErrors"
	"github.com/vfg2006/attribution-engine-api/pkg/log"
	"github.com/vfg2006/attribution-engine-api/pkg/utils"
)

// GetMonthlyMetrics retorna a série mensal de uma métrica com análise de tendência
func GetMonthlyMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// Obter parâmetros de consulta
		metric := r.URL.Query().Get("metric")
		dimension := r.URL.Query().Get("dimension")
		key := r.URL.Query().Get("key")

		if metric == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar a métrica (roi, roas ou cac)", nil)
			return
		}

		if dimension == "" {
			dimension = string(domain.DimensionOverall)
		}

		// Filtro opcional de período (yyyy-mm-dd)
		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida. Formato aceito: yyyy-mm-dd", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida. Formato aceito: yyyy-mm-dd", nil)
			return
		}

		logger.WithFields(log.Fields{
			"metric":    metric,
			"dimension": dimension,
			"key":       key,
		}).Info("monthly-metrics: buscando métricas mensais")

		rows, err := service.GetMonthlyMetrics(domain.MetricType(metric), domain.Dimension(dimension), key)
		if err != nil {
			switch {
			case errors.Is(err, reporting.ErrUnknownMetric):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Métrica inválida. Valores aceitos: roi, roas, cac", nil)

			case errors.Is(err, reporting.ErrUnknownDimension):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dimensão inválida", nil)

			default:
				logger.WithError(err).Error("monthly-metrics: erro ao buscar métricas mensais")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar métricas mensais", nil)
			}
			return
		}

		rows = filterTrendsByPeriod(rows, startDate, endDate)

		logger.WithFields(log.Fields{
			"rows_returned": len(rows),
		}).Info("monthly-metrics: relatório gerado com sucesso")

		// Retornar resposta
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logger.WithError(err).Error("monthly-metrics: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// filterTrendsByPeriod restringe a série aos meses dentro do intervalo pedido.
// Datas zeradas significam intervalo aberto daquele lado.
func filterTrendsByPeriod(rows []*domain.MonthlyMetricTrend, start, end *time.Time) []*domain.MonthlyMetricTrend {
	if (start == nil || start.IsZero()) && (end == nil || end.IsZero()) {
		return rows
	}

	filtered := make([]*domain.MonthlyMetricTrend, 0, len(rows))
	for _, row := range rows {
		rowMonth := time.Date(row.Year, time.Month(row.Month), 1, 0, 0, 0, 0, time.UTC)

		if start != nil && !start.IsZero() {
			firstMonth := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
			if rowMonth.Before(firstMonth) {
				continue
			}
		}

		if end != nil && !end.IsZero() {
			lastMonth := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
			if rowMonth.After(lastMonth) {
				continue
			}
		}

		filtered = append(filtered, row)
	}

	return filtered
}

// GetAvailablePeriods retorna os períodos (meses e anos) disponíveis na API
func GetAvailablePeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("metrics-periods: buscando períodos disponíveis")

		// Buscar períodos disponíveis
		availablePeriods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("metrics-periods: erro ao buscar períodos disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar períodos disponíveis", nil)
			return
		}

		// Retornar resposta
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(availablePeriods); err != nil {
			logger.WithError(err).Error("metrics-periods: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetFunnelReport retorna o snapshot de funil da execução mais recente do pipeline
func GetFunnelReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("funnel: buscando métricas de funil")

		funnel, err := service.GetFunnelReport()
		if err != nil {
			logger.WithError(err).Error("funnel: erro ao buscar métricas de funil")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar métricas de funil", nil)
			return
		}

		if funnel == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Nenhuma execução do pipeline encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(funnel); err != nil {
			logger.WithError(err).Error("funnel: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
