package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/reporting"
	"github.com/vfg2006/attribution-engine-api/pkg/apiErrors"
	"github.com/vfg2006/attribution-engine-api/pkg/log"
)

// GetAttributionSummary retorna o crédito de receita por canal sob um modelo
// de atribuição em um mês específico
func GetAttributionSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// Obter parâmetros de consulta
		model := r.URL.Query().Get("model")
		month := r.URL.Query().Get("month")
		year := r.URL.Query().Get("year")

		if model == "" {
			model = string(domain.AttributionModelLastTouch)
		}

		if month == "" || year == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar mês e ano nos parâmetros", nil)
			return
		}

		// Validar mês (entre 01 e 12)
		if len(month) != 2 || month < "01" || month > "12" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use formato de dois dígitos (01-12)", nil)
			return
		}

		// Validar ano (4 dígitos)
		if len(year) != 4 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
			return
		}

		monthInt, _ := strconv.Atoi(month)
		yearInt, _ := strconv.Atoi(year)

		logger.WithFields(log.Fields{
			"model": model,
			"month": month,
			"year":  year,
		}).Info("attribution-summary: buscando resumo de atribuição")

		summary, err := service.GetAttributionSummary(domain.AttributionModel(model), yearInt, monthInt)
		if err != nil {
			if errors.Is(err, reporting.ErrUnknownModel) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Modelo inválido. Valores aceitos: last_touch, linear", nil)
				return
			}

			logger.WithError(err).Error("attribution-summary: erro ao buscar resumo de atribuição")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar resumo de atribuição", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("attribution-summary: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
