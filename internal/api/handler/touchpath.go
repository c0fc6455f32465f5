package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/attribution-engine-api/internal/usecases/reporting"
	"github.com/vfg2006/attribution-engine-api/pkg/apiErrors"
	"github.com/vfg2006/attribution-engine-api/pkg/log"
)

// GetPurchasePath retorna o caminho completo de touchpoints de uma compra
func GetPurchasePath(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		purchaseIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if purchaseIDStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da compra não fornecido", nil)
			return
		}

		purchaseID, err := strconv.ParseInt(purchaseIDStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da compra inválido", nil)
			return
		}

		logger.WithField("purchase_id", purchaseID).Info("purchase-path: buscando caminho da compra")

		path, err := service.GetPurchasePath(purchaseID)
		if err != nil {
			if errors.Is(err, reporting.ErrPurchaseNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Compra não encontrada", nil)
				return
			}

			logger.WithError(err).Error("purchase-path: erro ao buscar caminho da compra")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar caminho da compra", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(path); err != nil {
			logger.WithError(err).Error("purchase-path: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
