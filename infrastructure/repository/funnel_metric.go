package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/attribution-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

const funnelMetricsTable = "funnel_metrics fm"

type FunnelMetricRepository interface {
	GetLatest() (*domain.FunnelMetrics, error)
	DeleteOlderThan(months int) (int64, error)
}

type funnelMetricRepository struct {
	conn *postgres.Connection
}

func NewFunnelMetricRepository(conn *postgres.Connection) FunnelMetricRepository {
	return &funnelMetricRepository{
		conn: conn,
	}
}

// GetLatest retorna o snapshot de funil mais recente. Retorna nil quando o
// pipeline ainda não rodou nenhuma vez.
func (r *funnelMetricRepository) GetLatest() (*domain.FunnelMetrics, error) {
	query, args, err := squirrel.
		Select("fm.run_id, fm.impressed_users, fm.clicking_users, fm.purchasing_users, fm.impression_click_dropoff, fm.click_purchase_dropoff, fm.non_converters, fm.avg_non_converter_path_len, fm.created_at").
		From(funnelMetricsTable).
		OrderBy("fm.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	funnel := &domain.FunnelMetrics{}
	err = row.Scan(
		&funnel.RunID,
		&funnel.ImpressedUsers,
		&funnel.ClickingUsers,
		&funnel.PurchasingUsers,
		&funnel.ImpressionClickDropoff,
		&funnel.ClickPurchaseDropoff,
		&funnel.NonConverters,
		&funnel.AvgNonConverterPathLength,
		&funnel.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métricas de funil: %w", err)
	}

	return funnel, nil
}

// DeleteOlderThan remove snapshots de funil mais antigos que o número de meses
// pedido, mantendo o histórico alinhado com a retenção das execuções.
func (r *funnelMetricRepository) DeleteOlderThan(months int) (int64, error) {
	cutoff := time.Now().AddDate(0, -months, 0)

	query, args, err := squirrel.
		Delete("funnel_metrics").
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
