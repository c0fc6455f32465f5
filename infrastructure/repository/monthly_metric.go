package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/attribution-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

const monthlyMetricsTable = "monthly_metrics mm"

type MonthlyMetricRepository interface {
	GetByDimension(dimension domain.Dimension, key string) ([]*domain.MonthlyMetric, error)
	GetAllPeriods() ([]string, error)
}

type monthlyMetricRepository struct {
	conn *postgres.Connection
}

func NewMonthlyMetricRepository(conn *postgres.Connection) MonthlyMetricRepository {
	return &monthlyMetricRepository{
		conn: conn,
	}
}

// GetByDimension retorna os agregados mensais de uma dimensão, ordenados por
// partição e período. Com key vazia retorna todas as partições da dimensão.
func (r *monthlyMetricRepository) GetByDimension(dimension domain.Dimension, key string) ([]*domain.MonthlyMetric, error) {
	builder := squirrel.
		Select("mm.year, mm.month, mm.dimension, mm.dimension_key, mm.revenue, mm.spend, mm.profit, mm.purchase_count, mm.roi, mm.roas, mm.cac").
		From(monthlyMetricsTable).
		Where(squirrel.Eq{"mm.dimension": string(dimension)}).
		OrderBy("mm.dimension_key ASC, mm.year ASC, mm.month ASC").
		PlaceholderFormat(squirrel.Dollar)

	if key != "" {
		builder = builder.Where(squirrel.Eq{"mm.dimension_key": key})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.MonthlyMetric, 0)
	for rows.Next() {
		metric := &domain.MonthlyMetric{}
		var dimensionValue string

		err := rows.Scan(
			&metric.Year,
			&metric.Month,
			&dimensionValue,
			&metric.DimensionKey,
			&metric.Revenue,
			&metric.Spend,
			&metric.Profit,
			&metric.PurchaseCount,
			&metric.ROI,
			&metric.ROAS,
			&metric.CAC,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica mensal: %w", err)
		}

		metric.Dimension = domain.Dimension(dimensionValue)
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

// GetAllPeriods retorna todos os períodos presentes nos agregados no formato mm-yyyy.
func (r *monthlyMetricRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT TO_CHAR(TO_DATE(mm.year || '-' || mm.month, 'YYYY-MM'), 'MM-YYYY') AS period").
		From(monthlyMetricsTable).
		OrderBy("period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}
