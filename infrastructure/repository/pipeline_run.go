package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/attribution-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

const pipelineRunsTable = "pipeline_runs pr"

type PipelineRunRepository interface {
	Create(run *domain.PipelineRun) error
	Update(run *domain.PipelineRun) error
	GetLatest() (*domain.PipelineRun, error)
	DeleteOlderThan(months int) (int64, error)
}

type pipelineRunRepository struct {
	conn *postgres.Connection
}

func NewPipelineRunRepository(conn *postgres.Connection) PipelineRunRepository {
	return &pipelineRunRepository{
		conn: conn,
	}
}

func (r *pipelineRunRepository) Create(run *domain.PipelineRun) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("pipeline_runs").
		Columns("id", "started_at", "status").
		Values(run.ID, run.StartedAt, string(run.Status)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *pipelineRunRepository) Update(run *domain.PipelineRun) error {
	query, args, err := squirrel.StatementBuilder.
		Update("pipeline_runs").
		Set("completed_at", run.CompletedAt).
		Set("touchpoints_read", run.TouchpointsRead).
		Set("purchases_read", run.PurchasesRead).
		Set("spend_rows_read", run.SpendRowsRead).
		Set("path_entries", run.PathEntries).
		Set("last_touch_rows", run.LastTouchRows).
		Set("linear_rows", run.LinearRows).
		Set("monthly_metric_rows", run.MonthlyMetricRows).
		Set("skipped_touchpoints", run.SkippedTouchpoints).
		Set("skipped_purchases", run.SkippedPurchases).
		Set("skipped_spend_rows", run.SkippedSpendRows).
		Set("tie_break_warnings", run.TieBreakWarnings).
		Set("orphan_campaigns", run.OrphanCampaigns).
		Set("status", string(run.Status)).
		Set("error", run.Error).
		Where(squirrel.Eq{"id": run.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetLatest retorna a execução mais recente do pipeline, ou nil se o pipeline
// nunca rodou.
func (r *pipelineRunRepository) GetLatest() (*domain.PipelineRun, error) {
	query, args, err := squirrel.
		Select("pr.id, pr.started_at, pr.completed_at, pr.touchpoints_read, pr.purchases_read, pr.spend_rows_read, pr.path_entries, pr.last_touch_rows, pr.linear_rows, pr.monthly_metric_rows, pr.skipped_touchpoints, pr.skipped_purchases, pr.skipped_spend_rows, pr.tie_break_warnings, pr.orphan_campaigns, pr.status, pr.error").
		From(pipelineRunsTable).
		OrderBy("pr.started_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	run := &domain.PipelineRun{}
	var status string

	err = row.Scan(
		&run.ID,
		&run.StartedAt,
		&run.CompletedAt,
		&run.TouchpointsRead,
		&run.PurchasesRead,
		&run.SpendRowsRead,
		&run.PathEntries,
		&run.LastTouchRows,
		&run.LinearRows,
		&run.MonthlyMetricRows,
		&run.SkippedTouchpoints,
		&run.SkippedPurchases,
		&run.SkippedSpendRows,
		&run.TieBreakWarnings,
		&run.OrphanCampaigns,
		&status,
		&run.Error,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear execução do pipeline: %w", err)
	}

	run.Status = domain.PipelineRunStatus(status)
	return run, nil
}

// DeleteOlderThan remove execuções mais antigas que o número de meses pedido.
func (r *pipelineRunRepository) DeleteOlderThan(months int) (int64, error) {
	cutoff := time.Now().AddDate(0, -months, 0)

	query, args, err := squirrel.
		Delete("pipeline_runs").
		Where(squirrel.Lt{"started_at": cutoff}).
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
