package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/attribution-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

// insertBatchSize limita o número de linhas por INSERT para não estourar o
// limite de parâmetros do driver do Postgres.
const insertBatchSize = 500

// SnapshotRepository grava o snapshot derivado completo de uma execução do
// pipeline. A substituição é atômica: apaga e regrava todas as tabelas
// derivadas em uma única transação.
type SnapshotRepository interface {
	ReplaceSnapshot(ctx context.Context, snapshot *domain.DerivedSnapshot) error
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) ReplaceSnapshot(ctx context.Context, snapshot *domain.DerivedSnapshot) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{
			"touchpoint_paths",
			"attribution_last_touch",
			"attribution_linear",
			"monthly_metrics",
		} {
			if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
				return fmt.Errorf("erro ao limpar a tabela %s: %w", table, err)
			}
		}

		if err := r.insertPaths(tx, snapshot.Paths); err != nil {
			return err
		}
		if err := r.insertLastTouch(tx, snapshot.LastTouch); err != nil {
			return err
		}
		if err := r.insertLinear(tx, snapshot.Linear); err != nil {
			return err
		}
		if err := r.insertMonthlyMetrics(tx, snapshot.MonthlyMetrics); err != nil {
			return err
		}
		if err := r.insertFunnel(tx, snapshot.Funnel, snapshot.RunID); err != nil {
			return err
		}

		return nil
	})
}

func (r *snapshotRepository) insertPaths(tx *sql.Tx, entries []*domain.TouchpointPathEntry) error {
	for start := 0; start < len(entries); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(entries) {
			end = len(entries)
		}

		builder := squirrel.StatementBuilder.
			Insert("touchpoint_paths").
			Columns("user_id", "purchase_id", "sequence_number", "occurred_at", "channel", "campaign_id", "interaction_type").
			PlaceholderFormat(squirrel.Dollar)

		for _, entry := range entries[start:end] {
			builder = builder.Values(
				entry.UserID,
				entry.PurchaseID,
				entry.SequenceNumber,
				entry.OccurredAt,
				entry.Channel,
				entry.CampaignID,
				string(entry.InteractionType),
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao inserir entradas de caminho: %w", err)
		}
	}

	return nil
}

func (r *snapshotRepository) insertLastTouch(tx *sql.Tx, rows []*domain.LastTouchAttribution) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		builder := squirrel.StatementBuilder.
			Insert("attribution_last_touch").
			Columns("purchase_id", "user_id", "channel", "campaign_id", "revenue", "occurred_at").
			PlaceholderFormat(squirrel.Dollar)

		for _, row := range rows[start:end] {
			builder = builder.Values(
				row.PurchaseID,
				row.UserID,
				row.Channel,
				row.CampaignID,
				row.Revenue,
				row.OccurredAt,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao inserir atribuições last touch: %w", err)
		}
	}

	return nil
}

func (r *snapshotRepository) insertLinear(tx *sql.Tx, rows []*domain.LinearAttribution) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		builder := squirrel.StatementBuilder.
			Insert("attribution_linear").
			Columns("purchase_id", "user_id", "sequence_number", "channel", "campaign_id", "revenue_share").
			PlaceholderFormat(squirrel.Dollar)

		for _, row := range rows[start:end] {
			builder = builder.Values(
				row.PurchaseID,
				row.UserID,
				row.SequenceNumber,
				row.Channel,
				row.CampaignID,
				row.RevenueShare,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao inserir atribuições lineares: %w", err)
		}
	}

	return nil
}

func (r *snapshotRepository) insertMonthlyMetrics(tx *sql.Tx, rows []*domain.MonthlyMetric) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		builder := squirrel.StatementBuilder.
			Insert("monthly_metrics").
			Columns("year", "month", "dimension", "dimension_key", "revenue", "spend", "profit", "purchase_count", "roi", "roas", "cac").
			PlaceholderFormat(squirrel.Dollar)

		for _, row := range rows[start:end] {
			builder = builder.Values(
				row.Year,
				row.Month,
				string(row.Dimension),
				row.DimensionKey,
				row.Revenue,
				row.Spend,
				row.Profit,
				row.PurchaseCount,
				row.ROI,
				row.ROAS,
				row.CAC,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao inserir métricas mensais: %w", err)
		}
	}

	return nil
}

// insertFunnel acrescenta o registro do funil da execução; o histórico de
// funis é mantido por execução e podado junto com pipeline_runs.
func (r *snapshotRepository) insertFunnel(tx *sql.Tx, funnel *domain.FunnelMetrics, runID string) error {
	if funnel == nil {
		return nil
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("funnel_metrics").
		Columns("run_id", "impressed_users", "clicking_users", "purchasing_users", "impression_click_dropoff", "click_purchase_dropoff", "non_converters", "avg_non_converter_path_len").
		Values(
			runID,
			funnel.ImpressedUsers,
			funnel.ClickingUsers,
			funnel.PurchasingUsers,
			funnel.ImpressionClickDropoff,
			funnel.ClickPurchaseDropoff,
			funnel.NonConverters,
			funnel.AvgNonConverterPathLength,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir métricas de funil: %w", err)
	}

	return nil
}
