package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/attribution-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

const touchpointPathsTable = "touchpoint_paths tpp"

type TouchpathRepository interface {
	ListByPurchaseID(purchaseID int64) ([]*domain.TouchpointPathEntry, error)
}

type touchpathRepository struct {
	conn *postgres.Connection
}

func NewTouchpathRepository(conn *postgres.Connection) TouchpathRepository {
	return &touchpathRepository{
		conn: conn,
	}
}

// ListByPurchaseID retorna o caminho completo de uma compra na ordem de
// sequência. Caminho vazio significa conversão imediata ou não rastreada.
func (r *touchpathRepository) ListByPurchaseID(purchaseID int64) ([]*domain.TouchpointPathEntry, error) {
	query, args, err := squirrel.
		Select("tpp.user_id, tpp.purchase_id, tpp.sequence_number, tpp.occurred_at, tpp.channel, tpp.campaign_id, tpp.interaction_type").
		From(touchpointPathsTable).
		Where(squirrel.Eq{"tpp.purchase_id": purchaseID}).
		OrderBy("tpp.sequence_number ASC").
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

	entries := make([]*domain.TouchpointPathEntry, 0)
	for rows.Next() {
		entry := &domain.TouchpointPathEntry{}
		var interactionType string

		err := rows.Scan(
			&entry.UserID,
			&entry.PurchaseID,
			&entry.SequenceNumber,
			&entry.OccurredAt,
			&entry.Channel,
			&entry.CampaignID,
			&interactionType,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada de caminho: %w", err)
		}

		entry.InteractionType = domain.InteractionType(interactionType)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
