package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/attribution-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

const touchpointsTable = "touchpoints tp"

type TouchpointRepository interface {
	ListAll() ([]*domain.Touchpoint, error)
}

type touchpointRepository struct {
	conn *postgres.Connection
}

func NewTouchpointRepository(conn *postgres.Connection) TouchpointRepository {
	return &touchpointRepository{
		conn: conn,
	}
}

// ListAll retorna o snapshot completo de touchpoints na ordem de ocorrência.
// Linhas com campos obrigatórios nulos são retornadas mesmo assim: a política
// de pular registros inválidos pertence ao pipeline, que conta os descartes.
func (r *touchpointRepository) ListAll() ([]*domain.Touchpoint, error) {
	query, args, err := squirrel.
		Select("tp.user_id, tp.occurred_at, tp.channel, tp.campaign_id, tp.interaction_type").
		From(touchpointsTable).
		OrderBy("tp.occurred_at ASC, tp.user_id ASC").
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

	touchpoints := make([]*domain.Touchpoint, 0)
	for rows.Next() {
		tp := &domain.Touchpoint{}
		var channel *string
		var interactionType *string

		err := rows.Scan(
			&tp.UserID,
			&tp.OccurredAt,
			&channel,
			&tp.CampaignID,
			&interactionType,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear touchpoint: %w", err)
		}

		if channel != nil {
			tp.Channel = *channel
		}
		if interactionType != nil {
			tp.InteractionType = domain.InteractionType(*interactionType)
		}

		touchpoints = append(touchpoints, tp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return touchpoints, nil
}
