package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/attribution-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

const spendTable = "ad_spend sp"

type SpendRepository interface {
	ListAll() ([]*domain.Spend, error)
}

type spendRepository struct {
	conn *postgres.Connection
}

func NewSpendRepository(conn *postgres.Connection) SpendRepository {
	return &spendRepository{
		conn: conn,
	}
}

// ListAll retorna o snapshot completo de spend de mídia.
func (r *spendRepository) ListAll() ([]*domain.Spend, error) {
	query, args, err := squirrel.
		Select("sp.spend_date, sp.channel, sp.campaign_id, sp.amount").
		From(spendTable).
		OrderBy("sp.spend_date ASC").
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

	spend := make([]*domain.Spend, 0)
	for rows.Next() {
		sp := &domain.Spend{}

		err := rows.Scan(
			&sp.Date,
			&sp.Channel,
			&sp.CampaignID,
			&sp.Amount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear spend: %w", err)
		}

		spend = append(spend, sp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return spend, nil
}
