package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/attribution-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

const campaignsTable = "campaigns c"

type CampaignRepository interface {
	ListAll() ([]*domain.Campaign, error)
	GetByIDs(ids []int64) (map[int64]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// ListAll retorna a dimensão completa de campanhas.
func (r *campaignRepository) ListAll() ([]*domain.Campaign, error) {
	query, args, err := campaignSelect().
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryCampaigns(query, args)
}

// GetByIDs busca as campanhas pedidas e devolve um mapa indexado pelo ID.
// IDs sem linha correspondente simplesmente não aparecem no mapa: referências
// órfãs são enriquecidas com campos nulos, nunca derrubam o fato.
func (r *campaignRepository) GetByIDs(ids []int64) (map[int64]*domain.Campaign, error) {
	byID := make(map[int64]*domain.Campaign, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	query, args, err := campaignSelect().
		Where(squirrel.Eq{"c.id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaigns, err := r.queryCampaigns(query, args)
	if err != nil {
		return nil, err
	}

	for _, campaign := range campaigns {
		byID[campaign.ID] = campaign
	}

	return byID, nil
}

func campaignSelect() squirrel.SelectBuilder {
	return squirrel.
		Select("c.id, c.name, c.channel, c.objective, c.start_date, c.end_date").
		From(campaignsTable)
}

func (r *campaignRepository) queryCampaigns(query string, args []interface{}) ([]*domain.Campaign, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func scanCampaign(rows *sql.Rows) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	var name, channel, objective *string

	err := rows.Scan(
		&campaign.ID,
		&name,
		&channel,
		&objective,
		&campaign.StartDate,
		&campaign.EndDate,
	)
	if err != nil {
		return nil, err
	}

	if name != nil {
		campaign.Name = *name
	}
	if channel != nil {
		campaign.Channel = *channel
	}
	if objective != nil {
		campaign.Objective = *objective
	}

	return campaign, nil
}
