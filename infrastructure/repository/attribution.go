package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/attribution-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

const (
	lastTouchTable = "attribution_last_touch alt"
	linearTable    = "attribution_linear al"
)

type AttributionRepository interface {
	GetChannelCredits(model domain.AttributionModel, year, month int) ([]*domain.ChannelCredit, error)
}

type attributionRepository struct {
	conn *postgres.Connection
}

func NewAttributionRepository(conn *postgres.Connection) AttributionRepository {
	return &attributionRepository{
		conn: conn,
	}
}

// GetChannelCredits soma o crédito de receita por canal em um mês sob o
// modelo pedido. No modelo linear a soma é das frações; no last-touch é a
// receita integral da compra vencedora.
func (r *attributionRepository) GetChannelCredits(model domain.AttributionModel, year, month int) ([]*domain.ChannelCredit, error) {
	var builder squirrel.SelectBuilder

	switch model {
	case domain.AttributionModelLastTouch:
		builder = squirrel.
			Select("alt.channel", "SUM(alt.revenue) AS revenue", "COUNT(DISTINCT alt.purchase_id) AS purchases").
			From(lastTouchTable).
			Join("purchases p ON p.id = alt.purchase_id").
			Where(squirrel.Expr("EXTRACT(YEAR FROM p.purchased_at) = ?", year)).
			Where(squirrel.Expr("EXTRACT(MONTH FROM p.purchased_at) = ?", month)).
			GroupBy("alt.channel").
			OrderBy("revenue DESC, alt.channel ASC")
	case domain.AttributionModelLinear:
		builder = squirrel.
			Select("al.channel", "SUM(al.revenue_share) AS revenue", "COUNT(DISTINCT al.purchase_id) AS purchases").
			From(linearTable).
			Join("purchases p ON p.id = al.purchase_id").
			Where(squirrel.Expr("EXTRACT(YEAR FROM p.purchased_at) = ?", year)).
			Where(squirrel.Expr("EXTRACT(MONTH FROM p.purchased_at) = ?", month)).
			GroupBy("al.channel").
			OrderBy("revenue DESC, al.channel ASC")
	default:
		return nil, fmt.Errorf("modelo de atribuição desconhecido: %s", model)
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	credits := make([]*domain.ChannelCredit, 0)
	for rows.Next() {
		credit := &domain.ChannelCredit{}
		if err := rows.Scan(&credit.Channel, &credit.Revenue, &credit.Purchases); err != nil {
			return nil, fmt.Errorf("erro ao escanear crédito de canal: %w", err)
		}
		credits = append(credits, credit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return credits, nil
}
