package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/attribution-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

const purchasesTable = "purchases p"

type PurchaseRepository interface {
	ListAll() ([]*domain.Purchase, error)
	GetByID(id int64) (*domain.Purchase, error)
}

type purchaseRepository struct {
	conn *postgres.Connection
}

func NewPurchaseRepository(conn *postgres.Connection) PurchaseRepository {
	return &purchaseRepository{
		conn: conn,
	}
}

// ListAll retorna o snapshot completo de compras.
func (r *purchaseRepository) ListAll() ([]*domain.Purchase, error) {
	query, args, err := purchaseSelect().
		OrderBy("p.id ASC").
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

	purchases := make([]*domain.Purchase, 0)
	for rows.Next() {
		purchase, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear compra: %w", err)
		}
		purchases = append(purchases, purchase)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return purchases, nil
}

// GetByID busca uma compra pelo ID. Retorna nil quando não existe.
func (r *purchaseRepository) GetByID(id int64) (*domain.Purchase, error) {
	query, args, err := purchaseSelect().
		Where(squirrel.Eq{"p.id": id}).
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

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
		}
		return nil, nil
	}

	purchase, err := scanPurchase(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear compra: %w", err)
	}

	return purchase, nil
}

func purchaseSelect() squirrel.SelectBuilder {
	return squirrel.
		Select("p.id, p.user_id, p.purchased_at, p.revenue, p.acquisition_channel, p.acquisition_campaign").
		From(purchasesTable)
}

func scanPurchase(rows *sql.Rows) (*domain.Purchase, error) {
	purchase := &domain.Purchase{}

	err := rows.Scan(
		&purchase.ID,
		&purchase.UserID,
		&purchase.PurchasedAt,
		&purchase.Revenue,
		&purchase.AcquisitionChannel,
		&purchase.AcquisitionCampaign,
	)
	if err != nil {
		return nil, err
	}

	return purchase, nil
}
