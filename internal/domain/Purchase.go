package domain

import "time"

// Purchase representa uma compra de um usuário. Cada compra pertence a
// exatamente um usuário e carrega a receita total da conversão.
type Purchase struct {
	ID                  int64      `json:"id"`
	UserID              int64      `json:"user_id"`
	PurchasedAt         *time.Time `json:"purchased_at"`
	Revenue             float64    `json:"revenue"`
	AcquisitionChannel  *string    `json:"acquisition_channel,omitempty"`
	AcquisitionCampaign *int64     `json:"acquisition_campaign,omitempty"`
}

// IsValid verifica se a compra tem os campos obrigatórios preenchidos.
func (p *Purchase) IsValid() bool {
	if p == nil {
		return false
	}

	return p.ID != 0 && p.UserID != 0 && p.PurchasedAt != nil && p.Revenue >= 0
}
