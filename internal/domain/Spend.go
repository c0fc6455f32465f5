package domain

import "time"

// Spend representa o custo agregado de mídia em um dia, por canal e/ou
// campanha. A granularidade é independente da dos touchpoints.
type Spend struct {
	Date       *time.Time `json:"date"`
	Channel    *string    `json:"channel,omitempty"`
	CampaignID *int64     `json:"campaign_id,omitempty"`
	Amount     float64    `json:"amount"`
}

// IsValid verifica se o registro de spend tem data e valor válidos.
func (s *Spend) IsValid() bool {
	if s == nil {
		return false
	}

	return s.Date != nil && s.Amount >= 0
}
