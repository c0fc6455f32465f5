package domain

import "time"

type InteractionType string

const (
	InteractionImpression InteractionType = "impression"
	InteractionClick      InteractionType = "click"
)

// Touchpoint representa uma exposição de marketing registrada para um usuário
// (impressão ou clique). Imutável depois de ingerido; a ingestão é externa.
type Touchpoint struct {
	UserID          int64           `json:"user_id"`
	OccurredAt      *time.Time      `json:"occurred_at"`
	Channel         string          `json:"channel"`
	CampaignID      *int64          `json:"campaign_id,omitempty"`
	InteractionType InteractionType `json:"interaction_type"`
}

// IsValid verifica se o touchpoint tem todos os campos obrigatórios preenchidos.
// Registros inválidos são pulados pelo pipeline, nunca causam erro fatal.
func (t *Touchpoint) IsValid() bool {
	if t == nil {
		return false
	}

	if t.UserID == 0 || t.OccurredAt == nil || t.Channel == "" {
		return false
	}

	return t.InteractionType == InteractionImpression || t.InteractionType == InteractionClick
}
