package domain

import "time"

// TouchpointPathEntry é uma entrada derivada do caminho de touchpoints que
// precede uma compra. Para cada par (user_id, purchase_id) os números de
// sequência formam uma corrida contígua crescente começando em 1, ordenada
// pelo timestamp do touchpoint.
type TouchpointPathEntry struct {
	UserID          int64           `json:"user_id"`
	PurchaseID      int64           `json:"purchase_id"`
	SequenceNumber  int             `json:"sequence_number"`
	OccurredAt      time.Time       `json:"occurred_at"`
	Channel         string          `json:"channel"`
	CampaignID      *int64          `json:"campaign_id,omitempty"`
	InteractionType InteractionType `json:"interaction_type"`
}

// TouchpointPathEntryView é a entrada de caminho enriquecida com os dados da
// campanha para exibição. Campos de campanha ficam nulos quando a referência
// é órfã (semântica de outer join).
type TouchpointPathEntryView struct {
	TouchpointPathEntry
	CampaignName      *string `json:"campaign_name,omitempty"`
	CampaignObjective *string `json:"campaign_objective,omitempty"`
}

// PurchasePathResponse agrupa o caminho completo de uma compra.
type PurchasePathResponse struct {
	PurchaseID int64                      `json:"purchase_id"`
	UserID     int64                      `json:"user_id"`
	Revenue    float64                    `json:"revenue"`
	PathLength int                        `json:"path_length"`
	Entries    []*TouchpointPathEntryView `json:"entries"`
}
