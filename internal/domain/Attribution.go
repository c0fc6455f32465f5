package domain

import "time"

// AttributionModel identifica o modelo de atribuição usado em uma visão.
type AttributionModel string

const (
	AttributionModelLastTouch AttributionModel = "last_touch"
	AttributionModelLinear    AttributionModel = "linear"
)

// LastTouchAttribution é uma linha por compra: o touchpoint vencedor (último
// antes da compra) carrega 100% da receita.
type LastTouchAttribution struct {
	PurchaseID int64     `json:"purchase_id"`
	UserID     int64     `json:"user_id"`
	Channel    string    `json:"channel"`
	CampaignID *int64    `json:"campaign_id,omitempty"`
	Revenue    float64   `json:"revenue"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LinearAttribution é uma linha por entrada de caminho: a receita da compra é
// dividida igualmente entre as N entradas do caminho. Um canal tocado duas
// vezes no mesmo caminho recebe crédito por ocorrência, não deduplicado.
type LinearAttribution struct {
	PurchaseID     int64   `json:"purchase_id"`
	UserID         int64   `json:"user_id"`
	SequenceNumber int     `json:"sequence_number"`
	Channel        string  `json:"channel"`
	CampaignID     *int64  `json:"campaign_id,omitempty"`
	RevenueShare   float64 `json:"revenue_share"`
}

// ChannelCredit resume o crédito de receita de um canal sob um modelo de
// atribuição em um período.
type ChannelCredit struct {
	Channel   string  `json:"channel"`
	Revenue   float64 `json:"revenue"`
	Purchases int     `json:"purchases"`
}

// AttributionSummary é a resposta do relatório de atribuição por canal.
type AttributionSummary struct {
	Model    AttributionModel `json:"model"`
	Period   string           `json:"period"`
	Channels []*ChannelCredit `json:"channels"`
}
