package domain

import "time"

// FunnelMetrics quantifica o abandono do funil sobre o snapshot completo de
// entrada: taxas de queda por estágio e a profundidade média de caminho dos
// usuários que nunca compraram. As taxas são ponteiros porque ficam
// indefinidas quando o estágio anterior não tem usuários.
type FunnelMetrics struct {
	RunID                     string     `json:"run_id,omitempty"`
	ImpressedUsers            int        `json:"impressed_users"`
	ClickingUsers             int        `json:"clicking_users"`
	PurchasingUsers           int        `json:"purchasing_users"`
	ImpressionClickDropoff    *float64   `json:"impression_click_dropoff"`
	ClickPurchaseDropoff      *float64   `json:"click_purchase_dropoff"`
	NonConverters             int        `json:"non_converters"`
	AvgNonConverterPathLength *float64   `json:"avg_non_converter_path_length"`
	CreatedAt                 *time.Time `json:"created_at,omitempty"`
}
