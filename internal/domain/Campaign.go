package domain

import "time"

// Campaign é a dimensão de campanha usada apenas para enriquecimento de
// exibição. Referências órfãs (campaign_id sem linha aqui) não derrubam o fato.
type Campaign struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Channel   string     `json:"channel"`
	Objective string     `json:"objective"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}
