package attributing

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

// Attributor deriva as duas visões de atribuição sobre o mesmo conjunto de
// caminhos. As duas passagens são transformações puras e independentes sobre
// a mesma fatia imutável: o caminho é construído uma vez e compartilhado.
type Attributor interface {
	LastTouch(paths []*domain.TouchpointPathEntry, purchases []*domain.Purchase) ([]*domain.LastTouchAttribution, int)
	Linear(paths []*domain.TouchpointPathEntry, purchases []*domain.Purchase) []*domain.LinearAttribution
}

type Service struct{}

func NewService() Attributor {
	return &Service{}
}

// LastTouch seleciona, por compra, a entrada de caminho vencedora e atribui a
// ela 100% da receita. A seleção é determinística: maior timestamp, depois
// maior número de sequência e, se ainda empatar, menor canal lexicográfico.
// Retorna também o número de compras em que houve empate de timestamp, que é
// uma condição de qualidade de dados, nunca um erro.
func (s *Service) LastTouch(paths []*domain.TouchpointPathEntry, purchases []*domain.Purchase) ([]*domain.LastTouchAttribution, int) {
	revenueByPurchase := revenueIndex(purchases)
	entriesByPurchase := groupByPurchase(paths)

	records := make([]*domain.LastTouchAttribution, 0, len(entriesByPurchase))
	tieBreakWarnings := 0

	for purchaseID, entries := range entriesByPurchase {
		purchase, known := revenueByPurchase[purchaseID]
		if !known {
			// Caminho sem compra correspondente no snapshot: nada a atribuir
			continue
		}

		winner := entries[0]
		tied := false

		for _, entry := range entries[1:] {
			switch {
			case entry.OccurredAt.After(winner.OccurredAt):
				winner = entry
				tied = false
			case entry.OccurredAt.Equal(winner.OccurredAt):
				tied = true
				if entry.SequenceNumber > winner.SequenceNumber ||
					(entry.SequenceNumber == winner.SequenceNumber && entry.Channel < winner.Channel) {
					winner = entry
				}
			}
		}

		if tied {
			tieBreakWarnings++
			logrus.WithFields(logrus.Fields{
				"purchase_id": purchaseID,
				"channel":     winner.Channel,
			}).Warn("Empate de timestamp na atribuição last-touch resolvido por regra determinística")
		}

		records = append(records, &domain.LastTouchAttribution{
			PurchaseID: purchaseID,
			UserID:     winner.UserID,
			Channel:    winner.Channel,
			CampaignID: winner.CampaignID,
			Revenue:    purchase.Revenue,
			OccurredAt: winner.OccurredAt,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].PurchaseID < records[j].PurchaseID
	})

	return records, tieBreakWarnings
}

// Linear divide a receita de cada compra igualmente entre as N entradas do
// seu caminho. O crédito é por ocorrência: um canal presente duas vezes no
// caminho recebe duas frações. Compras sem entradas de caminho não geram
// linha alguma (conversão imediata ou caminho não rastreado).
func (s *Service) Linear(paths []*domain.TouchpointPathEntry, purchases []*domain.Purchase) []*domain.LinearAttribution {
	revenueByPurchase := revenueIndex(purchases)
	entriesByPurchase := groupByPurchase(paths)

	records := make([]*domain.LinearAttribution, 0, len(paths))

	for purchaseID, entries := range entriesByPurchase {
		purchase, known := revenueByPurchase[purchaseID]
		if !known {
			continue
		}

		share := 0.0
		if len(entries) > 0 {
			share = purchase.Revenue / float64(len(entries))
		}

		for _, entry := range entries {
			records = append(records, &domain.LinearAttribution{
				PurchaseID:     purchaseID,
				UserID:         entry.UserID,
				SequenceNumber: entry.SequenceNumber,
				Channel:        entry.Channel,
				CampaignID:     entry.CampaignID,
				RevenueShare:   share,
			})
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].PurchaseID != records[j].PurchaseID {
			return records[i].PurchaseID < records[j].PurchaseID
		}
		return records[i].SequenceNumber < records[j].SequenceNumber
	})

	return records
}

// revenueIndex indexa as compras válidas pelo ID.
func revenueIndex(purchases []*domain.Purchase) map[int64]*domain.Purchase {
	index := make(map[int64]*domain.Purchase, len(purchases))
	for _, p := range purchases {
		if p.IsValid() {
			index[p.ID] = p
		}
	}
	return index
}

// groupByPurchase agrupa as entradas de caminho por compra preservando a
// ordem de sequência da fatia de entrada.
func groupByPurchase(paths []*domain.TouchpointPathEntry) map[int64][]*domain.TouchpointPathEntry {
	grouped := make(map[int64][]*domain.TouchpointPathEntry)
	for _, entry := range paths {
		grouped[entry.PurchaseID] = append(grouped[entry.PurchaseID], entry)
	}
	return grouped
}
