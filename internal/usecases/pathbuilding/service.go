package pathbuilding

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

// BuildStats expõe os contadores de qualidade de dados de uma construção de
// caminhos. Registros inválidos são pulados, nunca derrubam o lote.
type BuildStats struct {
	TouchpointsRead    int
	PurchasesRead      int
	SkippedTouchpoints int
	SkippedPurchases   int
}

// PathBuilder constrói a sequência ordenada de TouchpointPathEntry a partir
// do conjunto completo de touchpoints e compras.
type PathBuilder interface {
	Build(touchpoints []*domain.Touchpoint, purchases []*domain.Purchase) ([]*domain.TouchpointPathEntry, *BuildStats)
}

type Service struct{}

func NewService() PathBuilder {
	return &Service{}
}

// Build associa cada touchpoint às compras do mesmo usuário que aconteceram
// estritamente depois dele. Um touchpoint pode participar do caminho de mais
// de uma compra: cada compra recebe seu histórico anterior completo. Dentro de
// cada par (usuário, compra) as entradas são ordenadas pelo timestamp e
// numeradas a partir de 1, sem lacunas.
func (s *Service) Build(touchpoints []*domain.Touchpoint, purchases []*domain.Purchase) ([]*domain.TouchpointPathEntry, *BuildStats) {
	stats := &BuildStats{
		TouchpointsRead: len(touchpoints),
		PurchasesRead:   len(purchases),
	}

	// Agrupar os touchpoints válidos por usuário, descartando os inválidos
	touchpointsByUser := make(map[int64][]*domain.Touchpoint)
	for _, tp := range touchpoints {
		if !tp.IsValid() {
			stats.SkippedTouchpoints++
			continue
		}
		touchpointsByUser[tp.UserID] = append(touchpointsByUser[tp.UserID], tp)
	}

	// Ordenação estável por timestamp: empates mantêm a ordem de chegada
	for _, userTouchpoints := range touchpointsByUser {
		sort.SliceStable(userTouchpoints, func(i, j int) bool {
			return userTouchpoints[i].OccurredAt.Before(*userTouchpoints[j].OccurredAt)
		})
	}

	// Filtrar compras válidas e ordenar por ID para saída determinística
	validPurchases := make([]*domain.Purchase, 0, len(purchases))
	for _, p := range purchases {
		if !p.IsValid() {
			stats.SkippedPurchases++
			continue
		}
		validPurchases = append(validPurchases, p)
	}

	sort.Slice(validPurchases, func(i, j int) bool {
		return validPurchases[i].ID < validPurchases[j].ID
	})

	entries := make([]*domain.TouchpointPathEntry, 0)

	for _, purchase := range validPurchases {
		sequence := 0

		for _, tp := range touchpointsByUser[purchase.UserID] {
			// Apenas touchpoints estritamente anteriores à compra entram no caminho
			if !tp.OccurredAt.Before(*purchase.PurchasedAt) {
				continue
			}

			sequence++
			entries = append(entries, &domain.TouchpointPathEntry{
				UserID:          purchase.UserID,
				PurchaseID:      purchase.ID,
				SequenceNumber:  sequence,
				OccurredAt:      *tp.OccurredAt,
				Channel:         tp.Channel,
				CampaignID:      tp.CampaignID,
				InteractionType: tp.InteractionType,
			})
		}
	}

	if stats.SkippedTouchpoints > 0 || stats.SkippedPurchases > 0 {
		logrus.WithFields(logrus.Fields{
			"skipped_touchpoints": stats.SkippedTouchpoints,
			"skipped_purchases":   stats.SkippedPurchases,
		}).Warn("Registros com campos obrigatórios ausentes foram pulados na construção de caminhos")
	}

	return entries, stats
}
