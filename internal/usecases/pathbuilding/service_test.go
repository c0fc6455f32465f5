package pathbuilding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

func TestService_Build(t *testing.T) {
	service := NewService()

	campaign := int64Ptr(101)

	tests := []struct {
		name        string
		touchpoints []*domain.Touchpoint
		purchases   []*domain.Purchase
		validate    func(t *testing.T, entries []*domain.TouchpointPathEntry, stats *BuildStats)
	}{
		{
			name: "Touchpoints anteriores à compra entram no caminho em ordem de timestamp",
			touchpoints: []*domain.Touchpoint{
				{UserID: 1, OccurredAt: timePtr(2025, 6, 3, 10, 0), Channel: "google_search", CampaignID: campaign, InteractionType: domain.InteractionClick},
				{UserID: 1, OccurredAt: timePtr(2025, 6, 1, 9, 0), Channel: "facebook_ads", CampaignID: campaign, InteractionType: domain.InteractionImpression},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: timePtr(2025, 6, 5, 12, 0), Revenue: 100.0},
			},
			validate: func(t *testing.T, entries []*domain.TouchpointPathEntry, stats *BuildStats) {
				assert.Len(t, entries, 2)

				// Sequência começa em 1 e segue a ordem cronológica
				assert.Equal(t, 1, entries[0].SequenceNumber)
				assert.Equal(t, "facebook_ads", entries[0].Channel)
				assert.Equal(t, 2, entries[1].SequenceNumber)
				assert.Equal(t, "google_search", entries[1].Channel)

				assert.Equal(t, int64(5001), entries[0].PurchaseID)
				assert.Equal(t, int64(1), entries[0].UserID)
				assert.Equal(t, 0, stats.SkippedTouchpoints)
				assert.Equal(t, 0, stats.SkippedPurchases)
			},
		},
		{
			name: "Touchpoint simultâneo à compra fica fora do caminho",
			touchpoints: []*domain.Touchpoint{
				{UserID: 1, OccurredAt: timePtr(2025, 6, 5, 12, 0), Channel: "email", InteractionType: domain.InteractionClick},
				{UserID: 1, OccurredAt: timePtr(2025, 6, 4, 8, 0), Channel: "facebook_ads", InteractionType: domain.InteractionImpression},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: timePtr(2025, 6, 5, 12, 0), Revenue: 50.0},
			},
			validate: func(t *testing.T, entries []*domain.TouchpointPathEntry, stats *BuildStats) {
				// Apenas o touchpoint estritamente anterior entra
				assert.Len(t, entries, 1)
				assert.Equal(t, "facebook_ads", entries[0].Channel)
				assert.Equal(t, 1, entries[0].SequenceNumber)
			},
		},
		{
			name: "Touchpoint posterior à compra fica fora do caminho",
			touchpoints: []*domain.Touchpoint{
				{UserID: 1, OccurredAt: timePtr(2025, 6, 10, 10, 0), Channel: "google_display", InteractionType: domain.InteractionImpression},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: timePtr(2025, 6, 5, 12, 0), Revenue: 30.0},
			},
			validate: func(t *testing.T, entries []*domain.TouchpointPathEntry, stats *BuildStats) {
				assert.Empty(t, entries)
			},
		},
		{
			name: "Um touchpoint participa do caminho de mais de uma compra do mesmo usuário",
			touchpoints: []*domain.Touchpoint{
				{UserID: 1, OccurredAt: timePtr(2025, 6, 1, 9, 0), Channel: "facebook_ads", InteractionType: domain.InteractionImpression},
				{UserID: 1, OccurredAt: timePtr(2025, 6, 8, 9, 0), Channel: "email", InteractionType: domain.InteractionClick},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: timePtr(2025, 6, 5, 12, 0), Revenue: 100.0},
				{ID: 5002, UserID: 1, PurchasedAt: timePtr(2025, 6, 10, 12, 0), Revenue: 200.0},
			},
			validate: func(t *testing.T, entries []*domain.TouchpointPathEntry, stats *BuildStats) {
				assert.Len(t, entries, 3)

				// Primeira compra vê apenas o touchpoint de 01/06
				assert.Equal(t, int64(5001), entries[0].PurchaseID)
				assert.Equal(t, "facebook_ads", entries[0].Channel)
				assert.Equal(t, 1, entries[0].SequenceNumber)

				// Segunda compra vê o histórico completo com sequência própria
				assert.Equal(t, int64(5002), entries[1].PurchaseID)
				assert.Equal(t, "facebook_ads", entries[1].Channel)
				assert.Equal(t, 1, entries[1].SequenceNumber)
				assert.Equal(t, int64(5002), entries[2].PurchaseID)
				assert.Equal(t, "email", entries[2].Channel)
				assert.Equal(t, 2, entries[2].SequenceNumber)
			},
		},
		{
			name: "Touchpoints de outro usuário não entram no caminho",
			touchpoints: []*domain.Touchpoint{
				{UserID: 2, OccurredAt: timePtr(2025, 6, 1, 9, 0), Channel: "facebook_ads", InteractionType: domain.InteractionImpression},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: timePtr(2025, 6, 5, 12, 0), Revenue: 100.0},
			},
			validate: func(t *testing.T, entries []*domain.TouchpointPathEntry, stats *BuildStats) {
				assert.Empty(t, entries)
			},
		},
		{
			name: "Registros inválidos são pulados e contados, sem derrubar o lote",
			touchpoints: []*domain.Touchpoint{
				{UserID: 1, OccurredAt: nil, Channel: "facebook_ads", InteractionType: domain.InteractionImpression},
				{UserID: 1, OccurredAt: timePtr(2025, 6, 1, 9, 0), Channel: "", InteractionType: domain.InteractionClick},
				{UserID: 1, OccurredAt: timePtr(2025, 6, 2, 9, 0), Channel: "email", InteractionType: "bounce"},
				{UserID: 1, OccurredAt: timePtr(2025, 6, 3, 9, 0), Channel: "email", InteractionType: domain.InteractionClick},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: timePtr(2025, 6, 5, 12, 0), Revenue: 100.0},
				{ID: 5002, UserID: 1, PurchasedAt: nil, Revenue: 50.0},
			},
			validate: func(t *testing.T, entries []*domain.TouchpointPathEntry, stats *BuildStats) {
				assert.Len(t, entries, 1)
				assert.Equal(t, "email", entries[0].Channel)
				assert.Equal(t, 3, stats.SkippedTouchpoints)
				assert.Equal(t, 1, stats.SkippedPurchases)
				assert.Equal(t, 4, stats.TouchpointsRead)
				assert.Equal(t, 2, stats.PurchasesRead)
			},
		},
		{
			name: "Empate de timestamp preserva a ordem de chegada na sequência",
			touchpoints: []*domain.Touchpoint{
				{UserID: 1, OccurredAt: timePtr(2025, 6, 1, 9, 0), Channel: "google_search", InteractionType: domain.InteractionClick},
				{UserID: 1, OccurredAt: timePtr(2025, 6, 1, 9, 0), Channel: "facebook_ads", InteractionType: domain.InteractionImpression},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: timePtr(2025, 6, 5, 12, 0), Revenue: 100.0},
			},
			validate: func(t *testing.T, entries []*domain.TouchpointPathEntry, stats *BuildStats) {
				assert.Len(t, entries, 2)
				assert.Equal(t, "google_search", entries[0].Channel)
				assert.Equal(t, 1, entries[0].SequenceNumber)
				assert.Equal(t, "facebook_ads", entries[1].Channel)
				assert.Equal(t, 2, entries[1].SequenceNumber)
			},
		},
		{
			name:        "Entrada vazia produz saída vazia",
			touchpoints: []*domain.Touchpoint{},
			purchases:   []*domain.Purchase{},
			validate: func(t *testing.T, entries []*domain.TouchpointPathEntry, stats *BuildStats) {
				assert.Empty(t, entries)
				assert.Equal(t, 0, stats.TouchpointsRead)
				assert.Equal(t, 0, stats.PurchasesRead)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, stats := service.Build(tt.touchpoints, tt.purchases)
			tt.validate(t, entries, stats)
		})
	}
}

func timePtr(year int, month time.Month, day, hour, minute int) *time.Time {
	d := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	return &d
}

func int64Ptr(i int64) *int64 {
	return &i
}
