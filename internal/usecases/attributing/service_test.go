package attributing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
)

func TestService_LastTouch(t *testing.T) {
	service := NewService()

	tests := []struct {
		name      string
		paths     []*domain.TouchpointPathEntry
		purchases []*domain.Purchase
		validate  func(t *testing.T, records []*domain.LastTouchAttribution, warnings int)
	}{
		{
			name: "Última entrada do caminho recebe 100% da receita",
			paths: []*domain.TouchpointPathEntry{
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 1, OccurredAt: ts(2025, 6, 1, 9, 0), Channel: "facebook_ads"},
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 2, OccurredAt: ts(2025, 6, 3, 10, 0), Channel: "google_search"},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: tsPtr(2025, 6, 5, 12, 0), Revenue: 100.0},
			},
			validate: func(t *testing.T, records []*domain.LastTouchAttribution, warnings int) {
				assert.Len(t, records, 1)
				assert.Equal(t, int64(5001), records[0].PurchaseID)
				assert.Equal(t, "google_search", records[0].Channel)
				assert.Equal(t, 100.0, records[0].Revenue)
				assert.Equal(t, 0, warnings)
			},
		},
		{
			name: "Empate de timestamp vence a maior sequência e o empate é contado",
			paths: []*domain.TouchpointPathEntry{
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 1, OccurredAt: ts(2025, 6, 10, 11, 20), Channel: "google_search"},
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 2, OccurredAt: ts(2025, 6, 10, 11, 20), Channel: "facebook_ads"},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: tsPtr(2025, 6, 12, 12, 0), Revenue: 80.0},
			},
			validate: func(t *testing.T, records []*domain.LastTouchAttribution, warnings int) {
				assert.Len(t, records, 1)
				assert.Equal(t, "facebook_ads", records[0].Channel)
				assert.Equal(t, 80.0, records[0].Revenue)
				assert.Equal(t, 1, warnings)
			},
		},
		{
			name: "Empate de timestamp e sequência vence o menor canal lexicográfico",
			paths: []*domain.TouchpointPathEntry{
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 1, OccurredAt: ts(2025, 6, 10, 11, 20), Channel: "google_search"},
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 1, OccurredAt: ts(2025, 6, 10, 11, 20), Channel: "email"},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: tsPtr(2025, 6, 12, 12, 0), Revenue: 60.0},
			},
			validate: func(t *testing.T, records []*domain.LastTouchAttribution, warnings int) {
				assert.Len(t, records, 1)
				assert.Equal(t, "email", records[0].Channel)
				assert.Equal(t, 1, warnings)
			},
		},
		{
			name: "Compra sem receita correspondente não gera atribuição",
			paths: []*domain.TouchpointPathEntry{
				{UserID: 1, PurchaseID: 9999, SequenceNumber: 1, OccurredAt: ts(2025, 6, 1, 9, 0), Channel: "email"},
			},
			purchases: []*domain.Purchase{},
			validate: func(t *testing.T, records []*domain.LastTouchAttribution, warnings int) {
				assert.Empty(t, records)
				assert.Equal(t, 0, warnings)
			},
		},
		{
			name: "Compras distintas produzem linhas ordenadas por ID",
			paths: []*domain.TouchpointPathEntry{
				{UserID: 2, PurchaseID: 5002, SequenceNumber: 1, OccurredAt: ts(2025, 6, 2, 9, 0), Channel: "email"},
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 1, OccurredAt: ts(2025, 6, 1, 9, 0), Channel: "facebook_ads"},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: tsPtr(2025, 6, 5, 12, 0), Revenue: 10.0},
				{ID: 5002, UserID: 2, PurchasedAt: tsPtr(2025, 6, 5, 12, 0), Revenue: 20.0},
			},
			validate: func(t *testing.T, records []*domain.LastTouchAttribution, warnings int) {
				assert.Len(t, records, 2)
				assert.Equal(t, int64(5001), records[0].PurchaseID)
				assert.Equal(t, int64(5002), records[1].PurchaseID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, warnings := service.LastTouch(tt.paths, tt.purchases)
			tt.validate(t, records, warnings)
		})
	}
}

func TestService_Linear(t *testing.T) {
	service := NewService()

	tests := []struct {
		name      string
		paths     []*domain.TouchpointPathEntry
		purchases []*domain.Purchase
		validate  func(t *testing.T, records []*domain.LinearAttribution)
	}{
		{
			name: "Receita dividida igualmente entre as entradas do caminho",
			paths: []*domain.TouchpointPathEntry{
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 1, OccurredAt: ts(2025, 6, 1, 9, 0), Channel: "facebook_ads"},
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 2, OccurredAt: ts(2025, 6, 3, 10, 0), Channel: "google_search"},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: tsPtr(2025, 6, 5, 12, 0), Revenue: 100.0},
			},
			validate: func(t *testing.T, records []*domain.LinearAttribution) {
				assert.Len(t, records, 2)
				assert.Equal(t, 50.0, records[0].RevenueShare)
				assert.Equal(t, 50.0, records[1].RevenueShare)
				assert.Equal(t, "facebook_ads", records[0].Channel)
				assert.Equal(t, "google_search", records[1].Channel)
			},
		},
		{
			name: "Canal repetido no caminho recebe crédito por ocorrência",
			paths: []*domain.TouchpointPathEntry{
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 1, OccurredAt: ts(2025, 6, 1, 9, 0), Channel: "email"},
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 2, OccurredAt: ts(2025, 6, 2, 9, 0), Channel: "email"},
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 3, OccurredAt: ts(2025, 6, 3, 9, 0), Channel: "google_search"},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: tsPtr(2025, 6, 5, 12, 0), Revenue: 90.0},
			},
			validate: func(t *testing.T, records []*domain.LinearAttribution) {
				assert.Len(t, records, 3)

				emailShare := 0.0
				for _, r := range records {
					assert.Equal(t, 30.0, r.RevenueShare)
					if r.Channel == "email" {
						emailShare += r.RevenueShare
					}
				}
				assert.Equal(t, 60.0, emailShare)
			},
		},
		{
			name:  "Compra sem entradas de caminho não gera linha",
			paths: []*domain.TouchpointPathEntry{},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: tsPtr(2025, 6, 5, 12, 0), Revenue: 100.0},
			},
			validate: func(t *testing.T, records []*domain.LinearAttribution) {
				assert.Empty(t, records)
			},
		},
		{
			name: "Linhas saem ordenadas por compra e sequência",
			paths: []*domain.TouchpointPathEntry{
				{UserID: 2, PurchaseID: 5002, SequenceNumber: 2, OccurredAt: ts(2025, 6, 4, 9, 0), Channel: "email"},
				{UserID: 2, PurchaseID: 5002, SequenceNumber: 1, OccurredAt: ts(2025, 6, 2, 9, 0), Channel: "facebook_ads"},
				{UserID: 1, PurchaseID: 5001, SequenceNumber: 1, OccurredAt: ts(2025, 6, 1, 9, 0), Channel: "google_search"},
			},
			purchases: []*domain.Purchase{
				{ID: 5001, UserID: 1, PurchasedAt: tsPtr(2025, 6, 5, 12, 0), Revenue: 40.0},
				{ID: 5002, UserID: 2, PurchasedAt: tsPtr(2025, 6, 5, 12, 0), Revenue: 60.0},
			},
			validate: func(t *testing.T, records []*domain.LinearAttribution) {
				assert.Len(t, records, 3)
				assert.Equal(t, int64(5001), records[0].PurchaseID)
				assert.Equal(t, 40.0, records[0].RevenueShare)
				assert.Equal(t, int64(5002), records[1].PurchaseID)
				assert.Equal(t, 1, records[1].SequenceNumber)
				assert.Equal(t, int64(5002), records[2].PurchaseID)
				assert.Equal(t, 2, records[2].SequenceNumber)
				assert.Equal(t, 30.0, records[1].RevenueShare)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := service.Linear(tt.paths, tt.purchases)
			tt.validate(t, records)
		})
	}
}

func ts(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func tsPtr(year int, month time.Month, day, hour, minute int) *time.Time {
	d := ts(year, month, day, hour, minute)
	return &d
}
