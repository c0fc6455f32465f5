package domain

import "time"

// PipelineRunStatus é o estado de uma execução do pipeline de atribuição.
type PipelineRunStatus string

const (
	PipelineRunRunning   PipelineRunStatus = "running"
	PipelineRunCompleted PipelineRunStatus = "completed"
	PipelineRunFailed    PipelineRunStatus = "failed"
)

// PipelineRun é o metadado de uma execução completa do pipeline: volumes
// lidos e produzidos mais os contadores de qualidade de dados. Nenhuma
// condição de qualidade de dados é fatal; todas são expostas aqui.
type PipelineRun struct {
	ID                 string            `json:"id"`
	StartedAt          time.Time         `json:"started_at"`
	CompletedAt        *time.Time        `json:"completed_at,omitempty"`
	TouchpointsRead    int               `json:"touchpoints_read"`
	PurchasesRead      int               `json:"purchases_read"`
	SpendRowsRead      int               `json:"spend_rows_read"`
	PathEntries        int               `json:"path_entries"`
	LastTouchRows      int               `json:"last_touch_rows"`
	LinearRows         int               `json:"linear_rows"`
	MonthlyMetricRows  int               `json:"monthly_metric_rows"`
	SkippedTouchpoints int               `json:"skipped_touchpoints"`
	SkippedPurchases   int               `json:"skipped_purchases"`
	SkippedSpendRows   int               `json:"skipped_spend_rows"`
	TieBreakWarnings   int               `json:"tie_break_warnings"`
	OrphanCampaigns    int               `json:"orphan_campaigns"`
	Status             PipelineRunStatus `json:"status"`
	Error              *string           `json:"error,omitempty"`
}
