package domain

// DerivedSnapshot agrupa todas as visões derivadas produzidas por uma
// execução do pipeline. As tabelas derivadas são snapshots substituíveis:
// cada execução regrava o conjunto completo em uma única transação.
type DerivedSnapshot struct {
	Paths          []*TouchpointPathEntry
	LastTouch      []*LastTouchAttribution
	Linear         []*LinearAttribution
	MonthlyMetrics []*MonthlyMetric
	Funnel         *FunnelMetrics
	RunID          string
}
