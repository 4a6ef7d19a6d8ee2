package pipeline

import "github.com/shelfproof/stocksheet/internal/row"

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Collected int
	Succeeded int
	Failed    int
}

// Tally derives run counters from the built rows.
func Tally(rows []row.Row) RunStats {
	stats := RunStats{Collected: len(rows)}
	for _, r := range rows {
		if r.Status == row.StatusOK {
			stats.Succeeded++
		} else {
			stats.Failed++
		}
	}
	return stats
}
