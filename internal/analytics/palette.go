package analytics

import "github.com/carson-networks/finance-tracker/internal/finance"

// IncomeColor is the colour token of every income slice and series.
const IncomeColor = "#4CAF50"

var palette = []string{
	"#F44336",
	"#2196F3",
	"#FFC107",
	"#9C27B0",
	"#FF5722",
	"#00BCD4",
	"#E91E63",
	"#4CAF50",
	"#FF9800",
	"#673AB7",
}

// ColorFor returns the palette colour for the index-th expense category of a
// chart. The index is the category's position within that chart's output, so
// the same category may get different colours under different filters.
func ColorFor(index int) string {
	if index < 0 {
		index = -index
	}
	return palette[index%len(palette)]
}

// PaletteSize is the number of distinct expense colours.
func PaletteSize() int {
	return len(palette)
}

// sanitize drops records that cannot be aggregated.
func sanitize(txs []finance.Transaction) []finance.Transaction {
	valid := make([]finance.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Valid() {
			valid = append(valid, t)
		}
	}
	return valid
}
