package commands

import (
	"sort"

	"github.com/descry-dev/descry/internal/domain"
)

// KindStat aggregates history entries of one encoding kind. The length delta
// is decoded minus original, in code points; decode output is usually shorter
// than its encoded form, so deltas tend negative.
type KindStat struct {
	Kind           domain.EncodingKind
	Count          int
	AvgLengthDelta float64
}

// CalculateKindStats groups entries per resolved kind, ordered by count
// (descending) then kind name.
func CalculateKindStats(entries []domain.HistoryEntry) []KindStat {
	counts := make(map[domain.EncodingKind]int)
	deltas := make(map[domain.EncodingKind]int)
	for _, entry := range entries {
		counts[entry.ResolvedKind]++
		deltas[entry.ResolvedKind] += entry.DecodedLength - entry.OriginalLength
	}

	stats := make([]KindStat, 0, len(counts))
	for kind, count := range counts {
		stats = append(stats, KindStat{
			Kind:           kind,
			Count:          count,
			AvgLengthDelta: float64(deltas[kind]) / float64(count),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count == stats[j].Count {
			return stats[i].Kind < stats[j].Kind
		}
		return stats[i].Count > stats[j].Count
	})
	return stats
}
