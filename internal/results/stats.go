package results

import (
	"math"
	"sort"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/database"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// Stats summarises verified submissions
type Stats struct {
	TotalVerified     int                       `json:"totalVerified"`
	AverageScore      int                       `json:"averageScore"`
	ArchetypeCounts   map[scoring.Archetype]int `json:"archetypeCounts"`
	ScoreDistribution []int                     `json:"scoreDistribution"`
}

// ComputeStats builds Stats from verified score rows. AverageScore is the
// rounded mean, 0 when there are no rows.
func ComputeStats(rows []database.ScoreRow) Stats {
	stats := Stats{
		TotalVerified:     len(rows),
		ArchetypeCounts:   make(map[scoring.Archetype]int),
		ScoreDistribution: make([]int, 0, len(rows)),
	}

	sum := 0
	for _, row := range rows {
		sum += row.OverallScore
		stats.ArchetypeCounts[row.Archetype]++
		stats.ScoreDistribution = append(stats.ScoreDistribution, row.OverallScore)
	}
	sort.Ints(stats.ScoreDistribution)

	if len(rows) > 0 {
		stats.AverageScore = int(math.Round(float64(sum) / float64(len(rows))))
	}

	return stats
}

// PopulationPercentile is the share of verified results scoring strictly
// below, clamped to [1, 99]. ok is false when there are no verified results.
func PopulationPercentile(total, below int) (percentile int, ok bool) {
	if total <= 0 {
		return 0, false
	}
	p := int(math.Round(100 * float64(below) / float64(total)))
	return scoring.ClampPercentile(p), true
}
