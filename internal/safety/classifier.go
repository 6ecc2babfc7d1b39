package safety

import (
	"math"
	"sort"

	"github.com/jengzang/saferoute-backend-go/internal/models"
)

// Classification is the aggregate verdict over a set of matches
type Classification struct {
	SafetyScore        float64
	RiskLevel          models.RiskLevel
	PredictedAccidents int
}

// Classify turns matched hazards into a safety score and risk level.
//
// 0 matches scores NoMatchSafetyScore (low), 1 to ClusterMinMatches-1 matches
// score FewMatchSafetyScore (medium) regardless of which hazards matched, and
// larger clusters score 100 minus the average risk, floored at SafetyFloor.
// The level is decided on the exact score; only the reported score is
// rounded to one decimal, so a high-risk route may report 60.
func (p Policy) Classify(matches []models.RiskSegment) Classification {
	n := len(matches)
	switch {
	case n == 0:
		return Classification{SafetyScore: p.NoMatchSafetyScore, RiskLevel: models.RiskLow}
	case n < p.ClusterMinMatches:
		return Classification{SafetyScore: p.FewMatchSafetyScore, RiskLevel: models.RiskMedium, PredictedAccidents: 1}
	}

	var total float64
	for _, m := range matches {
		total += m.RiskScore
	}
	score := math.Max(100-total/float64(n), p.SafetyFloor)

	level := models.RiskMedium
	if score < p.HighRiskBelow {
		level = models.RiskHigh
	}
	return Classification{SafetyScore: roundTenth(score), RiskLevel: level, PredictedAccidents: n / 2}
}

// TopSegments returns the highest-risk matches, ties kept in registry order
func (p Policy) TopSegments(matches []models.RiskSegment) []models.RiskSegment {
	sorted := make([]models.RiskSegment, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RiskScore > sorted[j].RiskScore
	})
	if len(sorted) > p.MaxHighRiskSegments {
		sorted = sorted[:p.MaxHighRiskSegments]
	}
	return sorted
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
