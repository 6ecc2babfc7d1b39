package safety

import "github.com/jengzang/saferoute-backend-go/internal/models"

var baseAdvice = []string{
	"Maintain speed limit and follow traffic signals",
	"Avoid rush hours (8-10 AM, 6-8 PM) if possible",
}

var adviceByLevel = map[models.RiskLevel][]string{
	models.RiskHigh: {
		"Consider taking an alternative route",
		"Stay extra alert in high-risk zones marked above",
		"Avoid night travel on this route if possible",
	},
	models.RiskMedium: {
		"Reduce speed near accident-prone areas",
		"Keep safe distance from vehicles ahead",
	},
	models.RiskLow: {
		"This route has a good safety record. Drive safely!",
	},
}

// Recommendations returns the advisory list for a risk level.
// The result is a fresh slice the caller may keep.
func Recommendations(level models.RiskLevel) []string {
	extra := adviceByLevel[level]
	out := make([]string, 0, len(baseAdvice)+len(extra))
	out = append(out, baseAdvice...)
	return append(out, extra...)
}
