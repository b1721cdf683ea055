package aggregate

import (
	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/services/scoring"
)

const (
	excellentThreshold = 90
	goodThreshold      = 75
)

// Aggregate combines the four category results into an analysis result.
func Aggregate(results domain.CategoryResults) domain.AnalysisResult {
	scores := make([]int, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		scores = append(scores, results.Get(c).Score)
	}

	return domain.AnalysisResult{
		Categories:      results,
		OverallScore:    OverallScore(scores...),
		PriorityActions: PriorityActions(results),
	}
}

// OverallScore is the mean of scores rounded half up.
func OverallScore(scores ...int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	n := len(scores)
	// scores are non-negative so integer division floors
	return (2*sum + n) / (2 * n)
}

// PriorityActions returns one action per category tied at the lowest score,
// in category order.
func PriorityActions(results domain.CategoryResults) []string {
	lowest := -1
	for _, c := range domain.Categories {
		if s := results.Get(c).Score; lowest == -1 || s < lowest {
			lowest = s
		}
	}

	actions := []string{}
	for _, c := range domain.Categories {
		if results.Get(c).Score == lowest {
			actions = append(actions, scoring.PriorityAction(c))
		}
	}
	return actions
}

func StatusFor(score int) domain.Status {
	switch {
	case score >= excellentThreshold:
		return domain.StatusExcellent
	case score >= goodThreshold:
		return domain.StatusGood
	default:
		return domain.StatusNeedsImprovement
	}
}

func TierFor(score int) domain.Tier {
	switch {
	case score >= excellentThreshold:
		return domain.TierHigh
	case score >= goodThreshold:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}
