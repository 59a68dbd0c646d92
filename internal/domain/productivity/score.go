package productivity

import "math"

// Weighting of the combined score: initiatives count for 40%, projects for
// 60%. Within each kind, completed work weighs more than in-progress work,
// and average progress contributes a small continuous component.
const (
	initiativeCompletedPoints  = 10
	initiativeInProgressPoints = 5
	initiativeProgressFactor   = 0.1
	initiativeWeight           = 0.4

	projectCompletedPoints  = 15
	projectInProgressPoints = 8
	projectProgressFactor   = 0.15
	projectWeight           = 0.6

	maxScore = 100
)

// Score combines initiative and project statistics into a single integer in
// [0, 100]. The raw score is rounded once, after the two kinds are combined,
// then clamped to the upper bound.
func Score(initiatives, projects Stats) int {
	initiativeScore := float64(initiatives.Completed)*initiativeCompletedPoints +
		float64(initiatives.InProgress)*initiativeInProgressPoints +
		initiatives.AvgProgress*initiativeProgressFactor

	projectScore := float64(projects.Completed)*projectCompletedPoints +
		float64(projects.InProgress)*projectInProgressPoints +
		projects.AvgProgress*projectProgressFactor

	rawScore := initiativeScore*initiativeWeight + projectScore*projectWeight

	score := int(math.Round(rawScore))
	if score > maxScore {
		score = maxScore
	}

	return score
}
