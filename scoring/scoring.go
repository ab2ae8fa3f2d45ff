// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"
	"sort"

	"github.com/danielhkuo/qarari/models"
)

// Rating scale bounds
const (
	MinRating = 1
	MaxRating = 10
)

// ComputeResults scores every option against every criterion and ranks them.
// Callers pass only valid (non-blank) options and criteria.
func ComputeResults(options []models.Option, criteria []models.Criterion) models.Results {
	optionScores := make([]models.ResultItem, 0, len(options))

	for _, option := range options {
		criteriaScores := make(map[string]int, len(criteria))
		total := 0

		for _, criterion := range criteria {
			// A missing rating counts as 0
			rating := option.Ratings[criterion.ID]
			criteriaScores[criterion.ID] = rating
			total += rating
		}

		optionScores = append(optionScores, models.ResultItem{
			Option:         option.Clone(),
			Score:          total,
			CriteriaScores: criteriaScores,
		})
	}

	// Highest score first; equal scores keep input order
	sort.SliceStable(optionScores, func(i, j int) bool {
		return optionScores[i].Score > optionScores[j].Score
	})

	return models.Results{
		OptionScores:         optionScores,
		HighestPossibleScore: len(criteria) * MaxRating,
	}
}

// Percentage returns score as a percentage of highest, or 0 when highest is 0.
func Percentage(score, highest int) float64 {
	if highest == 0 {
		return 0
	}
	return float64(score) / float64(highest) * 100
}

// RoundedPercentage is Percentage rounded to a whole percent.
func RoundedPercentage(score, highest int) int {
	return int(math.Round(Percentage(score, highest)))
}
