// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"github.com/danielhkuo/qarari/i18n"
	"github.com/danielhkuo/qarari/models"
	"github.com/danielhkuo/qarari/outcome"
	"github.com/danielhkuo/qarari/scoring"
	"github.com/danielhkuo/qarari/validation"
)

// Build assembles everything a result screen shows for a saved decision.
// Stored results are displayed as they are; nothing is rescored.
func Build(d models.Decision, tr *i18n.Translator) models.DecisionView {
	verdict := outcome.Classify(d.Results)
	return models.DecisionView{
		Decision:        d,
		Verdict:         verdict.View(),
		Summary:         Summary(verdict, tr),
		Matrix:          BuildMatrix(d),
		Recommendations: Recommendations(d),
		Language:        string(tr.Language()),
	}
}

// Summary renders the verdict in the translator's language.
func Summary(v outcome.Verdict, tr *i18n.Translator) string {
	return tr.Render(v.MessageKey(), v.Values())
}

// BuildMatrix lays out ratings with one row per valid criterion and one
// column per valid option. Missing ratings show as 0. Totals follow the
// column order.
func BuildMatrix(d models.Decision) models.Matrix {
	options := validation.ValidOptions(d.Options)
	criteria := validation.ValidCriteria(d.Criteria)

	m := models.Matrix{
		Options: make([]string, len(options)),
		Rows:    make([]models.MatrixRow, 0, len(criteria)),
		Totals:  make([]models.MatrixTotal, len(options)),
	}
	for i, o := range options {
		m.Options[i] = o.Name
	}

	for _, c := range criteria {
		row := models.MatrixRow{
			CriterionID: c.ID,
			Criterion:   c.Name,
			Ratings:     make([]int, len(options)),
		}
		for i, o := range options {
			row.Ratings[i] = o.Ratings[c.ID]
		}
		m.Rows = append(m.Rows, row)
	}

	scores := make(map[string]int, len(d.Results.OptionScores))
	for _, item := range d.Results.OptionScores {
		scores[item.Option.ID] = item.Score
	}
	for i, o := range options {
		score := scores[o.ID]
		m.Totals[i] = models.MatrixTotal{
			OptionID: o.ID,
			Option:   o.Name,
			Score:    score,
			Percent:  scoring.RoundedPercentage(score, d.Results.HighestPossibleScore),
		}
	}

	return m
}

// Recommendations lists, for the top-ranked option, how far each criterion
// is from the maximum rating. Returns nil when there are no results.
func Recommendations(d models.Decision) *models.RecommendationSet {
	winner, ok := d.Results.Winner()
	if !ok {
		return nil
	}

	criteria := validation.ValidCriteria(d.Criteria)
	set := &models.RecommendationSet{
		Option:      winner.Option.Name,
		AllComplete: len(criteria) > 0,
		Items:       make([]models.Recommendation, 0, len(criteria)),
	}

	for _, c := range criteria {
		value := winner.Option.Ratings[c.ID]
		rec := models.Recommendation{
			CriterionID: c.ID,
			Criterion:   c.Name,
			Value:       value,
			Max:         scoring.MaxRating,
			Complete:    value >= scoring.MaxRating,
		}
		if !rec.Complete {
			rec.ImprovePercent = float64(scoring.MaxRating-value) / scoring.MaxRating * 100
			set.AllComplete = false
		}
		set.Items = append(set.Items, rec)
	}

	return set
}

// ShareMessage is the text offered when the user shares a decision.
func ShareMessage(d models.Decision, url string, tr *i18n.Translator) string {
	result := ""
	if winner, ok := d.Results.Winner(); ok {
		result = winner.Option.Name
	}
	return tr.Render("shareMessage", map[string]string{
		"title":  d.Title,
		"result": result,
		"url":    url,
	})
}
