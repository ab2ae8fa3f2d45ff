// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/danielhkuo/qarari/i18n"
	"github.com/danielhkuo/qarari/models"
	"github.com/danielhkuo/qarari/scoring"
)

// ErrUnavailable means no narrative generator is configured.
var ErrUnavailable = errors.New("insights unavailable")

// Generator writes a short narrative about a decision.
type Generator interface {
	Generate(ctx context.Context, d models.Decision, lang i18n.Language) (string, error)
}

type optionInfo struct {
	Name   string          `json:"name"`
	Scores []criterionInfo `json:"scores"`
}

type criterionInfo struct {
	Criterion string `json:"criterion"`
	Rating    int    `json:"rating"`
}

type resultInfo struct {
	OptionName string  `json:"optionName"`
	TotalScore int     `json:"totalScore"`
	Percentage float64 `json:"percentage"`
}

var languageInstruction = map[i18n.Language]string{
	i18n.Arabic:  "(الرجاء الكتابة باللغة العربية)",
	i18n.English: "(Please write in English)",
}

// BuildPrompt describes the decision's ratings and results and asks for a
// brief two-paragraph analysis in lang.
func BuildPrompt(d models.Decision, lang i18n.Language) (string, error) {
	options := make([]optionInfo, len(d.Options))
	for i, o := range d.Options {
		scores := make([]criterionInfo, len(d.Criteria))
		for j, c := range d.Criteria {
			scores[j] = criterionInfo{Criterion: c.Name, Rating: o.Ratings[c.ID]}
		}
		options[i] = optionInfo{Name: o.Name, Scores: scores}
	}

	results := make([]resultInfo, len(d.Results.OptionScores))
	for i, item := range d.Results.OptionScores {
		results[i] = resultInfo{
			OptionName: item.Option.Name,
			TotalScore: item.Score,
			Percentage: scoring.Percentage(item.Score, d.Results.HighestPossibleScore),
		}
	}

	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode options")
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode results")
	}

	instruction, ok := languageInstruction[lang]
	if !ok {
		instruction = languageInstruction[i18n.Default]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I need to analyze a decision about %q.\n\n", d.Title)
	fmt.Fprintf(&b, "Options and scores:\n%s\n\n", optionsJSON)
	fmt.Fprintf(&b, "Results:\n%s\n\n", resultsJSON)
	b.WriteString("Provide a brief analysis (2 short paragraphs) that covers:\n")
	b.WriteString("1. Why the top option won\n")
	b.WriteString("2. How close the decision was\n")
	b.WriteString("3. Quick recommendation if more consideration is needed\n\n")
	b.WriteString("Keep it very concise and to the point.\n")
	b.WriteString(instruction + "\n")
	return b.String(), nil
}
