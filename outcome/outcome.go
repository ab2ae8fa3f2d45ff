// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package outcome

import (
	"strconv"

	"github.com/danielhkuo/qarari/models"
)

// Kind identifies how the top-ranked option won.
type Kind string

const (
	KindNoResults   Kind = "no_results"
	KindAllTied     Kind = "all_tied"
	KindSomeTied    Kind = "some_tied"
	KindSoleOption  Kind = "sole_option"
	KindNarrowWin   Kind = "narrow_win"
	KindModerateWin Kind = "moderate_win"
	KindDecisiveWin Kind = "decisive_win"
)

// Margin thresholds between the winner and the runner-up
const (
	NarrowPoints    = 1.0
	NarrowPercent   = 5.0
	ModeratePoints  = 3.0
	ModeratePercent = 15.0
)

// Verdict is the classified outcome of a ranking. Winner is empty for
// NoResults and AllTied; PointDiff and PercentDiff are set for margin
// based kinds only.
type Verdict struct {
	Kind        Kind
	Winner      string
	PointDiff   float64
	PercentDiff float64
}

// Classify derives the verdict for ranked results. Rules are evaluated in
// order and the first match wins.
func Classify(results models.Results) Verdict {
	scores := results.OptionScores
	if len(scores) == 0 {
		return Verdict{Kind: KindNoResults}
	}

	winner := scores[0]
	name := winner.Option.Name

	// A tie needs at least two options
	allTied := len(scores) > 1
	for _, item := range scores {
		if item.Score != winner.Score {
			allTied = false
			break
		}
	}
	if allTied {
		return Verdict{Kind: KindAllTied}
	}

	for _, item := range scores[1:] {
		if item.Score == winner.Score {
			return Verdict{Kind: KindSomeTied, Winner: name}
		}
	}

	if len(scores) == 1 {
		return Verdict{Kind: KindSoleOption, Winner: name}
	}

	second := scores[1]
	diff := float64(winner.Score - second.Score)
	percent := 100.0
	if second.Score != 0 {
		percent = diff / float64(second.Score) * 100
	}

	switch {
	case diff < NarrowPoints || percent < NarrowPercent:
		return Verdict{Kind: KindNarrowWin, Winner: name, PointDiff: diff, PercentDiff: percent}
	case diff < ModeratePoints || percent < ModeratePercent:
		return Verdict{Kind: KindModerateWin, Winner: name, PointDiff: diff, PercentDiff: percent}
	default:
		// Includes exactly 3 points at exactly 15%.
		return Verdict{Kind: KindDecisiveWin, Winner: name, PointDiff: diff, PercentDiff: percent}
	}
}

// MessageKey returns the localization key for the verdict's message.
func (v Verdict) MessageKey() string {
	switch v.Kind {
	case KindAllTied:
		return "optionsEqual"
	case KindSomeTied:
		return "optionsSomeEqual"
	case KindSoleOption:
		return "clearChoice"
	case KindNarrowWin:
		return "narrowMargin"
	case KindModerateWin:
		return "betterBy"
	case KindDecisiveWin:
		return "decisivelyBetter"
	default:
		return "noResults"
	}
}

// Values returns the named values a message template may reference.
// Points and percent are formatted with one decimal.
func (v Verdict) Values() map[string]string {
	values := map[string]string{}
	if v.Winner != "" {
		values["option"] = v.Winner
	}
	switch v.Kind {
	case KindModerateWin:
		values["points"] = formatOneDecimal(v.PointDiff)
		values["percent"] = formatOneDecimal(v.PercentDiff)
	case KindDecisiveWin:
		values["points"] = formatOneDecimal(v.PointDiff)
	}
	return values
}

// View converts the verdict to its JSON shape.
func (v Verdict) View() models.VerdictView {
	return models.VerdictView{
		Kind:        string(v.Kind),
		Winner:      v.Winner,
		PointDiff:   v.PointDiff,
		PercentDiff: v.PercentDiff,
	}
}

func formatOneDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
