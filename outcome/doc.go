// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package outcome classifies how decisively the top-ranked option won.

# Rules

Classify walks these rules top to bottom; the first match wins:

 1. No ranked options: no_results
 2. Two or more options, all with the winner's score: all_tied
 3. Another option shares the winner's score: some_tied
 4. Only one option: sole_option
 5. Margin to the runner-up is under 1 point or under 5%: narrow_win
 6. Margin is under 3 points or under 15%: moderate_win
 7. Otherwise: decisive_win

The percentage margin is measured against the runner-up's score and is
100 when the runner-up scored 0. A margin of exactly 3 points at exactly
15% is decisive.

# Messages

A Verdict carries no text. MessageKey names the localized template and
Values supplies its named values (option, points, percent):

	v := outcome.Classify(results)
	text := translator.Render(v.MessageKey(), v.Values())
*/
package outcome
