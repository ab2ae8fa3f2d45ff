// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring sums ratings per option and ranks the options.

# Algorithm

For every option and every criterion the effective rating is the option's
rating for that criterion, or 0 when none was given. An option's score is
the sum of its effective ratings:

	results := scoring.ComputeResults(validOptions, validCriteria)

Options are ranked by score, highest first. Options with equal scores keep
the order they were passed in, so the same inputs always produce the same
ranking.

The highest possible score assumes every criterion rated at MaxRating:

	results.HighestPossibleScore == len(criteria) * 10

# Percentages

Percentage and RoundedPercentage express a score against the highest
possible score. Both return 0 when there are no criteria.
*/
package scoring
