// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validation holds the rules a decision must pass before it is scored.

An option or criterion is valid when its name is non-blank after trimming.
Rules count and inspect valid rows only.

# Rules

  - HasTitle: title is non-blank
  - HasMinOptions: at least MinOptions (2) valid options
  - HasMinCriteria: at least MinCriteria (1) valid criterion
  - RatingsComplete: every valid option has a rating for every valid criterion
  - RatingsInRange: every such rating lies within 1..10

Each rule returns nil or an *Error carrying a Reason. Reason.MessageKey
names the localized message shown to the user:

	if err := validation.ValidateDraft(draft); err != nil {
		reason := validation.ReasonOf(err)
		msg := translator.T(reason.MessageKey())
	}

RatingsComplete is stricter than the scoring engine, which reads a missing
rating as 0. The two are independent: scoring never validates.
*/
package validation
