// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/qarari/models"
	"github.com/danielhkuo/qarari/scoring"
)

// Minimum counts of valid rows
const (
	MinOptions  = 2
	MinCriteria = 1
)

// ErrInvalid is matched by every rule failure via errors.Is.
var ErrInvalid = errors.New("invalid decision")

// validate is the package-level validator instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

var ratingTag = fmt.Sprintf("min=%d,max=%d", scoring.MinRating, scoring.MaxRating)

const idsTag = "unique,dive,required"

// Reason is a machine-readable validation failure code.
type Reason string

const (
	ReasonMissingTitle      Reason = "missing_title"
	ReasonTooFewOptions     Reason = "too_few_options"
	ReasonTooFewCriteria    Reason = "too_few_criteria"
	ReasonIncompleteRatings Reason = "incomplete_ratings"
	ReasonRatingOutOfRange  Reason = "rating_out_of_range"
	ReasonIDsNotUnique      Reason = "ids_not_unique"
)

// MessageKey returns the localization key describing the failure.
func (r Reason) MessageKey() string {
	switch r {
	case ReasonMissingTitle:
		return "enterTitle"
	case ReasonTooFewOptions:
		return "enterTwoOptions"
	case ReasonTooFewCriteria:
		return "enterOneCriterion"
	case ReasonIncompleteRatings:
		return "rateAllOptions"
	case ReasonRatingOutOfRange:
		return "ratingOutOfRange"
	case ReasonIDsNotUnique:
		return "idsNotUnique"
	default:
		return string(r)
	}
}

// Error is a failed rule. OptionID and CriterionID point at the offending
// rating for rating rules.
type Error struct {
	Reason      Reason
	OptionID    string
	CriterionID string
}

func (e *Error) Error() string {
	if e.OptionID != "" {
		return fmt.Sprintf("%s: option %s, criterion %s", e.Reason, e.OptionID, e.CriterionID)
	}
	return string(e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

// ReasonOf extracts the reason from a rule failure, or "" for other errors.
func ReasonOf(err error) Reason {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Reason
	}
	return ""
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidOptions keeps options whose trimmed name is non-empty.
func ValidOptions(options []models.Option) []models.Option {
	valid := make([]models.Option, 0, len(options))
	for _, o := range options {
		if !isBlank(o.Name) {
			valid = append(valid, o)
		}
	}
	return valid
}

// ValidCriteria keeps criteria whose trimmed name is non-empty.
func ValidCriteria(criteria []models.Criterion) []models.Criterion {
	valid := make([]models.Criterion, 0, len(criteria))
	for _, c := range criteria {
		if !isBlank(c.Name) {
			valid = append(valid, c)
		}
	}
	return valid
}

func HasTitle(title string) error {
	if isBlank(title) {
		return &Error{Reason: ReasonMissingTitle}
	}
	return nil
}

func HasMinOptions(options []models.Option, min int) error {
	if len(ValidOptions(options)) < min {
		return &Error{Reason: ReasonTooFewOptions}
	}
	return nil
}

func HasMinCriteria(criteria []models.Criterion, min int) error {
	if len(ValidCriteria(criteria)) < min {
		return &Error{Reason: ReasonTooFewCriteria}
	}
	return nil
}

// IDsUnique requires every valid option and every valid criterion to carry
// a non-empty ID that no other row of the same kind uses. Ratings and
// results are keyed by these IDs.
func IDsUnique(options []models.Option, criteria []models.Criterion) error {
	valid := ValidOptions(options)
	optionIDs := make([]string, len(valid))
	for i, o := range valid {
		optionIDs[i] = strings.TrimSpace(o.ID)
	}
	if validate.Var(optionIDs, idsTag) != nil {
		return &Error{Reason: ReasonIDsNotUnique}
	}

	validCriteria := ValidCriteria(criteria)
	criterionIDs := make([]string, len(validCriteria))
	for i, c := range validCriteria {
		criterionIDs[i] = strings.TrimSpace(c.ID)
	}
	if validate.Var(criterionIDs, idsTag) != nil {
		return &Error{Reason: ReasonIDsNotUnique}
	}
	return nil
}

// RatingsComplete requires a defined rating for every valid option and
// valid criterion. A defined rating of 0 still counts as present.
func RatingsComplete(options []models.Option, criteria []models.Criterion) error {
	for _, o := range ValidOptions(options) {
		for _, c := range ValidCriteria(criteria) {
			if _, ok := o.Ratings[c.ID]; !ok {
				return &Error{Reason: ReasonIncompleteRatings, OptionID: o.ID, CriterionID: c.ID}
			}
		}
	}
	return nil
}

// RatingsInRange requires every defined rating of a valid option for a
// valid criterion to lie on the rating scale. Missing ratings are left to
// RatingsComplete.
func RatingsInRange(options []models.Option, criteria []models.Criterion) error {
	for _, o := range ValidOptions(options) {
		for _, c := range ValidCriteria(criteria) {
			rating, ok := o.Ratings[c.ID]
			if !ok {
				continue
			}
			if err := validate.Var(rating, ratingTag); err != nil {
				return &Error{Reason: ReasonRatingOutOfRange, OptionID: o.ID, CriterionID: c.ID}
			}
		}
	}
	return nil
}

// ValidateDraft applies every rule in form order and returns the first failure.
func ValidateDraft(draft models.DecisionDraft) error {
	checks := []func() error{
		func() error { return HasTitle(draft.Title) },
		func() error { return HasMinOptions(draft.Options, MinOptions) },
		func() error { return HasMinCriteria(draft.Criteria, MinCriteria) },
		func() error { return IDsUnique(draft.Options, draft.Criteria) },
		func() error { return RatingsComplete(draft.Options, draft.Criteria) },
		func() error { return RatingsInRange(draft.Options, draft.Criteria) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
