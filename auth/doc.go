// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth generates decision IDs and share slugs.

# Decision IDs

	id := auth.NewDecisionID() // random UUID

# Share Slugs

Share slugs are short URL-friendly identifiers for a shared decision:

	slug := auth.ShareSlug(decisionID, salt)

Slugs are base62 encoded (alphanumeric only) and deterministic from the
decision ID and salt, so nothing extra is stored. MatchShareSlug checks a
slug in constant time.
*/
package auth
