// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package i18n resolves user-facing message templates in Arabic and English.

Templates use named placeholders that callers fill in:

	tr := i18n.New(i18n.English)
	tr.Render("betterBy", map[string]string{"option": "Rome", "points": "1.0", "percent": "14.3"})
	// Rome is better by 1.0 points (14.3%)

The scoring and outcome packages never see template text; they only
supply the named values.

# Language Selection

Match negotiates an Accept-Language header against the supported
languages and Parse accepts an explicit code such as "en" or "ar-EG".
Arabic is the default.
*/
package i18n
