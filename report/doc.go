// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report turns a saved decision into what a result screen shows.

Build combines the verdict summary, the ratings matrix and the
recommendations for the top option into a models.DecisionView. RenderText
and RenderHTML write that view for a terminal or a browser. The HTML
report sets dir="rtl" for Arabic.
*/
package report
