// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package insights asks a language model for a short narrative about a
decision's outcome.

GeminiClient calls Google's generateContent endpoint. Rate limiting, 5xx
replies and transport failures are retried with backoff. Without an API
key every call returns ErrUnavailable, which the HTTP layer reports as
503 while the rest of the result view keeps working.
*/
package insights
