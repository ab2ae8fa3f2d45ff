// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the qarari API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg, gen)

gen may be nil; the insights endpoint then always answers 503.

# Endpoints

	GET    /health                   - Liveness
	GET    /                         - Banner

	POST   /decisions                - Validate, score and save a draft
	GET    /decisions?limit=N        - Summaries, newest first
	DELETE /decisions                - Remove every decision

	GET    /decisions/{id}           - Result view
	PUT    /decisions/{id}           - Edit and rescore
	DELETE /decisions/{id}           - Remove one decision

	GET    /decisions/{id}/report    - Printable HTML report
	POST   /decisions/{id}/share     - Share link and message
	GET    /shared/{slug}            - Result view by share slug
	POST   /decisions/{id}/insights  - AI narrative

Responses are localized by ?lang= or Accept-Language.
*/
package router
