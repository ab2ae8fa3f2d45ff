// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Qarari API server.

Qarari helps a person choose between options by rating each one against a
set of criteria on a 1 to 10 scale. Scores are summed, ranked and
classified (tie, narrow, moderate or decisive win) and the result is shown
in Arabic or English.

# Starting the Server

With no configuration the server uses a local SQLite file. A share slug
salt is always required:

	SHARE_SLUG_SALT=... go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..." -slug-salt ...

A .env file in the working directory is loaded first; real environment
variables win over it.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): DSN or SQLite path (default: qarari.db)
  - BASE_URL (-base-url): Public URL used in share links
  - DEFAULT_LANGUAGE (-lang): ar or en (default: ar)
  - SHARE_SLUG_SALT (-slug-salt): Secret for share slugs (required)
  - GEMINI_API_KEY (-gemini-key): Enables AI insights
  - GEMINI_MODEL (-gemini-model): Overrides the Gemini model

# Architecture

  - handlers: HTTP request handlers (decisions, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, language negotiation
  - decisions: Creating and editing decisions
  - scoring, outcome, validation: The decision engine
  - report: Result views and text/HTML reports
  - storage, db: The decision collection and its SQL key/value backing
  - insights: Gemini narratives
  - i18n: Arabic and English messages
  - auth: Decision IDs and share slugs
  - cliparse: Configuration parsing

The offline command line tool lives in cmd/qarari.
*/
package main
