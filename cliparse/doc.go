// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

	if err := cliparse.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadDotEnv reads a .env file if present. Variables already set in the
environment win.

# Flags and Environment Variables

	-p             PORT              Server port (default 3318)
	-t             DATABASE_TYPE     sqlite (default) or postgres
	-d             DATABASE_URL      Connection string (default qarari.db for sqlite)
	-base-url      BASE_URL          Prefix for share links
	-lang          DEFAULT_LANGUAGE  ar (default) or en
	-slug-salt     SHARE_SLUG_SALT   Secret for share slugs (required)
	-gemini-key    GEMINI_API_KEY    Enables AI insights
	-gemini-model  GEMINI_MODEL      Model name

CLI flags take precedence over environment variables.
*/
package cliparse
