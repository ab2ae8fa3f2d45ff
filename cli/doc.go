// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cli implements the qarari command line tool, an offline
// evaluator for decisions written as YAML files.
package cli
