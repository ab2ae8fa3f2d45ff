// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/qarari/decisions"
	"github.com/danielhkuo/qarari/i18n"
	"github.com/danielhkuo/qarari/models"
	"github.com/danielhkuo/qarari/report"
	"github.com/danielhkuo/qarari/validation"
)

// InvalidDecisionError reports a draft that failed validation. Message is
// localized.
type InvalidDecisionError struct {
	Reason  validation.Reason
	Message string
}

func (e *InvalidDecisionError) Error() string {
	return e.Message
}

func newEvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <file.yaml>",
		Short: "Score a decision from a YAML file",
		Long: `Score a decision from a YAML file.

The file holds a title, an optional description, the options with their
ratings keyed by criterion id, and the criteria:

  title: Where to travel
  options:
    - id: rome
      name: Rome
      ratings: {price: 7, weather: 9}
  criteria:
    - id: price
      name: Price

The summary, ratings matrix and recommendations are printed in the chosen
language.`,
		Args: cobra.ExactArgs(1),
		RunE: runEvaluate,
	}
	cmd.Flags().String("lang", string(i18n.Default), "Output language: ar | en")
	cmd.Flags().String("format", "text", "Output format: text | json | html")
	return cmd
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	langCode, err := cmd.Flags().GetString("lang")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	lang, ok := i18n.Parse(langCode)
	if !ok {
		return fmt.Errorf("unsupported language %q", langCode)
	}
	if format != "text" && format != "json" && format != "html" {
		return fmt.Errorf("unsupported format %q (want text, json or html)", format)
	}

	draft, err := loadDraft(args[0])
	if err != nil {
		return err
	}

	tr := i18n.New(lang)
	d, err := decisions.Create(draft, "", time.Time{})
	if err != nil {
		reason := validation.ReasonOf(err)
		if reason == "" {
			return err
		}
		return &InvalidDecisionError{Reason: reason, Message: tr.T(reason.MessageKey())}
	}
	slog.Debug("decision evaluated", "title", d.Title, "options", len(d.Options), "criteria", len(d.Criteria))

	return writeView(cmd.OutOrStdout(), report.Build(d, tr), tr, format)
}

func loadDraft(path string) (models.DecisionDraft, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.DecisionDraft{}, fmt.Errorf("opening decision file: %w", err)
	}
	defer f.Close()

	var draft models.DecisionDraft
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&draft); err != nil {
		if err == io.EOF {
			return models.DecisionDraft{}, fmt.Errorf("decision file %s is empty", path)
		}
		return models.DecisionDraft{}, fmt.Errorf("parsing decision file %s: %w", path, err)
	}
	return draft, nil
}

func writeView(w io.Writer, view models.DecisionView, tr *i18n.Translator, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case "html":
		return report.RenderHTML(w, view, tr)
	default:
		return report.RenderText(w, view, tr)
	}
}
