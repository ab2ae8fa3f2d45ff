// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Language is a supported display language.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// Default is used when nothing in a request matches a supported language.
const Default = Arabic

var supported = []language.Tag{language.Arabic, language.English}

var matcher = language.NewMatcher(supported)

// Parse returns the supported language for a code like "en" or "ar-EG".
func Parse(code string) (Language, bool) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	lang := Language(base.String())
	if _, ok := catalogs[lang]; !ok {
		return "", false
	}
	return lang, true
}

// Match picks the best supported language for an Accept-Language header,
// falling back to fallback when nothing matches.
func Match(acceptLanguage string, fallback Language) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	base, _ := supported[index].Base()
	return Language(base.String())
}

// Translator resolves message templates for one language.
type Translator struct {
	lang     Language
	messages map[string]string
	printer  *message.Printer
}

// New returns a translator for lang, or for Default when lang is unsupported.
func New(lang Language) *Translator {
	messages, ok := catalogs[lang]
	if !ok {
		lang = Default
		messages = catalogs[lang]
	}
	return &Translator{
		lang:     lang,
		messages: messages,
		printer:  message.NewPrinter(language.Make(string(lang))),
	}
}

func (t *Translator) Language() Language {
	return t.lang
}

// Dir returns the text direction of the translator's language.
func (t *Translator) Dir() string {
	if t.lang == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Printer formats numbers for the translator's language.
func (t *Translator) Printer() *message.Printer {
	return t.printer
}

// T returns the template for key, or key itself when there is none.
func (t *Translator) T(key string) string {
	if msg, ok := t.messages[key]; ok {
		return msg
	}
	return key
}

// Render fills the {name} placeholders of key's template with values.
// Placeholders without a value are left as is.
func (t *Translator) Render(key string, values map[string]string) string {
	return Substitute(t.T(key), values)
}

// Substitute replaces {name} placeholders in template.
func Substitute(template string, values map[string]string) string {
	if len(values) == 0 {
		return template
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(values)*2)
	for _, name := range names {
		pairs = append(pairs, "{"+name+"}", values[name])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Keys lists the message keys defined for lang.
func Keys(lang Language) []string {
	keys := make([]string, 0, len(catalogs[lang]))
	for k := range catalogs[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
