// Package i18n provides translation lookup for outbound email and flash
// messages. Locale tables are YAML files embedded at build time and loaded
// once at startup; lookup is by exact dotted key.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yml
var localeFS embed.FS

// Bundle maps (locale, key) to a translated string.
type Bundle struct {
	defaultLocale string
	messages      map[string]map[string]string
}

// Load parses every embedded locale file. Each file must contain a single
// top-level key naming its locale (the Rails i18n layout), e.g.
//
//	en:
//	  contact_mailer:
//	    confirmation:
//	      subject: "..."
func Load(defaultLocale string) (*Bundle, error) {
	b := &Bundle{
		defaultLocale: defaultLocale,
		messages:      make(map[string]map[string]string),
	}

	entries, err := fs.Glob(localeFS, "locales/*.yml")
	if err != nil {
		return nil, err
	}

	for _, name := range entries {
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, err
		}

		var root map[string]map[string]any
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}

		for locale, tree := range root {
			flat := b.messages[locale]
			if flat == nil {
				flat = make(map[string]string)
				b.messages[locale] = flat
			}
			flatten("", tree, flat)
		}
	}

	if _, ok := b.messages[defaultLocale]; !ok {
		return nil, fmt.Errorf("i18n: default locale %q has no translations", defaultLocale)
	}
	return b, nil
}

// flatten joins nested map keys with dots: contact_mailer.confirmation.subject.
func flatten(prefix string, tree map[string]any, out map[string]string) {
	for key, val := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := val.(type) {
		case map[string]any:
			flatten(full, v, out)
		case string:
			out[full] = v
		default:
			out[full] = fmt.Sprint(v)
		}
	}
}

// DefaultLocale returns the locale used when none is selected.
func (b *Bundle) DefaultLocale() string {
	return b.defaultLocale
}

// Supported reports whether the bundle has translations for the locale.
func (b *Bundle) Supported(locale string) bool {
	_, ok := b.messages[locale]
	return ok
}

// Locales returns the supported locales in sorted order.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.messages))
	for l := range b.messages {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// T resolves key in the given locale, falling back to the default locale and
// finally to the key itself so a missing translation is visible, not fatal.
func (b *Bundle) T(locale, key string) string {
	if flat, ok := b.messages[locale]; ok {
		if s, ok := flat[key]; ok {
			return s
		}
	}
	if locale != b.defaultLocale {
		if s, ok := b.messages[b.defaultLocale][key]; ok {
			return s
		}
	}
	return key
}

// Tf resolves key like T and substitutes %{name}-style placeholders.
func (b *Bundle) Tf(locale, key string, vars map[string]string) string {
	s := b.T(locale, key)
	for k, v := range vars {
		s = strings.ReplaceAll(s, "%{"+k+"}", v)
	}
	return s
}
