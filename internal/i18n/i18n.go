// Package i18n resolves message ids against the embedded locale catalogues.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLocale is used when nothing better matches.
const DefaultLocale = "en"

// Bundle holds the messages of every known locale.
type Bundle struct {
	tags     []language.Tag
	messages map[language.Tag]map[string]string
	matcher  language.Matcher
}

// Load parses the embedded catalogues. The default locale is always first so
// the matcher falls back to it.
func Load() (*Bundle, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}

	b := &Bundle{messages: make(map[language.Tag]map[string]string)}
	var others []language.Tag
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".yaml" {
			continue
		}
		tag, err := language.Parse(strings.TrimSuffix(name, ".yaml"))
		if err != nil {
			return nil, fmt.Errorf("locale file %s: %w", name, err)
		}
		data, err := localeFS.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, err
		}
		messages := make(map[string]string)
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("parse locale file %s: %w", name, err)
		}
		b.messages[tag] = messages
		if tag.String() != DefaultLocale {
			others = append(others, tag)
		}
	}

	base := language.Make(DefaultLocale)
	if _, ok := b.messages[base]; !ok {
		return nil, fmt.Errorf("default locale %q missing", DefaultLocale)
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	b.tags = append([]language.Tag{base}, others...)
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Locales lists the available locales, default first.
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.tags))
	for i, tag := range b.tags {
		out[i] = tag.String()
	}
	return out
}

// Translator returns a translator for the best match of the requested
// locales, such as "ru-RU" or an Accept-Language style "ru;q=0.9, en".
func (b *Bundle) Translator(requested ...string) *Translator {
	var wanted []language.Tag
	for _, req := range requested {
		tags, _, err := language.ParseAcceptLanguage(req)
		if err != nil {
			continue
		}
		wanted = append(wanted, tags...)
	}
	_, index, _ := b.matcher.Match(wanted...)
	tag := b.tags[index]
	return &Translator{
		locale:   tag.String(),
		messages: b.messages[tag],
		fallback: b.messages[b.tags[0]],
	}
}

// Translator looks up ids for a single locale.
type Translator struct {
	locale   string
	messages map[string]string
	fallback map[string]string
}

// Locale returns the matched locale.
func (t *Translator) Locale() string { return t.locale }

// Translate implements ports.Translator. Unknown ids fall back to the default
// locale and then to the id itself.
func (t *Translator) Translate(id string) string {
	if msg, ok := t.messages[id]; ok {
		return msg
	}
	if msg, ok := t.fallback[id]; ok {
		return msg
	}
	return id
}

var _ ports.Translator = (*Translator)(nil)
