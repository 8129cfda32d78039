// Package locale translates the shell's user-facing strings.
package locale

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Translator looks up messages for one language, falling back to English.
type Translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// New loads the embedded message files and returns a translator for lang.
func New(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(messageFS, "messages/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list message files: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(messageFS, file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	requested, err := language.Parse(lang)
	if err != nil {
		requested = language.English
	}
	_, index, _ := matcher.Match(requested)
	tag := bundle.LanguageTags()[index]

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

// Language returns the matched language, e.g. "en" or "fr".
func (t *Translator) Language() string {
	base, _ := t.tag.Base()
	return base.String()
}

// T returns the message for id, or id itself when no translation exists.
func (t *Translator) T(id string) string {
	return t.Tf(id, nil)
}

// Tf renders the message for id with template data.
func (t *Translator) Tf(id string, data map[string]any) string {
	if t == nil {
		return id
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
