package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var builtin embed.FS

// ErrInvalidLocale indicates a locale string that is not a BCP 47 tag.
var ErrInvalidLocale = errors.New("i18n: invalid locale")

// Translator formats messages for one locale.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
	keys    int
}

// English returns a translator that prints keys unchanged.
func English() *Translator {
	t, _ := newTranslator(language.English, nil)
	return t
}

// Load builds a translator for locale.
//
// The catalog is read from dir when it contains a file for the locale or
// its base language, otherwise from the built-in catalogs. A locale
// without any catalog prints English.
func Load(dir, locale string) (*Translator, error) {
	if locale == "" {
		return English(), nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, locale, err)
	}

	messages, err := readCatalog(dir, tag)
	if err != nil {
		return nil, err
	}
	return newTranslator(tag, messages)
}

func newTranslator(tag language.Tag, messages map[string]string) (*Translator, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	keys := make([]string, 0, len(messages))
	for k := range messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := b.SetString(tag, k, messages[k]); err != nil {
			return nil, fmt.Errorf("i18n: message %q: %w", k, err)
		}
	}

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
		keys:    len(messages),
	}, nil
}

// T translates key and formats it with args.
func (t *Translator) T(key string, args ...any) string {
	if t == nil || t.printer == nil {
		if len(args) == 0 {
			return key
		}
		return fmt.Sprintf(key, args...)
	}
	if len(args) == 0 && t.keys == 0 {
		return key
	}
	return t.printer.Sprintf(key, args...)
}

// Tag returns the translator's language.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// Len returns the number of translated messages.
func (t *Translator) Len() int {
	return t.keys
}

// readCatalog tries <tag>.yaml then <base>.yaml, first in dir and then in
// the built-in catalogs. No file at all yields an empty catalog.
func readCatalog(dir string, tag language.Tag) (map[string]string, error) {
	names := []string{tag.String() + ".yaml"}
	if base, conf := tag.Base(); conf != language.No && base.String() != tag.String() {
		names = append(names, base.String()+".yaml")
	}

	if dir != "" {
		for _, name := range names {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("i18n: %w", err)
			}
			return parseCatalog(filepath.Join(dir, name), data)
		}
	}

	for _, name := range names {
		data, err := builtin.ReadFile("locales/" + name)
		if err != nil {
			continue
		}
		return parseCatalog("builtin:"+name, data)
	}
	return nil, nil
}

func parseCatalog(source string, data []byte) (map[string]string, error) {
	var messages map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("i18n: parsing %s: %w", source, err)
	}
	return messages, nil
}

// Available lists the built-in locale tags.
func Available() []string {
	entries, err := builtin.ReadDir("locales")
	if err != nil {
		return nil
	}
	tags := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		tags = append(tags, name[:len(name)-len(filepath.Ext(name))])
	}
	sort.Strings(tags)
	return tags
}
