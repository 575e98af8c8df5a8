package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// MessagesNamespace is the namespace of the embedded validation catalogs.
const MessagesNamespace = "messages"

//go:embed locales
var locales embed.FS

// Default returns the instance backed by the embedded catalogs.
var Default = sync.OnceValue(func() *I18n {
	sub, err := fs.Sub(locales, "locales")
	if err != nil {
		panic(err)
	}
	i, err := New(WithYAMLDir(sub))
	if err != nil {
		panic(fmt.Sprintf("i18n: embedded catalogs: %v", err))
	}
	return i
})

// WithYAMLDir loads every {lang}/{namespace}.yaml (or .yml) file in fsys.
//
//	en/messages.yaml
//	de/messages.yml
func WithYAMLDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			ext := strings.ToLower(path.Ext(filePath))
			if ext != ".yaml" && ext != ".yml" {
				return nil
			}

			dir := path.Dir(filePath)
			if dir == "." {
				return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
			}

			data, err := fs.ReadFile(fsys, filePath)
			if err != nil {
				return fmt.Errorf("reading %q: %w", filePath, err)
			}

			var translations map[string]any
			if err := yaml.Unmarshal(data, &translations); err != nil {
				return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
			}

			lang := path.Base(dir)
			namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
			i.add(lang, namespace, translations)
			return nil
		})
	}
}
