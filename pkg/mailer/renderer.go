package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/dmitrymomot/richmail/pkg/sanitizer"
)

// Renderer wraps message bodies in markdown templates and HTML layouts.
type Renderer struct {
	fs fs.FS
	md goldmark.Markdown

	// Parsed structure only; rendered output is never cached.
	templates   map[string]*cachedTemplate
	layouts     map[string]*template.Template
	templateDir string
	layoutDir   string

	mu sync.RWMutex
}

type cachedTemplate struct {
	meta *Template
	tmpl *texttemplate.Template
}

// RendererConfig configures where templates and layouts are looked up.
type RendererConfig struct {
	TemplateDir string // default "."
	LayoutDir   string // default "layouts"
}

// NewRenderer creates a renderer with the default directory layout.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom directories.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:          filesystem,
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
		// Body HTML is embedded in the markdown as raw blocks and must survive
		// conversion. The output is sanitized afterwards.
		md: goldmark.New(
			goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		templates: make(map[string]*cachedTemplate),
		layouts:   make(map[string]*template.Template),
	}
}

// LayoutData is passed to templates and layouts.
type LayoutData struct {
	Metadata map[string]any
	Title    string
	Subject  string
	// Content is the rendered message body as HTML.
	Content string
}

// RenderResult holds the final HTML, its plain text alternative and the
// template metadata.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string
}

// Render wraps data.Content in the named template and layout. An empty
// template name uses the content as is; an empty layout name returns the
// sanitized body without an outer document.
func (r *Renderer) Render(layout, templateName string, data LayoutData) (*RenderResult, error) {
	body := data.Content
	metadata := map[string]any{}

	if templateName != "" {
		cached, err := r.template(templateName)
		if err != nil {
			return nil, err
		}
		metadata = cached.meta.Metadata
		data.Metadata = metadata

		var markdown bytes.Buffer
		if err := cached.tmpl.Execute(&markdown, data); err != nil {
			return nil, fmt.Errorf("%w: execute template %s: %v", ErrRenderFailed, templateName, err)
		}

		var converted bytes.Buffer
		if err := r.md.Convert(markdown.Bytes(), &converted); err != nil {
			return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
		}
		body = converted.String()
	}

	body = sanitizer.SanitizeHTML(body)
	result := &RenderResult{
		Metadata: metadata,
		HTML:     body,
		Text:     sanitizer.PlainText(body),
	}

	if layout == "" {
		return result, nil
	}

	layoutTmpl, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err = layoutTmpl.Execute(&out, map[string]any{
		"Content":  template.HTML(body), //nolint:gosec // sanitized above
		"Title":    data.Title,
		"Subject":  data.Subject,
		"Metadata": metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}
	result.HTML = out.String()

	return result, nil
}

func (r *Renderer) template(name string) (*cachedTemplate, error) {
	return load(r, r.templates, name, func() (*cachedTemplate, error) {
		content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
		}

		parsed, err := ParseTemplate(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
		}

		tmpl, err := texttemplate.New(name).Option("missingkey=zero").Parse(parsed.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: parse template %s: %v", ErrRenderFailed, name, err)
		}

		return &cachedTemplate{meta: parsed, tmpl: tmpl}, nil
	})
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	return load(r, r.layouts, name, func() (*template.Template, error) {
		content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
		}

		tmpl, err := template.New(name).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
		}
		return tmpl, nil
	})
}

// load returns the cached value for key, building and storing it on a miss.
func load[T any](r *Renderer, cache map[string]T, key string, build func() (T, error)) (T, error) {
	r.mu.RLock()
	v, ok := cache[key]
	r.mu.RUnlock()
	if ok {
		return v, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := cache[key]; ok {
		return v, nil
	}

	v, err := build()
	if err != nil {
		return v, err
	}
	cache[key] = v
	return v, nil
}

// Subject picks the first non-empty of the explicit subject, the template's
// subject metadata and the fallback.
func Subject(explicit string, metadata map[string]any, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if s, ok := (&Template{Metadata: metadata}).String("subject"); ok && s != "" {
		return s
	}
	return fallback
}
