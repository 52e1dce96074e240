package render

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	rendertemplate "github.com/goliatone/go-resourcegen/pkg/render/template"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in templates so callers can extend them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// HTMLOption configures the html renderer.
type HTMLOption func(*htmlConfig)

type htmlConfig struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	theme            *theme.RendererConfig
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// templates/resource.tpl.
func WithTemplatesFS(files fs.FS) HTMLOption {
	return func(cfg *htmlConfig) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) HTMLOption {
	return func(cfg *htmlConfig) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme applies a resolved go-theme configuration. Tokens and CSS
// variables are exposed to the template and the theme stylesheet is linked
// when the config resolves one.
func WithTheme(cfg *theme.RendererConfig) HTMLOption {
	return func(c *htmlConfig) {
		c.theme = cfg
	}
}

// ThemeStylesheetKey is the asset key resolved through RendererConfig.AssetURL.
const ThemeStylesheetKey = "resourcegen.stylesheet"

// themeContext is the template-facing view of a RendererConfig.
type themeContext struct {
	Name         string
	Variant      string
	Tokens       map[string]string
	CSSVarsStyle string
	Stylesheet   string
}

// HTML renders a resource preview page.
type HTML struct {
	templates rendertemplate.TemplateRenderer
	theme     themeContext
}

// NewHTML constructs the html renderer applying any provided options.
func NewHTML(options ...HTMLOption) (*HTML, error) {
	cfg := htmlConfig{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := rendertemplate.New(
			rendertemplate.WithFS(cfg.templateFS),
			rendertemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &HTML{templates: renderer, theme: buildThemeContext(cfg.theme)}, nil
}

func buildThemeContext(cfg *theme.RendererConfig) themeContext {
	if cfg == nil {
		return themeContext{}
	}
	ctx := themeContext{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Tokens:  cfg.Tokens,
	}

	vars := cfg.CSSVars
	if len(vars) == 0 && len(cfg.Tokens) > 0 {
		vars = make(map[string]string, len(cfg.Tokens))
		for key, value := range cfg.Tokens {
			vars["--"+key] = value
		}
	}
	ctx.CSSVarsStyle = cssVarsStyle(vars)

	if cfg.AssetURL != nil {
		ctx.Stylesheet = cfg.AssetURL(ThemeStylesheetKey)
	}
	return ctx
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {")
	for _, key := range keys {
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}

func (r *HTML) Name() string {
	return "html"
}

func (r *HTML) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *HTML) Render(_ context.Context, view View) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	result, err := r.templates.RenderTemplate("templates/resource.tpl", map[string]any{
		"view":  view,
		"theme": r.theme,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}
