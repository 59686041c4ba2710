package httpx

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	corefuncs "github.com/target/finance-web/internal/http/templates/core"
)

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger // For logging template errors
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing every *.tmpl file in TemplateFS.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	t, err := template.New("root").Funcs(corefuncs.Funcs()).ParseFS(cfg.TemplateFS, "*.tmpl")
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed",
				slog.Any("error", err),
				slog.String("phase", "initialization"),
			)
		}
		return nil, err
	}
	return &TemplateRenderer{t: t, logger: cfg.Logger}, nil
}

// Render executes the page template into a buffer and writes it with status.
// Nothing reaches w if execution fails.
func (r *TemplateRenderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, page, data); err != nil {
		r.logTemplateError(page, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		if r.logger != nil {
			r.logger.Error("failed to write rendered template",
				slog.String("template", page),
				slog.Any("error", err),
			)
		}
		return err
	}

	return nil
}

// logTemplateError logs a template execution error with context.
func (r *TemplateRenderer) logTemplateError(templateName string, err error) {
	if r.logger == nil || err == nil {
		return
	}
	r.logger.Error("template execution failed",
		slog.String("template", templateName),
		slog.Any("error", err),
	)
}
