package httpx

import (
	"net/http"
)

// PageMeta names the page being rendered.
type PageMeta struct {
	Title       string
	CurrentPage string
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{data: basePageData(r, meta)}
}

// With sets one template value.
func (b *TemplateDataBuilder) With(key string, v any) *TemplateDataBuilder {
	b.data[key] = v
	return b
}

// WithError sets the message shown in the page's error banner.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	if msg != "" {
		b.data["Error"] = msg
	}
	return b
}

// Build returns the assembled data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}

func basePageData(r *http.Request, meta PageMeta) map[string]any {
	data := map[string]any{
		"Title":       meta.Title,
		"CurrentPage": meta.CurrentPage,
		"Flash":       flashMessage(r.URL.Query().Get("done")),
	}
	if session, ok := GetSessionFromContext(r.Context()); ok {
		data["Session"] = session
		data["Username"] = session.Username
	}
	return data
}

// flashMessages maps the ?done= marker set by post-redirect-get handlers to a banner.
var flashMessages = map[string]string{ //nolint:gochecknoglobals // read-only lookup
	"created":  "Record created.",
	"updated":  "Record updated.",
	"deleted":  "Record deleted.",
	"cleared":  "All records cleared.",
	"password": "Password changed.",
}

func flashMessage(key string) string {
	return flashMessages[key]
}
