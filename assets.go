// Package financeweb provides embedded assets for production builds.
package financeweb

import "embed"

// Embedded page templates for production builds.
// In dev mode (IsDev=true), templates are loaded from disk for hot reloading.

//go:embed all:web/templates
var TemplateFS embed.FS
