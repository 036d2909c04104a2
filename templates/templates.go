// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package templates

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
)

// Page names
const (
	Index   = "index.html"
	Detail  = "detail.html"
	Results = "results.html"
	Error   = "error.html"
)

//go:embed html/*.html
var files embed.FS

var funcs = template.FuncMap{
	"since": func(then, now time.Time) string {
		return humanize.RelTime(then, now, "ago", "from now")
	},
	"comma": func(n int64) string {
		return humanize.Comma(n)
	},
	"pluralize": func(n int64, singular, plural string) string {
		if n == 1 {
			return singular
		}
		return plural
	},
}

var pages = template.Must(template.New("pages").Funcs(funcs).ParseFS(files, "html/*.html"))

// Render executes the named page into a buffer and writes it with the given
// status. Nothing is written if the template fails, so the caller never sends
// a half-rendered page.
func Render(w http.ResponseWriter, statusCode int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write response", "template", name, "error", err)
	}
}
