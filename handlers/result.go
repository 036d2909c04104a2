// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollsite/models"
	"github.com/danielhkuo/pollsite/templates"
)

// Kind tags the outcome of a request
type Kind int

const (
	KindFound Kind = iota
	KindNotFound
	KindRedirect
	KindInvalid
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindFound:
		return "found"
	case KindNotFound:
		return "not_found"
	case KindRedirect:
		return "redirect"
	case KindInvalid:
		return "invalid"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is what a handler decided; respond turns it into an HTTP response
type Result struct {
	Kind     Kind
	Template string // page rendered for KindFound and KindInvalid
	Data     any
	Location string // target for KindRedirect
	Err      error  // cause for KindError
}

func found(template string, data any) Result {
	return Result{Kind: KindFound, Template: template, Data: data}
}

func notFound() Result {
	return Result{Kind: KindNotFound}
}

func redirect(location string) Result {
	return Result{Kind: KindRedirect, Location: location}
}

func invalid(template string, data any) Result {
	return Result{Kind: KindInvalid, Template: template, Data: data}
}

func failed(err error) Result {
	return Result{Kind: KindError, Err: err}
}

// respond writes a Result. Every Kind produces a response.
func respond(w http.ResponseWriter, r *http.Request, res Result) {
	switch res.Kind {
	case KindFound:
		templates.Render(w, http.StatusOK, res.Template, res.Data)
	case KindInvalid:
		templates.Render(w, http.StatusBadRequest, res.Template, res.Data)
	case KindRedirect:
		http.Redirect(w, r, res.Location, http.StatusFound)
	case KindNotFound:
		renderError(w, http.StatusNotFound, "")
	default:
		slog.Error("request failed", "path", r.URL.Path, "error", res.Err)
		renderError(w, http.StatusInternalServerError, "Database error")
	}
}

func renderError(w http.ResponseWriter, status int, message string) {
	templates.Render(w, status, templates.Error, errorPage(status, message))
}

func errorPage(status int, message string) models.ErrorPage {
	return models.ErrorPage{
		Status:  status,
		Title:   http.StatusText(status),
		Message: message,
	}
}
