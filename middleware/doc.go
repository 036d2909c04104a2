// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /{$}", middleware.WithLogging(handler))

Each request gets an id (a UUID unless the client sent X-Request-ID), echoed
in the X-Request-ID response header. Start and completion are logged with
the id, method, path, client IP, status and duration_ms.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
