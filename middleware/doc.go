// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by the handlers.

# Logging

WithLogging logs the start and end of every request with slog, including
the response status and duration:

	mux.HandleFunc("POST /decisions", middleware.WithLogging(h.Create))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusCreated, view)
	middleware.ErrorResponse(w, http.StatusNotFound, message)
	middleware.ReasonResponse(w, http.StatusBadRequest, "missing_title", message)

ParseJSONBody decodes a request body of at most MaxBodyBytes.

# Language

Language resolves the response language from ?lang=, then
Accept-Language, then the configured default.

# CORS

CORS reflects the request origin and answers preflight requests.
*/
package middleware
