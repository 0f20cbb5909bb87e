// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

  - WithLogging: per-request structured log with status and duration
  - JSONResponse / ErrorResponse: JSON envelope writers
  - ParseJSONBody: request body decoding
  - CORS: cross-origin headers for the browser frontend, including the
    X-Admin-Key and X-Voter-Token request headers
  - GetClientIP: X-Forwarded-For / X-Real-IP aware client address

The logging wrapper forwards http.Flusher so the event-stream handler
can flush frames through it.
*/
package middleware
