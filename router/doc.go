// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method patterns on the standard ServeMux:

	mux.HandleFunc("PUT /votes/{id}/validate", ...)

NewRouter wires the handlers with their injected dependencies (store,
lifecycle manager, broadcaster, catalog, config). CORS is applied
around the whole mux by main, not per-route.

Note the registration order: the literal /votes/mine pattern is more
specific than /votes/{id}, so ServeMux routes it correctly regardless
of order, but it is kept first for readability.
*/
package router
