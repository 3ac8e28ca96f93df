// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/arc-portal/internal/app"
	"github.com/go-chi/chi/v5"
)

// methodOrder is the order in which methods are listed in the Allow header.
var methodOrder = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers 405 with the uniform JSON error body and an Allow header
// listing the methods registered for the requested path. The lookup compares
// each route pattern of router against the raw request path, so only exact
// patterns are considered.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(router, r.URL.Path); allow != "" {
			w.Header().Set("Allow", allow)
		}
		writeMessage(w, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
	}
}

// allowedMethods lists the methods registered for path, comma separated.
func allowedMethods(router chi.Routes, path string) string {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}

		var methods []string
		for _, method := range methodOrder {
			if _, ok := route.Handlers[method]; ok {
				methods = append(methods, method)
			}
		}
		for method := range route.Handlers {
			if !slices.Contains(methodOrder, method) && method != "*" {
				methods = append(methods, method)
			}
		}
		return strings.Join(methods, ", ")
	}

	return ""
}
