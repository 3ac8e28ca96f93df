package http

import (
	"net/http"
	"sort"

	"github.com/MKhiriev/arc-portal/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// legacyDocumentsPath is the attachment route name used by older portal
// pages. It serves the same handlers as documentsPath.
const legacyDocumentsPath = "/api/client-documents"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Method(http.MethodGet, metricsPath, promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Get("/api/session", h.session)
	})

	// data routes, optionally behind the session guard
	router.Group(func(r chi.Router) {
		if h.requireAuth {
			r.Use(h.auth)
		}

		resources := make([]string, 0, len(h.services.Collections))
		for resource := range h.services.Collections {
			resources = append(resources, resource)
		}
		sort.Strings(resources)

		for _, resource := range resources {
			svc := h.services.Collections[resource]
			path := "/api/" + resource

			r.Get(path, h.listRecords(svc))
			r.Post(path, h.createRecords(svc))
			r.Put(path, h.updateRecord(svc))
			r.Delete(path, h.deleteRecords(svc))
		}

		for _, path := range []string{documentsPath, legacyDocumentsPath} {
			r.Get(path, h.getDocuments)
			r.Post(path, h.uploadDocument)
		}
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, app.MsgNotFound)
	})

	return router
}
