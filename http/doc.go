// Package http provides the HTTP boundary for the menagerie animal store.
//
// The API is mounted under /api/animals:
//
//   - GET /api/animals lists records, filtered by the recognized query keys
//     (personalityTraits, diet, species, name); criteria are conjunctive
//   - GET /api/animals/{id} returns one record, or a bare 404 when absent
//   - POST /api/animals validates and appends a record, returning it with
//     its assigned id
//
// Every other path is served as a static page from the configured directory,
// with / mapping to index.html and a built-in HTML 404 page for misses.
//
// # Usage
//
// Create a handler with HandlerConfig:
//
//	handlerCfg := http.HandlerConfig{StaticDir: "./static"}
//	handler := http.NewHandler(&handlerCfg, service)
//	http.ListenAndServe(":8080", handler.Router())
//
// The service parameter must implement the Service interface with List, Get,
// and Create methods.
//
// # Middleware
//
// The router installs request-id, logging, and panic-recovery middleware, and
// optionally CORS when enabled in the configuration. Errors map to JSON
// responses via HandleError; the missing-by-id case intentionally responds
// with a bare status and no body.
package http
