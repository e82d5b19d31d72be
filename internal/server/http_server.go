package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/petswipe/petswipe/internal/config"
)

// NewRouter builds the full route table: health and welcome endpoints,
// machine-readable API docs, static photo serving under /uploads/, and
// every registered service.
func NewRouter(cfg *config.Config, registrars ...Registrar) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintln(w, "petswipe API")
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods("GET")

	r.HandleFunc("/api-docs", func(w http.ResponseWriter, req *http.Request) {
		RespondJSON(w, http.StatusOK, openAPIDoc())
	}).Methods("GET")

	// Stored photos are plain files named <profileId>.png.
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))),
	).Methods("GET")

	for _, reg := range registrars {
		reg.Register(r)
	}

	return r
}

// StartHTTPServer boots the HTTP server with CORS enabled and all
// provided services registered.
func StartHTTPServer(cfg *config.Config, registrars ...Registrar) error {
	router := NewRouter(cfg, registrars...)

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	return http.ListenAndServe(addr, handler)
}

// RespondJSON writes v as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeJSON decodes a JSON request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
