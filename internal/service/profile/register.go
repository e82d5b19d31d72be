package profile

import (
	"github.com/gorilla/mux"

	"github.com/petswipe/petswipe/internal/app"
)

// Registrar ties the profile service into the HTTP router
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the profile service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the profile routes to the router
func (reg *Registrar) Register(r *mux.Router) {
	service := NewService(reg.appCtx)

	r.HandleFunc("/users", service.Create).Methods("POST")
	r.HandleFunc("/users/{id}/photo", service.UploadPhoto).Methods("POST")
	r.HandleFunc("/users/{id}/photo", service.GetPhoto).Methods("GET")
	r.HandleFunc("/users/{id}", service.Get).Methods("GET")
	r.HandleFunc("/users/{id}", service.Update).Methods("PUT")
}
