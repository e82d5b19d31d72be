package messaging

import (
	"github.com/gorilla/mux"

	"github.com/petswipe/petswipe/internal/app"
)

// Registrar ties the messaging service into the HTTP router
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the messaging service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the messaging routes to the router
func (reg *Registrar) Register(r *mux.Router) {
	service := NewService(reg.appCtx)

	r.HandleFunc("/messages/send", service.Send).Methods("POST")
}
