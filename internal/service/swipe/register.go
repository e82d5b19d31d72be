package swipe

import (
	"github.com/gorilla/mux"

	"github.com/petswipe/petswipe/internal/app"
)

// Registrar ties the swipe service into the HTTP router
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the swipe service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the swipe routes to the router
func (reg *Registrar) Register(r *mux.Router) {
	service := NewService(reg.appCtx)

	r.HandleFunc("/users/{userId}/like", service.PutDecision).Methods("POST")
	r.HandleFunc("/users/{userId}/likes", service.ListDecisions).Methods("GET")
	r.HandleFunc("/users/{userId}/likedcount", service.LikedCount).Methods("GET")
	r.HandleFunc("/users/{userId}/smashorpass", service.Candidates).Methods("GET")
}
