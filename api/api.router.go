package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/vesselworks/shorestation/api/resources"
	"github.com/vesselworks/shorestation/internal/hubservice"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
}

func NewRouter(svc *hubservice.HubService) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", r.resources.Telemetry.Health).Methods(http.MethodGet)
	api.HandleFunc("/transmissions", r.resources.Telemetry.ReceiveTransmission).Methods(http.MethodPost)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
