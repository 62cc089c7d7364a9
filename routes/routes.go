package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bhavesh0907/organization-management-service-backend/handlers"
)

var (
	methodsGetOnly    = []string{"GET", "OPTIONS"}
	methodsPostOnly   = []string{"POST", "OPTIONS"}
	methodsPutOnly    = []string{"PUT", "OPTIONS"}
	methodsDeleteOnly = []string{"DELETE", "OPTIONS"}
)

// RegisterRoutes wires the HTTP surface. Create, get, and login are public;
// update and delete require a bearer token.
func RegisterRoutes(
	r *mux.Router,
	health *handlers.HealthHandler,
	auth *handlers.AuthHandler,
	org *handlers.OrgHandler,
	authMW mux.MiddlewareFunc,
) {
	r.HandleFunc("/", health.Root).Methods(methodsGetOnly...)
	r.HandleFunc("/health", health.HealthCheck).Methods(methodsGetOnly...)

	r.HandleFunc("/auth/admin/login", auth.Login).Methods(methodsPostOnly...)

	r.HandleFunc("/org/create", org.Create).Methods(methodsPostOnly...)
	r.HandleFunc("/org/get", org.Get).Methods(methodsGetOnly...)

	r.Handle("/org/update", authMW(http.HandlerFunc(org.Update))).Methods(methodsPutOnly...)
	r.Handle("/org/delete", authMW(http.HandlerFunc(org.Delete))).Methods(methodsDeleteOnly...)
}
