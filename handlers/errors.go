// handlers/errors.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bhavesh0907/organization-management-service-backend/database"
	"github.com/bhavesh0907/organization-management-service-backend/services"
	"github.com/bhavesh0907/organization-management-service-backend/utils"
)

// respondServiceError maps service/store errors onto the HTTP taxonomy:
// Unauthorized, NotFound, Conflict, BadRequest; anything unexpected is a 500
// with a generic detail.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials.")
	case errors.Is(err, services.ErrInvalidToken):
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token.")
	case errors.Is(err, database.ErrOrgNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Organization not found.")
	case errors.Is(err, database.ErrNameTaken):
		utils.RespondWithError(w, http.StatusConflict, "Organization with this name already exists.")
	case errors.Is(err, services.ErrNameMismatch):
		utils.RespondWithError(w, http.StatusBadRequest, "Organization name mismatch.")
	default:
		log.Printf("internal error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error.")
	}
}
