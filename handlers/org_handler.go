// handlers/org_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavesh0907/organization-management-service-backend/middleware"
	"github.com/bhavesh0907/organization-management-service-backend/services"
	"github.com/bhavesh0907/organization-management-service-backend/utils"
)

type OrgHandler struct {
	orgs *services.OrgService
}

func NewOrgHandler(orgs *services.OrgService) *OrgHandler {
	return &OrgHandler{orgs: orgs}
}

type orgPayload struct {
	OrganizationName string `json:"organization_name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
}

func (p *orgPayload) validate() string {
	p.OrganizationName = strings.TrimSpace(p.OrganizationName)
	p.Email = strings.TrimSpace(p.Email)

	if len(p.OrganizationName) < 2 {
		return "organization_name must be at least 2 characters"
	}
	if p.Email == "" || !strings.Contains(p.Email, "@") {
		return "Valid email required"
	}
	if len(p.Password) < 6 {
		return "Password must be at least 6 characters"
	}
	return ""
}

// Create handles POST /org/create.
func (h *OrgHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload orgPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload format")
		return
	}
	if msg := payload.validate(); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	summary, err := h.orgs.Create(r.Context(), payload.OrganizationName, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, summary)
}

// Get handles GET /org/get?organization_name=...
func (h *OrgHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("organization_name"))
	if name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "organization_name query parameter is required")
		return
	}

	summary, err := h.orgs.GetByName(r.Context(), name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// Update handles PUT /org/update. The target organization comes from the
// bearer token; the body carries the new name and credentials.
func (h *OrgHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, ok := r.Context().Value(middleware.ContextOrgID).(primitive.ObjectID)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}

	var payload orgPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload format")
		return
	}
	if msg := payload.validate(); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	summary, err := h.orgs.RenameAndRotate(r.Context(), orgID, payload.OrganizationName, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// Delete handles DELETE /org/delete. The body must repeat the organization's
// current name as a confirmation.
func (h *OrgHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, ok := r.Context().Value(middleware.ContextOrgID).(primitive.ObjectID)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}

	var payload struct {
		OrganizationName string `json:"organization_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload format")
		return
	}
	if strings.TrimSpace(payload.OrganizationName) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "organization_name is required")
		return
	}

	if err := h.orgs.Delete(r.Context(), orgID, payload.OrganizationName); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"detail": "Organization deleted successfully.",
	})
}
