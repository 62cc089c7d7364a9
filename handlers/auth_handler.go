// handlers/auth_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bhavesh0907/organization-management-service-backend/services"
	"github.com/bhavesh0907/organization-management-service-backend/utils"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /auth/admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload format")
		return
	}

	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || !strings.Contains(creds.Email, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "Valid email required")
		return
	}
	if creds.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Password required")
		return
	}

	token, err := h.auth.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
