package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavesh0907/organization-management-service-backend/config"
	"github.com/bhavesh0907/organization-management-service-backend/database"
	"github.com/bhavesh0907/organization-management-service-backend/handlers"
	"github.com/bhavesh0907/organization-management-service-backend/middleware"
	"github.com/bhavesh0907/organization-management-service-backend/routes"
	"github.com/bhavesh0907/organization-management-service-backend/services"
)

func init() {
	config.JWTKey = []byte("test-signing-key")
	config.JWTExpiration = time.Hour
}

func newTestServer(t *testing.T) (*mux.Router, *database.MemStore) {
	t.Helper()

	store := database.NewMemStore()
	orgService := services.NewOrgService(store)
	authService := services.NewAuthService(store)

	router := mux.NewRouter()
	routes.RegisterRoutes(
		router,
		handlers.NewHealthHandler(nil),
		handlers.NewAuthHandler(authService),
		handlers.NewOrgHandler(orgService),
		middleware.Auth(authService),
	)
	return router, store
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req := httptest.NewRequest(method, path, &reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestOrganizationLifecycle(t *testing.T) {
	router, store := newTestServer(t)

	// Create.
	rec, body := doJSON(t, router, http.MethodPost, "/org/create", "", map[string]string{
		"organization_name": "Acme Inc",
		"email":             "a@x.com",
		"password":          "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	orgID := body["id"].(string)
	assert.NotEmpty(t, orgID)
	assert.Equal(t, "org_acme_inc", body["collection_name"])
	assert.Equal(t, "a@x.com", body["admin_email"])

	// Duplicate create conflicts.
	rec, _ = doJSON(t, router, http.MethodPost, "/org/create", "", map[string]string{
		"organization_name": "Acme Inc",
		"email":             "b@x.com",
		"password":          "secret2",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Get by name.
	rec, body = doJSON(t, router, http.MethodGet,
		"/org/get?organization_name="+url.QueryEscape("Acme Inc"), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, orgID, body["id"])

	// Login.
	rec, body = doJSON(t, router, http.MethodPost, "/auth/admin/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := body["access_token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "bearer", body["token_type"])

	// Seed tenant documents so the rename has something to migrate.
	store.AddDocument("org_acme_inc", map[string]interface{}{"k": "v1"})
	store.AddDocument("org_acme_inc", map[string]interface{}{"k": "v2"})

	// Rename + rotate credentials.
	rec, body = doJSON(t, router, http.MethodPut, "/org/update", token, map[string]string{
		"organization_name": "Acme Co",
		"email":             "b@x.com",
		"password":          "secret2",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, orgID, body["id"])
	assert.Equal(t, "org_acme_co", body["collection_name"])
	assert.Equal(t, "b@x.com", body["admin_email"])

	assert.False(t, store.HasCollection("org_acme_inc"))
	assert.Len(t, store.CollectionDocs("org_acme_co"), 2)

	// New credentials work, old ones do not.
	rec, _ = doJSON(t, router, http.MethodPost, "/auth/admin/login", "", map[string]string{
		"email": "a@x.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = doJSON(t, router, http.MethodPost, "/auth/admin/login", "", map[string]string{
		"email": "b@x.com", "password": "secret2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Delete requires the current name as confirmation.
	rec, _ = doJSON(t, router, http.MethodDelete, "/org/delete", token, map[string]string{
		"organization_name": "Acme Inc",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = doJSON(t, router, http.MethodDelete, "/org/delete", token, map[string]string{
		"organization_name": "Acme Co",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Organization deleted successfully.", body["detail"])
	assert.False(t, store.HasCollection("org_acme_co"))

	// Gone.
	rec, _ = doJSON(t, router, http.MethodGet,
		"/org/get?organization_name="+url.QueryEscape("Acme Co"), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateValidation(t *testing.T) {
	router, _ := newTestServer(t)

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"short name", map[string]string{"organization_name": "A", "email": "a@x.com", "password": "secret1"}},
		{"bad email", map[string]string{"organization_name": "Acme", "email": "not-an-email", "password": "secret1"}},
		{"short password", map[string]string{"organization_name": "Acme", "email": "a@x.com", "password": "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doJSON(t, router, http.MethodPost, "/org/create", "", tt.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, body["detail"])
		})
	}

	// Malformed JSON body.
	req := httptest.NewRequest(http.MethodPost, "/org/create", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginFailureShape(t *testing.T) {
	router, _ := newTestServer(t)

	_, _ = doJSON(t, router, http.MethodPost, "/org/create", "", map[string]string{
		"organization_name": "Acme Inc",
		"email":             "a@x.com",
		"password":          "secret1",
	})

	recWrong, bodyWrong := doJSON(t, router, http.MethodPost, "/auth/admin/login", "", map[string]string{
		"email": "a@x.com", "password": "wrongpass",
	})
	recUnknown, bodyUnknown := doJSON(t, router, http.MethodPost, "/auth/admin/login", "", map[string]string{
		"email": "nobody@x.com", "password": "secret1",
	})

	assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, bodyWrong, bodyUnknown)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestServer(t)

	rec, _ := doJSON(t, router, http.MethodPut, "/org/update", "", map[string]string{
		"organization_name": "Acme Co", "email": "b@x.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(t, router, http.MethodDelete, "/org/delete", "garbage-token", map[string]string{
		"organization_name": "Acme Co",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPut, "/org/update", bytes.NewBufferString("{}"))
	req.Header.Set("Authorization", "NotBearer xyz")
	raw := httptest.NewRecorder()
	router.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusUnauthorized, raw.Code)
}

func TestRenameConflictOverHTTP(t *testing.T) {
	router, _ := newTestServer(t)

	_, _ = doJSON(t, router, http.MethodPost, "/org/create", "", map[string]string{
		"organization_name": "Acme Inc", "email": "a@x.com", "password": "secret1",
	})
	_, _ = doJSON(t, router, http.MethodPost, "/org/create", "", map[string]string{
		"organization_name": "Other Org", "email": "o@x.com", "password": "secret1",
	})

	_, body := doJSON(t, router, http.MethodPost, "/auth/admin/login", "", map[string]string{
		"email": "o@x.com", "password": "secret1",
	})
	token := body["access_token"].(string)

	rec, _ := doJSON(t, router, http.MethodPut, "/org/update", token, map[string]string{
		"organization_name": "Acme Inc", "email": "o@x.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Other Org unchanged.
	rec, body = doJSON(t, router, http.MethodGet,
		"/org/get?organization_name="+url.QueryEscape("Other Org"), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "org_other_org", body["collection_name"])
}

func TestRootAndHealth(t *testing.T) {
	router, _ := newTestServer(t)

	rec, body := doJSON(t, router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Organization Management Service", body["service"])

	rec, body = doJSON(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}
