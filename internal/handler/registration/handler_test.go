package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	registrationService "github.com/medidesk/frontdesk-api/internal/service/registration"
	"github.com/medidesk/frontdesk-api/internal/store"
)

func setupRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := store.Open(context.Background(), store.NewMemoryPersister(), nil)
	require.NoError(t, err)

	engine := gin.New()
	NewHandler(registrationService.NewService(s)).RegisterRoutes(engine.Group("/api/v1"))
	return engine, s
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	engine, s := setupRouter(t)

	w := postJSON(t, engine, "/api/v1/opd/registrations", map[string]any{
		"name":          "Emma Wilson",
		"age":           34,
		"gender":        "female",
		"contact":       "+1 234-567-8900",
		"address":       "123 Main St",
		"department":    "cardiology",
		"preferredDate": "2024-04-02",
		"preferredTime": "10:00",
		"symptoms":      "chest pain",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"submitted"`)

	assert.Len(t, s.Patients(), 1)
	assert.Len(t, s.Appointments(), 1)
}

func TestRegisterEndpointRejectsInvalidAge(t *testing.T) {
	engine, s := setupRouter(t)

	w := postJSON(t, engine, "/api/v1/opd/registrations", map[string]any{
		"name":          "Too Old",
		"age":           200,
		"gender":        "other",
		"contact":       "+1 234-567-8900",
		"address":       "123 Main St",
		"department":    "general",
		"preferredDate": "2024-04-02",
		"preferredTime": "09:00",
		"symptoms":      "fever",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Fields map[string][]string `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error.Fields, "age")

	assert.Empty(t, s.Patients())
	assert.Empty(t, s.Appointments())
}
