package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newProfileRouter(t *testing.T, store Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewHandler(NewService(store)).RegisterRoutes(r.Group("/api"))
	return r
}

func request(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProfileReturnsDefault(t *testing.T) {
	r := newProfileRouter(t, NewMemoryStore())

	w := request(r, http.MethodGet, "/api/profile", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var p UserProfile
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name != "John Doe" {
		t.Fatalf("name = %q", p.Name)
	}
	// Empty collections serialize as [] rather than null.
	if !strings.Contains(w.Body.String(), `"education":[]`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestUpdateProfileEndpoint(t *testing.T) {
	store := NewMemoryStore()
	r := newProfileRouter(t, store)

	w := request(r, http.MethodPost, "/api/profile/update", `{"name":"Grace Hopper"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Profile updated successfully") {
		t.Fatalf("body = %s", w.Body.String())
	}
	if store.Load().Name != "Grace Hopper" {
		t.Fatal("update not persisted")
	}
}

func TestUpdateProfileEndpointBadBody(t *testing.T) {
	r := newProfileRouter(t, NewMemoryStore())

	w := request(r, http.MethodPost, "/api/profile/update", `{"name":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestUpdateEducationEndpoint(t *testing.T) {
	store := NewMemoryStore()
	p := Default()
	p.Education = []EducationEntry{{ID: "e1", Degree: "BA", Field: "Economics"}}
	store.Save(p)
	r := newProfileRouter(t, store)

	w := request(r, http.MethodPut, "/api/profile/education/e1", `{"field":"Computer Science"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message   string         `json:"message"`
		Education EducationEntry `json:"education"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Education.Field != "Computer Science" || resp.Education.Degree != "BA" {
		t.Fatalf("education = %+v", resp.Education)
	}
}

func TestUpdateEducationEndpointNotFound(t *testing.T) {
	r := newProfileRouter(t, NewMemoryStore())

	w := request(r, http.MethodPut, "/api/profile/education/ghost", `{"degree":"PhD"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not_found") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestUpdateProfileEndpointSaveFailure(t *testing.T) {
	store := NewMemoryStore()
	store.FailSaves = true
	r := newProfileRouter(t, store)

	w := request(r, http.MethodPost, "/api/profile/update", `{"name":"Grace"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
}
