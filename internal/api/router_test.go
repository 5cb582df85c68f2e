package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/platform/auth"
)

type stubStoreRepo struct {
	stores []*domain.Store
}

func (f *stubStoreRepo) ListStores(context.Context) ([]*domain.Store, error) { return f.stores, nil }
func (f *stubStoreRepo) ListActiveStores(context.Context) ([]*domain.Store, error) {
	return f.stores, nil
}
func (f *stubStoreRepo) GetStore(_ context.Context, id int64) (*domain.Store, error) {
	for _, s := range f.stores {
		if s.StoreID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}
func (f *stubStoreRepo) CreateStore(_ context.Context, s *domain.Store) (int64, error) {
	s.StoreID = int64(len(f.stores) + 1)
	f.stores = append(f.stores, s)
	return s.StoreID, nil
}
func (f *stubStoreRepo) UpdateStore(context.Context, *domain.Store) error { return nil }

type stubManagerRepo struct {
	manager *domain.Manager
}

func (f *stubManagerRepo) GetManagerByEmail(_ context.Context, email string) (*domain.Manager, error) {
	if f.manager != nil && f.manager.Email == email {
		return f.manager, nil
	}
	return nil, domain.ErrNotFound
}
func (f *stubManagerRepo) CreateManager(_ context.Context, m *domain.Manager) (int64, error) {
	m.ManagerID = 1
	return 1, nil
}

func testRouter(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	hash, err := auth.HashPassword("hunter2-hunter2")
	require.NoError(t, err)

	r := NewRouter(Deps{
		Logger: zap.NewNop(),
		Tokens: tokens,
		Stores: &stubStoreRepo{stores: []*domain.Store{
			{StoreID: 1, Name: "Central", Address: "1 Main St", Active: true},
		}},
		Managers: &stubManagerRepo{manager: &domain.Manager{
			ManagerID: 1, Name: "Ops", Email: "ops@example.com",
			PasswordHash: hash, Role: domain.RoleAdmin,
		}},
		CORSOrigins: []string{"http://localhost:3000"},
	})
	return r, tokens
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginThenListStores(t *testing.T) {
	r, _ := testRouter(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "ops@example.com",
		"password": "hunter2-hunter2",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stores []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stores))
	assert.Len(t, stores, 1)
	assert.Equal(t, "Central", stores[0]["name"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, _ := testRouter(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "ops@example.com",
		"password": "wrong",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterNeedsAdminRole(t *testing.T) {
	r, tokens := testRouter(t)

	supportToken, err := tokens.Issue(&domain.Manager{ManagerID: 2, Role: domain.RoleSupport})
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]string{
		"name": "New Manager", "email": "new@example.com",
		"password": "long-enough-pw", "role": "support",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+supportToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "route not found")
}
