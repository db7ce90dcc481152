package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peladasmanager/backend/internal/player/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *model.CreatePlayerRequest) (*model.Player, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Player), args.Error(1)
}

func (m *mockService) List(ctx context.Context, q *model.ListPlayersQuery) ([]model.Player, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Player), args.Error(1)
}

func (m *mockService) GetByID(ctx context.Context, id uint) (*model.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Player), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id uint, req *model.UpdatePlayerRequest) (*model.Player, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Player), args.Error(1)
}

func (m *mockService) Deactivate(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupRouter(svc *mockService) *gin.Engine {
	h := New(svc, zap.NewNop().Sugar())

	r := gin.New()
	api := r.Group("/api")
	api.POST("/players", h.Create)
	api.GET("/players", h.List)
	api.GET("/players/:id", h.Get)
	api.PUT("/players/:id", h.Update)
	api.DELETE("/players/:id", h.Delete)
	return r
}

func performRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Create(t *testing.T) {
	t.Run("creates player", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Create", mock.Anything, mock.Anything).
			Return(&model.Player{ID: 1, Name: "Carlos", Email: "carlos@example.com"}, nil)

		w := performRequest(setupRouter(svc), http.MethodPost, "/api/players", gin.H{
			"name":  "Carlos",
			"email": "carlos@example.com",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var player model.Player
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &player))
		assert.Equal(t, uint(1), player.ID)
	})

	t.Run("rejects missing email", func(t *testing.T) {
		svc := new(mockService)

		w := performRequest(setupRouter(svc), http.MethodPost, "/api/players", gin.H{
			"name": "Carlos",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrEmailExists)

		w := performRequest(setupRouter(svc), http.MethodPost, "/api/players", gin.H{
			"name":  "Carlos",
			"email": "carlos@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "EMAIL_EXISTS")
	})
}

func TestHandler_List(t *testing.T) {
	t.Run("lists players", func(t *testing.T) {
		svc := new(mockService)
		svc.On("List", mock.Anything, mock.Anything).
			Return([]model.Player{{ID: 1}, {ID: 2}}, nil)

		w := performRequest(setupRouter(svc), http.MethodGet, "/api/players", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var players []model.Player
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &players))
		assert.Len(t, players, 2)
	})

	t.Run("rejects invalid limit", func(t *testing.T) {
		svc := new(mockService)

		w := performRequest(setupRouter(svc), http.MethodGet, "/api/players?limit=500", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "List")
	})
}

func TestHandler_Get(t *testing.T) {
	t.Run("existing player", func(t *testing.T) {
		svc := new(mockService)
		svc.On("GetByID", mock.Anything, uint(1)).
			Return(&model.Player{ID: 1, Name: "Carlos"}, nil)

		w := performRequest(setupRouter(svc), http.MethodGet, "/api/players/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing player", func(t *testing.T) {
		svc := new(mockService)
		svc.On("GetByID", mock.Anything, uint(9)).Return(nil, model.ErrPlayerNotFound)

		w := performRequest(setupRouter(svc), http.MethodGet, "/api/players/9", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := new(mockService)

		w := performRequest(setupRouter(svc), http.MethodGet, "/api/players/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetByID")
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("updates player", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Update", mock.Anything, uint(1), mock.Anything).
			Return(&model.Player{ID: 1, Name: "Carlos Silva"}, nil)

		w := performRequest(setupRouter(svc), http.MethodPut, "/api/players/1", gin.H{
			"name": "Carlos Silva",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing player", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Update", mock.Anything, uint(9), mock.Anything).
			Return(nil, model.ErrPlayerNotFound)

		w := performRequest(setupRouter(svc), http.MethodPut, "/api/players/9", gin.H{
			"name": "Nobody",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("soft delete returns no content", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Deactivate", mock.Anything, uint(1)).Return(nil)

		w := performRequest(setupRouter(svc), http.MethodDelete, "/api/players/1", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("missing player", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Deactivate", mock.Anything, uint(9)).Return(model.ErrPlayerNotFound)

		w := performRequest(setupRouter(svc), http.MethodDelete, "/api/players/9", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
