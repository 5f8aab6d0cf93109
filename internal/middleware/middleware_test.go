package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/app/models/dto"
	"github.com/drivingschool/admin/internal/pkg/apperrors"
	"github.com/drivingschool/admin/internal/pkg/logger"
	"github.com/drivingschool/admin/internal/session"
)

func init() {
	logger.Configure(logger.Config{Level: logger.DisabledLevel})
	gin.SetMode(gin.TestMode)
}

func sessionRouter(store session.Store) *gin.Engine {
	r := gin.New()
	r.Use(Sessions(store, SessionOptions{CookieName: "sid", TTL: time.Hour}))
	r.Use(RequestLogger())
	r.GET("/notify", func(c *gin.Context) {
		SessionState(c).Notify(models.Success("saved"))
		c.String(http.StatusOK, SessionID(c))
	})
	return r
}

func TestSessionsIssueCookieAndPersistState(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	r := sessionRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notify", nil))
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	id := cookies[0].Value
	assert.NoError(t, uuid.Validate(id))
	assert.Equal(t, id, w.Body.String())
	assert.True(t, cookies[0].HttpOnly)

	state, err := store.Load(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, state.Flash, 1)

	// Same cookie, same session.
	req := httptest.NewRequest(http.MethodGet, "/notify", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: id})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Body.String())

	state, err = store.Load(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, state.Flash, 2)
}

func TestSessionsReplaceForgedCookie(t *testing.T) {
	r := sessionRouter(session.NewMemoryStore(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/notify", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "../../etc/passwd"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEqual(t, "../../etc/passwd", w.Body.String())
	assert.NoError(t, uuid.Validate(w.Body.String()))
}

type brokenStore struct{ session.Store }

func (brokenStore) Load(context.Context, string) (*session.State, error) {
	return nil, errors.New("connection refused")
}

func TestSessionsStoreUnavailable(t *testing.T) {
	r := sessionRouter(brokenStore{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notify", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
		field  string
	}{
		{"field error", apperrors.NewFieldError("dob", models.MsgUnderage), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "dob"},
		{"not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
		{"no files", apperrors.ErrNoFiles, http.StatusBadRequest, dto.ErrorCodeBadRequest, ""},
		{"rejected", apperrors.NewServerRejected(http.MethodPost, "/students", 422, "bad phone"), http.StatusBadGateway, dto.ErrorCodeBackendRejected, ""},
		{"no response", apperrors.NewNoResponse(http.MethodGet, "/teachers", errors.New("timeout")), http.StatusGatewayTimeout, dto.ErrorCodeBackendUnavailable, ""},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.field, resp.Error.Field)
		})
	}
}

func TestBindJSONReportsFieldName(t *testing.T) {
	require.NoError(t, RegisterValidators())

	r := gin.New()
	r.POST("/dob", func(c *gin.Context) {
		var req dto.DOBCheckRequest
		if !BindJSON(c, &req) {
			return
		}
		c.String(http.StatusOK, req.DOB)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/dob", strings.NewReader(`{"dob":"2006-13-01"}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "dob", resp.Error.Field)
	assert.Equal(t, "dob must be a date in YYYY-MM-DD format", resp.Error.Message)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/dob", strings.NewReader(`{"dob":"2006-12-01"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2006-12-01", w.Body.String())
}
