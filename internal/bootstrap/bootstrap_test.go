package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivingschool/admin/internal/config"
	"github.com/drivingschool/admin/internal/pkg/logger"
	"github.com/drivingschool/admin/internal/session"
)

func TestRouterWiring(t *testing.T) {
	logger.Configure(logger.Config{Level: logger.DisabledLevel})
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	lgr := logger.Get()

	store, err := SetupSessionStore(context.Background(), cfg, lgr)
	require.NoError(t, err)
	assert.IsType(t, &session.MemoryStore{}, store)
	t.Cleanup(func() { _ = store.Close() })

	deps, err := BuildDependencies(cfg, store, lgr)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", deps.Client.BaseURL())

	router, err := SetupRouter(cfg, deps, lgr)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Result().Cookies())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
