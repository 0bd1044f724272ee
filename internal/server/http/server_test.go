package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/config"
	"github.com/tia-rosa/pos/internal/database"
	"github.com/tia-rosa/pos/pkg/fault"
)

func newTestEcho(t *testing.T) (*echo.Echo, *sql.DB) {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file::memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqldb.Close() })

	db := bun.NewDB(sqldb, sqlitedialect.New())
	conns := &database.Connections{Writer: db, Reader: db}

	cfg := config.Config{Observability: config.Observability{ServiceName: "rosa-pos"}}
	return NewEcho(cfg, conns, nil, zap.NewNop()), sqldb
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthReportsServiceName(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := get(e, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "rosa-pos", body["service"])
}

func TestReadyTracksDatabase(t *testing.T) {
	e, sqldb := newTestEcho(t)

	rec := get(e, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, sqldb.Close())
	rec = get(e, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestErrorHandlerRendersFaults(t *testing.T) {
	e, _ := newTestEcho(t)
	e.GET("/missing", func(c echo.Context) error {
		return fault.NotFound("customer not found")
	})
	e.GET("/broken", func(c echo.Context) error {
		return fault.Internal("failed to load customer")
	})

	rec := get(e, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(fault.KindNotFound), body["kind"])
	assert.Equal(t, "customer not found", body["message"])

	rec = get(e, "/broken")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUnknownRouteUsesEchoDefault(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := get(e, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
