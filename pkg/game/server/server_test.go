package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
)

func newTestHandler() http.Handler {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	defaults := generator.DefaultConfig()
	defaults.Seed = 42
	return NewRouter(Config{
		Controllers: []Controller{NewMazeServer(defaults, log)},
		Logger:      log,
	}).Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeMaze(t *testing.T, rec *httptest.ResponseRecorder) MazeResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp MazeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestHandler(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetMaze_Defaults(t *testing.T) {
	resp := decodeMaze(t, get(t, newTestHandler(), "/maze"))

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, int64(42), resp.Seed)
	assert.Equal(t, 16, resp.Width)
	assert.Equal(t, 16, resp.Height)
	require.Len(t, resp.Grid, 16)
	for _, col := range resp.Grid {
		assert.Len(t, col, 16)
	}
	require.NotEmpty(t, resp.Path)
	assert.Equal(t, resp.Start, resp.Path[0])
	assert.Equal(t, resp.End, resp.Path[len(resp.Path)-1])
	assert.Equal(t, world.Start, resp.Grid[resp.Start.X][resp.Start.Y])
	assert.Equal(t, world.End, resp.Grid[resp.End.X][resp.End.Y])
}

func TestGetMaze_QueryOverridesDefaults(t *testing.T) {
	resp := decodeMaze(t, get(t, newTestHandler(), "/maze?width=8&height=12&seed=7&treasure=0&enemy=0"))

	assert.Equal(t, int64(7), resp.Seed)
	assert.Equal(t, 8, resp.Width)
	assert.Equal(t, 12, resp.Height)
	for _, col := range resp.Grid {
		for _, c := range col {
			assert.NotEqual(t, world.Treasure, c)
			assert.NotEqual(t, world.Enemy, c)
		}
	}
}

func TestGetMaze_SameSeedSameMaze(t *testing.T) {
	h := newTestHandler()
	a := decodeMaze(t, get(t, h, "/maze?seed=99"))
	b := decodeMaze(t, get(t, h, "/maze?seed=99"))

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Grid, b.Grid)
	assert.Equal(t, a.Path, b.Path)
}

func TestGetMaze_BadRequest(t *testing.T) {
	h := newTestHandler()
	for _, target := range []string{
		"/maze?width=3",
		"/maze?height=0",
		"/maze?treasure=1.5",
		"/maze?enemy=-0.1",
		"/maze?width=abc",
		"/maze/text?width=2",
		"/maze?width=100000&height=100000",
		"/maze?height=257",
		"/maze/html?width=1000",
	} {
		t.Run(target, func(t *testing.T) {
			rec := get(t, h, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestGetMazeText(t *testing.T) {
	rec := get(t, newTestHandler(), "/maze/text?width=6&height=5&seed=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	_, err := uuid.Parse(rec.Header().Get(IDHeader))
	assert.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "seed: 3\n")
	assert.Contains(t, rec.Body.String(), "width: 6\n")
}

func TestGetMazeHTML(t *testing.T) {
	rec := get(t, newTestHandler(), "/maze/html?width=6&height=5&seed=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	assert.Equal(t, 6, strings.Count(rec.Body.String(), `<div class="map-row">`))
}

func TestGetMaze_MaxDimensionOption(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	defaults := generator.DefaultConfig()
	defaults.Seed = 1
	h := NewRouter(Config{
		Controllers: []Controller{NewMazeServer(defaults, log, WithMaxDimension(10))},
		Logger:      log,
	}).Handler()

	assert.Equal(t, http.StatusOK, get(t, h, "/maze?width=10&height=10").Code)

	rec := get(t, h, "/maze?width=11&height=10")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be at most 10")
}
