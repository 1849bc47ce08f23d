package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doSchedule(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(logger)

	req := httptest.NewRequest(http.MethodPost, "/v1/schedule", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleSchedule_Success(t *testing.T) {
	rec := doSchedule(t, `{
		"projectId": "proj-7",
		"tasks": [
			{"title": "A"},
			{"title": "B", "dependencies": ["A"]},
			{"title": "C", "dependencies": ["A", "B"]}
		]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "proj-7", body["projectId"])
	assert.Equal(t, []any{"A", "B", "C"}, body["recommendedOrder"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandleSchedule_CallerRequestIDIsEchoed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(logger)

	req := httptest.NewRequest(http.MethodPost, "/v1/schedule", bytes.NewBufferString(`{"tasks":[{"title":"A"}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "caller-id-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "caller-id-123", rec.Header().Get("X-Request-ID"))
}

func TestHandleSchedule_EmptyPlan(t *testing.T) {
	rec := doSchedule(t, `{"tasks": []}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "empty_plan", body["kind"])
}

func TestHandleSchedule_UnknownDependency(t *testing.T) {
	rec := doSchedule(t, `{
		"tasks": [
			{"title": "A"},
			{"title": "B", "dependencies": ["Z"]}
		]
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "unknown_dependency", body["kind"])
	assert.Equal(t, "B", body["task"])
	assert.Equal(t, "Z", body["missing"])
}

func TestHandleSchedule_DuplicateTitle(t *testing.T) {
	rec := doSchedule(t, `{
		"tasks": [
			{"title": "A"},
			{"title": "A"}
		]
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "duplicate_title", body["kind"])
	assert.Equal(t, "A", body["title"])
}

func TestHandleSchedule_Cycle(t *testing.T) {
	rec := doSchedule(t, `{
		"tasks": [
			{"title": "A", "dependencies": ["B"]},
			{"title": "B", "dependencies": ["A"]}
		]
	}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "dependency_cycle", body["kind"])
	assert.ElementsMatch(t, []any{"A", "B"}, body["unresolved"])
}

func TestHandleSchedule_BindingErrors(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		rec := doSchedule(t, `{"tasks": [`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing tasks field", func(t *testing.T) {
		rec := doSchedule(t, `{"projectId": "p"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Contains(t, body["error"], "required")
	})

	t.Run("missing title", func(t *testing.T) {
		rec := doSchedule(t, `{"tasks": [{"dependencies": ["a"]}]}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Contains(t, body["error"], "Title")
	})

	t.Run("negative estimatedHours", func(t *testing.T) {
		rec := doSchedule(t, `{"tasks": [{"title": "a", "estimatedHours": -2}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(logger)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
