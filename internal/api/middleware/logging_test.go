package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoggerNormalizesRoute(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/rooms/85291111111/messages", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	require.Equal(t, "/rooms/:roomId/messages", entry["route"])
	require.Equal(t, "/rooms/85291111111/messages", entry["path"])
	require.Equal(t, float64(http.StatusNoContent), entry["status"])
	require.Equal(t, "GET", entry["method"])
	require.NotEmpty(t, entry["ip"])
}
