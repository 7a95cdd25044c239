package whatsapp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendText(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messages":[{"id":"wamid.123"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-token", "374603729065639")
	payload, err := c.SendText(context.Background(), "85292226322", "hello")
	require.NoError(t, err)

	require.Equal(t, "/374603729065639/messages", gotPath)
	require.Equal(t, "Bearer test-token", gotAuth)
	require.Equal(t, "whatsapp", gotBody["messaging_product"])
	require.Equal(t, "85292226322", gotBody["to"])
	require.Equal(t, "text", gotBody["type"])
	require.Equal(t, map[string]any{"body": "hello"}, gotBody["text"])

	require.JSONEq(t, `{"messages":[{"id":"wamid.123"}]}`, string(payload))
}

func TestSendTextAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "bad-token", "374603729065639")
	_, err := c.SendText(context.Background(), "85292226322", "hello")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.JSONEq(t, `{"error":{"message":"Invalid OAuth access token"}}`, string(apiErr.Payload))
}

func TestNewDefaultsBaseURL(t *testing.T) {
	c := New("", "token", "id")
	require.Equal(t, DefaultBaseURL, c.baseURL)
}
