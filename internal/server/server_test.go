package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Makepad-fr/coldpitch/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewRouter(nil).ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestExample(t *testing.T) {
	rec := do(t, http.MethodGet, "/example", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.FormInput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, model.Example(), got)
}

func TestRender(t *testing.T) {
	rec := do(t, http.MethodPost, "/render", `{"businessName":"Reform Fitness","ownerName":"mike","yourName":"Alex"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Hi Mike, quick question about Reform Fitness", got.Subject)
	assert.True(t, strings.HasSuffix(got.Body, "Best, Alex"))
	assert.Equal(t, got.Subject+"\n\n"+got.Body, got.Payload)
}

func TestRenderEmptyObject(t *testing.T) {
	rec := do(t, http.MethodPost, "/render", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Quick question about your business", got.Subject)
}

func TestRenderRejectsUnknownFields(t *testing.T) {
	rec := do(t, http.MethodPost, "/render", `{"business":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_json")
}

func TestRenderRejectsLargeBody(t *testing.T) {
	big := `{"observations":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec := do(t, http.MethodPost, "/render", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRenderWrongMethod(t *testing.T) {
	rec := do(t, http.MethodGet, "/render", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ln, NewRouter(nil), nil) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	require.NoError(t, <-done)
}
