package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stimmen-archiv/backend/email"
	backendhttp "github.com/stimmen-archiv/backend/http"
	"github.com/stimmen-archiv/backend/subm"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []email.Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, m email.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

type failStore struct {
	err error
}

func (f *failStore) Write(ctx context.Context, p subm.WriteParams) (subm.WriteResult, error) {
	return subm.WriteResult{}, f.err
}

func (f *failStore) List(ctx context.Context) ([]subm.Submission, int, error) {
	return nil, 0, f.err
}

// skippingStore reports entries omitted by a degraded read.
type skippingStore struct {
	items   []subm.Submission
	skipped int
}

func (s *skippingStore) Write(ctx context.Context, p subm.WriteParams) (subm.WriteResult, error) {
	return subm.WriteResult{}, nil
}

func (s *skippingStore) List(ctx context.Context) ([]subm.Submission, int, error) {
	return s.items, s.skipped, nil
}

func setupHandler(t *testing.T, store subm.Store, sender email.Sender) http.Handler {
	t.Helper()
	srvc, err := subm.NewSrvc(store, sender, subm.SrvcConfig{
		SenderEmail:      "noreply@example.com",
		DestinationEmail: "owner@example.com",
	})
	require.NoError(t, err)
	return backendhttp.NewHttpServer(srvc).Handler()
}

func newJsonReq(t *testing.T, method, path string, body map[string]interface{}) *http.Request {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err, "response body: %s", w.Body.String())
	return body
}
