package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWith(t *testing.T, status int, body string) *resty.Response {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    int
		body    string
		wantErr error
	}{
		{"match", http.StatusOK, http.StatusOK, "", nil},
		{"not found", http.StatusNotFound, http.StatusOK, "404 page not found", ErrNotFound},
		{"request timeout", http.StatusRequestTimeout, http.StatusOK, "request timeout", ErrRequestTimeout},
		{"unavailable", http.StatusServiceUnavailable, http.StatusOK, "", ErrServerUnavailable},
		{"internal", http.StatusInternalServerError, http.StatusOK, "", ErrInternalServerError},
		{"method not allowed", http.StatusMethodNotAllowed, http.StatusOK, "", ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapHTTPError(responseWith(t, tt.status, tt.body), tt.want)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.body != "" {
				assert.Contains(t, err.Error(), tt.body)
			}
		})
	}
}
