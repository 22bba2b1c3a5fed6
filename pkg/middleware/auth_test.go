package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIKeyMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		apiKey         string
		path           string
		method         string
		authorization  string
		expectedStatus int
	}{
		{
			name:           "valid bearer token",
			apiKey:         "secret",
			path:           "/v1/reports/status",
			method:         http.MethodGet,
			authorization:  "Bearer secret",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			apiKey:         "secret",
			path:           "/v1/reports/status",
			method:         http.MethodGet,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong key",
			apiKey:         "secret",
			path:           "/v1/reports/status",
			method:         http.MethodGet,
			authorization:  "Bearer nope",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token without bearer scheme",
			apiKey:         "secret",
			path:           "/v1/reports/status",
			method:         http.MethodGet,
			authorization:  "secret",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "healthcheck stays open",
			apiKey:         "secret",
			path:           "/healthcheck",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "preflight stays open",
			apiKey:         "secret",
			path:           "/v1/reports/run",
			method:         http.MethodOptions,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty key disables the check",
			apiKey:         "",
			path:           "/v1/reports/status",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authorization != "" {
				request.Header.Set("Authorization", tt.authorization)
			}

			APIKeyMiddleware(tt.apiKey)(next).ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}
