package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTokenExpired(t *testing.T) {
	tests := []struct {
		name     string
		details  ErrorDetails
		expected bool
	}{
		{
			name:     "code 190",
			details:  ErrorDetails{Code: 190},
			expected: true,
		},
		{
			name:     "oauth subcode 463",
			details:  ErrorDetails{Type: "OAuthException", Code: 102, ErrorSubcode: 463},
			expected: true,
		},
		{
			name:     "oauth subcode 467",
			details:  ErrorDetails{Type: "OAuthException", Code: 102, ErrorSubcode: 467},
			expected: true,
		},
		{
			name:     "oauth without token subcode",
			details:  ErrorDetails{Type: "OAuthException", Code: 102, ErrorSubcode: 999},
			expected: false,
		},
		{
			name:     "rate limit",
			details:  ErrorDetails{Type: "ApiException", Code: 17},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := &ErrorResponse{Error: tt.details}
			assert.Equal(t, tt.expected, response.IsTokenExpired())
		})
	}
}

func TestErrorResponseString(t *testing.T) {
	response := &ErrorResponse{Error: ErrorDetails{
		Message: "Unsupported get request",
		Type:    "GraphMethodException",
		Code:    100,
	}}

	assert.Equal(t, "graph api error 100 (GraphMethodException): Unsupported get request", response.String())
}
