package metadomain

import "fmt"

// ErrorResponse is the Graph API error envelope
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails carries the error fields of a Graph API failure
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

func (e *ErrorResponse) String() string {
	return fmt.Sprintf("graph api error %d (%s): %s", e.Error.Code, e.Error.Type, e.Error.Message)
}

// IsTokenExpired reports whether the error is an expired-token failure.
// Code 190 means "token expired"; subcodes 460, 463 and 467 are the
// token-related OAuth variants.
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}
