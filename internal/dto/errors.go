package dto

// Machine-readable error kinds. Gate failures resolve before any handler
// runs; handlers only ever emit validation_error or upstream_failure.
const (
	KindUnauthenticated   = "unauthenticated"
	KindInvalidCredential = "invalid_credential"
	KindForbidden         = "forbidden"
	KindNotFound          = "not_found" // reserved: missing-by-id currently returns empty success
	KindValidation        = "validation_error"
	KindUpstream          = "upstream_failure"
)

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

func NewError(kind, message string) ErrorResponse {
	return ErrorResponse{Error: true, Kind: kind, Message: message}
}
