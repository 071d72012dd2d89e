package resp

// Machine-readable codes carried in error bodies.
const (
	CodeBadRequest    = "bad_request"
	CodeNotFound      = "not_found"
	CodeInternalError = "internal_error"
)
