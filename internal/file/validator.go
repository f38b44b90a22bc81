package file

import "fmt"

// Rejection reasons surfaced to the client in the error code field.
const (
	ReasonUnsupportedType = "unsupported-type"
	ReasonTooLarge        = "too-large"
)

// allowedTypes is the fixed set of MIME types permitted for upload:
// office documents, plain text, and common image formats.
var allowedTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-powerpoint":                                     true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	"text/plain": true,
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// ValidationError describes why an upload was rejected. Reason is one of the
// Reason* constants; Message is human-readable.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateUpload checks the declared MIME type and byte size of a candidate
// upload. It is pure and runs before any bytes reach storage; a nil return
// means the caller may proceed to store.
func ValidateUpload(contentType string, size, maxBytes int64) *ValidationError {
	if !allowedTypes[contentType] {
		return &ValidationError{
			Reason:  ReasonUnsupportedType,
			Message: fmt.Sprintf("file type %q is not allowed", contentType),
		}
	}
	if size > maxBytes {
		return &ValidationError{
			Reason:  ReasonTooLarge,
			Message: fmt.Sprintf("file size %d exceeds the %d byte limit", size, maxBytes),
		}
	}
	return nil
}
