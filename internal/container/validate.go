package container

import (
	"errors"
	"regexp"
	"strings"
)

// Validation failures for container names. The first failing rule wins;
// handlers surface the message verbatim as a 400.
var (
	ErrNameRequired     = errors.New("container name is required")
	ErrNameLength       = errors.New("container name must be between 3 and 63 characters")
	ErrNameCharset      = errors.New("container name may only contain lowercase letters, numbers, and hyphens")
	ErrNameEdgeHyphen   = errors.New("container name must not start or end with a hyphen")
	ErrNameDoubleHyphen = errors.New("container name must not contain consecutive hyphens")
)

var nameCharset = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateName checks a candidate container name against the bucket naming
// rules, in a fixed order so the reported reason is deterministic. The same
// rules run client-side before submit; this is the authoritative check.
func ValidateName(name string) error {
	switch {
	case name == "":
		return ErrNameRequired
	case len(name) < 3 || len(name) > 63:
		return ErrNameLength
	case !nameCharset.MatchString(name):
		return ErrNameCharset
	case strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-"):
		return ErrNameEdgeHyphen
	case strings.Contains(name, "--"):
		return ErrNameDoubleHyphen
	}
	return nil
}

// IsInvalidName reports whether err is one of the name validation failures.
func IsInvalidName(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrNameLength) ||
		errors.Is(err, ErrNameCharset) ||
		errors.Is(err, ErrNameEdgeHyphen) ||
		errors.Is(err, ErrNameDoubleHyphen)
}
