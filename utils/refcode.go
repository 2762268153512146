package utils

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// NewBookingReference generates a human-quotable booking reference like
// WI-3F2A81C0D94B. References are not secrets; collisions are handled by
// the unique index plus retry at the call site.
func NewBookingReference() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "WI-" + strings.ToUpper(raw[:12])
}
