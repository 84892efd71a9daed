package helper

import (
	"strings"

	"github.com/google/uuid"
)

// NewReference builds a short human-facing code such as REG4F2A91C3.
// The prefix identifies the record family (REG, BP, TE, ML).
func NewReference(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(hex[:8])
}
