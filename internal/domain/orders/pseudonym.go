package orders

import (
	"strings"

	"github.com/google/uuid"
)

// pseudonymNamespace scopes the name-based UUIDs handed out for public order tracking.
var pseudonymNamespace = uuid.MustParse("6b1f3f0e-4c52-5a8e-9d1b-2f6c7e0a9b34")

// PseudonymousID derives the public tracking identifier of a username.
//
// The derivation is a SHA-1 name-based UUID, so it is stable across calls and
// cannot be reversed into the username. Usernames are compared case-insensitively.
func PseudonymousID(username string) string {
	name := strings.ToLower(strings.TrimSpace(username))
	if name == "" {
		return ""
	}
	return uuid.NewSHA1(pseudonymNamespace, []byte(name)).String()
}
