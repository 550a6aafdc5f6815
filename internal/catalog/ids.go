package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// NormalizeID sanitizes an identifier before it is used as a storage
// key: surrounding whitespace is trimmed, path separators are replaced
// so the id stays addressable, and a blank id gets a generated one.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return uuid.NewString()
	}
	return strings.ReplaceAll(id, "/", "-")
}
