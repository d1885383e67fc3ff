package file

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StorageName generates the opaque on-disk name for an upload. Only the
// extension of the original name survives.
func StorageName(original string) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + Extension(original)
}

// ValidateStorageName rejects anything that could escape the storage root.
func ValidateStorageName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("invalid storage name %q", name)
	}
	if filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid storage name %q", name)
	}
	return nil
}
