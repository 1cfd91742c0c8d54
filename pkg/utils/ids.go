package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID builds a prefixed identifier of the form
// <kind>_<unixmilli>_<random>. Timestamp plus random suffix keeps IDs
// unique without any central coordination.
func GenerateID(kind string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", kind, time.Now().UnixMilli(), suffix)
}
