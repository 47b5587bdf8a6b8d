package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const orderNoPrefix = "ORDER"
const orderNoSuffixLen = 6

// NewOrderNumber builds a human-readable order number from the current
// millisecond timestamp and a random uppercase hex suffix. Collisions are
// treated as negligible; the order_no unique index is the backstop.
func NewOrderNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:orderNoSuffixLen]
	return fmt.Sprintf("%s%d%s", orderNoPrefix, time.Now().UnixMilli(), strings.ToUpper(suffix))
}
