package utils

import (
	"github.com/google/uuid"
)

// GenerateID mints the identifier used for bids, proxy bids, results and
// search-log entries.
func GenerateID() string {
	return uuid.New().String()
}
