package api

import (
	"github.com/google/uuid"
)

// uuidParse wraps uuid.Parse so handler files share one import site.
func uuidParse(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
