package main

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a short random identifier for file names.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
