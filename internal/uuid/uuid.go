// uuid simple generator that allows mocking
package uuid

import (
	"strings"

	"github.com/google/uuid"
)

// Generator is an interface for generating identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// InstanceID builds a roster unit instance id from its definition id plus a
// short random suffix, e.g. "raider-scavver-a1b2c". The prefix keeps saved
// rosters human-readable.
func InstanceID(gen Generator, defID string) string {
	suffix := strings.ReplaceAll(gen.New(), "-", "")
	if len(suffix) > 5 {
		suffix = suffix[:5]
	}
	return defID + "-" + suffix
}
