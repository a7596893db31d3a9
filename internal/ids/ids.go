// Package ids generates client-side identifiers for new tabs.
package ids

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator returns a fresh identifier for each call.
type Generator interface {
	NewID() string
}

// Timestamp produces decimal Unix milliseconds of the creation instant. Two
// calls within the same millisecond return the same id.
type Timestamp struct {
	Now func() time.Time
}

func (g Timestamp) NewID() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return strconv.FormatInt(now().UnixMilli(), 10)
}

// UUID produces random v4 UUIDs.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// New returns the generator for the named strategy ("timestamp" or "uuid").
func New(strategy string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", "timestamp":
		return Timestamp{}, nil
	case "uuid":
		return UUID{}, nil
	default:
		return nil, fmt.Errorf("ids: unknown strategy %q", strategy)
	}
}
