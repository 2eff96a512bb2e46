package engine

import "github.com/google/uuid"

// generateID returns an opaque globally-unique identifier. Collision
// probability is negligible at this entity volume.
func generateID() string {
	return uuid.NewString()
}
