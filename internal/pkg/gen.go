package pkg

import "github.com/google/uuid"

// GenerateRoundID - generates a unique identifier for a round of play.
func GenerateRoundID() string {
	return uuid.NewString()
}
