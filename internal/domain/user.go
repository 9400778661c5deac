package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// FitnessLevel is the runner's assessed level. FitnessLevelNone means
// "not yet assessed" and doubles as the safe fallback when the AI
// classification cannot be parsed.
type FitnessLevel string

const (
	FitnessLevelNone         FitnessLevel = "none"
	FitnessLevelBeginner     FitnessLevel = "beginner"
	FitnessLevelIntermediate FitnessLevel = "intermediate"
	FitnessLevelAdvanced     FitnessLevel = "advanced"
)

// ParseFitnessLevel maps a string (any case, surrounding whitespace allowed)
// to a FitnessLevel. Unknown values map to FitnessLevelNone rather than
// returning an error.
func ParseFitnessLevel(value string) FitnessLevel {
	switch FitnessLevel(strings.ToLower(strings.TrimSpace(value))) {
	case FitnessLevelBeginner:
		return FitnessLevelBeginner
	case FitnessLevelIntermediate:
		return FitnessLevelIntermediate
	case FitnessLevelAdvanced:
		return FitnessLevelAdvanced
	default:
		return FitnessLevelNone
	}
}

// User represents a registered runner.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Username     string             `bson:"username" json:"username"` // Should be unique
	Email        string             `bson:"email" json:"email"`       // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"`    // Never expose this via JSON
	FitnessLevel FitnessLevel       `bson:"fitnessLevel" json:"fitnessLevel"`
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Helper methods (Optional but can be useful)
func (u *User) IsAssessed() bool {
	return u.FitnessLevel != FitnessLevelNone
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
