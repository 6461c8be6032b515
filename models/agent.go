package models

import "time"

// AgentSecurity mirrors the split between transient credentials (never
// stored) and their hashes (never serialized).
type AgentSecurity struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash,omitempty" json:"-"`
}

// ServiceAgent administers the workers in its assigned areas: registration,
// verification, timetable help, and booking oversight.
type ServiceAgent struct {
	ID        string        `bson:"id" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Phone     string        `bson:"phone" json:"phone,omitempty"`
	Security  AgentSecurity `bson:"security" json:"security,omitzero"`
	Areas     []string      `bson:"areas" json:"areas,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}
