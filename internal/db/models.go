package db

import (
	"time"
)

// Profile is a pet profile. IDs are opaque strings (UUIDs for
// server-generated profiles); Photo holds the stored filename
// ("<id>.png") or nil when no photo was ever uploaded.
type Profile struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Photo       *string `gorm:"size:255" json:"photo"`
	City        string  `gorm:"size:128" json:"city"`
	Age         int     `json:"age"`
	Name        string  `gorm:"size:128" json:"name"`
	Gender      string  `gorm:"size:16" json:"gender"`
	Description string  `json:"description"`
}

// CannedMessage is one of the fixed auto-reply strings seeded at first
// startup. Read-only after seeding.
type CannedMessage struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	Content string `gorm:"not null"`
}

// Decision represents an actor's like/dislike on a target profile.
//
// Composite PK: (ActorID, TargetID)
//   - Ensures a single row per pair (overwrite guarantee), so two
//     concurrent swipes on the same pair cannot create duplicates.
//
// Fields:
//   - ActorID: the profile making the decision.
//   - TargetID: the profile being liked/disliked.
//   - Liked: true for like ("smash"), false for dislike ("pass").
type Decision struct {
	ActorID   string    `gorm:"primaryKey;size:36;index:idx_actor_liked,priority:1"`
	TargetID  string    `gorm:"primaryKey;size:36"`
	Liked     bool      `gorm:"not null;index:idx_actor_liked,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// DirectMessage is an append-only user-to-user text message. Nothing
// mutates or deletes rows after insertion.
type DirectMessage struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	SenderID    string    `gorm:"size:36;index"`
	RecipientID string    `gorm:"size:36;index"`
	Message     string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
