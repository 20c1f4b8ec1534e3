// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Follow represents a directed follow edge from one account to another.
//
// The edge is stored exactly once, keyed by (follower_id, followee_id), and
// is queried from both directions: rows where followee_id = U are U's
// followers, rows where follower_id = U are U's following. Because there is
// a single row per relationship there is no second collection that could
// diverge, and the composite unique index rejects concurrent duplicates.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_edge;index" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follow_edge;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
