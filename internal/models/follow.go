package models

import "time"

// Follow is a directed edge meaning "user follows author", used to compose
// the per-user feed.
//
// Two invariants live in the schema itself, not only in application code,
// so concurrent duplicate requests cannot race past them:
//   - UNIQUE (user_id, author_id): at most one edge per pair
//   - CHECK (user_id <> author_id): a self-follow can never be persisted
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follow_pair;check:chk_no_self_follow,user_id <> author_id" json:"user_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`

	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
