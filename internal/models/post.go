package models

import "time"

// Post represents an authored entry in the Yatube application.
//
// CreatedAt is assigned by the server at creation time and is never touched
// on edit; every listing surface orders by it descending. GroupID is
// nullable: a post may be reassigned to any group or cleared without
// affecting its position in listings.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	GroupID  *uint  `gorm:"index" json:"group_id,omitempty"`
	Group    *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	// ImageURL is an opaque reference into the blob store; the core never
	// interprets its content.
	ImageURL string `json:"image_url,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
