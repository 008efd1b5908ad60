// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents an author in the Yatube application.
//
// Deleting a user hard-deletes their posts, comments, and every follow edge
// they participate in; the foreign keys carry ON DELETE CASCADE so the
// cleanup happens in the database, not in application code.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}
