// Package models contains data structures for the application's domain model.
package models

import "time"

// Post is a wall entry. The record also tracks the ids of its attached
// comments so the comment collection can be resolved without a join.
type Post struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Image string   `json:"image"`
	Owner Identity `json:"owner"`
	// Likes only ever grows; there is no unlike operation.
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is nil until the post has been updated at least once.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	// Comments holds comment ids in creation order.
	Comments []string `json:"comments"`
}

// Clone returns a deep copy. Stores may hand out shared pointers, so every
// mutation in the service layer works on a clone and persists it explicitly.
func (p *Post) Clone() *Post {
	cp := *p
	cp.Comments = append([]string(nil), p.Comments...)
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		cp.UpdatedAt = &t
	}
	return &cp
}
