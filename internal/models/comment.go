package models

// Comment is attached to exactly one post. Comments are immutable after
// creation; the only lifecycle operations are create and delete.
type Comment struct {
	ID      string   `json:"id"`
	Content string   `json:"content"`
	Sender  Identity `json:"sender"`
	PostID  string   `json:"post_id"`
}

// Clone returns a copy of the comment.
func (c *Comment) Clone() *Comment {
	cp := *c
	return &cp
}
