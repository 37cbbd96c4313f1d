package models

import "time"

// BlogPost is the persisted record. AuthorName is stored as a single display
// string, derived once at creation from the structured wire author.
type BlogPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title" validate:"required"`
	Content    string    `json:"content" validate:"required"`
	AuthorName string    `json:"authorName" validate:"required"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Author is the structured author supplied on creation. It is never
// persisted as a sub-structure.
type Author struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// PostInput is the wire shape of a create request.
type PostInput struct {
	Title   string  `json:"title" validate:"required"`
	Content string  `json:"content" validate:"required"`
	Author  *Author `json:"author" validate:"required"`
}

// PostUpdate is the wire shape of an update request. Every field is
// optional; only supplied fields are applied. A non-empty ID must match the
// id addressed by the request path.
type PostUpdate struct {
	ID      string  `json:"id,omitempty"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Author  *Author `json:"author,omitempty"`
}

// PostPatch carries a store-level partial update. Nil fields leave the
// stored record untouched.
type PostPatch struct {
	Title      *string
	Content    *string
	AuthorName *string
}

// PostResponse is the wire shape of a post on output. The structured author
// is flattened to the stored display string.
type PostResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}
