package repositories

import (
	"errors"

	"inkwell/app/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidRecord = errors.New("record is missing required fields")
)

// PostRepository defines the interface for post data access. Create assigns
// an id when the record arrives without one. Update applies only the non-nil
// patch fields. Delete is idempotent. Clear is an administrative reset used
// by setup tooling.
type PostRepository interface {
	Create(post *models.BlogPost) error
	CreateMany(posts []*models.BlogPost) error
	GetByID(id string) (*models.BlogPost, error)
	List() ([]*models.BlogPost, error)
	Count() (int, error)
	Update(id string, patch models.PostPatch) error
	Delete(id string) error
	Clear() error
	Close() error
}

// checkRequired enforces the store-level invariant that every persisted
// record has a title, content and author name.
func checkRequired(post *models.BlogPost) error {
	if post.Title == "" || post.Content == "" || post.AuthorName == "" {
		return ErrInvalidRecord
	}
	return nil
}

// applyPatch merges the supplied fields into an existing record.
func applyPatch(post *models.BlogPost, patch models.PostPatch) {
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.AuthorName != nil {
		post.AuthorName = *patch.AuthorName
	}
}
