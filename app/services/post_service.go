package services

import (
	"errors"
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

var (
	// ErrValidation marks create/update input that is missing required
	// fields or is otherwise malformed. Nothing is persisted when it fires.
	ErrValidation = errors.New("validation failed")
	// ErrIDMismatch marks an update whose body id contradicts the id
	// addressed by the request path.
	ErrIDMismatch = errors.New("body id does not match addressed id")
)

// PostService handles business logic for blog posts
type PostService struct {
	repo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(repo repositories.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePost validates the wire input, derives the stored author display
// name and persists the record. The returned post carries the generated id.
func (s *PostService) CreatePost(input *models.PostInput) (*models.BlogPost, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	post := &models.BlogPost{
		Title:      input.Title,
		Content:    input.Content,
		AuthorName: input.Author.DisplayName(),
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by id
func (s *PostService) GetPost(id string) (*models.BlogPost, error) {
	return s.repo.GetByID(id)
}

// ListPosts retrieves all posts
func (s *PostService) ListPosts() ([]*models.BlogPost, error) {
	return s.repo.List()
}

// CountPosts returns the number of persisted posts
func (s *PostService) CountPosts() (int, error) {
	return s.repo.Count()
}

// UpdatePost applies the supplied fields to an existing post. The author
// display name is re-derived only when an author object is supplied, in
// which case both name parts are required again.
func (s *PostService) UpdatePost(id string, input *models.PostUpdate) error {
	if input.ID != "" && input.ID != id {
		return ErrIDMismatch
	}
	if input.Title != nil && *input.Title == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if input.Content != nil && *input.Content == "" {
		return fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}

	patch := models.PostPatch{
		Title:   input.Title,
		Content: input.Content,
	}
	if input.Author != nil {
		if err := input.Author.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		name := input.Author.DisplayName()
		patch.AuthorName = &name
	}

	return s.repo.Update(id, patch)
}

// DeletePost removes a post. Deleting an absent id is not an error.
func (s *PostService) DeletePost(id string) error {
	return s.repo.Delete(id)
}

// SeedPosts bulk-loads records, deriving the author display name for each.
// All records are persisted atomically. Used by setup tooling only.
func (s *PostService) SeedPosts(inputs []*models.PostInput) ([]*models.BlogPost, error) {
	posts := make([]*models.BlogPost, 0, len(inputs))
	for _, input := range inputs {
		if err := input.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		posts = append(posts, &models.BlogPost{
			Title:      input.Title,
			Content:    input.Content,
			AuthorName: input.Author.DisplayName(),
		})
	}
	if err := s.repo.CreateMany(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Reset clears the entire collection. Administrative use only.
func (s *PostService) Reset() error {
	return s.repo.Clear()
}
