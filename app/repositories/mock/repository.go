package mock

import (
	"sync"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostRepository is an in-memory stand-in for the real store backends,
// used by service and controller unit tests.
type PostRepository struct {
	posts map[string]*models.BlogPost
	mutex sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.BlogPost),
	}
}

func (m *PostRepository) Create(post *models.BlogPost) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if post.Title == "" || post.Content == "" || post.AuthorName == "" {
		return repositories.ErrInvalidRecord
	}
	post.BeforeCreate()
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) CreateMany(posts []*models.BlogPost) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, post := range posts {
		if post.Title == "" || post.Content == "" || post.AuthorName == "" {
			return repositories.ErrInvalidRecord
		}
	}
	for _, post := range posts {
		post.BeforeCreate()
		stored := *post
		m.posts[post.ID] = &stored
	}
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.BlogPost, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	found := *post
	return &found, nil
}

func (m *PostRepository) List() ([]*models.BlogPost, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.BlogPost
	for _, post := range m.posts {
		found := *post
		posts = append(posts, &found)
	}
	return posts, nil
}

func (m *PostRepository) Count() (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.posts), nil
}

func (m *PostRepository) Update(id string, patch models.PostPatch) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return repositories.ErrNotFound
	}
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.AuthorName != nil {
		post.AuthorName = *patch.AuthorName
	}
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.posts, id)
	return nil
}

func (m *PostRepository) Clear() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts = make(map[string]*models.BlogPost)
	return nil
}

func (m *PostRepository) Close() error {
	return nil
}
