package repositories

import (
	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository on an open DB
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// OpenBadger opens the Badger database at path and wraps it in a repository.
func OpenBadger(path string) (*BadgerPostRepository, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return NewBadgerPostRepository(db), nil
}

// Create persists a new post, assigning an id when none is set
func (r *BadgerPostRepository) Create(post *models.BlogPost) error {
	if err := checkRequired(post); err != nil {
		return err
	}
	post.BeforeCreate()

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey(post.ID), data)
	})
}

// CreateMany persists all posts in a single transaction. Either every post
// is written or none is.
func (r *BadgerPostRepository) CreateMany(posts []*models.BlogPost) error {
	for _, post := range posts {
		if err := checkRequired(post); err != nil {
			return err
		}
	}
	return r.db.Update(func(txn *badger.Txn) error {
		for _, post := range posts {
			post.BeforeCreate()
			data, err := marshalEntity(post)
			if err != nil {
				return err
			}
			if err := txn.Set(postKey(post.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a post by id
func (r *BadgerPostRepository) GetByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts. Order follows the store's key order and is not
// part of the contract.
func (r *BadgerPostRepository) List() ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.BlogPost
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the number of persisted posts
func (r *BadgerPostRepository) Count() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Update applies the supplied patch fields to the post with the given id
func (r *BadgerPostRepository) Update(id string, patch models.PostPatch) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var post models.BlogPost
		err = item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
		if err != nil {
			return err
		}

		applyPatch(&post, patch)

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(id), data)
	})
}

// Delete removes the post with the given id. Deleting an absent id is not
// an error.
func (r *BadgerPostRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(postKey(id))
	})
}

// Clear removes all records (administrative reset)
func (r *BadgerPostRepository) Clear() error {
	return r.db.DropAll()
}

// Close closes the underlying database
func (r *BadgerPostRepository) Close() error {
	return r.db.Close()
}
