package repositories

import (
	"database/sql"
	"strings"

	"inkwell/app/models"

	_ "modernc.org/sqlite"
)

// SQLitePostRepository implements PostRepository on a SQLite database,
// behind the same contract as the Badger backend.
type SQLitePostRepository struct {
	db *sql.DB
}

// OpenSQLite opens (and if necessary initializes) a SQLite database at the
// given DSN.
func OpenSQLite(dsn string) (*SQLitePostRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	r := &SQLitePostRepository{db: db}
	if err := r.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLitePostRepository) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		author_name TEXT NOT NULL,
		created_at DATETIME
	);
	CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at DESC);
	`
	_, err := r.db.Exec(query)
	return err
}

// Create persists a new post, assigning an id when none is set
func (r *SQLitePostRepository) Create(post *models.BlogPost) error {
	if err := checkRequired(post); err != nil {
		return err
	}
	post.BeforeCreate()

	_, err := r.db.Exec(
		"INSERT INTO posts (id, title, content, author_name, created_at) VALUES (?, ?, ?, ?, ?)",
		post.ID, post.Title, post.Content, post.AuthorName, post.CreatedAt,
	)
	return err
}

// CreateMany persists all posts in a single transaction. Either every post
// is written or none is.
func (r *SQLitePostRepository) CreateMany(posts []*models.BlogPost) error {
	for _, post := range posts {
		if err := checkRequired(post); err != nil {
			return err
		}
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	for _, post := range posts {
		post.BeforeCreate()
		_, err := tx.Exec(
			"INSERT INTO posts (id, title, content, author_name, created_at) VALUES (?, ?, ?, ?, ?)",
			post.ID, post.Title, post.Content, post.AuthorName, post.CreatedAt,
		)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// GetByID retrieves a post by id
func (r *SQLitePostRepository) GetByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.QueryRow(
		"SELECT id, title, content, author_name, created_at FROM posts WHERE id = ?", id,
	).Scan(&post.ID, &post.Title, &post.Content, &post.AuthorName, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts, newest first
func (r *SQLitePostRepository) List() ([]*models.BlogPost, error) {
	rows, err := r.db.Query("SELECT id, title, content, author_name, created_at FROM posts ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		var post models.BlogPost
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorName, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// Count returns the number of persisted posts
func (r *SQLitePostRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}

// Update applies the supplied patch fields to the post with the given id
func (r *SQLitePostRepository) Update(id string, patch models.PostPatch) error {
	var sets []string
	var args []interface{}
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *patch.Content)
	}
	if patch.AuthorName != nil {
		sets = append(sets, "author_name = ?")
		args = append(args, *patch.AuthorName)
	}

	if len(sets) == 0 {
		// Nothing to change, but the addressed record must still exist.
		_, err := r.GetByID(id)
		return err
	}

	args = append(args, id)
	res, err := r.db.Exec("UPDATE posts SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the post with the given id. Deleting an absent id is not
// an error.
func (r *SQLitePostRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM posts WHERE id = ?", id)
	return err
}

// Clear removes all records (administrative reset)
func (r *SQLitePostRepository) Clear() error {
	_, err := r.db.Exec("DELETE FROM posts")
	return err
}

// Close closes the underlying database
func (r *SQLitePostRepository) Close() error {
	return r.db.Close()
}
