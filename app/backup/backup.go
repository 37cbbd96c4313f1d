// Package backup dumps and restores the full post collection as
// zstd-compressed JSON. Restore preserves record ids, so a round trip keeps
// every post addressable under its original id.
package backup

import (
	"encoding/json"
	"io"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/klauspost/compress/zstd"
)

// Export writes every stored post to w as a zstd-compressed JSON array.
func Export(repo repositories.PostRepository, w io.Writer) error {
	posts, err := repo.List()
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []*models.BlogPost{}
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(zw).Encode(posts); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// Import reads a zstd-compressed JSON array of posts from r and bulk-loads
// it into the store. The whole batch is persisted atomically.
func Import(repo repositories.PostRepository, r io.Reader) (int, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return 0, err
	}
	defer zr.Close()

	var posts []*models.BlogPost
	if err := json.NewDecoder(zr).Decode(&posts); err != nil {
		return 0, err
	}
	if len(posts) == 0 {
		return 0, nil
	}
	if err := repo.CreateMany(posts); err != nil {
		return 0, err
	}
	return len(posts), nil
}
