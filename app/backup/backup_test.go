package backup

import (
	"bytes"
	"testing"

	"inkwell/app/models"
	"inkwell/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	repo := mock.NewPostRepository()
	post := &models.BlogPost{
		Title:      "Kept Post",
		Content:    "Content worth keeping",
		AuthorName: "Donald Knuth",
	}
	require.NoError(t, repo.Create(post))

	var buf bytes.Buffer
	require.NoError(t, Export(repo, &buf))
	assert.NotZero(t, buf.Len())

	require.NoError(t, repo.Clear())
	count, err := repo.Count()
	require.NoError(t, err)
	require.Equal(t, 0, count)

	n, err := Import(repo, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Restore keeps the original id
	restored, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, restored.Title)
	assert.Equal(t, post.Content, restored.Content)
	assert.Equal(t, post.AuthorName, restored.AuthorName)
}

func TestExportEmptyStore(t *testing.T) {
	repo := mock.NewPostRepository()

	var buf bytes.Buffer
	require.NoError(t, Export(repo, &buf))

	n, err := Import(repo, &buf)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
