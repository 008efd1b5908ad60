package repository

import (
	"context"
	"testing"
	"time"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_Integration(t *testing.T) {
	repo := NewCommentRepository(testDB)
	postRepo := NewPostRepository(testDB)
	ctx := context.Background()

	author := makeTestUser(t, "c_author")
	commenter := makeTestUser(t, "c_commenter")

	post := &models.Post{Text: "commented on", AuthorID: author.ID}
	require.NoError(t, postRepo.Create(ctx, post))

	t.Run("Create and list newest first", func(t *testing.T) {
		first := &models.Comment{PostID: post.ID, AuthorID: commenter.ID, Text: "first"}
		require.NoError(t, repo.Create(ctx, first))
		time.Sleep(2 * time.Millisecond)
		second := &models.Comment{PostID: post.ID, AuthorID: author.ID, Text: "second"}
		require.NoError(t, repo.Create(ctx, second))

		comments, err := repo.GetByPostID(ctx, post.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "second", comments[0].Text)
		assert.Equal(t, commenter.Username, comments[1].Author.Username)
	})

	t.Run("Update touches text only", func(t *testing.T) {
		comment := &models.Comment{PostID: post.ID, AuthorID: commenter.ID, Text: "typo"}
		require.NoError(t, repo.Create(ctx, comment))
		created := comment.CreatedAt

		time.Sleep(2 * time.Millisecond)
		comment.Text = "fixed"
		require.NoError(t, repo.Update(ctx, comment))

		got, err := repo.GetByID(ctx, comment.ID)
		require.NoError(t, err)
		assert.Equal(t, "fixed", got.Text)
		assert.WithinDuration(t, created, got.CreatedAt, time.Millisecond)
		assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	})

	t.Run("Comments go with their post", func(t *testing.T) {
		doomed := &models.Post{Text: "short lived", AuthorID: author.ID}
		require.NoError(t, postRepo.Create(ctx, doomed))

		comment := &models.Comment{PostID: doomed.ID, AuthorID: commenter.ID, Text: "gone soon"}
		require.NoError(t, repo.Create(ctx, comment))

		require.NoError(t, postRepo.Delete(ctx, doomed.ID))

		_, err := repo.GetByID(ctx, comment.ID)
		assert.Error(t, err)
	})

	t.Run("Comments go with their author", func(t *testing.T) {
		doomed := makeTestUser(t, "c_doomed")

		comment := &models.Comment{PostID: post.ID, AuthorID: doomed.ID, Text: "orphaned soon"}
		require.NoError(t, repo.Create(ctx, comment))

		require.NoError(t, NewUserRepository(testDB).Delete(ctx, doomed.ID))

		_, err := repo.GetByID(ctx, comment.ID)
		assert.Error(t, err)

		// the host post survives, only the deleted author's comment is gone
		_, err = postRepo.GetByID(ctx, post.ID)
		assert.NoError(t, err)
	})

	t.Run("GetByPostID on missing post returns empty", func(t *testing.T) {
		comments, err := repo.GetByPostID(ctx, 999999, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}
