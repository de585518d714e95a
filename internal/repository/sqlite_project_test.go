package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouazan/thesisflow/internal/domain"
	"github.com/mouazan/thesisflow/internal/testutil"
)

func TestProjectRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.Project()
	require.NoError(t, repo.Create(ctx, p))
	require.NotEmpty(t, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Topic, got.Topic)
	assert.Equal(t, domain.FieldComputerScience, got.Field)
	assert.Equal(t, testutil.Day(2025, 6, 1), got.Deadline)
	assert.Equal(t, 5.0, got.DailyHours)
	assert.Equal(t, domain.ProjectActive, got.Status)
	assert.False(t, got.UsedFallback)
	assert.Nil(t, got.ArchivedAt)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_GetActive(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	_, err := repo.GetActive(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	p := testutil.Project()
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	require.NoError(t, repo.Archive(ctx, p.ID))
	_, err = repo.GetActive(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.Project()
	require.NoError(t, repo.Create(ctx, p))

	p.UsedFallback = true
	p.FailureReason = "generation_unavailable"
	p.DailyHours = 3.5
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.UsedFallback)
	assert.Equal(t, "generation_unavailable", got.FailureReason)
	assert.Equal(t, 3.5, got.DailyHours)
}

func TestProjectRepo_ListExcludesArchived(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	a := testutil.Project()
	require.NoError(t, repo.Create(ctx, a))
	b := testutil.Project()
	b.Topic = "Second thesis"
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Archive(ctx, a.ID))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	archived, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectArchived, archived.Status)
	assert.NotNil(t, archived.ArchivedAt)
}

func TestProjectRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.Project()
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
