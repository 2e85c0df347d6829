package service

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Clark-Hu/netflix-shows/internal/errs"
	"github.com/Clark-Hu/netflix-shows/internal/repository"
	"github.com/Clark-Hu/netflix-shows/internal/testutil/pgtest"
)

func newPostgresService(t *testing.T) (*ShowService, func() int) {
	t.Helper()
	pool := pgtest.NewPool(t, "shows_service_test")
	repo := repository.NewWithPool(pool)
	return NewShowService(repo.Shows, zerolog.Nop()), func() int { return pgtest.CountShows(t, pool) }
}

var ignoreID = cmpopts.IgnoreFields(ShowDTO{}, "ID")

func TestShowService_Lifecycle(t *testing.T) {
	svc, _ := newPostgresService(t)
	ctx := context.Background()

	input := inceptionDTO()
	id, err := svc.Create(ctx, input)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	if diff := cmp.Diff(*input, *got, ignoreID); diff != "" {
		t.Fatalf("GetByID after Create mismatch (-want +got):\n%s", diff)
	}

	update := inceptionDTO()
	update.Title = strPtr("Inception (2010)")
	require.NoError(t, svc.Update(ctx, id, update))

	got, err = svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Inception (2010)", *got.Title)
	require.Equal(t, "Christopher Nolan", *got.Director)
	require.Equal(t, int32(2010), *got.ReleaseYear)

	deleted, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err = svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, got)

	deleted, err = svc.Delete(ctx, id)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestShowService_ListAllOrdersByTitle(t *testing.T) {
	svc, _ := newPostgresService(t)
	ctx := context.Background()

	empty, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Nil(t, empty)

	for _, title := range []string{"B", "A", "C"} {
		_, err := svc.Create(ctx, &ShowDTO{ShowType: "TV_SHOW", Title: strPtr(title)})
		require.NoError(t, err)
	}

	shows, err := svc.ListAll(ctx)
	require.NoError(t, err)

	titles := make([]string, 0, len(shows))
	for _, show := range shows {
		titles = append(titles, *show.Title)
	}
	require.Equal(t, []string{"A", "B", "C"}, titles)
}

func TestShowService_InvalidTypeWritesNothing(t *testing.T) {
	svc, count := newPostgresService(t)

	_, err := svc.Create(context.Background(), &ShowDTO{ShowType: "PODCAST", Title: strPtr("Serial")})
	require.True(t, errs.Is(err, errs.Validation))
	require.Zero(t, count())
}

func TestShowService_UpdateMissingLeavesStorageUnchanged(t *testing.T) {
	svc, count := newPostgresService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, inceptionDTO())
	require.NoError(t, err)

	err = svc.Update(ctx, id+100, &ShowDTO{ShowType: "TV_SHOW", Title: strPtr("Overwritten")})
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.NotFound))
	require.Equal(t, 1, count())

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Inception", *got.Title)
}
