package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Clark-Hu/netflix-shows/internal/domain"
	"github.com/Clark-Hu/netflix-shows/internal/store"
)

//go:generate mockgen -destination=mocks/show_gateway.go -package=mocks . ShowGateway

// ShowGateway issues the fixed native statements against netflix_shows.
type ShowGateway interface {
	// Insert stores a new show and returns the identity assigned by the database.
	Insert(ctx context.Context, show domain.Show) (int64, error)
	// FindAll returns every show ordered by title.
	FindAll(ctx context.Context) ([]domain.Show, error)
	// FindByID reports found=false, not an error, when no row matches.
	FindByID(ctx context.Context, id int64) (show domain.Show, found bool, err error)
	// Update replaces every non-identity column and returns the rows affected.
	Update(ctx context.Context, id int64, show domain.Show) (int64, error)
	// Delete removes the row keyed by show.ID and returns the rows affected.
	Delete(ctx context.Context, show domain.Show) (int64, error)
	// InTx runs fn against a gateway bound to a single transaction.
	InTx(ctx context.Context, fn func(ShowGateway) error) error
}

// ShowsRepository provides persistence helpers for netflix show entities.
type ShowsRepository struct {
	db Querier
}

var _ ShowGateway = (*ShowsRepository)(nil)

const showColumns = `
    id,
    "type",
    title,
    director,
    cast_members,
    country,
    date_added,
    release_year,
    rating,
    duration_in_minute,
    listed_in,
    description
`

const insertShowSQL = `
    INSERT INTO netflix_shows (
        "type",
        title,
        director,
        cast_members,
        country,
        date_added,
        release_year,
        rating,
        duration_in_minute,
        listed_in,
        description
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    RETURNING id
`

const findAllShowsSQL = `SELECT ` + showColumns + ` FROM netflix_shows ORDER BY title`

const findShowByIDSQL = `SELECT ` + showColumns + ` FROM netflix_shows WHERE id = $1`

const updateShowSQL = `
    UPDATE netflix_shows
    SET "type" = $2,
        title = $3,
        director = $4,
        cast_members = $5,
        country = $6,
        date_added = $7,
        release_year = $8,
        rating = $9,
        duration_in_minute = $10,
        listed_in = $11,
        description = $12
    WHERE id = $1
`

const deleteShowSQL = `DELETE FROM netflix_shows WHERE id = $1`

// Insert binds all eleven non-identity columns and returns the generated id.
func (r *ShowsRepository) Insert(ctx context.Context, show domain.Show) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertShowSQL,
		show.Type.String(),
		show.Title,
		show.Director,
		show.CastMembers,
		show.Country,
		show.DateAdded,
		show.ReleaseYear,
		show.Rating,
		show.DurationInMinute,
		show.ListedIn,
		show.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert netflix show: %w", err)
	}
	return id, nil
}

// FindAll returns all shows ordered by title ascending. Tie order is left to
// the database.
func (r *ShowsRepository) FindAll(ctx context.Context) ([]domain.Show, error) {
	rows, err := r.db.Query(ctx, findAllShowsSQL)
	if err != nil {
		return nil, fmt.Errorf("query netflix shows: %w", err)
	}
	defer rows.Close()

	shows := make([]domain.Show, 0)
	for rows.Next() {
		show, err := scanShow(rows)
		if err != nil {
			return nil, err
		}
		shows = append(shows, show)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate netflix shows: %w", err)
	}
	return shows, nil
}

// FindByID fetches a show by its identifier.
func (r *ShowsRepository) FindByID(ctx context.Context, id int64) (domain.Show, bool, error) {
	show, err := scanShow(r.db.QueryRow(ctx, findShowByIDSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Show{}, false, nil
		}
		return domain.Show{}, false, fmt.Errorf("find netflix show %d: %w", id, err)
	}
	return show, true, nil
}

// Update overwrites every column except id. Zero rows affected is not an error.
func (r *ShowsRepository) Update(ctx context.Context, id int64, show domain.Show) (int64, error) {
	tag, err := r.db.Exec(ctx, updateShowSQL,
		id,
		show.Type.String(),
		show.Title,
		show.Director,
		show.CastMembers,
		show.Country,
		show.DateAdded,
		show.ReleaseYear,
		show.Rating,
		show.DurationInMinute,
		show.ListedIn,
		show.Description,
	)
	if err != nil {
		return 0, fmt.Errorf("update netflix show %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes the row with show.ID. Zero rows affected is not an error.
func (r *ShowsRepository) Delete(ctx context.Context, show domain.Show) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteShowSQL, show.ID)
	if err != nil {
		return 0, fmt.Errorf("delete netflix show %d: %w", show.ID, err)
	}
	return tag.RowsAffected(), nil
}

// InTx runs fn with a repository bound to a new transaction. Nested calls use
// a savepoint on the outer transaction.
func (r *ShowsRepository) InTx(ctx context.Context, fn func(ShowGateway) error) error {
	return store.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&ShowsRepository{db: tx})
	})
}

func scanShow(row pgx.Row) (domain.Show, error) {
	var (
		show     domain.Show
		showType string
	)

	err := row.Scan(
		&show.ID,
		&showType,
		&show.Title,
		&show.Director,
		&show.CastMembers,
		&show.Country,
		&show.DateAdded,
		&show.ReleaseYear,
		&show.Rating,
		&show.DurationInMinute,
		&show.ListedIn,
		&show.Description,
	)
	if err != nil {
		return domain.Show{}, err
	}

	show.Type, err = domain.ParseShowType(showType)
	if err != nil {
		// A stored value outside the enum is a storage fault, not caller input.
		return domain.Show{}, fmt.Errorf("scan netflix show %d: %v", show.ID, err)
	}
	return show, nil
}
