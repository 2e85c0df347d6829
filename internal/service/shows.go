package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Clark-Hu/netflix-shows/internal/errs"
	"github.com/Clark-Hu/netflix-shows/internal/repository"
)

const (
	opCreate = "failed to create netflix show"
	opList   = "failed to get all netflix shows"
	opGet    = "failed to get netflix show by id"
	opUpdate = "failed to update netflix show"
	opDelete = "failed to delete netflix show"
)

// ShowService validates arguments, maps DTOs to records and runs writes
// inside a transaction.
type ShowService struct {
	shows  repository.ShowGateway
	logger zerolog.Logger
}

// NewShowService constructs a ShowService over the given gateway.
func NewShowService(shows repository.ShowGateway, logger zerolog.Logger) *ShowService {
	return &ShowService{
		shows:  shows,
		logger: logger.With().Str("component", "show_service").Logger(),
	}
}

// Create stores a new show and returns its database-assigned id.
func (s *ShowService) Create(ctx context.Context, dto *ShowDTO) (int64, error) {
	if dto == nil {
		return 0, errs.New(errs.InvalidArgument, opCreate, "show must not be nil")
	}

	show, err := toShow(dto)
	if err != nil {
		return 0, errs.Wrap(errs.Validation, opCreate, err)
	}

	var id int64
	err = s.shows.InTx(ctx, func(tx repository.ShowGateway) error {
		var err error
		id, err = tx.Insert(ctx, show)
		return err
	})
	if err != nil {
		return 0, errs.Wrap(errs.Operation, opCreate, err)
	}

	s.logger.Debug().Int64("id", id).Msg("netflix show created")
	return id, nil
}

// ListAll returns every show ordered by title. An empty table yields nil
// rather than an empty slice.
func (s *ShowService) ListAll(ctx context.Context) ([]ShowDTO, error) {
	shows, err := s.shows.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.Operation, opList, err)
	}
	if len(shows) == 0 {
		return nil, nil
	}

	dtos := make([]ShowDTO, 0, len(shows))
	for _, show := range shows {
		dtos = append(dtos, toDTO(show))
	}
	return dtos, nil
}

// GetByID returns the show with the given id, or nil when none exists.
func (s *ShowService) GetByID(ctx context.Context, id int64) (*ShowDTO, error) {
	if id <= 0 {
		return nil, errs.New(errs.InvalidArgument, opGet, "id must not be empty")
	}

	show, found, err := s.shows.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(errs.Operation, opGet, err)
	}
	if !found {
		return nil, nil
	}

	dto := toDTO(show)
	return &dto, nil
}

// Update replaces every field of an existing show. A missing id is a NotFound
// failure.
func (s *ShowService) Update(ctx context.Context, id int64, dto *ShowDTO) error {
	if dto == nil {
		return errs.New(errs.InvalidArgument, opUpdate, "show must not be nil")
	}
	if id <= 0 {
		return errs.New(errs.InvalidArgument, opUpdate, "id must not be empty")
	}

	replacement, err := toShow(dto)
	if err != nil {
		return errs.Wrap(errs.Validation, opUpdate, err)
	}

	err = s.shows.InTx(ctx, func(tx repository.ShowGateway) error {
		existing, found, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return errs.New(errs.NotFound, "", "netflix show not found")
		}

		replacement.ID = existing.ID
		_, err = tx.Update(ctx, id, replacement)
		return err
	})
	if err != nil {
		return errs.Wrap(errs.Operation, opUpdate, err)
	}

	s.logger.Debug().Int64("id", id).Msg("netflix show updated")
	return nil
}

// Delete removes the show with the given id. It reports false, not an error,
// when the show does not exist.
func (s *ShowService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, errs.New(errs.InvalidArgument, opDelete, "id must not be empty")
	}

	deleted := false
	err := s.shows.InTx(ctx, func(tx repository.ShowGateway) error {
		existing, found, err := tx.FindByID(ctx, id)
		if err != nil || !found {
			return err
		}
		if _, err := tx.Delete(ctx, existing); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, errs.Wrap(errs.Operation, opDelete, err)
	}

	if deleted {
		s.logger.Debug().Int64("id", id).Msg("netflix show deleted")
	}
	return deleted, nil
}
