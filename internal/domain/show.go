package domain

import (
	"fmt"

	"github.com/Clark-Hu/netflix-shows/internal/errs"
)

// ShowType is the kind of Netflix title.
type ShowType string

const (
	ShowTypeMovie  ShowType = "MOVIE"
	ShowTypeTVShow ShowType = "TV_SHOW"
)

// ParseShowType converts the textual name into a ShowType. Matching is exact;
// anything else is a validation error.
func ParseShowType(text string) (ShowType, error) {
	switch ShowType(text) {
	case ShowTypeMovie, ShowTypeTVShow:
		return ShowType(text), nil
	}
	return "", errs.New(errs.Validation, "parse show type", fmt.Sprintf("unknown show type %q", text))
}

func (t ShowType) String() string {
	return string(t)
}

// Show represents one row of the netflix_shows table. ID is assigned by the
// database on insert; every other field apart from Type is nullable.
type Show struct {
	ID               int64
	Type             ShowType
	Title            *string
	Director         *string
	CastMembers      *string
	Country          *string
	DateAdded        *string
	ReleaseYear      *int32
	Rating           *string
	DurationInMinute *int32
	ListedIn         *string
	Description      *string
}
