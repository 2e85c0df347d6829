package service

import "github.com/Clark-Hu/netflix-shows/internal/domain"

// ShowDTO is the external shape of a netflix show. ShowType carries the
// textual enum name.
type ShowDTO struct {
	ID               int64   `json:"id,omitempty"`
	ShowType         string  `json:"showType"`
	Title            *string `json:"title"`
	Director         *string `json:"director"`
	CastMembers      *string `json:"castMembers"`
	Country          *string `json:"country"`
	DateAdded        *string `json:"dateAdded"`
	ReleaseYear      *int32  `json:"releaseYear"`
	Rating           *string `json:"rating"`
	DurationInMinute *int32  `json:"durationInMinute"`
	ListedIn         *string `json:"listedIn"`
	Description      *string `json:"description"`
}

// toShow maps every field except identity. An unknown show type is a
// validation error.
func toShow(dto *ShowDTO) (domain.Show, error) {
	showType, err := domain.ParseShowType(dto.ShowType)
	if err != nil {
		return domain.Show{}, err
	}
	return domain.Show{
		Type:             showType,
		Title:            dto.Title,
		Director:         dto.Director,
		CastMembers:      dto.CastMembers,
		Country:          dto.Country,
		DateAdded:        dto.DateAdded,
		ReleaseYear:      dto.ReleaseYear,
		Rating:           dto.Rating,
		DurationInMinute: dto.DurationInMinute,
		ListedIn:         dto.ListedIn,
		Description:      dto.Description,
	}, nil
}

func toDTO(show domain.Show) ShowDTO {
	return ShowDTO{
		ID:               show.ID,
		ShowType:         show.Type.String(),
		Title:            show.Title,
		Director:         show.Director,
		CastMembers:      show.CastMembers,
		Country:          show.Country,
		DateAdded:        show.DateAdded,
		ReleaseYear:      show.ReleaseYear,
		Rating:           show.Rating,
		DurationInMinute: show.DurationInMinute,
		ListedIn:         show.ListedIn,
		Description:      show.Description,
	}
}
