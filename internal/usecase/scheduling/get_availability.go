package scheduling

import (
	"context"

	domain "github.com/santosbarber/agenda-api/internal/domain/scheduling"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the bookable slots for a (date, service) pair, in the
// fixed schedule's order. An incomplete selection (empty date or zero
// service id) yields an empty list, not an error: the booking form calls
// this while the user is still picking fields.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	serviceID uint,
) ([]string, error) {

	if date == "" || serviceID == 0 {
		return []string{}, nil
	}

	booked, err := uc.repo.BookedSlots(ctx, date, serviceID)
	if err != nil {
		return nil, domain.PersistenceError{Op: "buscar horários ocupados", Err: err}
	}

	return domain.SubtractBooked(booked), nil
}
