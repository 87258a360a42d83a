package scheduling

import (
	"context"

	"github.com/santosbarber/agenda-api/internal/audit"
	domain "github.com/santosbarber/agenda-api/internal/domain/scheduling"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(repo domain.Repository, audit *audit.Dispatcher) *CancelAppointment {
	return &CancelAppointment{repo: repo, audit: audit}
}

// Execute hard-deletes one appointment. There is no reschedule operation:
// cancel and book again is the only way to move a booking.
func (uc *CancelAppointment) Execute(ctx context.Context, id uint) error {
	if id == 0 {
		return domain.ValidationError{Field: "id"}
	}

	affected, err := uc.repo.DeleteAppointment(ctx, id)
	if err != nil {
		return domain.PersistenceError{Op: "excluir agendamento", Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Entity: "agendamento", ID: id}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "agendamento",
		EntityID: &id,
	})

	return nil
}
