package scheduling

import (
	"context"

	"github.com/santosbarber/agenda-api/internal/audit"
	domain "github.com/santosbarber/agenda-api/internal/domain/scheduling"
	"github.com/santosbarber/agenda-api/internal/models"
	"github.com/santosbarber/agenda-api/internal/validators"
)

type BookAppointmentInput struct {
	Date      string
	TimeSlot  string
	ClientCPF string
	BarberID  uint
	ServiceID uint
}

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(repo domain.Repository, audit *audit.Dispatcher) *BookAppointment {
	return &BookAppointment{repo: repo, audit: audit}
}

// Execute validates the five required fields and inserts the appointment.
// Availability is not re-checked here; the store's unique index on
// (date, slot, service) is what rejects a double booking, and that rejection
// surfaces as a PersistenceError like any other insert failure.
//
// The CPF is stored in the same bare-digit form the clientes table keeps, so
// the report join and the exact cpf_cliente filter match even when the
// booking form sends a formatted value.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	cpf := validators.NormalizeCPF(in.ClientCPF)

	switch {
	case in.Date == "":
		return nil, domain.ValidationError{Field: "data"}
	case in.TimeSlot == "":
		return nil, domain.ValidationError{Field: "horario"}
	case cpf == "":
		return nil, domain.ValidationError{Field: "cpf_cliente"}
	case in.BarberID == 0:
		return nil, domain.ValidationError{Field: "id_barbeiro"}
	case in.ServiceID == 0:
		return nil, domain.ValidationError{Field: "id_servico"}
	}

	ap := &models.Appointment{
		Date:      in.Date,
		TimeSlot:  domain.NormalizeSlot(in.TimeSlot),
		ClientCPF: cpf,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, domain.PersistenceError{Op: "cadastrar agendamento", Err: err}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "agendamento",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"data":       ap.Date,
			"horario":    ap.TimeSlot,
			"id_servico": ap.ServiceID,
		},
	})

	return ap, nil
}
