package scheduling

import (
	"context"

	domain "github.com/santosbarber/agenda-api/internal/domain/scheduling"
	"github.com/santosbarber/agenda-api/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute runs the report read. An empty filter lists everything; ordering
// (descending id, newest first) is part of the repository contract.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]dto.AppointmentReportRow, error) {

	rows, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, domain.PersistenceError{Op: "buscar agendamentos", Err: err}
	}
	if rows == nil {
		rows = []dto.AppointmentReportRow{}
	}
	return rows, nil
}
