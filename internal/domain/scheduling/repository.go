package scheduling

import (
	"context"

	"github.com/santosbarber/agenda-api/internal/dto"
	"github.com/santosbarber/agenda-api/internal/models"
)

// Repository is the persistence contract the scheduling engine depends on.
type Repository interface {
	// BookedSlots returns the time slots already taken for the exact
	// (date, serviceID) pair. Values may carry seconds.
	BookedSlots(ctx context.Context, date string, serviceID uint) ([]string, error)

	// CreateAppointment inserts one appointment and fills in its ID.
	// It fails on constraint violation.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// DeleteAppointment removes an appointment by id and reports how many
	// rows were affected.
	DeleteAppointment(ctx context.Context, id uint) (int64, error)

	// ListAppointments runs the filtered, joined, sorted report read.
	ListAppointments(ctx context.Context, filter ListFilter) ([]dto.AppointmentReportRow, error)
}
