package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/santosbarber/agenda-api/internal/domain/scheduling"
	"github.com/santosbarber/agenda-api/internal/dto"
	"github.com/santosbarber/agenda-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) BookedSlots(
	ctx context.Context,
	date string,
	serviceID uint,
) ([]string, error) {

	var slots []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("data = ? AND id_servico = ?", date, serviceID).
		Pluck("horario", &slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) (int64, error) {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	return res.RowsAffected, res.Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]dto.AppointmentReportRow, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(`
			agendamentos.id,
			agendamentos.data,
			agendamentos.horario,
			agendamentos.cpf_cliente,
			agendamentos.id_barbeiro,
			agendamentos.id_servico,
			clientes.nome AS client_name,
			barbeiros.nome AS barber_name,
			servicos.nome AS service_name,
			servicos.preco AS service_price
		`).
		Joins("LEFT JOIN clientes ON agendamentos.cpf_cliente = clientes.cpf").
		Joins("LEFT JOIN barbeiros ON agendamentos.id_barbeiro = barbeiros.id").
		Joins("LEFT JOIN servicos ON agendamentos.id_servico = servicos.id")

	for _, clause := range filter.Clauses() {
		q = q.Where(clause.SQL, clause.Args...)
	}

	var rows []dto.AppointmentReportRow
	if err := q.
		Order("agendamentos.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
