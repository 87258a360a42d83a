package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/santosbarber/agenda-api/internal/domain/scheduling"
	"github.com/santosbarber/agenda-api/internal/httperr"
	"github.com/santosbarber/agenda-api/internal/middleware"
	"github.com/santosbarber/agenda-api/internal/usecase/scheduling"
	"github.com/santosbarber/agenda-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	getAvailability   *scheduling.GetAvailability
	bookAppointment   *scheduling.BookAppointment
	cancelAppointment *scheduling.CancelAppointment
	listAppointments  *scheduling.ListAppointments
}

func NewAppointmentHandler(
	getAvailability *scheduling.GetAvailability,
	bookAppointment *scheduling.BookAppointment,
	cancelAppointment *scheduling.CancelAppointment,
	listAppointments *scheduling.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		getAvailability:   getAvailability,
		bookAppointment:   bookAppointment,
		cancelAppointment: cancelAppointment,
		listAppointments:  listAppointments,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	Date      string `json:"data"`
	TimeSlot  string `json:"horario"`
	ClientCPF string `json:"cpf_cliente"`
	BarberID  uint   `json:"id_barbeiro"`
	ServiceID uint   `json:"id_servico"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// GET /horarios-disponiveis?data=&id=
func (h *AppointmentHandler) Availability(c *gin.Context) {
	date := c.Query("data")

	var serviceID uint
	if raw := c.Query("id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.String(http.StatusBadRequest, "Serviço inválido.")
			return
		}
		serviceID = uint(n)
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), date, serviceID)
	if err != nil {
		logger := middleware.Logger(c)
		logger.Error().Err(err).Msg("availability lookup failed")
		c.String(http.StatusInternalServerError, "Erro ao buscar horários ocupados")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// ======================================================
// BOOK
// ======================================================

// POST /cadastrar-agendamento
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Dados inválidos.")
		return
	}

	_, err := h.bookAppointment.Execute(c.Request.Context(), scheduling.BookAppointmentInput{
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		ClientCPF: req.ClientCPF,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
	})
	if err != nil {
		if !domain.IsValidation(err) {
			logger := middleware.Logger(c)
			logger.Error().Err(err).Msg("booking failed")
		}
		httperr.WritePlain(c, err, "Erro ao cadastrar agendamento")
		return
	}

	c.String(http.StatusOK, "Agendamento cadastrado com sucesso!")
}

// ======================================================
// CANCEL
// ======================================================

// DELETE /excluir-agendamento/:id
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	raw := c.Param("id")

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID do agendamento é obrigatório.")
		return
	}

	if err := h.cancelAppointment.Execute(c.Request.Context(), uint(id)); err != nil {
		if domain.IsNotFound(err) {
			c.String(http.StatusNotFound, "Agendamento não encontrado.")
			return
		}
		if !domain.IsValidation(err) {
			logger := middleware.Logger(c)
			logger.Error().Err(err).Msg("cancellation failed")
		}
		httperr.WritePlain(c, err, "Erro ao excluir agendamento.")
		return
	}

	c.String(http.StatusOK, "Agendamento excluído com sucesso!")
}

// ======================================================
// REPORT
// ======================================================

// GET /agendamentos
//
// A bare ?date= query does the loose substring match used by the booking
// page; otherwise cpf_cliente, servico, dataInicio and dataFim combine
// with AND for the report/financial pages.
func (h *AppointmentHandler) List(c *gin.Context) {
	date := c.Query("date")
	cpf := c.Query("cpf_cliente")
	service := c.Query("servico")
	from := c.Query("dataInicio")
	to := c.Query("dataFim")

	var filter domain.ListFilter
	if date != "" && cpf == "" && service == "" && from == "" && to == "" {
		filter.ExactDate = date
	} else {
		// Stored CPFs are bare digits; accept formatted input here too.
		filter.ClientCPF = validators.NormalizeCPF(cpf)
		filter.ServiceName = service
		filter.DateFrom = from
		filter.DateTo = to
	}

	rows, err := h.listAppointments.Execute(c.Request.Context(), filter)
	if err != nil {
		logger := middleware.Logger(c)
		logger.Error().Err(err).Msg("appointment report failed")
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, rows)
}
