package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/santosbarber/agenda-api/internal/audit"
	"github.com/santosbarber/agenda-api/internal/cache"
	"github.com/santosbarber/agenda-api/internal/handlers"
	infraRepo "github.com/santosbarber/agenda-api/internal/infra/repository"
	ucScheduling "github.com/santosbarber/agenda-api/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, lookupCache *cache.Cache, log zerolog.Logger) {

	// ------------------------------
	// Infra
	// ------------------------------
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ------------------------------
	// Use cases (scheduling engine)
	// ------------------------------
	getAvailabilityUC := ucScheduling.NewGetAvailability(appointmentRepo)
	bookAppointmentUC := ucScheduling.NewBookAppointment(appointmentRepo, auditDispatcher)
	cancelAppointmentUC := ucScheduling.NewCancelAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucScheduling.NewListAppointments(appointmentRepo)

	// ------------------------------
	// Handlers
	// ------------------------------
	appointmentHandler := handlers.NewAppointmentHandler(
		getAvailabilityUC,
		bookAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
	)
	lookupHandler := handlers.NewLookupHandler(db, lookupCache)
	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(db, lookupCache, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, lookupCache, auditDispatcher)

	// ------------------------------
	// Scheduling
	// ------------------------------
	r.GET("/buscar-servicos", lookupHandler.Services)
	r.GET("/buscar-barbeiros", lookupHandler.Barbers)
	r.GET("/horarios-disponiveis", appointmentHandler.Availability)
	r.POST("/cadastrar-agendamento", appointmentHandler.Book)
	r.DELETE("/excluir-agendamento/:id", appointmentHandler.Cancel)
	r.GET("/agendamentos", appointmentHandler.List)

	// ------------------------------
	// Reference data
	// ------------------------------
	r.POST("/clientes", clientHandler.Create)
	r.GET("/clientes", clientHandler.List)
	r.PUT("/clientes/cpf/:cpf", clientHandler.UpdateByCPF)

	r.POST("/barbeiros", barberHandler.Create)
	r.GET("/barbeiros", barberHandler.List)
	r.PUT("/barbeiros/cpf/:cpf", barberHandler.UpdateByCPF)

	r.POST("/servicos", serviceHandler.Create)
	r.GET("/servicos", serviceHandler.List)
	r.PUT("/servicos/nome/:nome", serviceHandler.UpdateByName)
}
