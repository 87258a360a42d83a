package models

import "time"

// Appointment binds a client, a barber and a service to one slot of the
// fixed daily schedule. Date and TimeSlot are stored textually: the report
// endpoint matches partial dates as substrings and stored slots may carry
// seconds, both of which are textual contracts.
//
// The composite unique index keeps one appointment per (date, slot, service).
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date     string `gorm:"column:data;size:10;not null;uniqueIndex:idx_agendamento_slot" json:"data"`
	TimeSlot string `gorm:"column:horario;size:8;not null;uniqueIndex:idx_agendamento_slot" json:"horario"`

	ClientCPF string `gorm:"column:cpf_cliente;size:11;not null" json:"cpf_cliente"`
	BarberID  uint   `gorm:"column:id_barbeiro;not null" json:"id_barbeiro"`
	ServiceID uint   `gorm:"column:id_servico;not null;uniqueIndex:idx_agendamento_slot" json:"id_servico"`

	CreatedAt time.Time `json:"created_at"`
}

func (Appointment) TableName() string { return "agendamentos" }
