package dto

// AppointmentReportRow is one row of the unified report listing. The joined
// name/price fields are pointers: when the referenced client, barber or
// service was deleted the left join yields NULL and the field is omitted,
// letting the caller fall back to the raw identifier.
type AppointmentReportRow struct {
	ID        uint   `gorm:"column:id" json:"id"`
	Date      string `gorm:"column:data" json:"data"`
	TimeSlot  string `gorm:"column:horario" json:"horario"`
	ClientCPF string `gorm:"column:cpf_cliente" json:"cpf_cliente"`
	BarberID  uint   `gorm:"column:id_barbeiro" json:"id_barbeiro"`
	ServiceID uint   `gorm:"column:id_servico" json:"id_servico"`

	ClientName   *string  `gorm:"column:client_name" json:"cliente_nome,omitempty"`
	BarberName   *string  `gorm:"column:barber_name" json:"barbeiro_nome,omitempty"`
	ServiceName  *string  `gorm:"column:service_name" json:"servico_nome,omitempty"`
	ServicePrice *float64 `gorm:"column:service_price" json:"servico_preco,omitempty"`
}

// NameRef is the minimal projection used by the booking form lookups.
type NameRef struct {
	ID   uint   `gorm:"column:id" json:"id"`
	Name string `gorm:"column:nome" json:"nome"`
}
