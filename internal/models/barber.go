package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"column:nome;size:100;not null" json:"nome"`
	CPF       string `gorm:"column:cpf;size:11;not null;uniqueIndex" json:"cpf"`
	Email     string `gorm:"column:email;size:100" json:"email"`
	Phone     string `gorm:"column:telefone;size:20" json:"telefone"`
	Specialty string `gorm:"column:especialidade;size:100" json:"especialidade"`
	Address   string `gorm:"column:endereco;size:255" json:"endereco"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Barber) TableName() string { return "barbeiros" }
