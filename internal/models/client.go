package models

import "time"

// Cliente da barbearia, identificado pelo CPF
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"column:nome;size:100;not null" json:"nome"`
	CPF     string `gorm:"column:cpf;size:11;not null;uniqueIndex" json:"cpf"`
	Email   string `gorm:"column:email;size:100" json:"email"`
	Phone   string `gorm:"column:telefone;size:20" json:"telefone"`
	Address string `gorm:"column:endereco;size:255" json:"endereco"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clientes" }
