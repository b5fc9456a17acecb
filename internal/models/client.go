package models

import "time"

// Cliente simples, sem login, vinculado ao profissional
type Client struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index" json:"professional_id"`

	Name  string `gorm:"size:100;not null" json:"nome"`
	CPF   string `gorm:"size:14;not null" json:"cpf"`
	Email string `gorm:"size:100;not null" json:"email"`
	Phone string `gorm:"size:20;not null" json:"telefone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
