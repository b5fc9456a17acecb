package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"nome"`
	CNPJ    string `gorm:"size:20" json:"cnpj,omitempty"`
	CPF     string `gorm:"size:14" json:"cpf,omitempty"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Phone   string `gorm:"size:20;not null" json:"telefone"`
	Address string `gorm:"size:255" json:"endereco"`

	Timezone string `gorm:"size:50" json:"timezone,omitempty"`

	Services []Service       `gorm:"constraint:OnDelete:CASCADE;" json:"servicos"`
	Hours    []BusinessHours `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
