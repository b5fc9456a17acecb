package models

import "time"

// Service is one entry of a professional's catalog. Names are unique per
// professional; Position preserves the order the catalog was sent in.
type Service struct {
	ID             uint `gorm:"primaryKey" json:"-"`
	ProfessionalID uint `gorm:"index:idx_services_name,unique" json:"-"`

	Name        string  `gorm:"size:100;not null;index:idx_services_name,unique" json:"nome"`
	DurationMin int     `gorm:"not null" json:"duracao_minutos"`
	Price       float64 `json:"preco"`
	Position    int     `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
