package models

import "time"

// TimeWindow is the booked [start, end) interval of an appointment.
type TimeWindow struct {
	Start time.Time `gorm:"column:start_time;not null" json:"inicio"`
	End   time.Time `gorm:"column:end_time;not null" json:"fim"`
}

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint `gorm:"index" json:"professional_id"`

	// ClientID is a free identifier, not a foreign key: walk-in bookings
	// get a generated UUID when none is sent.
	ClientID   string `gorm:"size:36" json:"client_id"`
	ClientName string `gorm:"size:100;not null" json:"nome"`
	Note       string `gorm:"size:255" json:"observacao"`

	Window TimeWindow `gorm:"embedded" json:"horario"`

	// Services and Price are snapshots taken at booking time; a later
	// catalog edit does not change them.
	Services ServiceNames `gorm:"type:jsonb;serializer:json" json:"servicos"`
	Price    float64      `json:"valor"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceNames []string
