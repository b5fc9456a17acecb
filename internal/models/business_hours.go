package models

import "time"

// BusinessHours holds one weekday of a professional's weekly schedule.
// Weekday is a canonical three-letter key (dom, seg, ter, qua, qui, sex,
// sab). Every professional owns exactly seven rows; a day without
// configured hours is stored with Closed = true.
type BusinessHours struct {
	ID             uint `gorm:"primaryKey" json:"-"`
	ProfessionalID uint `gorm:"index:idx_business_hours_day,unique" json:"-"`

	Weekday string `gorm:"size:3;not null;index:idx_business_hours_day,unique" json:"weekday"`
	Closed  bool   `json:"closed"`

	OpensAt  string `gorm:"size:5" json:"opens_at"`
	ClosesAt string `gorm:"size:5" json:"closes_at"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
