package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	Specialties string `gorm:"size:255" json:"specialties"`

	// Active controla apenas novos agendamentos; os existentes não mudam
	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
