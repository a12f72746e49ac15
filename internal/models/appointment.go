package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID uint         `json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	// Itens carregam o snapshot de preço/duração no momento da reserva
	Items []AppointmentItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	TotalDurationMin int     `json:"total_duration_min"`
	TotalPrice       float64 `json:"total_price"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentItem congela nome, preço e duração do serviço na hora da
// criação; edições posteriores no catálogo não alteram agendamentos.
type AppointmentItem struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index" json:"appointment_id"`
	ServiceID     uint `json:"service_id"`

	Position    int     `json:"position"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	CreatedAt time.Time `json:"created_at"`
}
