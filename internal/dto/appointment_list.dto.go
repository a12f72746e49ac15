package dto

import (
	"time"

	"github.com/barbertime/agenda-api/internal/models"
)

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	ClientName       string    `json:"client_name"`
	ProfessionalName string    `json:"professional_name"`
	ServiceNames     []string  `json:"service_names"`
	TotalDurationMin int       `json:"total_duration_min"`
	TotalPrice       float64   `json:"total_price"`
	Notes            string    `json:"notes"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	names := make([]string, 0, len(ap.Items))
	for _, item := range ap.Items {
		names = append(names, item.Name)
	}

	return AppointmentListDTO{
		ID:               ap.ID,
		StartTime:        ap.StartTime,
		EndTime:          ap.EndTime,
		Status:           ap.Status,
		ClientName:       ap.Client.Name,
		ProfessionalName: ap.Professional.Name,
		ServiceNames:     names,
		TotalDurationMin: ap.TotalDurationMin,
		TotalPrice:       ap.TotalPrice,
		Notes:            ap.Notes,
	}
}

type DashboardSummaryDTO struct {
	Date             string              `json:"date"`
	Appointments     int                 `json:"appointments"`
	Completed        int                 `json:"completed"`
	Revenue          float64             `json:"revenue"`
	NextAppointment  *AppointmentListDTO `json:"next_appointment"`
}
