package models

import "time"

type AppointmentClient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Appointment is one booking on the provider's schedule. HourFormatted is
// filled in once, when the day's appointments are fetched.
type Appointment struct {
	ID            string            `json:"id"`
	Date          time.Time         `json:"date"`
	Client        AppointmentClient `json:"client"`
	HourFormatted string            `json:"hour_formatted"`
}
