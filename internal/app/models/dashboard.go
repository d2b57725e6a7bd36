package models

import "time"

// DashboardSelection is the part of the dashboard state that outlives a
// process: which day is selected and which month the calendar shows.
type DashboardSelection struct {
	SelectedDate time.Time `json:"selected_date"`
	CurrentMonth time.Time `json:"current_month"`
}
