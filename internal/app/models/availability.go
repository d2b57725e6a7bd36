package models

type MonthAvailabilityItem struct {
	Day       int  `json:"day"`
	Available bool `json:"available"`
}
