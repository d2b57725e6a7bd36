package responses

type GobarberUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type GobarberSession struct {
	User  GobarberUser `json:"user"`
	Token string       `json:"token"`
}

type GobarberMonthAvailabilityItem struct {
	Day       int  `json:"day"`
	Available bool `json:"available"`
}

type GobarberAppointment struct {
	ID   string       `json:"id"`
	Date string       `json:"date"`
	User GobarberUser `json:"user"`
}
