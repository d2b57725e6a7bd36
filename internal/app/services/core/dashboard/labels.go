package dashboard

import (
	"fmt"
	"gobarber-dashboard/internal/pkg/constvars"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Texts holds the fixed copy shown around the schedule.
type Texts struct {
	Welcome         string `json:"welcome"`
	ScheduledHours  string `json:"scheduled_hours"`
	Today           string `json:"today"`
	NextAppointment string `json:"next_appointment"`
	Morning         string `json:"morning"`
	Afternoon       string `json:"afternoon"`
	NoAppointments  string `json:"no_appointments"`
	SignOut         string `json:"sign_out"`
	ScheduleFailed  string `json:"schedule_failed"`
	CalendarFailed  string `json:"calendar_failed"`
	PreviousMonth   string `json:"previous_month"`
	NextMonth       string `json:"next_month"`
	Refresh         string `json:"refresh"`
	SignInTitle     string `json:"sign_in_title"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	SignIn          string `json:"sign_in"`
}

type Locale struct {
	Code       string
	Texts      Texts
	dayLabel   string
	tag        language.Tag
	translator locales.Translator
}

var (
	portugueseBrazil = Locale{
		Code: constvars.LocalePortugueseBrazil,
		Texts: Texts{
			Welcome:         "Bem-vindo,",
			ScheduledHours:  "Horários agendados",
			Today:           "Hoje",
			NextAppointment: "Agendamento a seguir",
			Morning:         "Manhã",
			Afternoon:       "Tarde",
			NoAppointments:  "Nenhum agendamento para este período",
			SignOut:         "Sair",
			ScheduleFailed:  "Não foi possível carregar os agendamentos.",
			CalendarFailed:  "Não foi possível carregar a disponibilidade do mês.",
			PreviousMonth:   "Mês anterior",
			NextMonth:       "Próximo mês",
			Refresh:         "Atualizar",
			SignInTitle:     "Faça seu logon",
			Email:           "E-mail",
			Password:        "Senha",
			SignIn:          "Entrar",
		},
		dayLabel:   "Dia %02d de %s",
		tag:        language.BrazilianPortuguese,
		translator: pt_BR.New(),
	}

	englishUS = Locale{
		Code: constvars.LocaleEnglishUS,
		Texts: Texts{
			Welcome:         "Welcome,",
			ScheduledHours:  "Scheduled times",
			Today:           "Today",
			NextAppointment: "Next appointment",
			Morning:         "Morning",
			Afternoon:       "Afternoon",
			NoAppointments:  "No appointments for this period",
			SignOut:         "Sign out",
			ScheduleFailed:  "Could not load the appointments.",
			CalendarFailed:  "Could not load the month availability.",
			PreviousMonth:   "Previous month",
			NextMonth:       "Next month",
			Refresh:         "Refresh",
			SignInTitle:     "Sign in",
			Email:           "E-mail",
			Password:        "Password",
			SignIn:          "Sign in",
		},
		dayLabel:   "Day %02d of %s",
		tag:        language.AmericanEnglish,
		translator: en.New(),
	}
)

// LocaleFor returns the locale registered under code, falling back to pt-BR.
func LocaleFor(code string) Locale {
	switch code {
	case constvars.LocaleEnglishUS:
		return englishUS
	default:
		return portugueseBrazil
	}
}

func (l Locale) MonthName(month time.Month) string {
	return l.translator.MonthWide(month)
}

func (l Locale) WeekdayName(weekday time.Weekday) string {
	return l.translator.WeekdayWide(weekday)
}

func (l Locale) WeekdayInitial(weekday time.Weekday) string {
	return l.translator.WeekdayNarrow(weekday)
}

// DayLabel renders "Dia 05 de março" style labels.
func (l Locale) DayLabel(date time.Time) string {
	return fmt.Sprintf(l.dayLabel, date.Day(), l.MonthName(date.Month()))
}

// Caption renders the calendar heading, e.g. "Março 2024".
func (l Locale) Caption(month time.Time) string {
	// cases.Caser keeps state, so one is built per call.
	return cases.Title(l.tag).String(fmt.Sprintf("%s %d", l.MonthName(month.Month()), month.Year()))
}
