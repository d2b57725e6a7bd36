package dashboard

import (
	"gobarber-dashboard/internal/app/models"
	"sort"
	"time"
)

// State is everything the dashboard shows, before presentation.
type State struct {
	SelectedDate       time.Time
	CurrentMonth       time.Time
	Appointments       []models.Appointment
	MonthAvailability  []models.MonthAvailabilityItem
	AvailabilityFailed bool
	AppointmentsFailed bool
}

// DisabledDays are the days of a month that cannot be picked: the explicit
// unavailable dates reported for that month plus every day falling on one of
// Weekdays.
type DisabledDays struct {
	Month       time.Time      `json:"month"`
	Unavailable []time.Time    `json:"unavailable"`
	Weekdays    []time.Weekday `json:"weekdays"`
}

func NewDisabledDays(currentMonth time.Time, availability []models.MonthAvailabilityItem) DisabledDays {
	month := StartOfMonth(currentMonth)
	lastDay := daysIn(month)

	unavailable := make([]time.Time, 0)
	for _, item := range availability {
		if item.Available || item.Day < 1 || item.Day > lastDay {
			continue
		}
		unavailable = append(unavailable, time.Date(month.Year(), month.Month(), item.Day, 0, 0, 0, 0, month.Location()))
	}

	return DisabledDays{
		Month:       month,
		Unavailable: unavailable,
		Weekdays:    []time.Weekday{time.Sunday, time.Saturday},
	}
}

func (d DisabledDays) Contains(date time.Time) bool {
	for _, weekday := range d.Weekdays {
		if date.Weekday() == weekday {
			return true
		}
	}
	for _, day := range d.Unavailable {
		if sameDay(day, date) {
			return true
		}
	}
	return false
}

// Dates lists every disabled date of the month in ascending order.
func (d DisabledDays) Dates() []time.Time {
	dates := make([]time.Time, 0, len(d.Unavailable)+10)
	dates = append(dates, d.Unavailable...)

	for day := 1; day <= daysIn(d.Month); day++ {
		date := time.Date(d.Month.Year(), d.Month.Month(), day, 0, 0, 0, 0, d.Month.Location())
		if d.isDisabledWeekday(date.Weekday()) && !containsDay(d.Unavailable, date) {
			dates = append(dates, date)
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func (d DisabledDays) isDisabledWeekday(weekday time.Weekday) bool {
	for _, w := range d.Weekdays {
		if w == weekday {
			return true
		}
	}
	return false
}

// IsWorkday reports whether the calendar marks date as bookable, Monday to Friday.
func IsWorkday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

type DayCell struct {
	Date      time.Time `json:"date"`
	Day       int       `json:"day"`
	InMonth   bool      `json:"in_month"`
	Disabled  bool      `json:"disabled"`
	Available bool      `json:"available"`
	Selected  bool      `json:"selected"`
	Today     bool      `json:"today"`
}

type Week struct {
	Days []DayCell `json:"days"`
}

type Calendar struct {
	Month         time.Time `json:"month"`
	Caption       string    `json:"caption"`
	Weekdays      []string  `json:"weekdays"`
	Weeks         []Week    `json:"weeks"`
	PreviousMonth time.Time `json:"previous_month"`
	NextMonth     time.Time `json:"next_month"`
	CanGoPrevious bool      `json:"can_go_previous"`
}

// View is the presentational form of State shared by the HTML pages, the
// JSON endpoint and the terminal client.
type View struct {
	Locale               string               `json:"locale"`
	Texts                Texts                `json:"texts"`
	Now                  time.Time            `json:"now"`
	SelectedDate         time.Time            `json:"selected_date"`
	SelectedDateLabel    string               `json:"selected_date_label"`
	SelectedWeekdayLabel string               `json:"selected_weekday_label"`
	IsToday              bool                 `json:"is_today"`
	Appointments         []models.Appointment `json:"appointments"`
	Morning              []models.Appointment `json:"morning"`
	Afternoon            []models.Appointment `json:"afternoon"`
	NextAppointment      *models.Appointment  `json:"next_appointment"`
	ShowNextAppointment  bool                 `json:"show_next_appointment"`
	DisabledDays         DisabledDays         `json:"disabled_days"`
	Calendar             Calendar             `json:"calendar"`
	AvailabilityFailed   bool                 `json:"availability_failed"`
	AppointmentsFailed   bool                 `json:"appointments_failed"`
}

// Derive computes the view for state as seen at now in loc. It does not
// modify state.
func Derive(state State, now time.Time, loc *time.Location, locale Locale) View {
	now = now.In(loc)
	selected := StartOfDay(state.SelectedDate.In(loc))
	month := StartOfMonth(state.CurrentMonth.In(loc))
	disabled := NewDisabledDays(month, state.MonthAvailability)

	morning := make([]models.Appointment, 0)
	afternoon := make([]models.Appointment, 0)
	var next *models.Appointment
	for i := range state.Appointments {
		appointment := state.Appointments[i]
		if appointment.Date.In(loc).Hour() < 12 {
			morning = append(morning, appointment)
		} else {
			afternoon = append(afternoon, appointment)
		}
		if next == nil && appointment.Date.After(now) {
			next = &appointment
		}
	}

	isToday := sameDay(selected, now)
	appointments := state.Appointments
	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}

	return View{
		Locale:               locale.Code,
		Texts:                locale.Texts,
		Now:                  now,
		SelectedDate:         selected,
		SelectedDateLabel:    locale.DayLabel(selected),
		SelectedWeekdayLabel: locale.WeekdayName(selected.Weekday()),
		IsToday:              isToday,
		Appointments:         appointments,
		Morning:              morning,
		Afternoon:            afternoon,
		NextAppointment:      next,
		ShowNextAppointment:  isToday && next != nil,
		DisabledDays:         disabled,
		Calendar:             buildCalendar(month, selected, now, disabled, locale),
		AvailabilityFailed:   state.AvailabilityFailed,
		AppointmentsFailed:   state.AppointmentsFailed,
	}
}

// buildCalendar lays the month out in Sunday-first weeks.
func buildCalendar(month, selected, now time.Time, disabled DisabledDays, locale Locale) Calendar {
	weekdays := make([]string, 7)
	for i := range weekdays {
		weekdays[i] = locale.WeekdayInitial(time.Weekday(i))
	}

	first := month
	last := month.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var weeks []Week
	var current Week
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		current.Days = append(current.Days, DayCell{
			Date:      day,
			Day:       day.Day(),
			InMonth:   day.Month() == month.Month(),
			Disabled:  disabled.Contains(day),
			Available: IsWorkday(day),
			Selected:  sameDay(day, selected),
			Today:     sameDay(day, now),
		})
		if day.Weekday() == time.Saturday {
			weeks = append(weeks, current)
			current = Week{}
		}
	}

	thisMonth := StartOfMonth(now)
	return Calendar{
		Month:         month,
		Caption:       locale.Caption(month),
		Weekdays:      weekdays,
		Weeks:         weeks,
		PreviousMonth: month.AddDate(0, -1, 0),
		NextMonth:     month.AddDate(0, 1, 0),
		CanGoPrevious: month.After(thisMonth),
	}
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func daysIn(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, month.Location()).Day()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func containsDay(dates []time.Time, date time.Time) bool {
	for _, d := range dates {
		if sameDay(d, date) {
			return true
		}
	}
	return false
}
