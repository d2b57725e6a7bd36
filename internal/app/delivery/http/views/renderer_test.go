package views

import (
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/app/services/core/dashboard"
	"gobarber-dashboard/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_SignIn(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = renderer.Render(rr, http.StatusUnauthorized, PageSignIn, SignInPage{
		Texts: dashboard.LocaleFor(constvars.LocaleEnglishUS).Texts,
		Email: "ana@gobarber.com",
		From:  "/dashboard",
		Error: "Incorrect email/password combination.",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "no-store", rr.Header().Get(constvars.HeaderCacheControl))
	assert.Contains(t, rr.Header().Get(constvars.HeaderContentType), "text/html")
	assert.Contains(t, rr.Body.String(), "Incorrect email/password combination.")
	assert.Contains(t, rr.Body.String(), `value="/dashboard"`)
}

func TestRenderer_DashboardCalendar(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	now := time.Date(2024, time.March, 5, 15, 0, 0, 0, time.UTC)
	view := dashboard.Derive(dashboard.State{
		SelectedDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		CurrentMonth: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Appointments: []models.Appointment{
			{ID: "a1", Date: time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC), HourFormatted: "09:00", Client: models.AppointmentClient{Name: "Caio"}},
		},
	}, now, time.UTC, dashboard.LocaleFor(constvars.LocalePortugueseBrazil))

	rr := httptest.NewRecorder()
	err = renderer.Render(rr, http.StatusOK, PageDashboard, DashboardPage{
		User: models.User{ID: "u1", Name: "Ana Barber"},
		View: view,
	})

	require.NoError(t, err)
	body := rr.Body.String()
	assert.Contains(t, body, "Março 2024")
	assert.Contains(t, body, "Caio")
	assert.Contains(t, body, "09:00")
	assert.Contains(t, body, `value="2024-04"`)
	assert.Contains(t, body, `value="2024-03-07"`)
	// The only appointment is in the past, so no banner.
	assert.NotContains(t, body, "Agendamento a seguir")
}

func TestRenderer_UnknownPage(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = renderer.Render(rr, http.StatusOK, "missing.html", nil)

	assert.Error(t, err)
	assert.Empty(t, rr.Body.String())
}

func TestStaticHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	StaticHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/dashboard.css", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/css")
}
