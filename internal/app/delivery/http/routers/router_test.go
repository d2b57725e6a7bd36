package routers

import (
	"context"
	"errors"
	"gobarber-dashboard/internal/app/config"
	"gobarber-dashboard/internal/app/contracts"
	"gobarber-dashboard/internal/app/delivery/http/controllers"
	"gobarber-dashboard/internal/app/delivery/http/middlewares"
	"gobarber-dashboard/internal/app/delivery/http/views"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/app/services/core/auth"
	"gobarber-dashboard/internal/app/services/core/dashboard"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/dto/requests"
	"gobarber-dashboard/internal/pkg/exceptions"
	"gobarber-dashboard/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const testSecret = "router-test-secret"

type MockGobarberAPIClient struct {
	mock.Mock
}

func (m *MockGobarberAPIClient) CreateSession(ctx context.Context, request *requests.GobarberCreateSession) (*models.User, string, error) {
	args := m.Called(ctx, request)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func (m *MockGobarberAPIClient) WithToken(token string) contracts.ScheduleAPIClient {
	args := m.Called(token)
	client, _ := args.Get(0).(contracts.ScheduleAPIClient)
	return client
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user models.User, apiToken string) (*models.Session, error) {
	args := m.Called(ctx, user, apiToken)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockDashboardUsecase struct {
	mock.Mock
}

func (m *MockDashboardUsecase) GetDashboard(ctx context.Context, session *models.Session) (*dashboard.View, error) {
	args := m.Called(ctx, session)
	view, _ := args.Get(0).(*dashboard.View)
	return view, args.Error(1)
}

func (m *MockDashboardUsecase) SelectDay(ctx context.Context, session *models.Session, day time.Time) (*dashboard.View, error) {
	args := m.Called(ctx, session, day)
	view, _ := args.Get(0).(*dashboard.View)
	return view, args.Error(1)
}

func (m *MockDashboardUsecase) ChangeMonth(ctx context.Context, session *models.Session, month time.Time) (*dashboard.View, error) {
	args := m.Called(ctx, session, month)
	view, _ := args.Get(0).(*dashboard.View)
	return view, args.Error(1)
}

func (m *MockDashboardUsecase) Refresh(ctx context.Context, session *models.Session) (*dashboard.View, error) {
	args := m.Called(ctx, session)
	view, _ := args.Get(0).(*dashboard.View)
	return view, args.Error(1)
}

func (m *MockDashboardUsecase) EvictIdle(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockDashboardUsecase) Close(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type testApp struct {
	router    *chi.Mux
	apiClient *MockGobarberAPIClient
	sessions  *MockSessionService
	dashboard *MockDashboardUsecase
	session   *models.Session
}

func newTestApp(t *testing.T) *testApp {
	internalConfig := &config.InternalConfig{
		App: config.App{
			Timezone:                       "UTC",
			Locale:                         constvars.LocalePortugueseBrazil,
			MaxRequests:                    1000,
			RequestTimeoutInSeconds:        5,
			LoginSessionExpiredTimeInHours: 1,
			AllowedOrigins:                 "*",
		},
		JWT: config.AppJWT{Secret: testSecret},
	}
	logger := zap.NewNop()

	app := &testApp{
		router:    chi.NewRouter(),
		apiClient: new(MockGobarberAPIClient),
		sessions:  new(MockSessionService),
		dashboard: new(MockDashboardUsecase),
		session: &models.Session{
			SessionID: "s1",
			User:      models.User{ID: "u1", Name: "Ana Barber", AvatarURL: "http://img/ana.png"},
			APIToken:  "api-token",
		},
	}
	app.sessions.On("GetSession", mock.Anything, "s1").Return(app.session, nil)

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	authUsecase := auth.NewAuthUsecase(app.apiClient, app.sessions, nil, internalConfig, logger, app.dashboard)
	m := middlewares.NewMiddlewares(logger, internalConfig, authUsecase, app.sessions)
	redisClient := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { redisClient.Close() })

	SetupRoutes(
		app.router,
		internalConfig,
		m,
		controllers.NewAuthController(logger, internalConfig, authUsecase, renderer),
		controllers.NewDashboardController(logger, internalConfig, authUsecase, app.dashboard, renderer),
		controllers.NewHealthController(logger, redisClient, "test"),
	)
	return app
}

func (app *testApp) do(method, target string, form url.Values, signedIn bool) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if signedIn {
		token, _ := utils.GenerateSessionJWT("s1", testSecret, time.Hour)
		req.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: token})
	}

	rr := httptest.NewRecorder()
	app.router.ServeHTTP(rr, req)
	return rr
}

func testView() *dashboard.View {
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	view := dashboard.Derive(dashboard.State{
		SelectedDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		CurrentMonth: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Appointments: []models.Appointment{
			{ID: "a1", Date: time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC), HourFormatted: "14:00", Client: models.AppointmentClient{Name: "Bia"}},
		},
	}, now, time.UTC, dashboard.LocaleFor(constvars.LocalePortugueseBrazil))
	return &view
}

func TestRoutes_TableMarksPrivateRoutes(t *testing.T) {
	routes := Routes(&controllers.AuthController{}, &controllers.DashboardController{})

	private := map[string]bool{}
	for _, route := range routes {
		private[route.Method+" "+route.Path] = route.IsPrivate
	}
	assert.False(t, private["GET /"])
	assert.False(t, private["POST /sessions"])
	assert.True(t, private["GET /dashboard"])
	assert.True(t, private["POST /dashboard/day"])
	assert.True(t, private["GET /api/dashboard"])
	assert.True(t, private["POST /signout"])
}

func TestRouter_AnonymousDashboardRedirectsToSignIn(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(http.MethodGet, "/dashboard", nil, false)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/?from=%2Fdashboard", rr.Header().Get("Location"))
}

func TestRouter_SignInPage(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(http.MethodGet, "/?from=%2Fdashboard", nil, false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Faça seu logon")
	assert.Contains(t, rr.Body.String(), `value="/dashboard"`)
}

func TestRouter_SignedInUserIsSentToDashboard(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(http.MethodGet, "/", nil, true)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/dashboard?from=%2F", rr.Header().Get("Location"))
}

func TestRouter_Dashboard(t *testing.T) {
	app := newTestApp(t)
	app.dashboard.On("GetDashboard", mock.Anything, app.session).Return(testView(), nil)

	rr := app.do(http.MethodGet, "/dashboard", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Horários agendados")
	assert.Contains(t, body, "Ana Barber")
	assert.Contains(t, body, "Dia 05 de março")
	assert.Contains(t, body, "Agendamento a seguir")
	assert.Contains(t, body, "Nenhum agendamento para este período")
	assert.Contains(t, body, "Bia")
}

func TestRouter_APIDashboard(t *testing.T) {
	app := newTestApp(t)
	app.dashboard.On("GetDashboard", mock.Anything, app.session).Return(testView(), nil)

	rr := app.do(http.MethodGet, "/api/dashboard", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.Bytes()
	assert.True(t, gjson.GetBytes(body, "success").Bool())
	assert.Equal(t, "Ana Barber", gjson.GetBytes(body, "data.user.name").String())
	assert.Equal(t, "Dia 05 de março", gjson.GetBytes(body, "data.view.selected_date_label").String())
	assert.Equal(t, "a1", gjson.GetBytes(body, "data.view.next_appointment.id").String())
}

func TestRouter_SelectDay(t *testing.T) {
	app := newTestApp(t)
	target := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	app.dashboard.On("SelectDay", mock.Anything, app.session, mock.MatchedBy(func(day time.Time) bool {
		return day.Equal(target)
	})).Return(testView(), nil).Once()

	rr := app.do(http.MethodPost, "/dashboard/day", url.Values{"date": {"2024-03-07"}}, true)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
	app.dashboard.AssertExpectations(t)
}

func TestRouter_SelectDayRejectsBadDate(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(http.MethodPost, "/dashboard/day", url.Values{"date": {"07/03/2024"}}, true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	app.dashboard.AssertNotCalled(t, "SelectDay", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_ChangeMonth(t *testing.T) {
	app := newTestApp(t)
	april := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	app.dashboard.On("ChangeMonth", mock.Anything, app.session, mock.MatchedBy(func(month time.Time) bool {
		return month.Equal(april)
	})).Return(testView(), nil).Once()

	rr := app.do(http.MethodPost, "/dashboard/month", url.Values{"month": {"2024-04"}}, true)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	app.dashboard.AssertExpectations(t)
}

func TestRouter_Refresh(t *testing.T) {
	app := newTestApp(t)
	app.dashboard.On("Refresh", mock.Anything, app.session).Return(testView(), nil).Once()

	rr := app.do(http.MethodPost, "/dashboard/refresh", url.Values{}, true)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	app.dashboard.AssertExpectations(t)
}

func TestRouter_AnonymousPostIsRedirectedWithSeeOther(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(http.MethodPost, "/dashboard/day", url.Values{"date": {"2024-03-07"}}, false)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestRouter_SignInAfterAnonymousPostLandsOnDashboard(t *testing.T) {
	app := newTestApp(t)
	user := &models.User{ID: "u1", Name: "Ana Barber"}
	app.apiClient.On("CreateSession", mock.Anything, mock.Anything).Return(user, "api-token", nil)
	app.sessions.On("CreateSession", mock.Anything, *user, "api-token").Return(app.session, nil)

	rr := app.do(http.MethodPost, "/dashboard/day", url.Values{"date": {"2024-03-07"}}, false)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	location, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)

	rr = app.do(http.MethodPost, "/sessions", url.Values{
		"email":    {"ana@gobarber.com"},
		"password": {"123456"},
		"from":     {location.Query().Get("from")},
	}, false)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, constvars.RouteAuthenticatedLanding, rr.Header().Get("Location"))
}

func TestRouter_SignIn(t *testing.T) {
	app := newTestApp(t)
	user := &models.User{ID: "u1", Name: "Ana Barber"}
	app.apiClient.On("CreateSession", mock.Anything, &requests.GobarberCreateSession{Email: "ana@gobarber.com", Password: "123456"}).
		Return(user, "api-token", nil)
	app.sessions.On("CreateSession", mock.Anything, *user, "api-token").Return(app.session, nil)

	rr := app.do(http.MethodPost, "/sessions", url.Values{
		"email":    {"ana@gobarber.com"},
		"password": {"123456"},
		"from":     {"/api/dashboard"},
	}, false)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/api/dashboard", rr.Header().Get("Location"))
	assert.Contains(t, rr.Header().Get("Set-Cookie"), constvars.SessionCookieName+"=")
}

func TestRouter_SignInRejected(t *testing.T) {
	app := newTestApp(t)
	app.apiClient.On("CreateSession", mock.Anything, mock.Anything).
		Return(nil, "", exceptions.ErrInvalidEmailOrPassword(errors.New("status 401"), "Incorrect email/password combination."))

	rr := app.do(http.MethodPost, "/sessions", url.Values{
		"email":    {"ana@gobarber.com"},
		"password": {"wrong-password"},
	}, false)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Incorrect email/password combination.")
	assert.Contains(t, rr.Body.String(), `value="ana@gobarber.com"`)
}

func TestRouter_SignOut(t *testing.T) {
	app := newTestApp(t)
	app.sessions.On("DeleteSession", mock.Anything, "s1").Return(nil).Once()
	app.dashboard.On("Close", mock.Anything, "s1").Return(nil).Once()

	rr := app.do(http.MethodPost, "/signout", url.Values{}, true)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Contains(t, rr.Header().Get("Set-Cookie"), "Max-Age=0")
	app.sessions.AssertExpectations(t)
	app.dashboard.AssertExpectations(t)
}

func TestRouter_MetricsIsUnguarded(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(http.MethodGet, "/metrics", nil, false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}
