package constvars

const (
	RoutePublicLanding        = "/"
	RouteAuthenticatedLanding = "/dashboard"

	RouteSignIn           = "/sessions"
	RouteSignOut          = "/signout"
	RouteDashboardDay     = "/dashboard/day"
	RouteDashboardMonth   = "/dashboard/month"
	RouteDashboardRefresh = "/dashboard/refresh"
	RouteAPIDashboard     = "/api/dashboard"
	RouteHealth           = "/healthz"
	RouteMetrics          = "/metrics"
)

const (
	QueryParamFrom = "from"

	FormFieldDate     = "date"
	FormFieldMonth    = "month"
	FormFieldEmail    = "email"
	FormFieldPassword = "password"
)

const (
	GobarberResourceSessions          = "sessions"
	GobarberResourceMonthAvailability = "month-availability"
	GobarberResourceAppointments      = "appointments"

	GobarberPathSessions          = "/sessions"
	GobarberPathMonthAvailability = "/providers/%s/month-availability"
	GobarberPathMyAppointments    = "/appointments/me"
)
