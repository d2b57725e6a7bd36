package routers

import (
	"gobarber-dashboard/internal/app/config"
	"gobarber-dashboard/internal/app/delivery/http/controllers"
	"gobarber-dashboard/internal/app/delivery/http/middlewares"
	"gobarber-dashboard/internal/app/delivery/http/views"
	"gobarber-dashboard/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Route is one guarded page or action. IsPrivate routes need a signed-in
// user; public ones need an anonymous visitor.
type Route struct {
	Path      string
	Method    string
	IsPrivate bool
	Handler   http.HandlerFunc
}

func Routes(authController *controllers.AuthController, dashboardController *controllers.DashboardController) []Route {
	return []Route{
		{Path: constvars.RoutePublicLanding, Method: http.MethodGet, Handler: authController.ShowSignIn},
		{Path: constvars.RouteSignIn, Method: http.MethodPost, Handler: authController.SignIn},
		{Path: constvars.RouteAuthenticatedLanding, Method: http.MethodGet, IsPrivate: true, Handler: dashboardController.Show},
		{Path: constvars.RouteDashboardDay, Method: http.MethodPost, IsPrivate: true, Handler: dashboardController.SelectDay},
		{Path: constvars.RouteDashboardMonth, Method: http.MethodPost, IsPrivate: true, Handler: dashboardController.ChangeMonth},
		{Path: constvars.RouteDashboardRefresh, Method: http.MethodPost, IsPrivate: true, Handler: dashboardController.Refresh},
		{Path: constvars.RouteAPIDashboard, Method: http.MethodGet, IsPrivate: true, Handler: dashboardController.GetDashboard},
		{Path: constvars.RouteSignOut, Method: http.MethodPost, IsPrivate: true, Handler: authController.SignOut},
	}
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	healthController *controllers.HealthController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)

	// Rate limiting middleware using httprate
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Get(constvars.RouteHealth, healthController.Check)
	router.Method(http.MethodGet, constvars.RouteMetrics, promhttp.Handler())
	router.Method(http.MethodGet, "/static/*", views.StaticHandler())

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOriginList(),
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	router.Method(http.MethodOptions, constvars.RouteAPIDashboard, corsHandler(http.NotFoundHandler()))

	router.Group(func(r chi.Router) {
		r.Use(middlewares.SessionOptional)
		r.Use(chimiddleware.NoCache)
		for _, route := range Routes(authController, dashboardController) {
			handler := http.Handler(route.Handler)
			if route.Path == constvars.RouteAPIDashboard {
				handler = corsHandler(handler)
			}
			r.With(middlewares.RouteGuard(route.IsPrivate)).Method(route.Method, route.Path, handler)
		}
	})
}
