package controllers

import (
	"context"
	"errors"
	"gobarber-dashboard/internal/app/config"
	"gobarber-dashboard/internal/app/contracts"
	"gobarber-dashboard/internal/app/delivery/http/views"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/app/services/core/dashboard"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/exceptions"
	"gobarber-dashboard/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	InternalConfig   *config.InternalConfig
	AuthState        contracts.AuthStateProvider
	DashboardUsecase dashboard.DashboardUsecase
	Renderer         *views.Renderer
	Location         *time.Location
}

func NewDashboardController(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	authState contracts.AuthStateProvider,
	dashboardUsecase dashboard.DashboardUsecase,
	renderer *views.Renderer,
) *DashboardController {
	return &DashboardController{
		Log:              logger,
		InternalConfig:   internalConfig,
		AuthState:        authState,
		DashboardUsecase: dashboardUsecase,
		Renderer:         renderer,
		Location:         internalConfig.App.Location(),
	}
}

type DashboardResponse struct {
	User models.User    `json:"user"`
	View dashboard.View `json:"view"`
}

func (ctrl *DashboardController) Show(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.AuthState.CurrentSession(r.Context())
	if !ok {
		http.Redirect(w, r, constvars.RoutePublicLanding, http.StatusFound)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	view, err := ctrl.DashboardUsecase.GetDashboard(ctx, session)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	page := views.DashboardPage{User: session.User, View: *view}
	if err := ctrl.Renderer.Render(w, http.StatusOK, views.PageDashboard, page); err != nil {
		ctrl.Log.Error("DashboardController.Show error rendering dashboard",
			zap.Any(constvars.LoggingRequestIDKey, r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
	}
}

func (ctrl *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.AuthState.CurrentSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	view, err := ctrl.DashboardUsecase.GetDashboard(ctx, session)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, DashboardResponse{
		User: session.User,
		View: *view,
	})
}

func (ctrl *DashboardController) SelectDay(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.AuthState.CurrentSession(r.Context())
	if !ok {
		http.Redirect(w, r, constvars.RoutePublicLanding, http.StatusSeeOther)
		return
	}

	day, err := utils.ParseDate(r.PostFormValue(constvars.FormFieldDate), ctrl.Location)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	if _, err := ctrl.DashboardUsecase.SelectDay(ctx, session, day); err != nil {
		ctrl.respondError(w, err)
		return
	}
	http.Redirect(w, r, constvars.RouteAuthenticatedLanding, http.StatusSeeOther)
}

func (ctrl *DashboardController) ChangeMonth(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.AuthState.CurrentSession(r.Context())
	if !ok {
		http.Redirect(w, r, constvars.RoutePublicLanding, http.StatusSeeOther)
		return
	}

	month, err := utils.ParseMonth(r.PostFormValue(constvars.FormFieldMonth), ctrl.Location)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	if _, err := ctrl.DashboardUsecase.ChangeMonth(ctx, session, month); err != nil {
		ctrl.respondError(w, err)
		return
	}
	http.Redirect(w, r, constvars.RouteAuthenticatedLanding, http.StatusSeeOther)
}

func (ctrl *DashboardController) Refresh(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.AuthState.CurrentSession(r.Context())
	if !ok {
		http.Redirect(w, r, constvars.RoutePublicLanding, http.StatusSeeOther)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	if _, err := ctrl.DashboardUsecase.Refresh(ctx, session); err != nil {
		ctrl.respondError(w, err)
		return
	}
	http.Redirect(w, r, constvars.RouteAuthenticatedLanding, http.StatusSeeOther)
}

func (ctrl *DashboardController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
}

func (ctrl *DashboardController) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
