package controllers

import (
	"context"
	"errors"
	"gobarber-dashboard/internal/app/config"
	"gobarber-dashboard/internal/app/contracts"
	"gobarber-dashboard/internal/app/delivery/http/views"
	"gobarber-dashboard/internal/app/services/core/dashboard"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/dto/requests"
	"gobarber-dashboard/internal/pkg/exceptions"
	"gobarber-dashboard/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	AuthUsecase    contracts.AuthUsecase
	Renderer       *views.Renderer
	Texts          dashboard.Texts
}

func NewAuthController(logger *zap.Logger, internalConfig *config.InternalConfig, authUsecase contracts.AuthUsecase, renderer *views.Renderer) *AuthController {
	return &AuthController{
		Log:            logger,
		InternalConfig: internalConfig,
		AuthUsecase:    authUsecase,
		Renderer:       renderer,
		Texts:          dashboard.LocaleFor(internalConfig.App.Locale).Texts,
	}
}

func (ctrl *AuthController) ShowSignIn(w http.ResponseWriter, r *http.Request) {
	page := views.SignInPage{
		Texts: ctrl.Texts,
		From:  r.URL.Query().Get(constvars.QueryParamFrom),
	}
	ctrl.render(w, r, http.StatusOK, page)
}

func (ctrl *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	request := &requests.SignIn{
		Email:    strings.TrimSpace(r.PostFormValue(constvars.FormFieldEmail)),
		Password: r.PostFormValue(constvars.FormFieldPassword),
		From:     r.PostFormValue(constvars.QueryParamFrom),
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	token, _, err := ctrl.AuthUsecase.SignIn(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
		status, customErr := utils.ErrorStatus(ctrl.Log, err)
		page := views.SignInPage{
			Texts: ctrl.Texts,
			Email: request.Email,
			From:  request.From,
			Error: constvars.ErrClientSomethingWrongWithApplication,
		}
		if customErr != nil {
			page.Error = customErr.ClientMessage
		}
		ctrl.render(w, r, status, page)
		return
	}

	utils.SetSessionCookie(w, token, ctrl.InternalConfig.App.SessionLifetime(), ctrl.InternalConfig.App.SecureCookie)
	http.Redirect(w, r, utils.SafeRedirectPath(request.From, constvars.RouteAuthenticatedLanding), http.StatusSeeOther)
}

func (ctrl *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.AuthUsecase.SignOut(r.Context()); err != nil {
		ctrl.Log.Error("AuthController.SignOut error ending session",
			zap.Any(constvars.LoggingRequestIDKey, r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)),
			zap.Error(err),
		)
	}

	utils.ClearSessionCookie(w, ctrl.InternalConfig.App.SecureCookie)
	http.Redirect(w, r, constvars.RoutePublicLanding, http.StatusSeeOther)
}

func (ctrl *AuthController) render(w http.ResponseWriter, r *http.Request, status int, page views.SignInPage) {
	if err := ctrl.Renderer.Render(w, status, views.PageSignIn, page); err != nil {
		ctrl.Log.Error("AuthController.render error rendering sign-in page",
			zap.Any(constvars.LoggingRequestIDKey, r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
	}
}
