package cli

import (
	"context"
	"errors"
	"fmt"
	"gobarber-dashboard/internal/app/config"
	"gobarber-dashboard/internal/app/contracts"
	"gobarber-dashboard/internal/app/services/core/dashboard"
	"gobarber-dashboard/internal/pkg/dto/requests"
	"gobarber-dashboard/internal/pkg/exceptions"
	"gobarber-dashboard/internal/pkg/utils"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the terminal client is built from.
type Dependencies struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	Now            func() time.Time
	NewAPIClient   func(cfg config.AppGobarber, location *time.Location, logger *zap.Logger) contracts.GobarberAPIClient
}

type globalOptions struct {
	Email    string
	Password string
	JSON     bool
	Timeout  time.Duration
}

func Execute(deps Dependencies) int {
	cmd := NewRootCommand(deps)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return 1
	}
	return 0
}

func NewRootCommand(deps Dependencies) *cobra.Command {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "schedule",
		Short:         "Show a provider's GoBarber schedule from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.Email, "email", utils.GetEnvString("GOBARBER_EMAIL", ""), "Provider e-mail (GOBARBER_EMAIL)")
	root.PersistentFlags().StringVar(&opts.Password, "password", utils.GetEnvString("GOBARBER_PASSWORD", ""), "Provider password (GOBARBER_PASSWORD)")
	root.PersistentFlags().BoolVar(&opts.JSON, "json", false, "Output the dashboard view as JSON")
	root.PersistentFlags().DurationVar(&opts.Timeout, "timeout", utils.GetEnvDuration("GOBARBER_CLI_TIMEOUT", 15*time.Second), "Backend call timeout (GOBARBER_CLI_TIMEOUT)")

	root.AddCommand(newDayCmd(deps, opts))
	root.AddCommand(newCalendarCmd(deps, opts))

	return root
}

// openDashboard signs in and mounts a view model for the signed-in provider.
func openDashboard(ctx context.Context, deps Dependencies, opts *globalOptions) (*dashboard.ViewModel, dashboard.Locale, error) {
	locale := dashboard.LocaleFor(deps.InternalConfig.App.Locale)

	request := &requests.SignIn{Email: opts.Email, Password: opts.Password}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, locale, exceptions.ErrInputValidation(err)
	}

	location := deps.InternalConfig.App.Location()
	apiClient := deps.NewAPIClient(deps.InternalConfig.Gobarber, location, deps.Log)

	user, token, err := apiClient.CreateSession(ctx, &requests.GobarberCreateSession{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		return nil, locale, clientError(err)
	}

	viewModel := dashboard.NewViewModel(apiClient.WithToken(token), user.ID, location, deps.Now, deps.Log)
	return viewModel, locale, nil
}

// clientError keeps the message meant for people and drops internal detail.
func clientError(err error) error {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return errors.New(customErr.ClientMessage)
	}
	return err
}

func commandContext(cmd *cobra.Command, opts *globalOptions) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, opts.Timeout)
}
