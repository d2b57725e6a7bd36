package config

type (
	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App      App
	Gobarber AppGobarber
	JWT      AppJWT
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Timezone                       string
	Locale                         string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	RequestTimeoutInSeconds        int
	LoginSessionExpiredTimeInHours int
	SecureCookie                   bool
	AllowedOrigins                 string
	SignInMaxAttempts              int
	SignInWindowInSeconds          int
	DashboardSweepCronSpec         string
}

// AppGobarber configures the backend API the dashboard reads from.
type AppGobarber struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
	MaxRequestsPerSecond    int
}

type AppJWT struct {
	Secret string
}
