package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	REQUEST_ID_PREFIX = "GBR_DASH_"
)

const (
	RedisKeySessionPrefix   = "session:"
	RedisKeyDashboardPrefix = "dashboard:"
	RedisKeySignInAttempts  = "SIGN_IN_ATTEMPTS"
)

const (
	SessionCookieName = "gobarber_session"
	JWTClaimSessionID = "session_id"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	HourLayout  = "15:04"
)

const (
	LocalePortugueseBrazil = "pt-BR"
	LocaleEnglishUS        = "en-US"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)
