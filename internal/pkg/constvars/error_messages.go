package constvars

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
}

var TagsWithParams = map[string]bool{
	"min": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientScheduleUnavailable           = "the schedule service is unavailable, please try again"
	ErrClientTooManySignInAttempts         = "too many sign-in attempts, try again in %d seconds"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "validation failed"
	ErrDevInvalidDate               = "invalid date, expected YYYY-MM-DD"
	ErrDevInvalidMonth              = "invalid month, expected YYYY-MM"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevGobarberGetResource       = "failed to get %s from gobarber api"
	ErrDevGobarberDecodeResponse    = "failed to decode %s response from gobarber api"
	ErrDevGobarberRejected          = "gobarber api rejected %s request"
	ErrDevGobarberThrottled         = "gobarber api request throttled"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevServerProcess             = "server failed to process request"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSessionNotFound       = "session not found"
	ErrDevAuthTooManyAttempts       = "sign-in attempts over quota"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisSetData              = "failed to set data to redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevRedisIncrementData        = "failed to increment counter in redis"
	ErrDevRenderTemplate            = "failed to render template %s"
)
