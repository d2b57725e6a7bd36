package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingURLKey               = "url"
	LoggingErrorKey             = "error"
	LoggingSessionIDKey         = "session_id"
	LoggingUserIDKey            = "user_id"
	LoggingProviderIDKey        = "provider_id"
	LoggingYearKey              = "year"
	LoggingMonthKey             = "month"
	LoggingDayKey               = "day"
	LoggingGenerationKey        = "generation"
	LoggingAppointmentCountKey  = "appointment_count"
	LoggingAvailabilityCountKey = "availability_count"
	LoggingRedirectToKey        = "redirect_to"
	LoggingFromKey              = "from"
)
