package utils

import (
	"errors"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/dto/responses"
	"gobarber-dashboard/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildErrorResponse writes err as the JSON error envelope. Developer details
// are only exposed outside production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, customErr := ErrorStatus(log, err)

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: constvars.ErrClientSomethingWrongWithApplication,
	}
	if customErr != nil {
		response.ClientMessage = customErr.ClientMessage
		if GetEnvString("APP_ENV", constvars.AppEnvDevelopment) != constvars.AppEnvProduction {
			response.DevMessage = customErr.DevMessage
			response.Location = customErr.Location
		}
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ErrorStatus logs err and resolves the HTTP status it maps to.
func ErrorStatus(log *zap.Logger, err error) (int, *exceptions.CustomError) {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
			zap.Any("location", customErr.Location),
		)
		return customErr.StatusCode, customErr
	}

	log.Error(err.Error())
	return constvars.StatusInternalServerError, nil
}
