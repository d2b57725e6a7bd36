package gobarber

import (
	"context"
	"fmt"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/dto/responses"
	"gobarber-dashboard/internal/pkg/exceptions"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type scheduleClient struct {
	api   *apiClient
	token string
}

func (s *scheduleClient) FindMonthAvailability(ctx context.Context, providerID string, year int, month time.Month) ([]models.MonthAvailabilityItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.api.Log.Info("scheduleClient.FindMonthAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.Int(constvars.LoggingYearKey, year),
		zap.Int(constvars.LoggingMonthKey, int(month)),
	)

	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(int(month)))

	var result []responses.GobarberMonthAvailabilityItem
	err := s.api.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     fmt.Sprintf(constvars.GobarberPathMonthAvailability, url.PathEscape(providerID)),
		query:    query,
		token:    s.token,
		resource: constvars.GobarberResourceMonthAvailability,
	}, &result)
	if err != nil {
		return nil, err
	}

	items := make([]models.MonthAvailabilityItem, len(result))
	for i, item := range result {
		items[i] = models.MonthAvailabilityItem{Day: item.Day, Available: item.Available}
	}

	s.api.Log.Info("scheduleClient.FindMonthAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAvailabilityCountKey, len(items)),
	)
	return items, nil
}

func (s *scheduleClient) FindMyAppointments(ctx context.Context, day time.Time) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.api.Log.Info("scheduleClient.FindMyAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDayKey, day.Format(constvars.DateLayout)),
	)

	query := url.Values{}
	query.Set("day", strconv.Itoa(day.Day()))
	query.Set("month", strconv.Itoa(int(day.Month())))
	query.Set("year", strconv.Itoa(day.Year()))

	var result []responses.GobarberAppointment
	err := s.api.do(ctx, apiRequest{
		method:   http.MethodGet,
		path:     constvars.GobarberPathMyAppointments,
		query:    query,
		token:    s.token,
		resource: constvars.GobarberResourceAppointments,
	}, &result)
	if err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(result))
	for _, entry := range result {
		date, err := parseTimestamp(entry.Date, s.api.Location)
		if err != nil {
			s.api.Log.Error("scheduleClient.FindMyAppointments invalid appointment date",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("appointment_id", entry.ID),
				zap.String("date", entry.Date),
				zap.Error(err),
			)
			return nil, exceptions.ErrDecodeAPIResponse(err, constvars.GobarberResourceAppointments)
		}
		appointments = append(appointments, models.Appointment{
			ID:   entry.ID,
			Date: date,
			Client: models.AppointmentClient{
				ID:        entry.User.ID,
				Name:      entry.User.Name,
				AvatarURL: entry.User.AvatarURL,
			},
		})
	}

	s.api.Log.Info("scheduleClient.FindMyAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return appointments, nil
}
