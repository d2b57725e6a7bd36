package gobarber

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"gobarber-dashboard/internal/app/config"
	"gobarber-dashboard/internal/app/contracts"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/exceptions"
	"gobarber-dashboard/internal/pkg/metrics"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type apiClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Location   *time.Location
	Log        *zap.Logger
}

func NewGobarberAPIClient(cfg config.AppGobarber, location *time.Location, logger *zap.Logger) contracts.GobarberAPIClient {
	return &apiClient{
		BaseUrl: cfg.BaseUrl,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter:  rate.NewLimiter(rate.Limit(cfg.MaxRequestsPerSecond), cfg.MaxRequestsPerSecond),
		Location: location,
		Log:      logger,
	}
}

func (c *apiClient) WithToken(token string) contracts.ScheduleAPIClient {
	return &scheduleClient{api: c, token: token}
}

type apiRequest struct {
	method   string
	path     string
	query    url.Values
	body     interface{}
	token    string
	resource string
}

func (c *apiClient) do(ctx context.Context, request apiRequest, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.Limiter.Wait(ctx); err != nil {
		c.Log.Warn("apiClient.do throttled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("resource", request.resource),
			zap.Error(err),
		)
		if ctx.Err() != nil {
			return exceptions.ErrServerDeadlineExceeded(ctx.Err())
		}
		return exceptions.ErrAPIThrottled(err)
	}

	endpoint := c.BaseUrl + request.path
	if len(request.query) > 0 {
		endpoint += "?" + request.query.Encode()
	}

	var body io.Reader
	if request.body != nil {
		payload, err := json.Marshal(request.body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, request.method, endpoint, body)
	if err != nil {
		c.Log.Error("apiClient.do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if request.body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if request.token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+request.token)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.RecordAPIRequest(request.resource, "error", time.Since(start).Seconds())
		c.Log.Error("apiClient.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	metrics.RecordAPIRequest(request.resource, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrGetAPIResource(err, request.resource)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := gjson.GetBytes(bodyBytes, "message").String()
		apiErr := fmt.Errorf("status %d: %s", resp.StatusCode, message)
		c.Log.Warn("apiClient.do non-success response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("message", message),
		)
		if request.resource == constvars.GobarberResourceSessions &&
			(resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized) {
			return exceptions.ErrInvalidEmailOrPassword(apiErr, message)
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return exceptions.ErrTokenInvalidOrExpired(apiErr)
		}
		return exceptions.ErrGetAPIResource(apiErr, request.resource)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		c.Log.Error("apiClient.do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("resource", request.resource),
			zap.Error(err),
		)
		return exceptions.ErrDecodeAPIResponse(err, request.resource)
	}
	return nil
}

// parseTimestamp accepts RFC 3339 timestamps and zone-less ISO-8601
// timestamps, which are read in the dashboard's timezone.
func parseTimestamp(value string, location *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(location), nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", value, location)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
