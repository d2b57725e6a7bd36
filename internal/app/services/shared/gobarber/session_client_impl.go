package gobarber

import (
	"context"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/dto/requests"
	"gobarber-dashboard/internal/pkg/dto/responses"
	"net/http"

	"go.uber.org/zap"
)

func (c *apiClient) CreateSession(ctx context.Context, request *requests.GobarberCreateSession) (*models.User, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var result responses.GobarberSession
	err := c.do(ctx, apiRequest{
		method:   http.MethodPost,
		path:     constvars.GobarberPathSessions,
		body:     request,
		resource: constvars.GobarberResourceSessions,
	}, &result)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:        result.User.ID,
		Name:      result.User.Name,
		Email:     result.User.Email,
		AvatarURL: result.User.AvatarURL,
	}

	c.Log.Info("apiClient.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, result.Token, nil
}
