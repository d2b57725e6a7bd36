package dashboard

import (
	"context"
	"gobarber-dashboard/internal/app/contracts"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type selectionRedisRepository struct {
	RedisRepository contracts.RedisRepository
}

func NewSelectionRedisRepository(redisRepository contracts.RedisRepository) SelectionRepository {
	return &selectionRedisRepository{RedisRepository: redisRepository}
}

func (r *selectionRedisRepository) Save(ctx context.Context, sessionID string, selection models.DashboardSelection, ttl time.Duration) error {
	return r.RedisRepository.Set(ctx, constvars.RedisKeyDashboardPrefix+sessionID, selection, ttl)
}

// Find returns nil without error when nothing was saved for sessionID.
func (r *selectionRedisRepository) Find(ctx context.Context, sessionID string) (*models.DashboardSelection, error) {
	data, err := r.RedisRepository.Get(ctx, constvars.RedisKeyDashboardPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var selection models.DashboardSelection
	if err := json.Unmarshal([]byte(data), &selection); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &selection, nil
}

func (r *selectionRedisRepository) Delete(ctx context.Context, sessionID string) error {
	return r.RedisRepository.Delete(ctx, constvars.RedisKeyDashboardPrefix+sessionID)
}
