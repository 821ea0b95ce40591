package preference

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"metro-console/services/console/internal/entity"

	"github.com/redis/go-redis/v9"
)

const themeTTL = 30 * 24 * time.Hour

// ThemeRepository stores the light/dark choice of a console session.
type ThemeRepository interface {
	// Get returns the saved theme and whether one was saved.
	Get(ctx context.Context, sessionID string) (entity.Theme, bool, error)
	Set(ctx context.Context, sessionID string, theme entity.Theme) error
	Delete(ctx context.Context, sessionID string) error
}

type redisThemeRepository struct {
	client *redis.Client
}

func NewRedisThemeRepository(client *redis.Client) ThemeRepository {
	return &redisThemeRepository{client: client}
}

func themeKey(sessionID string) string {
	return fmt.Sprintf("preference:%s:theme", sessionID)
}

func (r *redisThemeRepository) Get(ctx context.Context, sessionID string) (entity.Theme, bool, error) {
	value, err := r.client.Get(ctx, themeKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get theme preference: %w", err)
	}

	theme := entity.Theme(value)
	if !theme.Valid() {
		// A corrupt value is treated as unset rather than failing session start.
		return "", false, nil
	}
	return theme, true, nil
}

func (r *redisThemeRepository) Set(ctx context.Context, sessionID string, theme entity.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("invalid theme %q", theme)
	}
	if err := r.client.Set(ctx, themeKey(sessionID), string(theme), themeTTL).Err(); err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}
	return nil
}

func (r *redisThemeRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, themeKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete theme preference: %w", err)
	}
	return nil
}

type memoryThemeRepository struct {
	mu     sync.RWMutex
	themes map[string]entity.Theme
}

// NewMemoryThemeRepository keeps preferences in process memory, for
// deployments without Redis.
func NewMemoryThemeRepository() ThemeRepository {
	return &memoryThemeRepository{themes: make(map[string]entity.Theme)}
}

func (r *memoryThemeRepository) Get(_ context.Context, sessionID string) (entity.Theme, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	theme, ok := r.themes[sessionID]
	return theme, ok, nil
}

func (r *memoryThemeRepository) Set(_ context.Context, sessionID string, theme entity.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("invalid theme %q", theme)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[sessionID] = theme
	return nil
}

func (r *memoryThemeRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.themes, sessionID)
	return nil
}
