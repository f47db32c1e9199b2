package service

import (
	"context"
	"errors"
	"time"

	"github.com/Gannies/community-service/internal/model"
	"github.com/Gannies/community-service/internal/repository"
	"github.com/Gannies/community-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionTTL = 2 * time.Hour

type userCacheService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newUserCacheService(logger *zap.Logger, repo *repository.Repository) UserCache {
	return &userCacheService{
		logger: logger,
		repo:   repo,
	}
}

func (s *userCacheService) FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error) {
	cachedUser, err := redisrepo.Get[model.CachedUser](s.repo.Redis.Default, ctx, redisrepo.UserCacheKey(id.String()))
	if err == nil {
		return cachedUser, nil
	}
	if !errors.Is(err, redis.Nil) {
		s.logger.Sugar().Errorf("failed to get cached user(%s) from redis: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	user, err := s.repo.Postgres.UserCache.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to get cached user(%s) from postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.UserCacheKey(id.String()), user, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set user(%s) in redis: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return user, nil
}

// Sync upserts an identity the auth service has vouched for but that has not
// been seen here yet, then primes the redis cache with it.
func (s *userCacheService) Sync(ctx context.Context, user model.CachedUser) (*model.CachedUser, error) {
	if err := s.repo.Postgres.UserCache.Create(ctx, user); err != nil {
		s.logger.Sugar().Errorf("failed to sync user(%s) to postgres: %s", user.ID.String(), err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.UserCacheKey(user.ID.String()), &user, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set user(%s) in redis: %s", user.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return &user, nil
}

func (s *userCacheService) ExtendSession(ctx context.Context, sessionID string) error {
	if err := s.repo.Redis.Default.Expire(ctx, redisrepo.SessionKey(sessionID), sessionTTL).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to extend session(%s): %s", sessionID, err.Error())
		return ErrInternal
	}

	return nil
}
