package service

import (
	"context"
	"fmt"

	"github.com/gridforge/tictactoe-backend/internal/entity"
	"github.com/gridforge/tictactoe-backend/internal/repository"
)

// StatsService is the match recorder: it consumes sealed game records
// and serves the aggregates derived from them.
type StatsService interface {
	RecordMatch(ctx context.Context, record entity.GameRecord) error
	GetPlayerStats(ctx context.Context, playerID string) (*repository.PlayerStats, error)
}

type statsRepo interface {
	SaveMatch(ctx context.Context, record entity.GameRecord) error
	GetByPlayerID(ctx context.Context, playerID string) (*repository.PlayerStats, error)
}

type statsService struct {
	statsRepo statsRepo
}

func NewStatsService(statsRepo statsRepo) StatsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

func (that *statsService) RecordMatch(ctx context.Context, record entity.GameRecord) error {
	if err := that.statsRepo.SaveMatch(ctx, record); err != nil {
		return fmt.Errorf("failed to record match: %w", err)
	}

	return nil
}

func (that *statsService) GetPlayerStats(ctx context.Context, playerID string) (*repository.PlayerStats, error) {
	stats, err := that.statsRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	return stats, nil
}
