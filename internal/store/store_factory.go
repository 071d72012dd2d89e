package store

import (
	"go.uber.org/zap"
	"userapi/internal/config"
	"userapi/internal/model"
	"userapi/internal/repository"
	"userapi/internal/store/memory"
)

// SeedUsers are loaded at startup when seeding is enabled.
var SeedUsers = []model.User{
	{ID: 1, Name: "DevZAKRI", Email: "3tern4llord@gmail.com", Age: 25},
	{ID: 2, Name: "Go Developer", Email: "gopher@example.com", Age: 30},
}

func NewStore(cfg *config.Config, logger *zap.Logger) repository.UserRepository {
	if !cfg.SeedUsers {
		return memory.New(logger)
	}
	logger.Info("seeding user store", zap.Int("users", len(SeedUsers)))
	return memory.New(logger, SeedUsers...)
}
