//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"userapi/internal/app"
	"userapi/internal/config"
	"userapi/internal/http"
	"userapi/internal/http/controller"
	"userapi/internal/logging"
	"userapi/internal/metrics"
	"userapi/internal/queue/rabbitmq"
	"userapi/internal/service/users"
	"userapi/internal/sse"
	"userapi/internal/store"
)

func InitializeApp() (*app.App, error) {
	wire.Build(
		config.New,
		logging.New,
		metrics.New,
		store.NewStore,
		sse.NewHub,
		rabbitmq.NewPublisher,
		users.NewService,
		controller.NewHandler,
		http.NewRouter,
		http.NewHandler,
		rabbitmq.NewConsumer,
		app.NewApp,
	)
	return &app.App{}, nil
}
