package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/umutulay/task-management-system/internal/adapter/console"
	"github.com/umutulay/task-management-system/internal/adapter/memory"
	appservice "github.com/umutulay/task-management-system/internal/app/service"
	"github.com/umutulay/task-management-system/internal/config"
	"github.com/umutulay/task-management-system/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator()

	cfg := config.LoadConfig()

	ctx := context.Background()
	taskRepository := memory.NewTaskRepository()
	taskService := appservice.NewTaskService(taskRepository)

	if cfg.SeedDemoData {
		console.SeedDemoTasks(ctx, taskService)
	}

	menu := console.NewMenu(taskService, os.Stdin, os.Stdout, cfg.Language)
	menu.Run(ctx)
}
