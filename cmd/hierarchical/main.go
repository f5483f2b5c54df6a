// Package main is the entry point for the hierarchical scene viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/hierarchy/internal/config"
	"github.com/Faultbox/hierarchy/internal/engine/model"
	"github.com/Faultbox/hierarchy/internal/engine/scene"
	"github.com/Faultbox/hierarchy/internal/logger"
	"github.com/Faultbox/hierarchy/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(scene.RequiredMeshes...); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Hierarchical Modeling ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Every mesh must load before anything is drawn.
	loader := model.NewLoader(cfg.Scene.AssetDir, model.BuildOptions{})
	meshes, err := loader.LoadAll(cfg.Scene.Meshes)
	if err != nil {
		logger.Error("failed to load meshes", zap.Error(err))
		os.Exit(1)
	}

	graph, updater, err := scene.BuildHierarchy(meshes)
	if err != nil {
		logger.Error("failed to build scene", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("scene built", zap.Int("nodes", graph.Len()))

	v, err := viewer.New(cfg, graph, updater)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
