package app

import (
	"github.com/onnk5188-hash/notion/config"
	"github.com/onnk5188-hash/notion/internal/domain/timer"
	"github.com/onnk5188-hash/notion/internal/notion"
	"github.com/onnk5188-hash/notion/internal/state"
)

type App struct {
	Tracker *timer.Tracker
}

func New(cfg *config.Config) *App {
	store := state.New(cfg.StateFile)
	recorder := notion.NewClient(cfg.Token, cfg.DatabaseID)

	return &App{
		Tracker: &timer.Tracker{
			Store:    store,
			Recorder: recorder,
		},
	}
}
