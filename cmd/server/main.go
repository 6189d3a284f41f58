// cmd/server/main.go
package main

import (
	"log/slog"
	"os"

	"github.com/kimgang91/md-dashboard/config"
	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("설정 로드 실패", "error", err)
		os.Exit(1)
	}

	if cfg.AirtableAPIKey == "" || cfg.AirtableBaseID == "" {
		slog.Warn("에어테이블 자격 증명이 비어 있습니다. 데모/관리자 계정만 동작합니다.")
	}

	store := airtable.NewClient(cfg.AirtableAPIKey, cfg.AirtableBaseID)
	r := routes.SetupRouter(cfg, store)

	slog.Info("서버 시작", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		slog.Error("서버 종료", "error", err)
		os.Exit(1)
	}
}
