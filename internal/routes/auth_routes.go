// internal/routes/auth_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kimgang91/md-dashboard/config"
	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/internal/handlers"
)

// RegisterAuthRoutes는 인증이 필요 없는 공개 라우트를 등록한다.
func RegisterAuthRoutes(r *gin.Engine, cfg config.App, store *airtable.Client) {
	authHandler := handlers.NewAuthHandler(cfg, store)
	r.POST("/api/auth/login", authHandler.Login)
}
