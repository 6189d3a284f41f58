// internal/routes/router.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimgang91/md-dashboard/config"
	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/internal/middleware"
)

// SetupRouter는 전체 라우터를 구성한다. 의존성은 여기서 한 번 묶는다.
func SetupRouter(cfg config.App, store *airtable.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 공개 라우트: 로그인만 토큰 없이 접근한다.
	RegisterAuthRoutes(r, cfg, store)

	// 보호 라우트: 토큰 검증을 통과해야 한다.
	authRequired := r.Group("/")
	authRequired.Use(middleware.Auth(cfg.JWTSecret))
	RegisterAPIRoutes(authRequired, store)

	return r
}
