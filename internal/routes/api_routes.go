// internal/routes/api_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/internal/handlers"
	"github.com/kimgang91/md-dashboard/internal/middleware"
)

// RegisterAPIRoutes는 인증이 필요한 API 라우트를 모두 등록한다.
func RegisterAPIRoutes(api *gin.RouterGroup, store *airtable.Client) {
	companyHandler := handlers.NewCompanyHandler(store)
	churnHandler := handlers.NewChurnRiskHandler(store)
	csHandler := handlers.NewCSHandler(store)
	inboundHandler := handlers.NewInboundHandler(store)
	liveHandler := handlers.NewLiveCompleteHandler(store)

	apiGroup := api.Group("/api")
	{
		// --- 업체 ---
		companies := apiGroup.Group("/companies")
		{
			companies.GET("", companyHandler.List)
			companies.GET("/:id", companyHandler.Get)
			companies.PATCH("/:id", companyHandler.Update)
		}

		// --- 대시보드 ---
		apiGroup.GET("/dashboard/summary", companyHandler.Summary)

		// --- 폼 ---
		forms := apiGroup.Group("/forms")
		{
			forms.GET("/churn-risk", churnHandler.List)
			forms.POST("/churn-risk", churnHandler.Create)
			forms.GET("/churn-risk/stats", churnHandler.Stats)

			forms.GET("/cs", csHandler.List)
			forms.POST("/cs", csHandler.Create)

			forms.GET("/inbound", inboundHandler.List)
			forms.POST("/inbound", inboundHandler.Create)
			forms.GET("/inbound/stats", inboundHandler.Stats)

			forms.GET("/live-complete", liveHandler.List)
			forms.POST("/live-complete", liveHandler.Create)
			forms.PATCH("/live-complete", liveHandler.UpdateBonus)
			forms.GET("/live-complete/bonus-schedule", liveHandler.BonusSchedule)
			forms.GET("/live-complete/export", middleware.RequireAdmin(), liveHandler.Export)
		}
	}
}
