// internal/handlers/churn_risk_handler.go
// 이탈/해지 우려 폼. 접수 → 대응중/모니터링 → 해결완료 | 이탈확정.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/internal/middleware"
	"github.com/kimgang91/md-dashboard/internal/report"
	"github.com/kimgang91/md-dashboard/models"
)

type ChurnRiskHandler struct {
	Store *airtable.Client
}

func NewChurnRiskHandler(store *airtable.Client) *ChurnRiskHandler {
	return &ChurnRiskHandler{Store: store}
}

func (h *ChurnRiskHandler) list(c *gin.Context, user models.User) ([]airtable.Record, bool) {
	if user.IsSynthetic() {
		return demoChurnRisks(), true
	}

	opts := &airtable.ListOptions{
		Sort: []airtable.Sort{{Field: models.FieldReceiptDate, Direction: "desc"}},
	}
	if !user.IsAdmin() {
		opts.FilterByFormula = mdFilter(user)
	}

	records, err := h.Store.ListRecords(c.Request.Context(), models.TableChurnRisk, opts)
	if err != nil {
		replyStoreError(c, "churn-risk: list failed", err, "데이터를 불러오는 중 오류가 발생했습니다.")
		return nil, false
	}
	return records, true
}

// List - GET /api/forms/churn-risk
func (h *ChurnRiskHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	records, ok := h.list(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// Create - POST /api/forms/churn-risk
// 담당MD, 접수일, 현재상태는 서버가 확정한다. 클라이언트 값은 무시된다.
func (h *ChurnRiskHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var form map[string]any
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "잘못된 요청 형식입니다."})
		return
	}

	if !hasText(form, models.FieldCompanyName) ||
		!hasText(form, models.FieldChurnReason) ||
		!hasText(form, models.FieldChurnDetail) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "필수 항목을 모두 입력해주세요."})
		return
	}

	form[models.FieldAssignedMD] = user.Name
	form[models.FieldMDID] = user.ID
	form[models.FieldReceiptDate] = today()
	form[models.FieldChurnStatus] = string(models.ChurnReceived)

	if user.IsSynthetic() {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "이탈/해지 우려가 등록되었습니다. (데모 모드)",
			"record":  demoCreatedRecord("demo-churn-", form),
		})
		return
	}

	record, err := h.Store.CreateRecord(c.Request.Context(), models.TableChurnRisk, form)
	if err != nil {
		replyStoreError(c, "churn-risk: create failed", err, "폼 제출 중 오류가 발생했습니다.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "이탈/해지 우려가 등록되었습니다.",
		"record":  record,
	})
}

// Stats - GET /api/forms/churn-risk/stats. 현재상태별 건수.
func (h *ChurnRiskHandler) Stats(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	records, ok := h.list(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": report.StatusCounts(records, models.FieldChurnStatus)})
}
