// internal/handlers/inbound_handler.go
// 인바운드 입점 문의. 조회는 "인바운드 캠핑장 DB", 제출은 "인바운드결과"
// 테이블로 들어간다. 테이블이 둘로 나뉜 것은 베이스 스키마 사정이다.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/internal/middleware"
	"github.com/kimgang91/md-dashboard/internal/report"
	"github.com/kimgang91/md-dashboard/models"
)

type InboundHandler struct {
	Store *airtable.Client

	// now는 기간 집계의 기준 시각. 테스트에서 고정한다.
	now func() time.Time
}

func NewInboundHandler(store *airtable.Client) *InboundHandler {
	return &InboundHandler{Store: store, now: time.Now}
}

func (h *InboundHandler) list(c *gin.Context, user models.User) ([]airtable.Record, bool) {
	if user.IsSynthetic() {
		return demoInbounds(), true
	}

	opts := &airtable.ListOptions{
		Sort: []airtable.Sort{{Field: models.FieldInboundDate, Direction: "desc"}},
	}
	if !user.IsAdmin() {
		opts.FilterByFormula = mdFilter(user)
	}

	records, err := h.Store.ListRecords(c.Request.Context(), models.TableInbound, opts)
	if err != nil {
		replyStoreError(c, "inbound: list failed", err, "데이터를 불러오는 중 오류가 발생했습니다.")
		return nil, false
	}
	return records, true
}

// List - GET /api/forms/inbound
func (h *InboundHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	records, ok := h.list(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// Create - POST /api/forms/inbound
// 인입일자는 클라이언트 값이 있으면 존중하고 없으면 오늘로 채운다.
func (h *InboundHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var form map[string]any
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "잘못된 요청 형식입니다."})
		return
	}

	if !hasText(form, models.FieldCompanyName) ||
		!hasText(form, models.FieldInboundChannel) ||
		!hasText(form, models.FieldMeetingResult) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "필수 항목을 모두 입력해주세요."})
		return
	}

	// 미팅결과는 닫힌 집합이다. 목록 밖 값은 오타로 보고 거부한다.
	result, _ := form[models.FieldMeetingResult].(string)
	if !models.MeetingResult(result).IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "미팅결과 값이 올바르지 않습니다."})
		return
	}

	form[models.FieldAssignedMD] = user.Name
	form[models.FieldMDID] = user.ID
	if !hasText(form, models.FieldInboundDate) {
		form[models.FieldInboundDate] = today()
	}

	if user.IsSynthetic() {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "인바운드 결과가 등록되었습니다. (데모 모드)",
			"record":  demoCreatedRecord("demo-inbound-", form),
		})
		return
	}

	record, err := h.Store.CreateRecord(c.Request.Context(), models.TableInboundWrite, form)
	if err != nil {
		replyStoreError(c, "inbound: create failed", err, "폼 제출 중 오류가 발생했습니다.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "인바운드 결과가 등록되었습니다.",
		"record":  record,
	})
}

// Stats - GET /api/forms/inbound/stats?period=daily|weekly|monthly
func (h *InboundHandler) Stats(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	records, ok := h.list(c, user)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", report.PeriodMonthly)
	c.JSON(http.StatusOK, report.InboundStats(records, period, h.now()))
}
