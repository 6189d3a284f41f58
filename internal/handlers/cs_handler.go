// internal/handlers/cs_handler.go
// CS 접수폼. 접수완료 → 처리중 → 완료.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/internal/middleware"
	"github.com/kimgang91/md-dashboard/models"
)

type CSHandler struct {
	Store *airtable.Client
}

func NewCSHandler(store *airtable.Client) *CSHandler {
	return &CSHandler{Store: store}
}

// List - GET /api/forms/cs
func (h *CSHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if user.IsSynthetic() {
		c.JSON(http.StatusOK, gin.H{"records": demoCSEntries()})
		return
	}

	opts := &airtable.ListOptions{
		Sort: []airtable.Sort{{Field: models.FieldReceiptDate, Direction: "desc"}},
	}
	if !user.IsAdmin() {
		opts.FilterByFormula = mdFilter(user)
	}

	records, err := h.Store.ListRecords(c.Request.Context(), models.TableCS, opts)
	if err != nil {
		replyStoreError(c, "cs: list failed", err, "데이터를 불러오는 중 오류가 발생했습니다.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// Create - POST /api/forms/cs
func (h *CSHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var form map[string]any
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "잘못된 요청 형식입니다."})
		return
	}

	if !hasText(form, models.FieldCompanyName) ||
		!hasText(form, models.FieldCSType) ||
		!hasText(form, models.FieldCSContent) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "필수 항목을 모두 입력해주세요."})
		return
	}

	form[models.FieldAssignedMD] = user.Name
	form[models.FieldMDID] = user.ID
	form[models.FieldReceiptDate] = today()
	form[models.FieldCSStatus] = string(models.CSReceived)

	if user.IsSynthetic() {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "CS 접수가 완료되었습니다. (데모 모드)",
			"record":  demoCreatedRecord("demo-cs-", form),
		})
		return
	}

	record, err := h.Store.CreateRecord(c.Request.Context(), models.TableCS, form)
	if err != nil {
		replyStoreError(c, "cs: create failed", err, "폼 제출 중 오류가 발생했습니다.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "CS 접수가 완료되었습니다.",
		"record":  record,
	})
}
