// internal/handlers/live_complete_handler.go
// 라이브(입점) 완료폼과 보너스 정산. 보너스 지급일은 저장하지 않고
// 입점완료일 + 2개월, 5일로 계산한다.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/internal/middleware"
	"github.com/kimgang91/md-dashboard/internal/report"
	"github.com/kimgang91/md-dashboard/models"
)

type LiveCompleteHandler struct {
	Store *airtable.Client
}

func NewLiveCompleteHandler(store *airtable.Client) *LiveCompleteHandler {
	return &LiveCompleteHandler{Store: store}
}

func (h *LiveCompleteHandler) list(c *gin.Context, user models.User) ([]airtable.Record, bool) {
	if user.IsSynthetic() {
		return demoLiveCompletes(), true
	}

	opts := &airtable.ListOptions{
		Sort: []airtable.Sort{{Field: models.FieldLiveDate, Direction: "desc"}},
	}
	if !user.IsAdmin() {
		opts.FilterByFormula = mdFilter(user)
	}

	records, err := h.Store.ListRecords(c.Request.Context(), models.TableLiveComplete, opts)
	if err != nil {
		replyStoreError(c, "live-complete: list failed", err, "데이터를 불러오는 중 오류가 발생했습니다.")
		return nil, false
	}
	return records, true
}

// List - GET /api/forms/live-complete
func (h *LiveCompleteHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	records, ok := h.list(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// Create - POST /api/forms/live-complete
func (h *LiveCompleteHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var form map[string]any
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "잘못된 요청 형식입니다."})
		return
	}

	if !hasText(form, models.FieldCompanyName) || !hasText(form, models.FieldLiveDate) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "필수 항목을 모두 입력해주세요."})
		return
	}

	form[models.FieldAssignedMD] = user.Name
	form[models.FieldMDID] = user.ID
	form[models.FieldSubmittedAt] = time.Now().Format(time.RFC3339)

	// 관리자 보너스 필드는 제출 경로로 들어올 수 없다.
	delete(form, models.FieldAdminBonus)
	delete(form, models.FieldAdminBonusMemo)

	if user.IsSynthetic() {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "라이브 완료 폼이 제출되었습니다. (데모 모드)",
			"record":  demoCreatedRecord("demo-", form),
		})
		return
	}

	record, err := h.Store.CreateRecord(c.Request.Context(), models.TableLiveComplete, form)
	if err != nil {
		replyStoreError(c, "live-complete: create failed", err, "폼 제출 중 오류가 발생했습니다.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "라이브 완료 폼이 제출되었습니다.",
		"record":  record,
	})
}

type bonusUpdateRequest struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// UpdateBonus - PATCH /api/forms/live-complete
// MD보너스는 누구나, 관리자보너스/관리자메모는 관리자만 쓸 수 있다.
// 허용 목록 밖 필드는 조용히 버린다.
func (h *LiveCompleteHandler) UpdateBonus(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req bonusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "잘못된 요청 형식입니다."})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "레코드 ID가 필요합니다."})
		return
	}

	allowed := map[string]any{}
	if v, ok := req.Fields[models.FieldMDBonus]; ok {
		allowed[models.FieldMDBonus] = v
	}
	if user.IsAdmin() {
		if v, ok := req.Fields[models.FieldAdminBonus]; ok {
			allowed[models.FieldAdminBonus] = v
		}
		if v, ok := req.Fields[models.FieldAdminBonusMemo]; ok {
			allowed[models.FieldAdminBonusMemo] = v
		}
	}
	if len(allowed) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "수정할 보너스 항목이 없습니다."})
		return
	}

	if user.IsSynthetic() {
		c.JSON(http.StatusOK, gin.H{
			"id":      req.ID,
			"fields":  allowed,
			"message": "업데이트 성공 (데모 모드)",
		})
		return
	}

	record, err := h.Store.UpdateRecord(c.Request.Context(), models.TableLiveComplete, req.ID, allowed)
	if err != nil {
		replyStoreError(c, "live-complete: bonus update failed", err, "보너스 정보 수정 중 오류가 발생했습니다.")
		return
	}
	c.JSON(http.StatusOK, record)
}

// BonusSchedule - GET /api/forms/live-complete/bonus-schedule
// 지급일별로 묶인 보너스 합계. 시간순 정렬.
func (h *LiveCompleteHandler) BonusSchedule(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	records, ok := h.list(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": report.BonusSchedule(records)})
}

// Export - GET /api/forms/live-complete/export (관리자 전용)
// 보너스 정산 시트를 xlsx로 내려준다.
func (h *LiveCompleteHandler) Export(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	records, ok := h.list(c, user)
	if !ok {
		return
	}
	groups := report.BonusSchedule(records)

	f := excelize.NewFile()
	sheetName := "보너스 정산"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"지급일", "업체명", "담당MD", "입점완료일", "MD보너스", "관리자보너스", "관리자메모"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	row := 2
	for _, g := range groups {
		for _, rec := range g.Records {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), g.PaymentDate)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rec.Fields[models.FieldCompanyName])
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), rec.Fields[models.FieldAssignedMD])
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), rec.Fields[models.FieldLiveDate])
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), rec.Fields[models.FieldMDBonus])
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), rec.Fields[models.FieldAdminBonus])
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), rec.Fields[models.FieldAdminBonusMemo])
			row++
		}
	}

	fileName := fmt.Sprintf("bonus_schedule_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "엑셀 파일 생성에 실패했습니다."})
	}
}
