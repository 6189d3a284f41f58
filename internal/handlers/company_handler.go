// internal/handlers/company_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/internal/middleware"
	"github.com/kimgang91/md-dashboard/internal/report"
	"github.com/kimgang91/md-dashboard/models"
)

// CompanyHandler - 업체 조회/수정. 비관리자는 담당 업체만 본다.
type CompanyHandler struct {
	Store *airtable.Client
}

func NewCompanyHandler(store *airtable.Client) *CompanyHandler {
	return &CompanyHandler{Store: store}
}

// list는 호출자 권한에 맞는 업체 목록을 가져온다.
func (h *CompanyHandler) list(c *gin.Context, user models.User) ([]airtable.Record, bool) {
	if user.IsSynthetic() {
		return demoCompanies(), true
	}

	opts := &airtable.ListOptions{
		Sort: []airtable.Sort{{Field: models.FieldCompanyName, Direction: "asc"}},
	}
	if !user.IsAdmin() {
		opts.FilterByFormula = mdOrIDFilter(user)
	}

	records, err := h.Store.ListRecords(c.Request.Context(), models.TableCompany, opts)
	if err != nil {
		replyStoreError(c, "companies: list failed", err, "업체 목록을 불러오는 중 오류가 발생했습니다.")
		return nil, false
	}
	return records, true
}

// List - GET /api/companies
func (h *CompanyHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	records, ok := h.list(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// Get - GET /api/companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id := c.Param("id")

	if user.IsSynthetic() {
		c.JSON(http.StatusOK, demoCompanyDetail(id))
		return
	}

	record, err := h.Store.GetRecord(c.Request.Context(), models.TableCompany, id)
	if err != nil {
		replyStoreError(c, "companies: get failed", err, "업체 정보를 불러오는 중 오류가 발생했습니다.")
		return
	}
	c.JSON(http.StatusOK, record)
}

// Update - PATCH /api/companies/:id. 본문은 필드 객체, 부분 수정이다.
func (h *CompanyHandler) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id := c.Param("id")

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "잘못된 요청 형식입니다."})
		return
	}

	// 데모/관리자 계정은 저장 없이 성공 응답
	if user.IsSynthetic() {
		c.JSON(http.StatusOK, gin.H{
			"id":      id,
			"fields":  fields,
			"message": "업데이트 성공 (데모 모드)",
		})
		return
	}

	record, err := h.Store.UpdateRecord(c.Request.Context(), models.TableCompany, id, fields)
	if err != nil {
		replyStoreError(c, "companies: update failed", err, "업체 정보 수정 중 오류가 발생했습니다.")
		return
	}
	c.JSON(http.StatusOK, record)
}

// Summary - GET /api/dashboard/summary. 담당 업체 현황 카드 수치.
func (h *CompanyHandler) Summary(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	records, ok := h.list(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.CompanySummary(records))
}
