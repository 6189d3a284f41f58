// internal/handlers/auth_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimgang91/md-dashboard/config"
	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/internal/auth"
	"github.com/kimgang91/md-dashboard/models"
)

// AuthHandler - 로그인 처리. 하드코딩 계정 → MD 마스터 DB 순으로 확인한다.
type AuthHandler struct {
	Cfg   config.App
	Store *airtable.Client
}

func NewAuthHandler(cfg config.App, store *airtable.Client) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Store: store}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login은 이메일/비밀번호를 확인하고 세션 토큰을 발급한다.
// MD 비밀번호는 마스터 DB 연락처 뒷자리 4자리다.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "이메일과 비밀번호를 입력해주세요."})
		return
	}

	// 데모 계정 (에어테이블 연결 전 테스트용)
	if req.Email == h.Cfg.DemoEmail && req.Password == h.Cfg.DemoPassword {
		h.issueToken(c, models.User{
			ID:    models.DemoUserID,
			Email: h.Cfg.DemoEmail,
			Name:  "데모 MD",
			Role:  models.RoleMD,
		})
		return
	}

	// 관리자 계정
	if h.Cfg.AdminEmail != "" && req.Email == h.Cfg.AdminEmail && req.Password == h.Cfg.AdminPassword {
		h.issueToken(c, models.User{
			ID:    models.AdminUserID,
			Email: h.Cfg.AdminEmail,
			Name:  h.Cfg.AdminName,
			Role:  models.RoleAdmin,
		})
		return
	}

	// MD 마스터 DB에서 이메일로 조회
	records, err := h.Store.ListRecords(c.Request.Context(), models.TableMDMaster, &airtable.ListOptions{
		FilterByFormula: `{이메일} = "` + escapeFormula(req.Email) + `"`,
		MaxRecords:      1,
	})
	if err != nil {
		replyStoreError(c, "login: md master lookup failed", err, "로그인 처리 중 오류가 발생했습니다.")
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "등록되지 않은 이메일입니다."})
		return
	}

	rec := records[0]
	phone, _ := rec.Fields[models.FieldPhone].(string)
	if req.Password != auth.ExpectedPassword(phone) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "비밀번호가 일치하지 않습니다. (연락처 뒷자리 4자리)"})
		return
	}

	h.issueToken(c, userFromRecord(rec, req.Email))
}

// userFromRecord는 MD 마스터 레코드에서 사용자 정보를 구성한다.
// 이름은 담당MD 필드 우선, 없으면 이름 필드, 그래도 없으면 "담당자".
func userFromRecord(rec airtable.Record, email string) models.User {
	user := models.User{ID: rec.ID, Email: email, Role: models.RoleMD}
	if v, _ := rec.Fields[models.FieldEmail].(string); v != "" {
		user.Email = v
	}
	if v, _ := rec.Fields[models.FieldAssignedMD].(string); v != "" {
		user.Name = v
	} else if v, _ := rec.Fields[models.FieldName].(string); v != "" {
		user.Name = v
	} else {
		user.Name = "담당자"
	}
	if v, _ := rec.Fields[models.FieldRole].(string); v != "" {
		user.Role = v
	}
	return user
}

func (h *AuthHandler) issueToken(c *gin.Context, user models.User) {
	token, err := auth.SignToken(h.Cfg.JWTSecret, user)
	if err != nil {
		replyStoreError(c, "login: token signing failed", err, "로그인 처리 중 오류가 발생했습니다.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
