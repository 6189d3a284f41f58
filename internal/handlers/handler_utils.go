// internal/handlers/handler_utils.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/models"
)

// replyStoreError는 스토어/내부 오류를 기록하고 클라이언트에는
// 원인 노출 없이 현지화된 500 메시지만 돌려준다.
func replyStoreError(c *gin.Context, logMsg string, err error, userMsg string) {
	slog.Error(logMsg, "error", err, "path", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, gin.H{"message": userMsg})
}

// escapeFormula는 필터 수식 문자열 리터럴 안에 들어갈 값을 이스케이프한다.
func escapeFormula(v string) string {
	return strings.ReplaceAll(v, `"`, `\"`)
}

// mdFilter는 담당MD 이름 일치 조건을 만든다. 비관리자 조회 범위 제한용.
func mdFilter(user models.User) string {
	return fmt.Sprintf(`{담당MD} = "%s"`, escapeFormula(user.Name))
}

// mdOrIDFilter는 이름 또는 담당MD_ID 일치 조건을 만든다. 업체 테이블용.
func mdOrIDFilter(user models.User) string {
	return fmt.Sprintf(`OR({담당MD} = "%s", {담당MD_ID} = "%s")`,
		escapeFormula(user.Name), escapeFormula(user.ID))
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// hasText는 폼 필드가 비어 있지 않은 문자열인지 확인한다.
func hasText(form map[string]any, key string) bool {
	v, ok := form[key].(string)
	return ok && strings.TrimSpace(v) != ""
}

// demoCreatedRecord는 데모 모드 제출에 돌려줄 가짜 생성 결과를 만든다.
func demoCreatedRecord(prefix string, fields map[string]any) airtable.Record {
	return airtable.Record{ID: prefix + uuid.NewString(), Fields: fields}
}
