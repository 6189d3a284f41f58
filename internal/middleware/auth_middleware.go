// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimgang91/md-dashboard/internal/auth"
	"github.com/kimgang91/md-dashboard/models"
)

// 컨텍스트 키. 핸들러는 CurrentUser로만 꺼낸다.
const ctxUserKey = "currentUser"

// Auth는 Bearer 토큰을 검증하고 사용자 정보를 컨텍스트에 싣는다.
// 토큰이 없거나 깨졌거나 만료됐으면 401. 어떤 경우에도 500은 아니다.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractBearer(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "인증이 필요합니다."})
			return
		}

		claims, err := auth.VerifyToken(jwtSecret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "유효하지 않은 토큰입니다."})
			return
		}

		c.Set(ctxUserKey, claims.User())
		c.Next()
	}
}

// CurrentUser는 Auth 미들웨어가 실어 둔 사용자를 꺼낸다.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// RequireAdmin은 관리자 전용 엔드포인트를 막는다. Auth 뒤에 와야 한다.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "관리자만 사용할 수 있습니다."})
			return
		}
		c.Next()
	}
}
