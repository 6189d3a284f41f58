// internal/auth/token.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kimgang91/md-dashboard/models"
)

// TokenTTL - 세션 토큰 유효기간. 갱신 없음, 만료되면 재로그인.
const TokenTTL = 7 * 24 * time.Hour

// Claims - 세션 토큰에 실리는 사용자 정보.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// User는 클레임을 models.User로 되돌린다.
func (c *Claims) User() models.User {
	return models.User{ID: c.UserID, Email: c.Email, Name: c.Name, Role: c.Role}
}

// SignToken은 사용자 정보를 담은 HS256 토큰을 발급한다.
func SignToken(secret string, user models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken은 토큰을 검증하고 클레임을 돌려준다. 서명 불일치, 만료,
// 형식 오류는 모두 에러다. 호출부는 에러를 401로 다룬다.
func VerifyToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ExtractBearer는 Authorization 헤더에서 Bearer 토큰을 꺼낸다.
// Bearer 스킴이 아니면 빈 문자열을 돌려주고 상위에서 401 처리한다.
func ExtractBearer(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return header[len("Bearer "):]
}
