// internal/auth/password.go
package auth

import "strings"

// ExpectedPassword는 연락처에서 MD 로그인 비밀번호를 유도한다.
// 숫자만 남긴 뒤 뒷자리 4자리. 숫자가 4자리 미만이면 남은 전부,
// 연락처가 비어 있으면 빈 문자열이라 어떤 입력과도 일치하지 않는다.
func ExpectedPassword(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
