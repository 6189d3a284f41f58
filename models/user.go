package models

// 사용자 역할. 역할은 필드 단위 쓰기 권한과 조회 범위를 결정한다.
const (
	RoleMD    = "md"
	RoleAdmin = "admin"
)

// 하드코딩 계정의 고정 ID. 이 ID를 가진 사용자는 스토어를 거치지 않는다.
const (
	DemoUserID  = "demo-user"
	AdminUserID = "admin-user"
)

// User - 인증된 사용자. 토큰 클레임과 로그인 응답에 그대로 실린다.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// IsAdmin은 관리자 여부를 반환한다.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSynthetic은 스토어 자격 증명 없이 동작하는 데모/관리자 계정인지 여부.
func (u User) IsSynthetic() bool {
	return u.ID == DemoUserID || u.ID == AdminUserID
}
