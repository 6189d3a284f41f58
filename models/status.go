package models

// 폼별 상태값. 자유 입력 대신 닫힌 집합으로 관리해 오타를 걸러낸다.
// 상태 전이는 서버에서 강제하지 않는다. 사용자가 고른 값이 곧 상태다.

// ChurnStatus - 이탈해지우려 현재상태.
type ChurnStatus string

const (
	ChurnReceived   ChurnStatus = "접수"
	ChurnInProgress ChurnStatus = "대응중"
	ChurnMonitoring ChurnStatus = "모니터링"
	ChurnResolved   ChurnStatus = "해결완료"
	ChurnConfirmed  ChurnStatus = "이탈확정"
)

func (s ChurnStatus) IsValid() bool {
	switch s {
	case ChurnReceived, ChurnInProgress, ChurnMonitoring, ChurnResolved, ChurnConfirmed:
		return true
	}
	return false
}

// CSStatus - CS접수 처리상태.
type CSStatus string

const (
	CSReceived   CSStatus = "접수완료"
	CSInProgress CSStatus = "처리중"
	CSDone       CSStatus = "완료"
)

func (s CSStatus) IsValid() bool {
	switch s {
	case CSReceived, CSInProgress, CSDone:
		return true
	}
	return false
}

// MeetingResult - 인바운드 미팅결과.
type MeetingResult string

const (
	MeetingPlanned    MeetingResult = "미팅예정"
	MeetingContacting MeetingResult = "컨택중"
	MeetingContract   MeetingResult = "계약진행중"
	MeetingOnboarded  MeetingResult = "입점완료"
	MeetingRejected   MeetingResult = "거절"
)

func (s MeetingResult) IsValid() bool {
	switch s {
	case MeetingPlanned, MeetingContacting, MeetingContract, MeetingOnboarded, MeetingRejected:
		return true
	}
	return false
}

// 업체 상태값.
const (
	CompanyActive   = "정상운영"
	CompanyAtRisk   = "이탈우려"
	ContractNormal  = "정상"
	ContractCaution = "주의"
)
