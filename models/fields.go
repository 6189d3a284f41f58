package models

// 에어테이블 테이블명. 베이스 스키마와 1:1로 대응한다.
const (
	TableMDMaster     = "MD 마스터 DB"
	TableCompany      = "업체"
	TableChurnRisk    = "이탈해지우려"
	TableCS           = "CS접수"
	TableInbound      = "인바운드 캠핑장 DB"
	TableInboundWrite = "인바운드결과"
	TableLiveComplete = "라이브완료"
)

// 공통 필드명.
const (
	FieldCompanyName = "업체명"
	FieldAssignedMD  = "담당MD"
	FieldMDID        = "담당MD_ID"
	FieldEmail       = "이메일"
	FieldPhone       = "연락처"
	FieldRole        = "역할"
	FieldName        = "이름"
	FieldReceiptDate = "접수일"
)

// 업체 테이블 필드.
const (
	FieldCompanyStatus  = "상태"
	FieldOnboardDate    = "입점일"
	FieldMonthlyRevenue = "월매출"
	FieldContractStatus = "계약상태"
	FieldMemo           = "메모"
)

// 이탈해지우려 폼 필드.
const (
	FieldChurnReason = "이탈사유"
	FieldChurnDetail = "상세내용"
	FieldChurnStatus = "현재상태"
	FieldChurnAction = "대응방안"
)

// CS접수 폼 필드.
const (
	FieldCSType     = "CS유형"
	FieldCSCustomer = "고객명"
	FieldCSContent  = "내용"
	FieldCSStatus   = "처리상태"
)

// 인바운드 폼 필드.
const (
	FieldInboundDate    = "인입일자"
	FieldInboundChannel = "인입경로"
	FieldInboundCEO     = "대표자명"
	FieldInboundRegion  = "지역"
	FieldMeetingResult  = "미팅결과"
	FieldExpectedOnline = "예상입점일"
)

// 라이브완료 폼 필드.
const (
	FieldLiveDate       = "입점완료일"
	FieldLiveURL        = "라이브URL"
	FieldLiveNote       = "특이사항"
	FieldSubmittedAt    = "제출일시"
	FieldMDBonus        = "MD보너스"
	FieldAdminBonus     = "관리자보너스"
	FieldAdminBonusMemo = "관리자메모"
)
