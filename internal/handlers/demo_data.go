// internal/handlers/demo_data.go
// 데모/관리자 하드코딩 계정용 고정 샘플 데이터. 에어테이블 자격 증명이
// 없는 환경에서 화면 확인용으로 쓴다.
package handlers

import (
	"github.com/kimgang91/md-dashboard/internal/airtable"
)

func demoCompanies() []airtable.Record {
	return []airtable.Record{
		{ID: "rec1", Fields: map[string]any{
			"업체명": "캠핑장 A", "상태": "정상운영", "담당MD": "데모 MD",
			"연락처": "010-1234-5678", "입점일": "2025-01-15",
			"월매출": float64(15000000), "계약상태": "정상",
		}},
		{ID: "rec2", Fields: map[string]any{
			"업체명": "캠핑장 B", "상태": "정상운영", "담당MD": "데모 MD",
			"연락처": "010-2345-6789", "입점일": "2025-02-01",
			"월매출": float64(8500000), "계약상태": "정상",
		}},
		{ID: "rec3", Fields: map[string]any{
			"업체명": "글램핑 C", "상태": "이탈우려", "담당MD": "데모 MD",
			"연락처": "010-3456-7890", "입점일": "2024-11-20",
			"월매출": float64(3200000), "계약상태": "주의",
		}},
		{ID: "rec4", Fields: map[string]any{
			"업체명": "펜션 D", "상태": "정상운영", "담당MD": "데모 MD",
			"연락처": "010-4567-8901", "입점일": "2025-01-28",
			"월매출": float64(12000000), "계약상태": "정상",
		}},
	}
}

func demoCompanyDetail(id string) airtable.Record {
	return airtable.Record{ID: id, Fields: map[string]any{
		"업체명": "캠핑장 A", "상태": "정상운영", "담당MD": "데모 MD",
		"연락처": "010-1234-5678", "이메일": "camping@example.com",
		"입점일": "2025-01-15", "월매출": float64(15000000),
		"계약상태": "정상", "메모": "우수 업체, 지속 관리 필요",
	}}
}

func demoChurnRisks() []airtable.Record {
	return []airtable.Record{
		{ID: "churn1", Fields: map[string]any{
			"업체명": "글램핑 C", "접수일": "2026-01-20", "담당MD": "데모 MD",
			"이탈사유": "수수료불만", "상세내용": "경쟁사 수수료가 더 낮다고 불만 제기",
			"현재상태": "대응중", "대응방안": "수수료 협의 미팅 예정",
		}},
		{ID: "churn2", Fields: map[string]any{
			"업체명": "펜션 G", "접수일": "2026-01-15", "담당MD": "데모 MD",
			"이탈사유": "매출부진", "상세내용": "예약률이 낮아 플랫폼 효과에 의문",
			"현재상태": "모니터링", "대응방안": "프로모션 지원 제안",
		}},
	}
}

func demoCSEntries() []airtable.Record {
	return []airtable.Record{
		{ID: "cs1", Fields: map[string]any{
			"업체명": "캠핑장 B", "접수일": "2026-02-01", "CS유형": "결제문의",
			"담당MD": "데모 MD", "고객명": "홍길동", "연락처": "010-1234-5678",
			"내용": "결제 취소 요청", "처리상태": "처리중",
		}},
		{ID: "cs2", Fields: map[string]any{
			"업체명": "글램핑 C", "접수일": "2026-01-28", "CS유형": "예약변경",
			"담당MD": "데모 MD", "고객명": "김철수", "연락처": "010-9876-5432",
			"내용": "예약 날짜 변경 요청", "처리상태": "완료",
		}},
	}
}

func demoInbounds() []airtable.Record {
	return []airtable.Record{
		{ID: "inbound1", Fields: map[string]any{
			"업체명": "신규캠핑장 E", "인입일자": "2026-01-30", "인입경로": "홈페이지",
			"담당MD": "데모 MD", "대표자명": "박대표", "연락처": "010-1111-2222",
			"지역": "강원도", "미팅결과": "미팅예정", "예상입점일": "2026-03-01",
		}},
		{ID: "inbound2", Fields: map[string]any{
			"업체명": "신규글램핑 F", "인입일자": "2026-01-25", "인입경로": "제휴문의",
			"담당MD": "데모 MD", "대표자명": "이대표", "연락처": "010-3333-4444",
			"지역": "경기도", "미팅결과": "계약진행중", "예상입점일": "2026-02-15",
		}},
	}
}

func demoLiveCompletes() []airtable.Record {
	return []airtable.Record{
		{ID: "live1", Fields: map[string]any{
			"업체명": "캠핑장 A", "입점완료일": "2025-01-15", "담당MD": "데모 MD",
			"라이브URL": "https://example.com/camping-a", "특이사항": "정상 오픈",
			"MD보너스": float64(100000),
		}},
	}
}
