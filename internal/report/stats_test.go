package report

import (
	"testing"
	"time"

	"github.com/kimgang91/md-dashboard/internal/airtable"
)

func TestSuccessRate(t *testing.T) {
	if got := SuccessRate(3, 1); got != 75.0 {
		t.Fatalf("SuccessRate(3, 1) = %v, want 75.0", got)
	}
	if got := SuccessRate(0, 0); got != 0.0 {
		t.Fatalf("SuccessRate(0, 0) = %v, want 0.0", got)
	}
	if got := SuccessRate(1, 2); got != 33.3 {
		t.Fatalf("SuccessRate(1, 2) = %v, want 33.3", got)
	}
}

func TestProgressRate(t *testing.T) {
	if got := ProgressRate(2, 1, 4); got != 75.0 {
		t.Fatalf("ProgressRate(2, 1, 4) = %v, want 75.0", got)
	}
	if got := ProgressRate(0, 0, 0); got != 0.0 {
		t.Fatalf("ProgressRate(0, 0, 0) = %v, want 0.0", got)
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, 2, 15, 13, 30, 0, 0, time.UTC)

	if got := PeriodStart(now, PeriodDaily); !got.Equal(time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("daily start = %v", got)
	}
	if got := PeriodStart(now, PeriodWeekly); !got.Equal(now.AddDate(0, 0, -7)) {
		t.Fatalf("weekly start = %v", got)
	}
	if got := PeriodStart(now, PeriodMonthly); !got.Equal(now.AddDate(0, -1, 0)) {
		t.Fatalf("monthly start = %v", got)
	}
	// 모르는 기간은 monthly로 취급
	if got := PeriodStart(now, "yearly"); !got.Equal(now.AddDate(0, -1, 0)) {
		t.Fatalf("unknown period start = %v", got)
	}
}

func TestInboundStats(t *testing.T) {
	now := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
	records := []airtable.Record{
		{Fields: map[string]any{"인입일자": "2026-02-10", "미팅결과": "입점완료"}},
		{Fields: map[string]any{"인입일자": "2026-02-05", "미팅결과": "입점완료"}},
		{Fields: map[string]any{"인입일자": "2026-02-01", "미팅결과": "입점완료"}},
		{Fields: map[string]any{"인입일자": "2026-02-12", "미팅결과": "거절"}},
		{Fields: map[string]any{"인입일자": "2026-02-14", "미팅결과": "미팅예정"}},
		// 기간 밖
		{Fields: map[string]any{"인입일자": "2025-12-01", "미팅결과": "입점완료"}},
		// 날짜 없음
		{Fields: map[string]any{"미팅결과": "거절"}},
	}

	got := InboundStats(records, PeriodMonthly, now)
	if got.Total != 5 || got.Completed != 3 || got.Rejected != 1 || got.Pending != 1 {
		t.Fatalf("stats = %+v", got)
	}
	if got.SuccessRate != 75.0 {
		t.Fatalf("success rate = %v, want 75.0", got.SuccessRate)
	}
	if got.ProgressRate != 80.0 {
		t.Fatalf("progress rate = %v, want 80.0", got.ProgressRate)
	}
}

func TestInboundStatsEmpty(t *testing.T) {
	got := InboundStats(nil, PeriodDaily, time.Now())
	if got.Total != 0 || got.SuccessRate != 0.0 || got.ProgressRate != 0.0 {
		t.Fatalf("empty stats = %+v", got)
	}
}

func TestStatusCounts(t *testing.T) {
	records := []airtable.Record{
		{Fields: map[string]any{"현재상태": "대응중"}},
		{Fields: map[string]any{"현재상태": "대응중"}},
		{Fields: map[string]any{"현재상태": "해결완료"}},
		{Fields: map[string]any{}},
	}
	counts := StatusCounts(records, "현재상태")
	if counts["대응중"] != 2 || counts["해결완료"] != 1 || len(counts) != 2 {
		t.Fatalf("counts = %+v", counts)
	}
}

func TestCompanySummary(t *testing.T) {
	records := []airtable.Record{
		{Fields: map[string]any{"상태": "정상운영", "월매출": 15000000.0}},
		{Fields: map[string]any{"상태": "이탈우려", "계약상태": "주의", "월매출": 3200000.0}},
		{Fields: map[string]any{"계약상태": "정상", "월매출": 8500000.0}},
	}
	got := CompanySummary(records)
	if got.Total != 3 || got.Active != 2 || got.AtRisk != 1 {
		t.Fatalf("summary = %+v", got)
	}
	if got.MonthlyRevenue != 26700000 {
		t.Fatalf("revenue = %v", got.MonthlyRevenue)
	}
}
