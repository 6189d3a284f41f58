package report

import (
	"testing"
	"time"

	"github.com/kimgang91/md-dashboard/internal/airtable"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBonusPaymentDate(t *testing.T) {
	cases := []struct {
		accrual string
		want    string
	}{
		{"2026-01-06", "2026-03-05"},
		{"2025-12-20", "2026-02-05"},
		{"2025-11-01", "2026-01-05"},
		{"2026-01-05", "2026-03-05"},
		{"2026-12-31", "2027-02-05"},
	}
	for _, tc := range cases {
		got := BonusPaymentDate(date(tc.accrual)).Format("2006-01-02")
		if got != tc.want {
			t.Fatalf("BonusPaymentDate(%s) = %s, want %s", tc.accrual, got, tc.want)
		}
	}
}

func TestBonusScheduleGroupsAndSums(t *testing.T) {
	records := []airtable.Record{
		{ID: "a", Fields: map[string]any{"입점완료일": "2026-01-06", "MD보너스": 100000.0, "관리자보너스": 50000.0}},
		{ID: "b", Fields: map[string]any{"입점완료일": "2026-01-20", "MD보너스": 200000.0}},
		{ID: "c", Fields: map[string]any{"입점완료일": "2025-12-20", "MD보너스": 300000.0}},
		{ID: "d", Fields: map[string]any{"입점완료일": "날짜아님"}},
		{ID: "e", Fields: map[string]any{}},
	}

	groups := BonusSchedule(records)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}

	// 시간순: 2026-02-05가 2026-03-05보다 먼저
	if groups[0].PaymentDate != "2026-02-05" || groups[1].PaymentDate != "2026-03-05" {
		t.Fatalf("payment order = %s, %s", groups[0].PaymentDate, groups[1].PaymentDate)
	}
	if groups[0].Count != 1 || groups[0].MDTotal != 300000 {
		t.Fatalf("2026-02-05 group = %+v", groups[0])
	}
	if groups[1].Count != 2 || groups[1].MDTotal != 300000 || groups[1].AdminTotal != 50000 {
		t.Fatalf("2026-03-05 group = %+v", groups[1])
	}
}

func TestBonusScheduleEmpty(t *testing.T) {
	if groups := BonusSchedule(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %+v", groups)
	}
}
