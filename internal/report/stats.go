// internal/report/stats.go
// 대시보드 표시용 집계. 요청 시점에 조회한 레코드 배열 위에서만 동작하는
// 순수 계산이고 서버 상태를 만들지 않는다.
package report

import (
	"math"
	"time"

	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/models"
)

// SuccessRate는 성공률(%)을 소수 첫째 자리까지 돌려준다.
// 완료 3건, 거절 1건이면 75.0. 분모가 0이면 0.0.
func SuccessRate(completed, rejected int) float64 {
	total := completed + rejected
	if total == 0 {
		return 0
	}
	return round1(float64(completed) / float64(total) * 100)
}

// ProgressRate는 진행률(%) = (완료+진행중)/전체. 전체가 0이면 0.0.
func ProgressRate(completed, pending, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(completed+pending) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// 집계 기간.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// PeriodStart는 now 기준 집계 시작 시점을 돌려준다.
// daily는 오늘 0시, weekly는 7일 전, monthly는 한 달 전.
// 모르는 값은 monthly로 취급한다.
func PeriodStart(now time.Time, period string) time.Time {
	switch period {
	case PeriodDaily:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeekly:
		return now.AddDate(0, 0, -7)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// InboundStatsResult - 인바운드 성과 집계.
type InboundStatsResult struct {
	Period       string  `json:"period"`
	Total        int     `json:"total"`
	Completed    int     `json:"completed"`
	Rejected     int     `json:"rejected"`
	Pending      int     `json:"pending"`
	SuccessRate  float64 `json:"successRate"`
	ProgressRate float64 `json:"progressRate"`
}

// InboundStats는 인입일자가 기간 안에 드는 레코드를 미팅결과별로 집계한다.
// 입점완료는 성공, 거절은 실패, 나머지는 진행중으로 센다.
func InboundStats(records []airtable.Record, period string, now time.Time) InboundStatsResult {
	start := PeriodStart(now, period)
	res := InboundStatsResult{Period: period}
	for _, rec := range records {
		raw, _ := rec.Fields[models.FieldInboundDate].(string)
		d, err := time.Parse(dateLayout, raw)
		if err != nil || d.Before(start) {
			continue
		}
		res.Total++
		switch models.MeetingResult(stringField(rec.Fields, models.FieldMeetingResult)) {
		case models.MeetingOnboarded:
			res.Completed++
		case models.MeetingRejected:
			res.Rejected++
		default:
			res.Pending++
		}
	}
	res.SuccessRate = SuccessRate(res.Completed, res.Rejected)
	res.ProgressRate = ProgressRate(res.Completed, res.Pending, res.Total)
	return res
}

// StatusCounts는 지정 필드 값별 건수를 센다. 값이 없는 레코드는 제외한다.
func StatusCounts(records []airtable.Record, field string) map[string]int {
	counts := map[string]int{}
	for _, rec := range records {
		if v := stringField(rec.Fields, field); v != "" {
			counts[v]++
		}
	}
	return counts
}

// CompanySummaryResult - 담당 업체 현황 카드 수치.
type CompanySummaryResult struct {
	Total          int     `json:"totalCompanies"`
	Active         int     `json:"activeCompanies"`
	AtRisk         int     `json:"atRiskCompanies"`
	MonthlyRevenue float64 `json:"totalRevenue"`
}

// CompanySummary는 업체 목록에서 현황 수치를 뽑는다.
func CompanySummary(records []airtable.Record) CompanySummaryResult {
	var res CompanySummaryResult
	for _, rec := range records {
		res.Total++
		status := stringField(rec.Fields, models.FieldCompanyStatus)
		contract := stringField(rec.Fields, models.FieldContractStatus)
		if status == models.CompanyActive || contract == models.ContractNormal {
			res.Active++
		}
		if status == models.CompanyAtRisk || contract == models.ContractCaution {
			res.AtRisk++
		}
		res.MonthlyRevenue += numberField(rec.Fields, models.FieldMonthlyRevenue)
	}
	return res
}

func stringField(fields map[string]any, key string) string {
	v, _ := fields[key].(string)
	return v
}
