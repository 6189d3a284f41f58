// internal/report/bonus.go
// 보너스 정산 일정 계산. 발생일 + 2개월, 매월 5일 지급.
package report

import (
	"sort"
	"time"

	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/models"
)

const dateLayout = "2006-01-02"

// BonusPaymentDate는 발생일에 대한 지급일을 돌려준다.
// 2026-01-06 → 2026-03-05, 2025-12-20 → 2026-02-05 (연도 이월 포함).
func BonusPaymentDate(accrual time.Time) time.Time {
	return time.Date(accrual.Year(), accrual.Month()+2, 5, 0, 0, 0, 0, accrual.Location())
}

// BonusGroup - 같은 지급일로 묶인 라이브완료 레코드와 보너스 합계.
type BonusGroup struct {
	PaymentDate string            `json:"paymentDate"`
	Count       int               `json:"count"`
	MDTotal     float64           `json:"mdBonusTotal"`
	AdminTotal  float64           `json:"adminBonusTotal"`
	Records     []airtable.Record `json:"records"`
}

// BonusSchedule은 라이브완료 레코드를 지급일별로 묶어 시간순으로 돌려준다.
// 입점완료일이 없거나 날짜 형식이 아니면 그 레코드는 건너뛴다.
func BonusSchedule(records []airtable.Record) []BonusGroup {
	groups := map[string]*BonusGroup{}
	for _, rec := range records {
		raw, _ := rec.Fields[models.FieldLiveDate].(string)
		accrual, err := time.Parse(dateLayout, raw)
		if err != nil {
			continue
		}
		key := BonusPaymentDate(accrual).Format(dateLayout)
		g, ok := groups[key]
		if !ok {
			g = &BonusGroup{PaymentDate: key}
			groups[key] = g
		}
		g.Count++
		g.MDTotal += numberField(rec.Fields, models.FieldMDBonus)
		g.AdminTotal += numberField(rec.Fields, models.FieldAdminBonus)
		g.Records = append(g.Records, rec)
	}

	out := make([]BonusGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentDate < out[j].PaymentDate })
	return out
}

// numberField는 JSON 디코딩 결과에서 숫자 필드를 꺼낸다. 없으면 0.
func numberField(fields map[string]any, key string) float64 {
	switch v := fields[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}
