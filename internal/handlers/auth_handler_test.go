package handlers

import (
	"testing"

	"github.com/kimgang91/md-dashboard/internal/airtable"
	"github.com/kimgang91/md-dashboard/models"
)

func TestUserFromRecordPrefersAssignedMDName(t *testing.T) {
	rec := airtable.Record{ID: "rec1", Fields: map[string]any{
		"이메일": "md@test.com", "담당MD": "김엠디", "이름": "김철수",
	}}
	user := userFromRecord(rec, "fallback@test.com")
	if user.Name != "김엠디" {
		t.Fatalf("name = %q, want 담당MD field", user.Name)
	}
	if user.Email != "md@test.com" {
		t.Fatalf("email = %q, want stored email", user.Email)
	}
	if user.Role != models.RoleMD {
		t.Fatalf("role = %q, want default md", user.Role)
	}
}

func TestUserFromRecordFallbacks(t *testing.T) {
	// 담당MD가 없으면 이름, 그것도 없으면 "담당자"
	rec := airtable.Record{ID: "rec2", Fields: map[string]any{"이름": "김철수"}}
	if got := userFromRecord(rec, "a@b.c"); got.Name != "김철수" || got.Email != "a@b.c" {
		t.Fatalf("user = %+v", got)
	}

	rec = airtable.Record{ID: "rec3", Fields: map[string]any{}}
	if got := userFromRecord(rec, "a@b.c"); got.Name != "담당자" {
		t.Fatalf("name = %q, want 담당자", got.Name)
	}
}

func TestUserFromRecordRoleFromStore(t *testing.T) {
	rec := airtable.Record{ID: "rec4", Fields: map[string]any{"역할": "admin", "담당MD": "관리팀장"}}
	if got := userFromRecord(rec, "x@y.z"); !got.IsAdmin() {
		t.Fatalf("expected admin role, got %+v", got)
	}
}

func TestMDFilterEscapesQuotes(t *testing.T) {
	user := models.User{ID: "rec5", Name: `김"엠디`}
	got := mdFilter(user)
	want := `{담당MD} = "김\"엠디"`
	if got != want {
		t.Fatalf("filter = %q, want %q", got, want)
	}
}
