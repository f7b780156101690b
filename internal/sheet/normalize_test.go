package sheet

import (
	"testing"

	"github.com/0929smj/chun2/internal/model"
)

func TestIsChecked(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"bool true", true, true},
		{"upper yes", "YES", true},
		{"lower o", "o", true},
		{"upper O", "O", true},
		{"y", "y", true},
		{"present upper", "PRESENT", true},
		{"true string", "true", true},
		{"padded", "  yes  ", true},
		{"empty", "", false},
		{"no", "no", false},
		{"bool false", false, false},
		{"nil", nil, false},
		{"number", 1, false},
		{"x", "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsChecked(tt.in); got != tt.want {
				t.Errorf("IsChecked(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2026-01-24", "2026-01-24", true},
		{"26. 1. 24", "2026-01-24", true},
		{"2026. 1. 24.", "2026-01-24", true},
		{"2026년 1월 24일", "2026-01-24", true},
		{"26.12.6", "2026-12-06", true},
		{"2026-01-24T00:00:00", "2026-01-24", true},
		{"", "", false},
		{"hello", "", false},
		{"2026-13-01", "", false},
		{"26. 1", "", false},
		{"26. 2. 30", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeDate(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("NormalizeDate(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNormalizeMembers(t *testing.T) {
	rows := []Row{
		{"MemberId": "M1001", "Name": "김철수", "소그룹": "사랑A", "연락처": "010-1111-2222", "직분": "집사"},
		{"id": "M1002", "name": "이영희", "WoolName": "소망B", "Phone Number": "010-3333-4444"},
		{"id": "M1003", "group": "사랑A"}, // no name: dropped
		{"ID": "M1004", "NAME": "박지성", "wool": "믿음A", "status": "ACTIVE"},
	}

	members := NormalizeMembers(rows)
	if len(members) != 3 {
		t.Fatalf("got %d members, want 3 (nameless row dropped)", len(members))
	}
	if members[0].ID != "M1001" || members[0].Group != "사랑A" || members[0].PhoneNumber != "010-1111-2222" || members[0].Role != "집사" {
		t.Fatalf("members[0] = %+v", members[0])
	}
	if members[1].Group != "소망B" || members[1].PhoneNumber != "010-3333-4444" {
		t.Fatalf("aliased columns not resolved: %+v", members[1])
	}
	if members[2].Group != "믿음A" {
		t.Fatalf("wool alias not resolved: %+v", members[2])
	}
}

func TestNormalizeAttendance(t *testing.T) {
	rows := []Row{
		{"memberId": "M1001", "date": "2026-01-11", "예배": "O", "집회": "", "울모임": "yes"},
		{"memberId": "M1002", "date": "26. 1. 11", "worship": true},
		{"memberId": "M1003", "date": "2026-01-11"},            // zero checked: no record
		{"memberId": "M1004", "date": "not a date", "예배": "O"}, // bad date: excluded
		{"date": "2026-01-11", "예배": "O"},                      // no member id: excluded
	}

	records := NormalizeAttendance(rows)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	r := records[0]
	if r.MemberID != "M1001" || len(r.Types) != 2 || !r.HasType(model.TypeWorship) || !r.HasType(model.TypeWool) {
		t.Fatalf("records[0] = %+v", r)
	}
	if r.HasType(model.TypeGathering) {
		t.Fatalf("unchecked type counted: %+v", r)
	}
	if records[1].Date != "2026-01-11" {
		t.Fatalf("locale date not normalized: %+v", records[1])
	}
}

func TestNormalizeMeetingStatuses(t *testing.T) {
	rows := []Row{
		{"date": "2026-01-04", "예배": "O", "집회": "O"}, // wool missing: canceled
		{"date": "2026-01-11", "예배": "O", "집회": "O", "울모임": "O"},
		{"date": "bad", "예배": "O"},
	}

	statuses := NormalizeMeetingStatuses(rows)
	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1: %+v", len(statuses), statuses)
	}
	st := statuses[0]
	if st.Date != "2026-01-04" || st.Type != model.TypeWool || !st.IsCanceled {
		t.Fatalf("status = %+v", st)
	}
}

func TestNormalizePrayers(t *testing.T) {
	rows := []Row{
		{"memberId": "M1001", "date": "2026-01-11", "content": "가족의 건강을 위해"},
		{"memberId": "M1002", "date": "2026-01-11", "note": "2주 결석 예정"},
		{"memberId": "M1003", "date": "2026-01-11"}, // neither content nor note
		{"memberId": "M1004", "date": "???", "content": "x"},
	}

	prayers := NormalizePrayers(rows)
	if len(prayers) != 2 {
		t.Fatalf("got %d prayers, want 2", len(prayers))
	}
	if prayers[0].Content == "" || prayers[1].Note == "" {
		t.Fatalf("prayers = %+v", prayers)
	}
}
