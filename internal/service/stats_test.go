package service

import (
	"testing"

	"github.com/0929smj/chun2/internal/model"
)

func TestWeeklyStats(t *testing.T) {
	dates := []string{"2026-01-04", "2026-01-11"}
	records := []model.AttendanceRecord{
		{ID: "a1", MemberID: "M1", Date: "2026-01-04", Types: []model.AttendanceType{model.TypeWorship, model.TypeWool}},
		{ID: "a2", MemberID: "M2", Date: "2026-01-04", Types: []model.AttendanceType{model.TypeWorship}},
		{ID: "a3", MemberID: "M1", Date: "2026-01-11", Types: []model.AttendanceType{model.TypeGathering}},
		{ID: "a4", MemberID: "M3", Date: "2026-02-01", Types: []model.AttendanceType{model.TypeWorship}}, // outside sequence
	}

	stats := WeeklyStats(records, dates)
	if len(stats) != 2 {
		t.Fatalf("got %d entries, want one per date", len(stats))
	}
	if stats[0].WorshipCount != 2 || stats[0].WoolCount != 1 || stats[0].GatheringCount != 0 {
		t.Fatalf("stats[0] = %+v", stats[0])
	}
	if stats[1].GatheringCount != 1 || stats[1].WorshipCount != 0 {
		t.Fatalf("stats[1] = %+v", stats[1])
	}
}

// Summing weekly counts over all dates must equal the total number of records
// containing each type, for each type independently.
func TestWeeklyStatsTotalsMatchRecordCounts(t *testing.T) {
	dates := Sundays(2026)
	records := []model.AttendanceRecord{
		{ID: "a1", MemberID: "M1", Date: dates[0], Types: []model.AttendanceType{model.TypeWorship}},
		{ID: "a2", MemberID: "M2", Date: dates[0], Types: []model.AttendanceType{model.TypeWorship, model.TypeGathering}},
		{ID: "a3", MemberID: "M1", Date: dates[5], Types: []model.AttendanceType{model.TypeWool}},
		{ID: "a4", MemberID: "M3", Date: dates[10], Types: []model.AttendanceType{model.TypeWorship, model.TypeWool}},
	}

	stats := WeeklyStats(records, dates)
	var worship, gathering, wool int
	for _, ws := range stats {
		worship += ws.WorshipCount
		gathering += ws.GatheringCount
		wool += ws.WoolCount
	}

	count := func(t model.AttendanceType) int {
		n := 0
		for _, r := range records {
			if r.HasType(t) {
				n++
			}
		}
		return n
	}
	if worship != count(model.TypeWorship) || gathering != count(model.TypeGathering) || wool != count(model.TypeWool) {
		t.Fatalf("totals (%d,%d,%d) do not match record counts (%d,%d,%d)",
			worship, gathering, wool,
			count(model.TypeWorship), count(model.TypeGathering), count(model.TypeWool))
	}
}

func TestGroupStats(t *testing.T) {
	members := []model.Member{
		{ID: "M1", Name: "김철수", Group: "사랑A"},
		{ID: "M2", Name: "이영희", Group: "사랑A"},
		{ID: "M3", Name: "박지성", Group: "사랑A"},
		{ID: "M4", Name: "최동원", Group: "소망B"},
	}
	records := []model.AttendanceRecord{
		{ID: "a1", MemberID: "M1", Date: "2026-01-04", Types: []model.AttendanceType{model.TypeGathering}},
		{ID: "a2", MemberID: "M2", Date: "2026-01-11", Types: []model.AttendanceType{model.TypeGathering}},
		{ID: "a3", MemberID: "M4", Date: "2026-01-04", Types: []model.AttendanceType{model.TypeWorship}},
		{ID: "a5", MemberID: "M9", Date: "2026-01-04", Types: []model.AttendanceType{model.TypeWorship}}, // unknown member ignored
	}

	stats := GroupStats(members, records)
	if len(stats) != 2 {
		t.Fatalf("got %d groups, want 2", len(stats))
	}
	love := stats[0]
	if love.GroupName != "사랑A" {
		t.Fatalf("group order not first-seen: %+v", stats)
	}
	if love.Members != 3 || love.TotalGathering != 2 || love.TotalWorship != 0 {
		t.Fatalf("사랑A = %+v, want members:3 totalGathering:2", love)
	}
	if stats[1].Members != 1 || stats[1].TotalWorship != 1 {
		t.Fatalf("소망B = %+v", stats[1])
	}
}

func TestMemberMonthlyTotalFiltersCancellations(t *testing.T) {
	monthDates := []string{"2026-01-04", "2026-01-11", "2026-01-18", "2026-01-25"}
	records := []model.AttendanceRecord{
		{ID: "a1", MemberID: "M1", Date: "2026-01-04", Types: []model.AttendanceType{model.TypeWool}},
		{ID: "a2", MemberID: "M1", Date: "2026-01-11", Types: []model.AttendanceType{model.TypeWool}},
		{ID: "a3", MemberID: "M1", Date: "2026-01-18", Types: []model.AttendanceType{model.TypeWorship}},
		{ID: "a4", MemberID: "M1", Date: "2026-02-01", Types: []model.AttendanceType{model.TypeWool}}, // outside month
		{ID: "a5", MemberID: "M2", Date: "2026-01-04", Types: []model.AttendanceType{model.TypeWool}}, // other member
	}
	statuses := []model.MeetingStatus{
		{Date: "2026-01-11", Type: model.TypeWool, IsCanceled: true},
	}

	got := MemberMonthlyTotal(records, statuses, "M1", model.TypeWool, monthDates)
	if got != 1 {
		t.Fatalf("total = %d, want 1 (canceled date excluded)", got)
	}

	// The same cancellation must not bleed into another type's total.
	got = MemberMonthlyTotal(records, statuses, "M1", model.TypeWorship, monthDates)
	if got != 1 {
		t.Fatalf("worship total = %d, want 1", got)
	}
}
