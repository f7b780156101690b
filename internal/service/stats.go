package service

import (
	"github.com/0929smj/chun2/internal/model"
)

// WeeklyStats counts records per date and type across the fixed meeting-date
// sequence. No cancellation filtering here: a canceled meeting has no records
// and reports zero on its own.
func WeeklyStats(records []model.AttendanceRecord, dates []string) []model.WeeklyStats {
	byDate := make(map[string]*model.WeeklyStats, len(dates))
	out := make([]model.WeeklyStats, len(dates))
	for i, d := range dates {
		out[i] = model.WeeklyStats{Date: d}
		byDate[d] = &out[i]
	}
	for _, r := range records {
		ws, ok := byDate[r.Date]
		if !ok {
			continue
		}
		for _, t := range r.Types {
			switch t {
			case model.TypeWorship:
				ws.WorshipCount++
			case model.TypeGathering:
				ws.GatheringCount++
			case model.TypeWool:
				ws.WoolCount++
			}
		}
	}
	return out
}

// GroupStats counts member population and cumulative per-type attendance for
// each distinct group. Groups are discovered from the member collection, in
// first-seen order.
func GroupStats(members []model.Member, records []model.AttendanceRecord) []model.GroupStats {
	memberGroup := make(map[string]string, len(members))
	byGroup := map[string]*model.GroupStats{}
	var out []*model.GroupStats
	for _, m := range members {
		memberGroup[m.ID] = m.Group
		gs, ok := byGroup[m.Group]
		if !ok {
			gs = &model.GroupStats{GroupName: m.Group}
			byGroup[m.Group] = gs
			out = append(out, gs)
		}
		gs.Members++
	}
	for _, r := range records {
		group, ok := memberGroup[r.MemberID]
		if !ok {
			continue
		}
		gs := byGroup[group]
		for _, t := range r.Types {
			switch t {
			case model.TypeWorship:
				gs.TotalWorship++
			case model.TypeGathering:
				gs.TotalGathering++
			case model.TypeWool:
				gs.TotalWool++
			}
		}
	}
	stats := make([]model.GroupStats, len(out))
	for i, gs := range out {
		stats[i] = *gs
	}
	return stats
}

// MemberMonthlyTotal counts one member's attendance of one type within the
// given date subset. Canceled (date, type) pairs are excluded so a canceled
// meeting never reads as an absence in a per-member total.
func MemberMonthlyTotal(records []model.AttendanceRecord, statuses []model.MeetingStatus,
	memberID string, t model.AttendanceType, monthDates []string) int {
	inMonth := make(map[string]bool, len(monthDates))
	for _, d := range monthDates {
		inMonth[d] = true
	}
	canceled := func(date string) bool {
		for _, st := range statuses {
			if st.Date == date && st.Type == t && st.IsCanceled {
				return true
			}
		}
		return false
	}
	total := 0
	for _, r := range records {
		if r.MemberID != memberID || !inMonth[r.Date] || !r.HasType(t) {
			continue
		}
		if canceled(r.Date) {
			continue
		}
		total++
	}
	return total
}
