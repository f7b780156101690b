package sheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/0929smj/chun2/internal/model"
)

// Row is one arbitrarily-keyed row as the sheet endpoint returns it. Column
// names vary by sheet revision (English, Korean, legacy spellings), so lookup
// goes through priority-ordered alias tables instead of fixed struct tags.
type Row map[string]any

// Alias tables, first match wins. Keys are compared case-insensitively with
// all whitespace stripped.
var (
	aliasID      = []string{"id", "memberid"}
	aliasName    = []string{"name", "이름", "membername"}
	aliasGroup   = []string{"group", "소그룹", "wool", "woolname", "울"}
	aliasPhone   = []string{"phone", "phonenumber", "연락처"}
	aliasRole    = []string{"role", "직분"}
	aliasStatus  = []string{"status", "상태"}
	aliasNotes   = []string{"specialnotes", "특이사항", "notes"}
	aliasPrayer  = []string{"latestprayerrequest", "prayerrequest", "기도제목"}
	aliasDate    = []string{"date", "날짜"}
	aliasContent = []string{"content", "prayer", "prayerrequest", "기도제목"}
	aliasNote    = []string{"note", "비고"}

	typeAliases = map[model.AttendanceType][]string{
		model.TypeWorship:   {"예배", "worship"},
		model.TypeGathering: {"집회", "gathering", "assembly"},
		model.TypeWool:      {"울모임", "wool", "woolmeeting"},
	}
)

func normKey(k string) string {
	return strings.ToLower(strings.Join(strings.Fields(k), ""))
}

func (r Row) lookup(aliases []string) (any, bool) {
	for _, alias := range aliases {
		for k, v := range r {
			if normKey(k) == alias {
				return v, true
			}
		}
	}
	return nil, false
}

func (r Row) str(aliases []string) string {
	v, ok := r.lookup(aliases)
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// checked vocabulary for checkbox-like cells. Anything else, including the
// empty string, is unchecked.
var checkedWords = map[string]bool{
	"true": true, "o": true, "y": true, "yes": true, "present": true,
}

// IsChecked reports whether a sheet cell value counts as checked.
func IsChecked(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return checkedWords[strings.ToLower(strings.TrimSpace(t))]
	default:
		return false
	}
}

// NormalizeDate converts display-formatted dates to YYYY-MM-DD. Already
// normalized input passes through unchanged. Locale forms like "26. 1. 24"
// or "2026년 1월 24일" are accepted; 2-digit years mean 2000+yy. The second
// return is false for anything unparseable — callers exclude the row.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) >= 10 && isISODate(s[:10]) {
		return s[:10], true
	}

	// Strip unit glyphs, then split on dots.
	replacer := strings.NewReplacer("년", ".", "월", ".", "일", ".")
	parts := strings.Split(replacer.Replace(s), ".")
	var nums []int
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", false
		}
		nums = append(nums, n)
	}
	if len(nums) != 3 {
		return "", false
	}
	y, m, d := nums[0], nums[1], nums[2]
	if y < 100 {
		y += 2000
	}
	if !validDate(y, m, d) {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}

func isISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	y, err1 := strconv.Atoi(s[:4])
	m, err2 := strconv.Atoi(s[5:7])
	d, err3 := strconv.Atoi(s[8:10])
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	return validDate(y, m, d)
}

func validDate(y, m, d int) bool {
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
	return t.Year() == y && int(t.Month()) == m && t.Day() == d
}

// NormalizeMembers converts member rows. Rows without a name are dropped
// silently; the legacy group/wool column split collapses into one field.
func NormalizeMembers(rows []Row) []model.Member {
	var members []model.Member
	for _, r := range rows {
		name := r.str(aliasName)
		if name == "" {
			continue
		}
		members = append(members, model.Member{
			ID:                  r.str(aliasID),
			Name:                name,
			Group:               r.str(aliasGroup),
			PhoneNumber:         r.str(aliasPhone),
			Role:                r.str(aliasRole),
			Status:              r.str(aliasStatus),
			SpecialNotes:        r.str(aliasNotes),
			LatestPrayerRequest: r.str(aliasPrayer),
		})
	}
	return members
}

// NormalizeAttendance converts attendance rows. The set of checked type
// columns becomes the record's type set; zero checked types means no record,
// and an unparseable date excludes the row.
func NormalizeAttendance(rows []Row) []model.AttendanceRecord {
	var records []model.AttendanceRecord
	for _, r := range rows {
		date, ok := NormalizeDate(r.str(aliasDate))
		if !ok {
			continue
		}
		memberID := r.str(aliasID)
		if memberID == "" {
			continue
		}
		var types []model.AttendanceType
		for _, t := range model.AllTypes {
			if v, found := r.lookup(typeAliases[t]); found && IsChecked(v) {
				types = append(types, t)
			}
		}
		if len(types) == 0 {
			continue
		}
		id := r.str([]string{"recordid", "rowid"})
		if id == "" {
			id = "a-" + memberID + "-" + date
		}
		records = append(records, model.AttendanceRecord{
			ID: id, MemberID: memberID, Date: date, Types: types,
		})
	}
	return records
}

// NormalizeMeetingStatuses derives the cancellation overlay from config rows.
// Held is the default: a checked type column emits nothing, an unchecked or
// missing one emits a cancellation for that date and type.
func NormalizeMeetingStatuses(rows []Row) []model.MeetingStatus {
	var statuses []model.MeetingStatus
	for _, r := range rows {
		date, ok := NormalizeDate(r.str(aliasDate))
		if !ok {
			continue
		}
		for _, t := range model.AllTypes {
			v, found := r.lookup(typeAliases[t])
			if !found || !IsChecked(v) {
				statuses = append(statuses, model.MeetingStatus{
					Date: date, Type: t, IsCanceled: true,
				})
			}
		}
	}
	return statuses
}

// NormalizePrayers converts prayer rows; a row with neither content nor note
// contributes nothing.
func NormalizePrayers(rows []Row) []model.PrayerRecord {
	var prayers []model.PrayerRecord
	for _, r := range rows {
		date, ok := NormalizeDate(r.str(aliasDate))
		if !ok {
			continue
		}
		content := r.str(aliasContent)
		note := r.str(aliasNote)
		if content == "" && note == "" {
			continue
		}
		memberID := r.str(aliasID)
		id := r.str([]string{"recordid", "rowid"})
		if id == "" {
			id = "p-" + memberID + "-" + date
		}
		prayers = append(prayers, model.PrayerRecord{
			ID: id, MemberID: memberID, Date: date, Content: content, Note: note,
		})
	}
	return prayers
}
