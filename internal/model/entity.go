package model

// AttendanceType is one of the three recurring gathering categories.
type AttendanceType string

const (
	TypeWorship   AttendanceType = "예배"
	TypeGathering AttendanceType = "집회"
	TypeWool      AttendanceType = "울모임"
)

// AllTypes in display order.
var AllTypes = []AttendanceType{TypeWorship, TypeGathering, TypeWool}

// Valid reports whether t is one of the three known types.
func (t AttendanceType) Valid() bool {
	return t == TypeWorship || t == TypeGathering || t == TypeWool
}

// Member is a small-group member. Group carries the 소그룹/울 label; the remote
// sheet historically split it into two columns, which the sheet boundary still
// speaks, but in memory there is exactly one field.
type Member struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Group               string `json:"group"`
	PhoneNumber         string `json:"phoneNumber,omitempty"`
	Role                string `json:"role,omitempty"`
	Status              string `json:"status,omitempty"`
	SpecialNotes        string `json:"specialNotes,omitempty"`
	LatestPrayerRequest string `json:"latestPrayerRequest,omitempty"`
}

// AttendanceRecord holds every type a member attended on one date. At most one
// record exists per (MemberID, Date); a record never carries an empty Types set.
type AttendanceRecord struct {
	ID       string           `json:"id"`
	MemberID string           `json:"memberId"`
	Date     string           `json:"date"` // YYYY-MM-DD
	Types    []AttendanceType `json:"types"`
}

// HasType reports whether t is in the record's type set.
func (r *AttendanceRecord) HasType(t AttendanceType) bool {
	for _, rt := range r.Types {
		if rt == t {
			return true
		}
	}
	return false
}

// MeetingStatus is a cancellation override. Only cancellations are stored;
// absence of an entry means the meeting is held.
type MeetingStatus struct {
	Date       string         `json:"date"`
	Type       AttendanceType `json:"type"`
	IsCanceled bool           `json:"isCanceled"`
}

// PrayerRecord is one dated prayer request, optionally with a date-specific note.
type PrayerRecord struct {
	ID       string `json:"id"`
	MemberID string `json:"memberId"`
	Date     string `json:"date"`
	Content  string `json:"content"`
	Note     string `json:"note,omitempty"`
}

// WeeklyStats is the per-date count of records containing each type.
// Always recomputed, never stored.
type WeeklyStats struct {
	Date           string `json:"date"`
	WorshipCount   int    `json:"worshipCount"`
	GatheringCount int    `json:"gatheringCount"`
	WoolCount      int    `json:"woolCount"`
}

// GroupStats is the cumulative per-group count across all dates.
type GroupStats struct {
	GroupName      string `json:"groupName"`
	TotalWorship   int    `json:"totalWorship"`
	TotalGathering int    `json:"totalGathering"`
	TotalWool      int    `json:"totalWool"`
	Members        int    `json:"members"`
}
