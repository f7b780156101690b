package model

type ToggleRequest struct {
	MemberID string         `json:"memberId" binding:"required"`
	Date     string         `json:"date" binding:"required"`
	Type     AttendanceType `json:"type" binding:"required"`
}

type ToggleResponse struct {
	Changed bool              `json:"changed"`
	IsAdd   bool              `json:"isAdd"`
	Record  *AttendanceRecord `json:"record,omitempty"`
}

type AddMemberRequest struct {
	Name        string `json:"name" binding:"required"`
	Group       string `json:"group" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

type UpdateMemberRequest struct {
	Group        *string `json:"group,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	Role         *string `json:"role,omitempty"`
	Status       *string `json:"status,omitempty"`
	SpecialNotes *string `json:"specialNotes,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// LoadMeta describes where the current collections came from.
type LoadMeta struct {
	Source      string   `json:"source"` // "remote" or "demo"
	LoadError   string   `json:"loadError,omitempty"`
	Sheets      []string `json:"sheets,omitempty"`
	ConnectedID string   `json:"connectedId,omitempty"`
}

type DataResponse struct {
	Members       []Member           `json:"members"`
	Attendance    []AttendanceRecord `json:"attendance"`
	Prayers       []PrayerRecord     `json:"prayers"`
	MeetingStatus []MeetingStatus    `json:"meetingStatus"`
	Meta          LoadMeta           `json:"meta"`
}

type EndpointRequest struct {
	URL string `json:"url" binding:"required"`
}

type TestConnectionResponse struct {
	OK          bool     `json:"ok"`
	Error       string   `json:"error,omitempty"`
	Members     int      `json:"members"`
	Sheets      []string `json:"sheets,omitempty"`
	ConnectedID string   `json:"connectedId,omitempty"`
}

type ScheduleResponse struct {
	Year    int      `json:"year"`
	Sundays []string `json:"sundays"`
	Closest string   `json:"closest"`
}
