package store

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/0929smj/chun2/internal/model"

	"github.com/google/uuid"
)

// Store owns the four collections as the single source of truth for the
// session. Every mutation goes through the mutex so toggles apply in call
// order; nothing outside the store keeps its own copy.
type Store struct {
	mu       sync.Mutex
	members  []model.Member
	records  []model.AttendanceRecord
	prayers  []model.PrayerRecord
	statuses []model.MeetingStatus
	meta     model.LoadMeta
	rng      *rand.Rand
}

func New(rng *rand.Rand) *Store {
	return &Store{rng: rng}
}

// ReplaceAll swaps in a freshly loaded dataset. Used by the initial load and
// by explicit reloads; per-action responses never feed back into state.
func (s *Store) ReplaceAll(members []model.Member, records []model.AttendanceRecord,
	prayers []model.PrayerRecord, statuses []model.MeetingStatus, meta model.LoadMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = members
	s.records = records
	s.prayers = prayers
	s.statuses = statuses
	s.meta = meta
}

// Snapshot returns copies of all collections plus the load meta, so callers
// can aggregate without holding the lock.
func (s *Store) Snapshot() ([]model.Member, []model.AttendanceRecord, []model.PrayerRecord, []model.MeetingStatus, model.LoadMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	members := make([]model.Member, len(s.members))
	copy(members, s.members)
	prayers := make([]model.PrayerRecord, len(s.prayers))
	copy(prayers, s.prayers)
	statuses := make([]model.MeetingStatus, len(s.statuses))
	copy(statuses, s.statuses)
	records := make([]model.AttendanceRecord, len(s.records))
	for i, r := range s.records {
		records[i] = copyRecord(r)
	}
	return members, records, prayers, statuses, s.meta
}

// Toggle flips attendance of (memberID, date, t). Returns whether state
// changed at all, whether the flip was an add, and a copy of the resulting
// record (nil when the record was deleted or nothing changed).
//
// The cancellation check comes first, unconditionally: a canceled meeting
// accepts no attendance, so the toggle is a no-op and no sync action should
// be dispatched for it.
func (s *Store) Toggle(memberID, date string, t model.AttendanceType) (changed, isAdd bool, rec *model.AttendanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isCanceled(date, t) {
		return false, false, nil
	}

	idx := s.recordIndex(memberID, date)
	if idx < 0 {
		r := model.AttendanceRecord{
			ID:       uuid.NewString(),
			MemberID: memberID,
			Date:     date,
			Types:    []model.AttendanceType{t},
		}
		s.records = append(s.records, r)
		out := copyRecord(r)
		return true, true, &out
	}

	r := &s.records[idx]
	if r.HasType(t) {
		kept := r.Types[:0]
		for _, rt := range r.Types {
			if rt != t {
				kept = append(kept, rt)
			}
		}
		r.Types = kept
		if len(r.Types) == 0 {
			// Empty type sets must not exist; drop the record.
			s.records = append(s.records[:idx], s.records[idx+1:]...)
			return true, false, nil
		}
		out := copyRecord(*r)
		return true, false, &out
	}

	r.Types = append(r.Types, t)
	out := copyRecord(*r)
	return true, true, &out
}

// IsCanceled reports whether the meeting (date, t) is marked not held.
func (s *Store) IsCanceled(date string, t model.AttendanceType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isCanceled(date, t)
}

func (s *Store) isCanceled(date string, t model.AttendanceType) bool {
	for _, st := range s.statuses {
		if st.Date == date && st.Type == t && st.IsCanceled {
			return true
		}
	}
	return false
}

func (s *Store) recordIndex(memberID, date string) int {
	for i := range s.records {
		if s.records[i].MemberID == memberID && s.records[i].Date == date {
			return i
		}
	}
	return -1
}

// MemberByID returns a copy of the member, or false when unknown.
func (s *Store) MemberByID(id string) (model.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return model.Member{}, false
}

// Groups returns the distinct group labels, sorted, derived live from the
// member collection. Never a fixed list: a new member's group shows up in
// every selector immediately.
func (s *Store) Groups() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var groups []string
	for _, m := range s.members {
		if m.Group != "" && !seen[m.Group] {
			seen[m.Group] = true
			groups = append(groups, m.Group)
		}
	}
	sort.Strings(groups)
	return groups
}

// AddMember creates a member with a locally generated short id. The remote
// store also hands out M-prefixed ids, so generation retries on collision.
func (s *Store) AddMember(name, group, phone, role string) model.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := model.Member{
		ID:          s.newMemberID(),
		Name:        name,
		Group:       group,
		PhoneNumber: phone,
		Role:        role,
		Status:      "ACTIVE",
	}
	s.members = append(s.members, m)
	return m
}

func (s *Store) newMemberID() string {
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("M%04d", 1000+s.rng.Intn(9000))
		if !s.memberIDTaken(id) {
			return id
		}
	}
	// Id space nearly full; fall back to a token that cannot collide.
	return "M" + uuid.NewString()[:8]
}

func (s *Store) memberIDTaken(id string) bool {
	for _, m := range s.members {
		if m.ID == id {
			return true
		}
	}
	return false
}

// UpdateMember edits a member in place. Only non-nil fields change; members
// are never hard-deleted, matching the remote store's policy.
func (s *Store) UpdateMember(id string, req model.UpdateMemberRequest) (model.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID != id {
			continue
		}
		m := &s.members[i]
		if req.Group != nil {
			m.Group = *req.Group
		}
		if req.PhoneNumber != nil {
			m.PhoneNumber = *req.PhoneNumber
		}
		if req.Role != nil {
			m.Role = *req.Role
		}
		if req.Status != nil {
			m.Status = *req.Status
		}
		if req.SpecialNotes != nil {
			m.SpecialNotes = *req.SpecialNotes
		}
		return *m, true
	}
	return model.Member{}, false
}

// Meta returns the current load meta.
func (s *Store) Meta() model.LoadMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

func copyRecord(r model.AttendanceRecord) model.AttendanceRecord {
	types := make([]model.AttendanceType, len(r.Types))
	copy(types, r.Types)
	r.Types = types
	return r
}
