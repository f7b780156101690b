// Package seed builds the offline fallback dataset used whenever no remote
// store is configured or reachable. Contents are randomized at generation
// time; passing a fixed rand source pins them for tests.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/0929smj/chun2/internal/model"
)

var groups = []string{"사랑A", "사랑B", "소망A", "소망B", "믿음A", "믿음B", "화평A"}

var names = []string{
	"김철수", "이영희", "박지성", "최동원", "정우성",
	"한지민", "강동원", "송혜교", "유재석", "강호동",
}

var prayerPool = []string{
	"가족의 건강을 위해 기도해주세요.",
	"이번 주 중요한 시험이 있습니다.",
	"직장 동료와의 관계 회복을 위해.",
	"새로운 사업 구상이 잘 진행되길.",
	"영적인 회복과 평안을 위해.",
	"부모님의 수술이 잘 되길.",
	"자녀의 학업 진로를 위해.",
	"전도 대상자가 마음을 열도록.",
}

// Dataset is one generated fallback dataset.
type Dataset struct {
	Members       []model.Member
	Attendance    []model.AttendanceRecord
	Prayers       []model.PrayerRecord
	MeetingStatus []model.MeetingStatus
}

// Generate builds a full demo year over the given meeting dates.
func Generate(rng *rand.Rand, sundays []string) *Dataset {
	d := &Dataset{}
	d.Members = generateMembers(rng)
	d.MeetingStatus = sampleCancellations(sundays)
	d.Attendance = generateAttendance(rng, d.Members, sundays, d.MeetingStatus)
	d.Prayers = generatePrayers(rng, d.Members, sundays)
	return d
}

func generateMembers(rng *rand.Rand) []model.Member {
	var members []model.Member
	id := 1000
	for _, g := range groups {
		count := rng.Intn(3) + 3 // 3-5 per group
		for i := 0; i < count; i++ {
			note := ""
			if rng.Float64() > 0.8 {
				note = "최근 이사함"
			}
			members = append(members, model.Member{
				ID:           fmt.Sprintf("M%d", id),
				Name:         fmt.Sprintf("%s%d", names[rng.Intn(len(names))], i+1),
				Group:        g,
				PhoneNumber:  fmt.Sprintf("010-%04d-%04d", rng.Intn(9000)+1000, rng.Intn(9000)+1000),
				Role:         "성도",
				Status:       "ACTIVE",
				SpecialNotes: note,
			})
			id++
		}
	}
	return members
}

// sampleCancellations marks a few meetings not held: wool on the first and
// fifth Sundays, the assembly on the fourth.
func sampleCancellations(sundays []string) []model.MeetingStatus {
	var statuses []model.MeetingStatus
	if len(sundays) > 0 {
		statuses = append(statuses, model.MeetingStatus{Date: sundays[0], Type: model.TypeWool, IsCanceled: true})
	}
	if len(sundays) > 3 {
		statuses = append(statuses, model.MeetingStatus{Date: sundays[3], Type: model.TypeGathering, IsCanceled: true})
	}
	if len(sundays) > 4 {
		statuses = append(statuses, model.MeetingStatus{Date: sundays[4], Type: model.TypeWool, IsCanceled: true})
	}
	return statuses
}

func generateAttendance(rng *rand.Rand, members []model.Member, sundays []string, statuses []model.MeetingStatus) []model.AttendanceRecord {
	canceled := func(date string, t model.AttendanceType) bool {
		for _, st := range statuses {
			if st.Date == date && st.Type == t && st.IsCanceled {
				return true
			}
		}
		return false
	}

	var records []model.AttendanceRecord
	id := 1
	for _, date := range sundays {
		for _, m := range members {
			var types []model.AttendanceType
			if !canceled(date, model.TypeWorship) && rng.Float64() > 0.2 {
				types = append(types, model.TypeWorship)
			}
			if !canceled(date, model.TypeGathering) && rng.Float64() > 0.4 {
				types = append(types, model.TypeGathering)
			}
			if !canceled(date, model.TypeWool) && rng.Float64() > 0.3 {
				types = append(types, model.TypeWool)
			}
			if len(types) == 0 {
				continue
			}
			records = append(records, model.AttendanceRecord{
				ID:       fmt.Sprintf("a-%d", id),
				MemberID: m.ID,
				Date:     date,
				Types:    types,
			})
			id++
		}
	}
	return records
}

func generatePrayers(rng *rand.Rand, members []model.Member, sundays []string) []model.PrayerRecord {
	var prayers []model.PrayerRecord
	id := 1
	for i, date := range sundays {
		if i >= 10 {
			break
		}
		for _, m := range members {
			if rng.Float64() <= 0.7 {
				continue
			}
			prayers = append(prayers, model.PrayerRecord{
				ID:       fmt.Sprintf("p-%d", id),
				MemberID: m.ID,
				Date:     date,
				Content:  prayerPool[rng.Intn(len(prayerPool))],
			})
			id++
		}
	}
	return prayers
}
