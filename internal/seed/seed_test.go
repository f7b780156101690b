package seed_test

import (
	"math/rand"
	"testing"

	"github.com/0929smj/chun2/internal/model"
	"github.com/0929smj/chun2/internal/seed"
	"github.com/0929smj/chun2/internal/service"
)

func TestGenerateDeterministicWithFixedSeed(t *testing.T) {
	sundays := service.Sundays(2026)
	a := seed.Generate(rand.New(rand.NewSource(42)), sundays)
	b := seed.Generate(rand.New(rand.NewSource(42)), sundays)

	if len(a.Members) != len(b.Members) || len(a.Attendance) != len(b.Attendance) {
		t.Fatalf("same seed produced different sizes: %d/%d vs %d/%d",
			len(a.Members), len(a.Attendance), len(b.Members), len(b.Attendance))
	}
	for i := range a.Members {
		if a.Members[i] != b.Members[i] {
			t.Fatalf("member %d differs: %+v vs %+v", i, a.Members[i], b.Members[i])
		}
	}
}

func TestGenerateShape(t *testing.T) {
	sundays := service.Sundays(2026)
	ds := seed.Generate(rand.New(rand.NewSource(1)), sundays)

	// 7 groups, 3-5 members each.
	if len(ds.Members) < 21 || len(ds.Members) > 35 {
		t.Fatalf("got %d members, want 21..35", len(ds.Members))
	}
	groups := map[string]int{}
	ids := map[string]bool{}
	for _, m := range ds.Members {
		groups[m.Group]++
		if ids[m.ID] {
			t.Fatalf("duplicate member id %s", m.ID)
		}
		ids[m.ID] = true
		if m.Name == "" || m.Role != "성도" || m.Status != "ACTIVE" {
			t.Fatalf("member = %+v", m)
		}
	}
	if len(groups) != 7 {
		t.Fatalf("got %d groups, want 7", len(groups))
	}

	if len(ds.MeetingStatus) != 3 {
		t.Fatalf("got %d cancellations, want 3 samples", len(ds.MeetingStatus))
	}
	if ds.MeetingStatus[0].Date != sundays[0] || ds.MeetingStatus[0].Type != model.TypeWool {
		t.Fatalf("first cancellation = %+v, want wool on the first Sunday", ds.MeetingStatus[0])
	}
}

func TestGenerateRespectsInvariants(t *testing.T) {
	sundays := service.Sundays(2026)
	ds := seed.Generate(rand.New(rand.NewSource(3)), sundays)

	canceled := map[string]bool{}
	for _, st := range ds.MeetingStatus {
		canceled[st.Date+"|"+string(st.Type)] = true
	}

	seen := map[string]bool{}
	for _, r := range ds.Attendance {
		if len(r.Types) == 0 {
			t.Fatalf("record with empty type set: %+v", r)
		}
		key := r.MemberID + "|" + r.Date
		if seen[key] {
			t.Fatalf("duplicate record for %s", key)
		}
		seen[key] = true
		for _, typ := range r.Types {
			if canceled[r.Date+"|"+string(typ)] {
				t.Fatalf("attendance on canceled meeting: %+v", r)
			}
		}
	}

	for _, p := range ds.Prayers {
		if p.Content == "" {
			t.Fatalf("prayer without content: %+v", p)
		}
	}
}
