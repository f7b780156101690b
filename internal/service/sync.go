package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/0929smj/chun2/internal/logger"
	"github.com/0929smj/chun2/internal/model"
	"github.com/0929smj/chun2/internal/seed"
	"github.com/0929smj/chun2/internal/sheet"
	"github.com/0929smj/chun2/internal/store"
)

const (
	SourceRemote = "remote"
	SourceDemo   = "demo"
)

// SyncService runs the load policy and the fire-and-forget write path between
// the store and the remote sheet. Local state is authoritative for the
// session; remote writes are best-effort and the next full reload reconciles.
type SyncService struct {
	store   *store.Store
	client  *sheet.Client
	year    int
	sundays []string
	timeout time.Duration

	// rand.Rand is not safe for concurrent use and reload is a public
	// endpoint, so seed generation takes the lock.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewSyncService(st *store.Store, client *sheet.Client, year int, timeout time.Duration, rng *rand.Rand) *SyncService {
	return &SyncService{
		store:   st,
		client:  client,
		year:    year,
		sundays: Sundays(year),
		timeout: timeout,
		rng:     rng,
	}
}

func (s *SyncService) Year() int         { return s.year }
func (s *SyncService) Sundays() []string { return s.sundays }

func (s *SyncService) IsMeetingDate(d string) bool {
	for _, sun := range s.sundays {
		if sun == d {
			return true
		}
	}
	return false
}

// Load fetches the remote dataset and replaces local state. Any failure,
// including "no endpoint configured", falls back to the seed dataset and
// marks the source demo; the app is never left without data.
func (s *SyncService) Load(ctx context.Context) model.LoadMeta {
	result, err := s.client.FetchAll(ctx)
	if err != nil {
		meta := model.LoadMeta{Source: SourceDemo}
		if !errors.Is(err, sheet.ErrNoEndpoint) {
			// Expected when unconfigured; everything else is worth surfacing.
			meta.LoadError = err.Error()
			logger.Warn("sync.load_failed", "err", err)
		} else {
			logger.Info("sync.no_endpoint")
		}
		s.loadSeed(meta)
		return s.store.Meta()
	}

	meta := model.LoadMeta{
		Source:      SourceRemote,
		Sheets:      result.Sheets,
		ConnectedID: result.ConnectedID,
	}
	if len(result.Members) == 0 {
		// Likely a sheet naming mismatch; accept the empty result but keep
		// the diagnostics visible.
		logger.Warn("sync.empty_members", "sheets", result.Sheets, "connected_id", result.ConnectedID)
	}
	s.store.ReplaceAll(result.Members, result.Attendance, result.Prayers, result.MeetingStatus, meta)
	logger.Info("sync.loaded", "members", len(result.Members), "records", len(result.Attendance))
	return meta
}

func (s *SyncService) loadSeed(meta model.LoadMeta) {
	s.rngMu.Lock()
	ds := seed.Generate(s.rng, s.sundays)
	s.rngMu.Unlock()
	s.store.ReplaceAll(ds.Members, ds.Attendance, ds.Prayers, ds.MeetingStatus, meta)
	logger.Info("sync.seed_loaded", "members", len(ds.Members))
}

// TestConnection is the blocking settings-page check. It never touches local
// state.
func (s *SyncService) TestConnection(ctx context.Context) model.TestConnectionResponse {
	result, err := s.client.FetchAll(ctx)
	if err != nil {
		return model.TestConnectionResponse{OK: false, Error: err.Error()}
	}
	return model.TestConnectionResponse{
		OK:          true,
		Members:     len(result.Members),
		Sheets:      result.Sheets,
		ConnectedID: result.ConnectedID,
	}
}

// DispatchToggle sends UPDATE_ATTENDANCE without waiting. A failed send is
// logged and dropped: no retry, no rollback of the optimistic local change.
func (s *SyncService) DispatchToggle(memberID, date string, t model.AttendanceType, isAdd bool) {
	payload := map[string]any{
		"memberId": memberID,
		"date":     date,
		"type":     t,
		"isAdd":    isAdd,
	}
	s.dispatch(sheet.ActionUpdateAttendance, payload)
}

// DispatchAddMember mirrors a locally added member to the remote store. The
// legacy wool column is filled alongside group at this boundary only.
func (s *SyncService) DispatchAddMember(m model.Member) {
	payload := map[string]any{
		"id":          m.ID,
		"name":        m.Name,
		"group":       m.Group,
		"wool":        m.Group,
		"phoneNumber": m.PhoneNumber,
		"role":        m.Role,
		"status":      m.Status,
	}
	s.dispatch(sheet.ActionAddMember, payload)
}

func (s *SyncService) dispatch(action string, payload any) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.client.SendAction(ctx, action, payload); err != nil {
			if errors.Is(err, sheet.ErrNoEndpoint) {
				return // demo mode, nothing to sync
			}
			logger.Warn("sync.send_failed", "action", action, "err", err)
		}
	}()
}
