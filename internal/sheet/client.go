package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/0929smj/chun2/internal/model"
)

// Action names the remote store understands.
const (
	ActionUpdateAttendance = "UPDATE_ATTENDANCE"
	ActionAddMember        = "ADD_MEMBER"
)

var (
	// ErrNoEndpoint means no endpoint URL is configured. Expected state, not
	// a network failure; callers fall back to the seed dataset.
	ErrNoEndpoint = errors.New("sheet endpoint not configured")

	// ErrNotJSON means the endpoint answered with something other than JSON,
	// usually an auth redirect page from a misconfigured deployment.
	ErrNotJSON = errors.New("endpoint returned non-JSON response; check that the deployment allows anonymous access")
)

// Result is one normalized fetch. Sheets and ConnectedID are diagnostics for
// display only; nothing branches on them.
type Result struct {
	Members       []model.Member
	Attendance    []model.AttendanceRecord
	Prayers       []model.PrayerRecord
	MeetingStatus []model.MeetingStatus
	Sheets        []string
	ConnectedID   string
}

// Client talks to the spreadsheet-backed remote store. The endpoint URL is
// resolved per call so settings changes take effect without restart.
type Client struct {
	endpoint func() string
	client   *http.Client
	now      func() time.Time
}

func NewClient(endpoint func() string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		now:      time.Now,
	}
}

type fetchEnvelope struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Members       []Row  `json:"members"`
	Attendance    []Row  `json:"attendance"`
	Prayers       []Row  `json:"prayers"`
	MeetingStatus []Row  `json:"meetingStatus"`

	DebugSheets []string `json:"debug_sheets"`
	ConnectedID string   `json:"connected_id"`
}

// FetchAll reads the whole remote dataset and normalizes it. The request
// carries a cache-busting parameter and no credentials; the deployment is
// intentionally anonymous-access.
func (c *Client) FetchAll(ctx context.Context) (*Result, error) {
	url := c.endpoint()
	if url == "" {
		return nil, ErrNoEndpoint
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	fetchURL := fmt.Sprintf("%s%st=%d", url, sep, c.now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sheet endpoint status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		return nil, ErrNotJSON
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	var env fetchEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, ErrNotJSON
	}
	if env.Status == "error" {
		msg := env.Message
		if msg == "" {
			msg = "unknown remote error"
		}
		return nil, fmt.Errorf("remote store error: %s", msg)
	}

	return &Result{
		Members:       NormalizeMembers(env.Members),
		Attendance:    NormalizeAttendance(env.Attendance),
		Prayers:       NormalizePrayers(env.Prayers),
		MeetingStatus: NormalizeMeetingStatuses(env.MeetingStatus),
		Sheets:        env.DebugSheets,
		ConnectedID:   env.ConnectedID,
	}, nil
}

// SendAction posts a write action. The response body is never interpreted
// (the endpoint answers opaquely); an error return is for logging only —
// callers do not gate state on it and nothing retries.
func (c *Client) SendAction(ctx context.Context, action string, payload any) error {
	url := c.endpoint()
	if url == "" {
		return ErrNoEndpoint
	}

	body, err := json.Marshal(map[string]any{"action": action, "payload": payload})
	if err != nil {
		return fmt.Errorf("encode action: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	// Apps Script deployments reject preflighted content types; plain text
	// keeps the write path simple on their side.
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send %s: %w", action, err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}
