package activity

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/repo"
	entactivity "github.com/credvia/credvia_backend/internal/repo/activitylog"
	entfacial "github.com/credvia/credvia_backend/internal/repo/facialrecord"
	entsession "github.com/credvia/credvia_backend/internal/repo/session"
)

// Event types in the merged timeline.
const (
	TypeFacial       = "facial"
	TypeSession      = "session"
	TypeGuideCreated = "guide_created"
	TypeGuideExpired = "guide_expired"
	TypeGuideClosed  = "guide_closed"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Event is one entry in a patient's merged activity timeline.
type Event struct {
	ID          uuid.UUID      `json:"id"`
	Type        string         `json:"type"`
	OccurredAt  time.Time      `json:"occurredAt"`
	Description string         `json:"description"`
	CreditDelta int            `json:"creditDelta"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Filter narrows the timeline. The end date is inclusive: it is
// extended to the end of its day before comparison.
type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Types     []string
}

// ParseTypes splits a comma-separated type list, dropping unknown names.
func ParseTypes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	known := map[string]struct{}{
		TypeFacial: {}, TypeSession: {},
		TypeGuideCreated: {}, TypeGuideExpired: {}, TypeGuideClosed: {},
	}
	var out []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if _, ok := known[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) wants(eventType string) bool {
	if len(f.Types) == 0 {
		return true
	}
	for _, t := range f.Types {
		if t == eventType {
			return true
		}
	}
	return false
}

// bounds returns the effective [start, end] window, with the end date
// pushed to the last instant of its day.
func (f Filter) bounds() (*time.Time, *time.Time) {
	var end *time.Time
	if f.EndDate != nil {
		y, m, d := f.EndDate.Date()
		e := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), f.EndDate.Location())
		end = &e
	}
	return f.StartDate, end
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Timeline(ctx context.Context, patientID uuid.UUID, filter Filter) ([]Event, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type activityService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &activityService{db: db}
}

func (s *activityService) Timeline(ctx context.Context, patientID uuid.UUID, filter Filter) ([]Event, error) {
	start, end := filter.bounds()
	var events []Event

	if filter.wants(TypeFacial) {
		q := s.db.FacialRecord.Query().
			Where(entfacial.PatientID(patientID)).
			WithGuide()
		if start != nil {
			q = q.Where(entfacial.PerformedAtGTE(*start))
		}
		if end != nil {
			q = q.Where(entfacial.PerformedAtLTE(*end))
		}
		recs, err := q.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("query facials: %w", err)
		}
		for _, r := range recs {
			meta := map[string]any{}
			if g := r.Edges.Guide; g != nil {
				meta["guide_number"] = g.Number
			}
			events = append(events, Event{
				ID:          r.ID,
				Type:        TypeFacial,
				OccurredAt:  r.PerformedAt,
				Description: "Facial check-in",
				CreditDelta: 1,
				Metadata:    meta,
			})
		}
	}

	if filter.wants(TypeSession) {
		q := s.db.Session.Query().
			Where(entsession.PatientID(patientID))
		if start != nil {
			q = q.Where(entsession.ScheduledAtGTE(*start))
		}
		if end != nil {
			q = q.Where(entsession.ScheduledAtLTE(*end))
		}
		sessions, err := q.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("query sessions: %w", err)
		}
		for _, sess := range sessions {
			events = append(events, Event{
				ID:          sess.ID,
				Type:        TypeSession,
				OccurredAt:  sess.ScheduledAt,
				Description: fmt.Sprintf("%d-minute therapy session", sess.DurationMinutes),
				CreditDelta: -sess.CreditsUsed,
				Metadata: map[string]any{
					"duration_minutes": sess.DurationMinutes,
				},
			})
		}
	}

	wantedLogs := logTypesWanted(filter)
	if len(wantedLogs) > 0 {
		q := s.db.ActivityLog.Query().
			Where(
				entactivity.PatientID(patientID),
				entactivity.TypeIn(wantedLogs...),
			)
		if start != nil {
			q = q.Where(entactivity.OccurredAtGTE(*start))
		}
		if end != nil {
			q = q.Where(entactivity.OccurredAtLTE(*end))
		}
		logs, err := q.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("query activity logs: %w", err)
		}
		for _, l := range logs {
			events = append(events, Event{
				ID:          l.ID,
				Type:        string(l.Type),
				OccurredAt:  l.OccurredAt,
				Description: l.Description,
				Metadata:    l.Metadata,
			})
		}
	}

	SortDesc(events)
	return events, nil
}

func logTypesWanted(filter Filter) []entactivity.Type {
	all := []entactivity.Type{
		entactivity.TypeGuideCreated,
		entactivity.TypeGuideExpired,
		entactivity.TypeGuideClosed,
	}
	var out []entactivity.Type
	for _, t := range all {
		if filter.wants(string(t)) {
			out = append(out, t)
		}
	}
	return out
}

// SortDesc orders events newest first; equal timestamps keep a stable
// order.
func SortDesc(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].OccurredAt.After(events[j].OccurredAt)
	})
}
