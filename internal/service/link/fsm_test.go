package link

import (
	"errors"
	"testing"
	"time"
)

var (
	now      = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cooldown = 7 * 24 * time.Hour
)

func respondedAt(t time.Time) *time.Time { return &t }

func TestDecideRequest(t *testing.T) {
	tests := []struct {
		name    string
		snap    Snapshot
		by      Party
		want    RequestDecision
		wantErr error
	}{
		{
			name: "no existing row creates pending",
			snap: Snapshot{},
			by:   PartyPatient,
			want: DecisionCreate,
		},
		{
			name:    "accepted pair cannot re-request",
			snap:    Snapshot{Exists: true, Status: StatusAccepted, RequestedBy: PartyPatient},
			by:      PartyPatient,
			wantErr: ErrAlreadyLinked,
		},
		{
			name:    "same side duplicate pending",
			snap:    Snapshot{Exists: true, Status: StatusPending, RequestedBy: PartyPatient},
			by:      PartyPatient,
			wantErr: ErrAlreadyRequested,
		},
		{
			name: "opposite side pending auto-accepts",
			snap: Snapshot{Exists: true, Status: StatusPending, RequestedBy: PartyPsychologist},
			by:   PartyPatient,
			want: DecisionAutoAccept,
		},
		{
			name: "mutual consent works both directions",
			snap: Snapshot{Exists: true, Status: StatusPending, RequestedBy: PartyPatient},
			by:   PartyPsychologist,
			want: DecisionAutoAccept,
		},
		{
			name: "rejected inside cooldown blocks",
			snap: Snapshot{
				Exists: true, Status: StatusRejected, RequestedBy: PartyPatient,
				RespondedAt: respondedAt(now.Add(-3 * 24 * time.Hour)),
			},
			by:      PartyPatient,
			wantErr: &CooldownError{},
		},
		{
			name: "rejected exactly at cooldown boundary allows",
			snap: Snapshot{
				Exists: true, Status: StatusRejected, RequestedBy: PartyPatient,
				RespondedAt: respondedAt(now.Add(-cooldown)),
			},
			by:   PartyPatient,
			want: DecisionReplaceRejected,
		},
		{
			name: "rejected past cooldown replaces",
			snap: Snapshot{
				Exists: true, Status: StatusRejected, RequestedBy: PartyPsychologist,
				RespondedAt: respondedAt(now.Add(-10 * 24 * time.Hour)),
			},
			by:   PartyPatient,
			want: DecisionReplaceRejected,
		},
		{
			name: "rejected without timestamp replaces",
			snap: Snapshot{Exists: true, Status: StatusRejected, RequestedBy: PartyPatient},
			by:   PartyPatient,
			want: DecisionReplaceRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecideRequest(tt.snap, tt.by, now, cooldown)
			if tt.wantErr != nil {
				var cdErr *CooldownError
				if errors.As(tt.wantErr, &cdErr) {
					var gotCd *CooldownError
					if !errors.As(err, &gotCd) {
						t.Fatalf("expected CooldownError, got %v", err)
					}
					if gotCd.Remaining <= 0 || gotCd.Remaining > cooldown {
						t.Errorf("remaining = %v, want within (0, %v]", gotCd.Remaining, cooldown)
					}
					return
				}
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("decision = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecideRequest_CooldownRemaining(t *testing.T) {
	rejected := now.Add(-2 * 24 * time.Hour)
	snap := Snapshot{
		Exists: true, Status: StatusRejected, RequestedBy: PartyPatient,
		RespondedAt: &rejected,
	}

	_, err := DecideRequest(snap, PartyPatient, now, cooldown)

	var cd *CooldownError
	if !errors.As(err, &cd) {
		t.Fatalf("expected CooldownError, got %v", err)
	}
	if cd.Remaining != 5*24*time.Hour {
		t.Errorf("remaining = %v, want %v", cd.Remaining, 5*24*time.Hour)
	}
}

func TestDecideRespond(t *testing.T) {
	tests := []struct {
		name    string
		snap    Snapshot
		by      Party
		wantErr error
	}{
		{
			name:    "missing row",
			snap:    Snapshot{},
			by:      PartyPatient,
			wantErr: ErrLinkNotFound,
		},
		{
			name:    "already accepted",
			snap:    Snapshot{Exists: true, Status: StatusAccepted, RequestedBy: PartyPatient},
			by:      PartyPsychologist,
			wantErr: ErrNotPending,
		},
		{
			name:    "already rejected",
			snap:    Snapshot{Exists: true, Status: StatusRejected, RequestedBy: PartyPatient},
			by:      PartyPsychologist,
			wantErr: ErrNotPending,
		},
		{
			name:    "requester cannot answer own request",
			snap:    Snapshot{Exists: true, Status: StatusPending, RequestedBy: PartyPatient},
			by:      PartyPatient,
			wantErr: ErrSelfResponse,
		},
		{
			name: "counterparty may answer",
			snap: Snapshot{Exists: true, Status: StatusPending, RequestedBy: PartyPatient},
			by:   PartyPsychologist,
		},
		{
			name: "psychologist-initiated answered by patient",
			snap: Snapshot{Exists: true, Status: StatusPending, RequestedBy: PartyPsychologist},
			by:   PartyPatient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DecideRespond(tt.snap, tt.by)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCooldownError_Message(t *testing.T) {
	e := &CooldownError{Remaining: 36 * time.Hour}
	msg := e.Error()
	if msg != "request was rejected recently, try again in 2 day(s)" {
		t.Errorf("unexpected message: %q", msg)
	}
}
