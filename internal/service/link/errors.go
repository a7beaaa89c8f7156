package link

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrLinkNotFound     = errors.New("link not found")
	ErrUserNotFound     = errors.New("no account found for that contact")
	ErrSameRole         = errors.New("links connect a patient with a psychologist")
	ErrAlreadyLinked    = errors.New("already linked")
	ErrAlreadyRequested = errors.New("a pending request from you already exists")
	ErrNotPending       = errors.New("request has already been answered")
	ErrSelfResponse     = errors.New("the requester cannot answer their own request")
	ErrNotParticipant   = errors.New("link belongs to other users")
	ErrInvalidState     = errors.New("link is in an unknown state")
)

// CooldownError reports how long until a rejected pair may try again.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	days := int(e.Remaining.Hours()/24) + 1
	return fmt.Sprintf("request was rejected recently, try again in %d day(s)", days)
}
