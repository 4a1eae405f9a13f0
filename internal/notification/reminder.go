package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BetEngine_Go/internal/domain"
)

// Reminder is a local alert about an upcoming event
type Reminder struct {
	ID      string
	EventID string
	Sport   string
	Title   string
	Body    string
	FireAt  time.Time
}

// ReminderScheduler requests a best-effort alert ahead of an event's start
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, event domain.Event) error
}

// Notifier delivers a fired reminder somewhere a player will see it
type Notifier interface {
	Notify(ctx context.Context, reminder Reminder) error
	Name() string
}

// ReminderID returns the de-duplication identifier for an event's reminder
func ReminderID(eventID string) string {
	return ReminderIDPrefix + eventID
}

// NewReminder builds the reminder for an event firing at fireAt
func NewReminder(event domain.Event, fireAt time.Time) Reminder {
	return Reminder{
		ID:      ReminderID(event.ID),
		EventID: event.ID,
		Sport:   event.Sport.Title(),
		Title:   ReminderTitle,
		Body:    fmt.Sprintf(ReminderBodyFormat, event.HomeTeam, event.AwayTeam),
		FireAt:  fireAt,
	}
}

// FireTime is lead before start, but never sooner than MinimumReminderDelay from now
func FireTime(now, start time.Time, lead time.Duration) time.Time {
	fireAt := start.Add(-lead)
	if earliest := now.Add(MinimumReminderDelay); fireAt.Before(earliest) {
		return earliest
	}
	return fireAt
}
