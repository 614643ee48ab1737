package shopstatus

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Verdict classifies store availability as seen by customers.
type Verdict string

const (
	VerdictOpen                Verdict = "open"
	VerdictClosed              Verdict = "closed"
	VerdictSpecialNotification Verdict = "special_notification"
)

// Force override modes. Anything other than auto short-circuits the
// schedule-based computation.
const (
	ForceAuto   = "auto"
	ForceOpen   = "open"
	ForceClosed = "closed"
)

// OperatingHours is one weekly schedule row. Times are wall-clock HH:MM:SS
// strings interpreted in server-local time; zero-padding makes lexicographic
// comparison equivalent to temporal comparison.
type OperatingHours struct {
	DayOfWeek int    // 0=Sunday .. 6=Saturday
	OpenTime  string // "09:00:00"
	CloseTime string // "21:00:00"
	IsOpen    bool   // false closes the whole day regardless of times
}

// Notification is an override window shown to customers. Only rows with
// ShowOverlay block normal operation.
type Notification struct {
	ID          uuid.UUID
	Title       string
	Message     string
	StartDate   time.Time
	EndDate     time.Time
	IsActive    bool
	ShowOverlay bool
}

// ActiveAt reports whether the notification covers the given instant.
func (n Notification) ActiveAt(now time.Time) bool {
	return n.IsActive && !now.Before(n.StartDate) && !now.After(n.EndDate)
}

// ForceStatus is the administrator override singleton.
type ForceStatus struct {
	Status  string // auto | open | closed
	Message *string
}

// Result is the single authoritative availability verdict.
type Result struct {
	IsOpen       bool
	Status       Verdict
	Message      string
	Title        *string
	NextOpenTime *string
	CurrentTime  time.Time
	ForceStatus  bool
	Today        *OperatingHours
	NextDay      *OperatingHours
}

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)

// ValidTimeOfDay reports whether s is a well-formed zero-padded HH:MM:SS
// value. The resolver itself does not validate; admin writes must.
func ValidTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

// ValidDayOfWeek reports whether d is in the 0=Sunday..6=Saturday range.
func ValidDayOfWeek(d int) bool {
	return d >= 0 && d <= 6
}

// ValidForceMode reports whether s is one of the force override modes.
func ValidForceMode(s string) bool {
	return s == ForceAuto || s == ForceOpen || s == ForceClosed
}

// DayName returns the display name for a 0-based day-of-week value.
func DayName(d int) string {
	return time.Weekday(d).String()
}
