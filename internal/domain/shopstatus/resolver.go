package shopstatus

import (
	"fmt"
	"sort"
	"time"
)

const (
	defaultOpenMessage   = "The store is operating."
	defaultClosedMessage = "The store is currently closed."
)

// Resolve computes the availability verdict for the given instant. Rules are
// evaluated in strict priority order, stopping at the first applicable one:
//
//  1. force override (open / closed)
//  2. active overlay notification, earliest start date first
//  3. weekly operating hours: missing row or closed day
//  4. the open day's [open, close] window, inclusive on both ends
//
// The function is pure: identical inputs yield identical output.
func Resolve(now time.Time, force ForceStatus, notifications []Notification, week map[int]OperatingHours) Result {
	result := Result{CurrentTime: now}

	switch force.Status {
	case ForceOpen:
		result.IsOpen = true
		result.Status = VerdictOpen
		result.Message = overrideMessage(force.Message, defaultOpenMessage)
		result.ForceStatus = true
		return result
	case ForceClosed:
		result.IsOpen = false
		result.Status = VerdictClosed
		result.Message = overrideMessage(force.Message, defaultClosedMessage)
		result.ForceStatus = true
		return result
	}

	if n := activeOverlay(now, notifications); n != nil {
		title := n.Title
		result.IsOpen = false
		result.Status = VerdictSpecialNotification
		result.Title = &title
		result.Message = n.Message
		return result
	}

	today := int(now.Weekday())
	row, ok := week[today]
	if !ok {
		result.IsOpen = false
		result.Status = VerdictClosed
		result.Message = "No operating hours configured for today."
		return result
	}
	result.Today = &row

	if !row.IsOpen {
		result.IsOpen = false
		result.Status = VerdictClosed
		result.Message = "The store is closed today."
		if next := nextOpenDay(today, week); next != nil {
			result.NextDay = next
			s := fmt.Sprintf("%s at %s", DayName(next.DayOfWeek), next.OpenTime)
			result.NextOpenTime = &s
		}
		return result
	}

	// Zero-padded HH:MM:SS, so string comparison is temporal comparison.
	clock := now.Format("15:04:05")
	switch {
	case clock >= row.OpenTime && clock <= row.CloseTime:
		result.IsOpen = true
		result.Status = VerdictOpen
		result.Message = fmt.Sprintf("The store is open until %s.", row.CloseTime)
	case clock < row.OpenTime:
		result.IsOpen = false
		result.Status = VerdictClosed
		result.Message = "The store has not opened yet."
		s := fmt.Sprintf("today at %s", row.OpenTime)
		result.NextOpenTime = &s
	default: // after close
		result.IsOpen = false
		result.Status = VerdictClosed
		result.Message = "The store has closed for today."
		if tomorrow, ok := week[(today+1)%7]; ok && tomorrow.IsOpen {
			result.NextDay = &tomorrow
			s := fmt.Sprintf("%s at %s", DayName(tomorrow.DayOfWeek), tomorrow.OpenTime)
			result.NextOpenTime = &s
		}
	}
	return result
}

// FailOpen is the fallback verdict when persisted state cannot be read.
// Failing open is a deliberate business decision: availability of checkout
// wins over strict enforcement of closing hours.
func FailOpen(now time.Time) Result {
	return Result{
		IsOpen:      true,
		Status:      VerdictOpen,
		Message:     defaultOpenMessage,
		CurrentTime: now,
	}
}

// MethodNotAllowed is the fail-closed verdict for malformed requests,
// distinct from the fail-open policy for internal errors.
func MethodNotAllowed(now time.Time) Result {
	return Result{
		IsOpen:      false,
		Status:      VerdictClosed,
		Message:     "Method not allowed.",
		CurrentTime: now,
	}
}

func overrideMessage(msg *string, fallback string) string {
	if msg != nil && *msg != "" {
		return *msg
	}
	return fallback
}

// activeOverlay picks the blocking notification covering now. Earliest start
// date wins as the deterministic tie-break.
func activeOverlay(now time.Time, notifications []Notification) *Notification {
	active := make([]Notification, 0, len(notifications))
	for _, n := range notifications {
		if n.ActiveAt(now) {
			active = append(active, n)
		}
	}
	if len(active) == 0 {
		return nil
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].StartDate.Before(active[j].StartDate)
	})
	if !active[0].ShowOverlay {
		return nil
	}
	return &active[0]
}

// nextOpenDay scans forward from the day after start, wrapping at the week
// boundary, for the first open day.
func nextOpenDay(start int, week map[int]OperatingHours) *OperatingHours {
	for offset := 1; offset <= 6; offset++ {
		day := (start + offset) % 7
		if row, ok := week[day]; ok && row.IsOpen {
			return &row
		}
	}
	return nil
}
