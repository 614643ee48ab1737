//go:build unit

package shopstatus_test

import (
	"testing"
	"time"

	"storefront/internal/domain/shopstatus"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullWeek() map[int]shopstatus.OperatingHours {
	week := make(map[int]shopstatus.OperatingHours, 7)
	for d := 0; d <= 6; d++ {
		week[d] = shopstatus.OperatingHours{
			DayOfWeek: d,
			OpenTime:  "09:00:00",
			CloseTime: "21:00:00",
			IsOpen:    true,
		}
	}
	return week
}

func strPtr(s string) *string { return &s }

// 2024-06-03 is a Monday.
func monday(hhmmss string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", "2024-06-03 "+hhmmss)
	if err != nil {
		panic(err)
	}
	return t
}

// 2024-06-02 is a Sunday.
func sunday(hhmmss string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", "2024-06-02 "+hhmmss)
	if err != nil {
		panic(err)
	}
	return t
}

func auto() shopstatus.ForceStatus {
	return shopstatus.ForceStatus{Status: shopstatus.ForceAuto}
}

func TestResolve_ForceOverride(t *testing.T) {
	week := fullWeek()

	t.Run("forced closed dominates everything", func(t *testing.T) {
		now := monday("10:00:00") // inside normal opening hours
		force := shopstatus.ForceStatus{Status: shopstatus.ForceClosed}
		got := shopstatus.Resolve(now, force, nil, week)

		assert.False(t, got.IsOpen)
		assert.Equal(t, shopstatus.VerdictClosed, got.Status)
		assert.Equal(t, "The store is currently closed.", got.Message)
		assert.True(t, got.ForceStatus)
	})

	t.Run("forced open dominates closed hours", func(t *testing.T) {
		now := monday("23:30:00") // after close
		force := shopstatus.ForceStatus{Status: shopstatus.ForceOpen}
		got := shopstatus.Resolve(now, force, nil, week)

		assert.True(t, got.IsOpen)
		assert.Equal(t, shopstatus.VerdictOpen, got.Status)
		assert.Equal(t, "The store is operating.", got.Message)
		assert.True(t, got.ForceStatus)
	})

	t.Run("override message is used when set", func(t *testing.T) {
		force := shopstatus.ForceStatus{Status: shopstatus.ForceClosed, Message: strPtr("Renovation until Friday")}
		got := shopstatus.Resolve(monday("10:00:00"), force, nil, week)
		assert.Equal(t, "Renovation until Friday", got.Message)
	})

	t.Run("forced closed wins over an active overlay", func(t *testing.T) {
		now := monday("10:00:00")
		force := shopstatus.ForceStatus{Status: shopstatus.ForceClosed}
		overlay := shopstatus.Notification{
			ID: uuid.New(), Title: "Tet", Message: "Closed for Tet",
			StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour),
			IsActive: true, ShowOverlay: true,
		}
		got := shopstatus.Resolve(now, force, []shopstatus.Notification{overlay}, week)
		assert.Equal(t, shopstatus.VerdictClosed, got.Status)
		assert.Nil(t, got.Title)
	})
}

func TestResolve_SpecialNotification(t *testing.T) {
	week := fullWeek()
	now := monday("10:00:00")

	overlay := func(title string, start, end time.Time, active, show bool) shopstatus.Notification {
		return shopstatus.Notification{
			ID: uuid.New(), Title: title, Message: "msg " + title,
			StartDate: start, EndDate: end, IsActive: active, ShowOverlay: show,
		}
	}

	t.Run("active overlay blocks an otherwise open day", func(t *testing.T) {
		n := overlay("Holiday", now.Add(-time.Hour), now.Add(time.Hour), true, true)
		got := shopstatus.Resolve(now, auto(), []shopstatus.Notification{n}, week)

		assert.False(t, got.IsOpen)
		assert.Equal(t, shopstatus.VerdictSpecialNotification, got.Status)
		require.NotNil(t, got.Title)
		assert.Equal(t, "Holiday", *got.Title)
		assert.Equal(t, "msg Holiday", got.Message)
	})

	t.Run("earliest start date wins among overlapping notifications", func(t *testing.T) {
		later := overlay("Later", now.Add(-time.Hour), now.Add(time.Hour), true, true)
		earlier := overlay("Earlier", now.Add(-2*time.Hour), now.Add(time.Hour), true, true)
		got := shopstatus.Resolve(now, auto(), []shopstatus.Notification{later, earlier}, week)

		require.NotNil(t, got.Title)
		assert.Equal(t, "Earlier", *got.Title)
	})

	t.Run("inactive or out-of-window notifications are ignored", func(t *testing.T) {
		cases := []struct {
			name string
			n    shopstatus.Notification
		}{
			{"soft-deleted", overlay("A", now.Add(-time.Hour), now.Add(time.Hour), false, true)},
			{"starts in the future", overlay("B", now.Add(time.Minute), now.Add(time.Hour), true, true)},
			{"already ended", overlay("C", now.Add(-2*time.Hour), now.Add(-time.Minute), true, true)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got := shopstatus.Resolve(now, auto(), []shopstatus.Notification{tc.n}, week)
				assert.Equal(t, shopstatus.VerdictOpen, got.Status)
			})
		}
	})

	t.Run("earliest active without overlay falls through", func(t *testing.T) {
		info := overlay("Info only", now.Add(-2*time.Hour), now.Add(time.Hour), true, false)
		got := shopstatus.Resolve(now, auto(), []shopstatus.Notification{info}, week)
		assert.Equal(t, shopstatus.VerdictOpen, got.Status)
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		n := overlay("Edge", now, now, true, true)
		got := shopstatus.Resolve(now, auto(), []shopstatus.Notification{n}, week)
		assert.Equal(t, shopstatus.VerdictSpecialNotification, got.Status)
	})
}

func TestResolve_OperatingHours(t *testing.T) {
	t.Run("missing row for today closes the store", func(t *testing.T) {
		week := fullWeek()
		delete(week, 1) // Monday
		got := shopstatus.Resolve(monday("10:00:00"), auto(), nil, week)

		assert.False(t, got.IsOpen)
		assert.Equal(t, shopstatus.VerdictClosed, got.Status)
		assert.Equal(t, "No operating hours configured for today.", got.Message)
		assert.Nil(t, got.NextOpenTime)
	})

	t.Run("closed day surfaces the next open day", func(t *testing.T) {
		week := fullWeek()
		week[0] = shopstatus.OperatingHours{DayOfWeek: 0, OpenTime: "09:00:00", CloseTime: "21:00:00", IsOpen: false}
		got := shopstatus.Resolve(sunday("23:00:00"), auto(), nil, week)

		assert.False(t, got.IsOpen)
		assert.Equal(t, shopstatus.VerdictClosed, got.Status)
		require.NotNil(t, got.NextOpenTime)
		assert.Equal(t, "Monday at 09:00:00", *got.NextOpenTime)
		require.NotNil(t, got.NextDay)
		assert.Equal(t, 1, got.NextDay.DayOfWeek)
	})

	t.Run("closed day scan wraps past the week boundary", func(t *testing.T) {
		week := fullWeek()
		// Only Sunday is open; resolve on a closed Monday.
		for d := 1; d <= 6; d++ {
			row := week[d]
			row.IsOpen = false
			week[d] = row
		}
		got := shopstatus.Resolve(monday("10:00:00"), auto(), nil, week)

		require.NotNil(t, got.NextOpenTime)
		assert.Equal(t, "Sunday at 09:00:00", *got.NextOpenTime)
	})

	t.Run("no open day in the whole week omits next open time", func(t *testing.T) {
		week := fullWeek()
		for d := 0; d <= 6; d++ {
			row := week[d]
			row.IsOpen = false
			week[d] = row
		}
		got := shopstatus.Resolve(monday("10:00:00"), auto(), nil, week)

		assert.Equal(t, shopstatus.VerdictClosed, got.Status)
		assert.Nil(t, got.NextOpenTime)
	})
}

func TestResolve_TimeWindow(t *testing.T) {
	week := fullWeek()

	cases := []struct {
		name         string
		now          time.Time
		wantOpen     bool
		wantNextOpen *string
	}{
		{"inside the window", monday("10:00:00"), true, nil},
		{"exactly at open time", monday("09:00:00"), true, nil},
		{"exactly at close time", monday("21:00:00"), true, nil},
		{"one second before open", monday("08:59:59"), false, strPtr("today at 09:00:00")},
		{"one second after close", monday("21:00:01"), false, strPtr("Tuesday at 09:00:00")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := shopstatus.Resolve(tc.now, auto(), nil, week)
			assert.Equal(t, tc.wantOpen, got.IsOpen)
			if tc.wantNextOpen == nil {
				assert.Nil(t, got.NextOpenTime)
			} else {
				require.NotNil(t, got.NextOpenTime)
				assert.Equal(t, *tc.wantNextOpen, *got.NextOpenTime)
			}
		})
	}

	t.Run("after close with tomorrow closed omits next open time", func(t *testing.T) {
		w := fullWeek()
		w[2] = shopstatus.OperatingHours{DayOfWeek: 2, OpenTime: "09:00:00", CloseTime: "21:00:00", IsOpen: false}
		got := shopstatus.Resolve(monday("22:00:00"), auto(), nil, w)

		assert.False(t, got.IsOpen)
		assert.Nil(t, got.NextOpenTime)
	})

	t.Run("open verdict names the closing time", func(t *testing.T) {
		got := shopstatus.Resolve(monday("10:00:00"), auto(), nil, week)
		assert.Equal(t, "The store is open until 21:00:00.", got.Message)
		require.NotNil(t, got.Today)
		assert.Equal(t, 1, got.Today.DayOfWeek)
	})
}

func TestResolve_Scenarios(t *testing.T) {
	t.Run("Monday 10:00 with 09-21 hours is open", func(t *testing.T) {
		week := fullWeek()
		got := shopstatus.Resolve(monday("10:00:00"), auto(), nil, week)
		assert.True(t, got.IsOpen)
		assert.Equal(t, shopstatus.VerdictOpen, got.Status)
	})

	t.Run("resolution is idempotent for identical inputs", func(t *testing.T) {
		week := fullWeek()
		now := monday("08:59:59")
		first := shopstatus.Resolve(now, auto(), nil, week)
		second := shopstatus.Resolve(now, auto(), nil, week)
		assert.Equal(t, first, second)
	})
}

func TestFailOpen(t *testing.T) {
	now := monday("03:00:00")
	got := shopstatus.FailOpen(now)

	assert.True(t, got.IsOpen)
	assert.Equal(t, shopstatus.VerdictOpen, got.Status)
	assert.Equal(t, now, got.CurrentTime)
}

func TestValidators(t *testing.T) {
	t.Run("time of day", func(t *testing.T) {
		valid := []string{"00:00:00", "09:30:00", "23:59:59"}
		invalid := []string{"", "24:00:00", "9:00:00", "09:60:00", "09:00", "09:00:00.5"}
		for _, s := range valid {
			assert.True(t, shopstatus.ValidTimeOfDay(s), s)
		}
		for _, s := range invalid {
			assert.False(t, shopstatus.ValidTimeOfDay(s), s)
		}
	})

	t.Run("day of week", func(t *testing.T) {
		assert.True(t, shopstatus.ValidDayOfWeek(0))
		assert.True(t, shopstatus.ValidDayOfWeek(6))
		assert.False(t, shopstatus.ValidDayOfWeek(-1))
		assert.False(t, shopstatus.ValidDayOfWeek(7))
	})

	t.Run("force mode", func(t *testing.T) {
		assert.True(t, shopstatus.ValidForceMode("auto"))
		assert.True(t, shopstatus.ValidForceMode("open"))
		assert.True(t, shopstatus.ValidForceMode("closed"))
		assert.False(t, shopstatus.ValidForceMode("maybe"))
	})
}
