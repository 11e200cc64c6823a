package utils

import "time"

// Sri Lanka time location (IST, +05:30)
var lkLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Colombo"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// NowLK returns the current time in Sri Lanka. Season scoring keys off the
// month of this clock, so it is the one clock read the engine depends on.
func NowLK() time.Time {
	return time.Now().In(lkLoc)
}

// FromUnixSecondsLK converts an epoch value in seconds to Sri Lanka time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsLK(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(lkLoc)
}

func FormatRFC3339LK(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(lkLoc).Format(time.RFC3339)
}

func FormatDateLK(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(lkLoc).Format("2006-01-02")
}
