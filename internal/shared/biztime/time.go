// Package biztime centralizes time handling so that all persisted
// timestamps are produced in UTC.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// UnixMilliToTime converts a millisecond Unix timestamp to a UTC time.
func UnixMilliToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// TimeToUnixMilli converts a time to a millisecond Unix timestamp.
func TimeToUnixMilli(t time.Time) int64 {
	return t.UnixMilli()
}

// PtrUnixMilliToTime converts an optional millisecond timestamp to an
// optional time.
func PtrUnixMilliToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}

// PtrTimeToUnixMilli converts an optional time to an optional millisecond
// timestamp.
func PtrTimeToUnixMilli(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
