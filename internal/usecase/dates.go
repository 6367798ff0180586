package usecase

import "time"

// dateLayout is the wire format for schedule dates.
const dateLayout = "2006-01-02"

// resolveDate returns date unchanged, or today in process-local time when
// date is empty. Defaults are computed at call time, not at startup.
func resolveDate(date string, now func() time.Time) string {
	if date != "" {
		return date
	}
	return now().Format(dateLayout)
}
