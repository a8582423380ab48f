package processor

import (
	"sort"
	"time"
)

const (
	isoDate      = "2006-01-02"
	recentWindow = 7 * 24 * time.Hour
)

// LoginStats is the login activity aggregate served to the event-server
type LoginStats struct {
	TotalUniqueDays  int      `json:"totalUniqueDays"`
	RecentUniqueDays int      `json:"recent7DaysUnique"`
	LoggedDates      []string `json:"loggedDates"`
}

// summarizeLogins counts distinct calendar days in now's location. A day counts
// as recent when at least one login on it happened after now minus seven days.
func summarizeLogins(logins []time.Time, now time.Time) LoginStats {
	loc := now.Location()
	cutoff := now.Add(-recentWindow)

	days := make(map[string]struct{})
	recent := make(map[string]struct{})
	for _, at := range logins {
		day := at.In(loc).Format(isoDate)
		days[day] = struct{}{}
		if at.After(cutoff) {
			recent[day] = struct{}{}
		}
	}

	dates := make([]string, 0, len(days))
	for day := range days {
		dates = append(dates, day)
	}
	sort.Strings(dates)

	return LoginStats{
		TotalUniqueDays:  len(days),
		RecentUniqueDays: len(recent),
		LoggedDates:      dates,
	}
}
