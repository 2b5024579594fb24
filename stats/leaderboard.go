package stats

import (
	"fmt"
	"sort"
	"time"

	"chauffeur/models"

	"github.com/shopspring/decimal"
)

// Leaderboard metrics.
const (
	MetricNet   = "net"
	MetricGross = "gross"
	MetricHours = "hours"
	MetricRides = "rides"
)

// Leaderboard periods.
const (
	PeriodAll       = "all"
	PeriodLastMonth = "last_month"
	PeriodCustom    = "custom"
)

// LeaderboardRow is one ranked driver. The dashboard reads the chosen
// metric from the "metric" field.
type LeaderboardRow struct {
	UserID uint    `json:"user_id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Metric float64 `json:"metric"`
	Rides  int     `json:"rides"`
	Hours  float64 `json:"hours"`
}

// PeriodWindow resolves a leaderboard period to an inclusive date
// range; empty bounds mean unbounded. last_month is the previous
// full calendar month relative to now.
func PeriodWindow(period, dateFrom, dateTo string, now time.Time) (from, to string, err error) {
	switch period {
	case PeriodAll:
		return "", "", nil
	case PeriodLastMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		lastMonthEnd := firstOfMonth.AddDate(0, 0, -1)
		lastMonthStart := time.Date(lastMonthEnd.Year(), lastMonthEnd.Month(), 1, 0, 0, 0, 0, now.Location())
		return lastMonthStart.Format("2006-01-02"), lastMonthEnd.Format("2006-01-02"), nil
	case PeriodCustom:
		for _, d := range []string{dateFrom, dateTo} {
			if d == "" {
				continue
			}
			if _, perr := time.Parse("2006-01-02", d); perr != nil {
				return "", "", fmt.Errorf("ongeldige datum %q, verwacht YYYY-MM-DD", d)
			}
		}
		return dateFrom, dateTo, nil
	default:
		return "", "", fmt.Errorf("onbekende periode %q", period)
	}
}

// Leaderboard ranks all users with at least one ride in the window by
// the chosen metric, descending; ties are broken by ascending user id.
func Leaderboard(users []models.User, rides []models.Ride, metric, dateFrom, dateTo string) ([]LeaderboardRow, error) {
	switch metric {
	case MetricNet, MetricGross, MetricHours, MetricRides:
	default:
		return nil, fmt.Errorf("onbekende metric %q", metric)
	}

	window := Filter{DateFrom: dateFrom, DateTo: dateTo}.Apply(rides)

	type acc struct {
		net, gross, hours decimal.Decimal
		rides             int
	}
	byUser := map[uint]*acc{}
	for i := range window {
		r := &window[i]
		a, ok := byUser[r.UserID]
		if !ok {
			a = &acc{}
			byUser[r.UserID] = a
		}
		a.rides++
		a.net = a.net.Add(decimal.NewFromFloat(r.NetPay))
		a.gross = a.gross.Add(decimal.NewFromFloat(r.GrossTotal))
		a.hours = a.hours.Add(decimal.NewFromFloat(r.TotalHours))
	}

	rows := make([]LeaderboardRow, 0, len(byUser))
	for i := range users {
		u := &users[i]
		a, ok := byUser[u.ID]
		if !ok {
			continue // no rides in the window
		}
		row := LeaderboardRow{
			UserID: u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Rides:  a.rides,
			Hours:  round2(a.hours),
		}
		switch metric {
		case MetricNet:
			row.Metric = round2(a.net)
		case MetricGross:
			row.Metric = round2(a.gross)
		case MetricHours:
			row.Metric = round2(a.hours)
		case MetricRides:
			row.Metric = float64(a.rides)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Metric != rows[j].Metric {
			return rows[i].Metric > rows[j].Metric
		}
		return rows[i].UserID < rows[j].UserID
	})
	return rows, nil
}
