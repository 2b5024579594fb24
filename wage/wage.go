// Package wage computes the pay breakdown for a single ride. It is
// pure: the caller passes the ride input and the wage settings to
// apply, and gets back every derived field the dashboard shows.
package wage

import (
	"fmt"
	"strconv"
	"strings"

	"chauffeur/models"

	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

// Night window: hours from 20:00 up to 06:00 the next morning.
const (
	nightEndMinute   = 6 * 60
	nightStartMinute = 20 * 60
)

// ValidationError marks ride input the calculator refuses to price.
// The API layer maps it to a 400 response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Input is the raw, user-entered part of a ride.
type Input struct {
	StartTime  string // HH:MM
	EndTime    string // HH:MM, end <= start means the ride crosses midnight
	ExtraCosts float64
	WWVKm      float64
}

// Breakdown is the full computed pay breakdown, all values rounded to
// two decimals (minutes granularity for hours, cents for money).
type Breakdown struct {
	TotalHours         float64
	NormalHours        float64
	OvertimeHours      float64
	NightHours         float64
	NormalPay          float64
	OvertimePay        float64
	NightPay           float64
	GrossPay           float64
	WWVAmount          float64
	SocialContribution float64
	GrossTotal         float64
	NetPay             float64
}

// Compute prices one ride under the given settings.
//
// Hours beyond the normal-hours threshold are paid at the overtime
// multiplier. Hours inside the night window earn the night surcharge
// on top of normal/overtime pay; the surcharge is a layer, not a
// replacement rate. The social contribution is a percentage of the
// hourly gross pay only, deducted once:
//
//	gross_total = gross_pay + wwv_amount + extra_costs
//	net_pay     = gross_total - social_contribution
func Compute(in Input, settings models.WageSettings) (*Breakdown, error) {
	start, err := parseClock(in.StartTime)
	if err != nil {
		return nil, invalid("start_time", err.Error())
	}
	end, err := parseClock(in.EndTime)
	if err != nil {
		return nil, invalid("end_time", err.Error())
	}
	if start == end {
		return nil, invalid("end_time", "rit heeft geen duur")
	}
	if in.ExtraCosts < 0 {
		return nil, invalid("extra_costs", "mag niet negatief zijn")
	}
	if in.WWVKm < 0 {
		return nil, invalid("wwv_km", "mag niet negatief zijn")
	}

	// End before start means the shift runs into the next day.
	if end < start {
		end += minutesPerDay
	}
	totalMinutes := end - start
	nightMinutes := nightOverlap(start, end)

	totalHours := decimal.NewFromInt(int64(totalMinutes)).Div(decimal.NewFromInt(60))
	nightHours := decimal.NewFromInt(int64(nightMinutes)).Div(decimal.NewFromInt(60))

	threshold := decimal.NewFromFloat(settings.NormalHoursThreshold)
	normalHours := decimal.Min(totalHours, threshold)
	overtimeHours := decimal.Max(decimal.Zero, totalHours.Sub(threshold))

	baseRate := decimal.NewFromFloat(settings.BaseRate)
	normalPay := normalHours.Mul(baseRate).Round(2)
	overtimePay := overtimeHours.Mul(baseRate).
		Mul(decimal.NewFromFloat(settings.OvertimeMultiplier)).Round(2)
	nightPay := nightHours.Mul(decimal.NewFromFloat(settings.NightSurcharge)).Round(2)
	grossPay := normalPay.Add(overtimePay).Add(nightPay)

	wwvAmount := decimal.NewFromFloat(in.WWVKm).
		Mul(decimal.NewFromFloat(settings.WWVRate)).Round(2)
	socialContribution := grossPay.
		Mul(decimal.NewFromFloat(settings.SocialContributionPct)).
		Div(decimal.NewFromInt(100)).Round(2)

	extraCosts := decimal.NewFromFloat(in.ExtraCosts).Round(2)
	grossTotal := grossPay.Add(wwvAmount).Add(extraCosts)
	netPay := grossTotal.Sub(socialContribution)

	return &Breakdown{
		TotalHours:         totalHours.Round(2).InexactFloat64(),
		NormalHours:        normalHours.Round(2).InexactFloat64(),
		OvertimeHours:      overtimeHours.Round(2).InexactFloat64(),
		NightHours:         nightHours.Round(2).InexactFloat64(),
		NormalPay:          normalPay.InexactFloat64(),
		OvertimePay:        overtimePay.InexactFloat64(),
		NightPay:           nightPay.InexactFloat64(),
		GrossPay:           grossPay.InexactFloat64(),
		WWVAmount:          wwvAmount.InexactFloat64(),
		SocialContribution: socialContribution.InexactFloat64(),
		GrossTotal:         grossTotal.InexactFloat64(),
		NetPay:             netPay.InexactFloat64(),
	}, nil
}

// nightOverlap returns how many minutes of [start, end) fall inside
// the 20:00-06:00 window. start is within the first day; end may run
// into the next day (start + at most 24h).
func nightOverlap(start, end int) int {
	// Night windows laid out over two consecutive days.
	windows := [][2]int{
		{0, nightEndMinute},
		{nightStartMinute, minutesPerDay + nightEndMinute},
		{minutesPerDay + nightStartMinute, 2 * minutesPerDay},
	}
	overlap := 0
	for _, w := range windows {
		lo, hi := max(start, w[0]), min(end, w[1])
		if hi > lo {
			overlap += hi - lo
		}
	}
	return overlap
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("ongeldige tijd %q, verwacht HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("ongeldige tijd %q, verwacht HH:MM", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("ongeldige tijd %q, verwacht HH:MM", s)
	}
	return hour*60 + minute, nil
}
