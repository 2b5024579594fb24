// Package stats turns a set of computed rides into the dashboard
// payload: scalar totals, monthly/weekly series, client/car rankings,
// time-of-day distributions and the cross-user leaderboard. All
// functions are pure; the API layer loads rides and calls in.
package stats

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"chauffeur/models"

	"github.com/shopspring/decimal"
)

// Dutch weekday labels, Monday first, as the dashboard renders them.
var dayNames = [7]string{"Ma", "Di", "Wo", "Do", "Vr", "Za", "Zo"}

// weeklyWindow caps the weekly series at the most recent weeks.
const weeklyWindow = 12

// recentRideCount is how many rides the dashboard previews.
const recentRideCount = 5

// Filter narrows a ride set. All fields are optional and conjunctive.
type Filter struct {
	Month      string // YYYY-MM
	ClientName string // exact match
	CarBrand   string // exact match
	DateFrom   string // YYYY-MM-DD inclusive
	DateTo     string // YYYY-MM-DD inclusive
}

// Apply returns the rides matching the filter.
func (f Filter) Apply(rides []models.Ride) []models.Ride {
	out := make([]models.Ride, 0, len(rides))
	for _, r := range rides {
		if f.Month != "" && !strings.HasPrefix(r.Date, f.Month) {
			continue
		}
		if f.ClientName != "" && r.ClientName != f.ClientName {
			continue
		}
		if f.CarBrand != "" && r.CarBrand != f.CarBrand {
			continue
		}
		if f.DateFrom != "" && r.Date < f.DateFrom {
			continue
		}
		if f.DateTo != "" && r.Date > f.DateTo {
			continue
		}
		out = append(out, r)
	}
	return out
}

// MonthBucket is one entry of the monthly earnings series.
type MonthBucket struct {
	Month    string  `json:"month"`
	Gross    float64 `json:"gross"`
	Net      float64 `json:"net"`
	Rides    int     `json:"rides"`
	Hours    float64 `json:"hours"`
	Overtime float64 `json:"overtime"`
	Night    float64 `json:"night"`
}

// WeekBucket is one entry of the weekly earnings series, keyed by ISO week.
type WeekBucket struct {
	Week  string  `json:"week"`
	Net   float64 `json:"net"`
	Rides int     `json:"rides"`
	Hours float64 `json:"hours"`
}

// CarStat ranks one brand+model combination.
type CarStat struct {
	Car      string  `json:"car"`
	Brand    string  `json:"brand"`
	Rides    int     `json:"rides"`
	Hours    float64 `json:"hours"`
	Earnings float64 `json:"earnings"`
}

// BrandStat ranks one car brand.
type BrandStat struct {
	Brand    string  `json:"brand"`
	Rides    int     `json:"rides"`
	Hours    float64 `json:"hours"`
	Earnings float64 `json:"earnings"`
}

// ClientStat ranks one client.
type ClientStat struct {
	Client   string  `json:"client"`
	Rides    int     `json:"rides"`
	Earnings float64 `json:"earnings"`
	Hours    float64 `json:"hours"`
}

// HourBucket counts rides active during one start hour ("00".."23").
type HourBucket struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

// DayBucket aggregates one weekday, Monday first.
type DayBucket struct {
	Day      string  `json:"day"`
	Rides    int     `json:"rides"`
	Hours    float64 `json:"hours"`
	Earnings float64 `json:"earnings"`
}

// Payload is the full dashboard statistics response.
type Payload struct {
	TotalRides         int     `json:"total_rides"`
	TotalHours         float64 `json:"total_hours"`
	TotalGross         float64 `json:"total_gross"`
	TotalNet           float64 `json:"total_net"`
	TotalWWV           float64 `json:"total_wwv"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
	TotalNightHours    float64 `json:"total_night_hours"`
	TotalSocial        float64 `json:"total_social"`
	TotalExtraCosts    float64 `json:"total_extra_costs"`
	AvgPerRide         float64 `json:"avg_per_ride"`
	AvgPerHour         float64 `json:"avg_per_hour"`

	MonthlyEarnings    []MonthBucket  `json:"monthly_earnings"`
	WeeklyEarnings     []WeekBucket   `json:"weekly_earnings"`
	CarStats           []CarStat      `json:"car_stats"`
	BrandStats         []BrandStat    `json:"brand_stats"`
	ClientStats        []ClientStat   `json:"client_stats"`
	HourlyDistribution []HourBucket   `json:"hourly_distribution"`
	DayOfWeekStats     []DayBucket    `json:"day_of_week_stats"`
	RecentRides        []models.Ride  `json:"recent_rides"`

	// Facets come from the unfiltered set so the filter UI always
	// shows every option.
	AvailableMonths  []string `json:"available_months"`
	AvailableClients []string `json:"available_clients"`
	AvailableBrands  []string `json:"available_brands"`
}

// Aggregate builds the dashboard payload over the filtered rides.
// allRides is the user's unfiltered set, used only for the facets.
// The fixed distributions (weekdays, hours) are always fully present,
// also over an empty ride set.
func Aggregate(rides, allRides []models.Ride) *Payload {
	p := &Payload{
		TotalRides:      len(rides),
		MonthlyEarnings: []MonthBucket{},
		WeeklyEarnings:  []WeekBucket{},
		CarStats:        []CarStat{},
		BrandStats:      []BrandStat{},
		ClientStats:     []ClientStat{},
		RecentRides:     []models.Ride{},
	}
	p.AvailableMonths, p.AvailableClients, p.AvailableBrands = facets(allRides)
	p.DayOfWeekStats = dayOfWeek(rides)
	p.HourlyDistribution = hourly(rides)

	var hours, gross, net, wwv, overtime, night, social, extra decimal.Decimal
	for i := range rides {
		r := &rides[i]
		hours = hours.Add(decimal.NewFromFloat(r.TotalHours))
		gross = gross.Add(decimal.NewFromFloat(r.GrossTotal))
		net = net.Add(decimal.NewFromFloat(r.NetPay))
		wwv = wwv.Add(decimal.NewFromFloat(r.WWVAmount))
		overtime = overtime.Add(decimal.NewFromFloat(r.OvertimeHours))
		night = night.Add(decimal.NewFromFloat(r.NightHours))
		social = social.Add(decimal.NewFromFloat(r.SocialContribution))
		extra = extra.Add(decimal.NewFromFloat(r.ExtraCosts))
	}
	p.TotalHours = round2(hours)
	p.TotalGross = round2(gross)
	p.TotalNet = round2(net)
	p.TotalWWV = round2(wwv)
	p.TotalOvertimeHours = round2(overtime)
	p.TotalNightHours = round2(night)
	p.TotalSocial = round2(social)
	p.TotalExtraCosts = round2(extra)

	// Averages guard against empty denominators instead of erroring.
	if p.TotalRides > 0 {
		p.AvgPerRide = round2(net.Div(decimal.NewFromInt(int64(p.TotalRides))))
	}
	if !hours.IsZero() {
		p.AvgPerHour = round2(net.Div(hours))
	}

	if len(rides) == 0 {
		return p
	}

	p.MonthlyEarnings = monthly(rides)
	p.WeeklyEarnings = weekly(rides)
	p.CarStats, p.BrandStats = carsAndBrands(rides)
	p.ClientStats = clients(rides)
	p.RecentRides = recent(rides)
	return p
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func facets(rides []models.Ride) (months, clients, brands []string) {
	monthSet := map[string]bool{}
	clientSet := map[string]bool{}
	brandSet := map[string]bool{}
	for i := range rides {
		monthSet[rides[i].Month()] = true
		clientSet[rides[i].ClientName] = true
		brandSet[rides[i].CarBrand] = true
	}
	months = sortedKeys(monthSet)
	// Months newest first, the rest alphabetical.
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months, sortedKeys(clientSet), sortedKeys(brandSet)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func monthly(rides []models.Ride) []MonthBucket {
	type acc struct {
		gross, net, hours, overtime, night decimal.Decimal
		rides                              int
	}
	buckets := map[string]*acc{}
	for i := range rides {
		r := &rides[i]
		a, ok := buckets[r.Month()]
		if !ok {
			a = &acc{}
			buckets[r.Month()] = a
		}
		a.gross = a.gross.Add(decimal.NewFromFloat(r.GrossTotal))
		a.net = a.net.Add(decimal.NewFromFloat(r.NetPay))
		a.hours = a.hours.Add(decimal.NewFromFloat(r.TotalHours))
		a.overtime = a.overtime.Add(decimal.NewFromFloat(r.OvertimeHours))
		a.night = a.night.Add(decimal.NewFromFloat(r.NightHours))
		a.rides++
	}

	out := make([]MonthBucket, 0, len(buckets))
	for month, a := range buckets {
		out = append(out, MonthBucket{
			Month:    month,
			Gross:    round2(a.gross),
			Net:      round2(a.net),
			Rides:    a.rides,
			Hours:    round2(a.hours),
			Overtime: round2(a.overtime),
			Night:    round2(a.night),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func weekly(rides []models.Ride) []WeekBucket {
	type acc struct {
		net, hours decimal.Decimal
		rides      int
	}
	buckets := map[string]*acc{}
	for i := range rides {
		r := &rides[i]
		wk, ok := isoWeek(r.Date)
		if !ok {
			continue
		}
		a, found := buckets[wk]
		if !found {
			a = &acc{}
			buckets[wk] = a
		}
		a.net = a.net.Add(decimal.NewFromFloat(r.NetPay))
		a.hours = a.hours.Add(decimal.NewFromFloat(r.TotalHours))
		a.rides++
	}

	out := make([]WeekBucket, 0, len(buckets))
	for wk, a := range buckets {
		out = append(out, WeekBucket{
			Week:  wk,
			Net:   round2(a.net),
			Rides: a.rides,
			Hours: round2(a.hours),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	if len(out) > weeklyWindow {
		out = out[len(out)-weeklyWindow:]
	}
	return out
}

// isoWeek formats a ride date as "2024-W05".
func isoWeek(date string) (string, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", false
	}
	year, week := t.ISOWeek()
	return strconv.Itoa(year) + "-W" + pad2(week), true
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func carsAndBrands(rides []models.Ride) ([]CarStat, []BrandStat) {
	type acc struct {
		hours, earnings decimal.Decimal
		rides           int
		brand           string
	}
	carBuckets := map[string]*acc{}
	brandBuckets := map[string]*acc{}
	add := func(buckets map[string]*acc, key, brand string, r *models.Ride) {
		a, ok := buckets[key]
		if !ok {
			a = &acc{brand: brand}
			buckets[key] = a
		}
		a.rides++
		a.hours = a.hours.Add(decimal.NewFromFloat(r.TotalHours))
		a.earnings = a.earnings.Add(decimal.NewFromFloat(r.NetPay))
	}
	for i := range rides {
		r := &rides[i]
		add(carBuckets, r.CarBrand+" "+r.CarModel, r.CarBrand, r)
		add(brandBuckets, r.CarBrand, r.CarBrand, r)
	}

	cars := make([]CarStat, 0, len(carBuckets))
	for car, a := range carBuckets {
		cars = append(cars, CarStat{
			Car:      car,
			Brand:    a.brand,
			Rides:    a.rides,
			Hours:    round2(a.hours),
			Earnings: round2(a.earnings),
		})
	}
	sort.Slice(cars, func(i, j int) bool {
		if cars[i].Rides != cars[j].Rides {
			return cars[i].Rides > cars[j].Rides
		}
		if cars[i].Earnings != cars[j].Earnings {
			return cars[i].Earnings > cars[j].Earnings
		}
		return cars[i].Car < cars[j].Car
	})

	brands := make([]BrandStat, 0, len(brandBuckets))
	for brand, a := range brandBuckets {
		brands = append(brands, BrandStat{
			Brand:    brand,
			Rides:    a.rides,
			Hours:    round2(a.hours),
			Earnings: round2(a.earnings),
		})
	}
	sort.Slice(brands, func(i, j int) bool {
		if brands[i].Rides != brands[j].Rides {
			return brands[i].Rides > brands[j].Rides
		}
		if brands[i].Earnings != brands[j].Earnings {
			return brands[i].Earnings > brands[j].Earnings
		}
		return brands[i].Brand < brands[j].Brand
	})
	return cars, brands
}

func clients(rides []models.Ride) []ClientStat {
	type acc struct {
		earnings, hours decimal.Decimal
		rides           int
	}
	buckets := map[string]*acc{}
	for i := range rides {
		r := &rides[i]
		a, ok := buckets[r.ClientName]
		if !ok {
			a = &acc{}
			buckets[r.ClientName] = a
		}
		a.rides++
		a.earnings = a.earnings.Add(decimal.NewFromFloat(r.NetPay))
		a.hours = a.hours.Add(decimal.NewFromFloat(r.TotalHours))
	}

	out := make([]ClientStat, 0, len(buckets))
	for client, a := range buckets {
		out = append(out, ClientStat{
			Client:   client,
			Rides:    a.rides,
			Earnings: round2(a.earnings),
			Hours:    round2(a.hours),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Earnings != out[j].Earnings {
			return out[i].Earnings > out[j].Earnings
		}
		return out[i].Client < out[j].Client
	})
	return out
}

func dayOfWeek(rides []models.Ride) []DayBucket {
	type acc struct {
		hours, earnings decimal.Decimal
		rides           int
	}
	var buckets [7]acc
	for i := range rides {
		r := &rides[i]
		t, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			continue
		}
		// time.Weekday starts on Sunday; shift to Monday-first.
		d := (int(t.Weekday()) + 6) % 7
		buckets[d].rides++
		buckets[d].hours = buckets[d].hours.Add(decimal.NewFromFloat(r.TotalHours))
		buckets[d].earnings = buckets[d].earnings.Add(decimal.NewFromFloat(r.NetPay))
	}

	out := make([]DayBucket, 7)
	for d := range buckets {
		out[d] = DayBucket{
			Day:      dayNames[d],
			Rides:    buckets[d].rides,
			Hours:    round2(buckets[d].hours),
			Earnings: round2(buckets[d].earnings),
		}
	}
	return out
}

// hourly counts, for each clock hour, how many rides were under way
// during that hour, based on the whole worked interval.
func hourly(rides []models.Ride) []HourBucket {
	var counts [24]int
	for i := range rides {
		r := &rides[i]
		start, ok1 := clockHour(r.StartTime)
		end, ok2 := clockHour(r.EndTime)
		if !ok1 || !ok2 {
			continue
		}
		if end <= start {
			end += 24
		}
		for h := start; h < end; h++ {
			counts[h%24]++
		}
	}

	out := make([]HourBucket, 24)
	for h := 0; h < 24; h++ {
		out[h] = HourBucket{Hour: pad2(h), Count: counts[h]}
	}
	return out
}

func clockHour(s string) (int, bool) {
	idx := strings.Index(s, ":")
	if idx <= 0 {
		return 0, false
	}
	h, err := strconv.Atoi(s[:idx])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

func recent(rides []models.Ride) []models.Ride {
	out := make([]models.Ride, len(rides))
	copy(out, rides)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > recentRideCount {
		out = out[:recentRideCount]
	}
	return out
}
