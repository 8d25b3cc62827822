package helper

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// DateRange is a half-open-ish inclusive [From, To] window. Zero fields mean
// unbounded on that side.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Validate rejects ranges where both bounds are set and From is after To.
func (r DateRange) Validate() error {
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return ErrBadRequest(CodeInvalidDate, "start date must not be after end date")
	}
	return nil
}

// ParseDateRangeQuery reads ?from_date= and ?to_date= (YYYY-MM-DD). The To
// bound is stretched to end of day so a single-day range covers the full day.
func ParseDateRangeQuery(c *fiber.Ctx) (DateRange, error) {
	var r DateRange

	if s := c.Query("from_date"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return r, ErrBadRequest(CodeInvalidDate, "from_date must be YYYY-MM-DD")
		}
		r.From = t
	}
	if s := c.Query("to_date"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return r, ErrBadRequest(CodeInvalidDate, "to_date must be YYYY-MM-DD")
		}
		r.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	if err := r.Validate(); err != nil {
		return r, err
	}
	return r, nil
}

// DayRange returns the [startOfDay, endOfDay] window for t.
func DayRange(t time.Time) DateRange {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return DateRange{From: start, To: start.Add(24*time.Hour - time.Nanosecond)}
}

// MonthRange returns the window for a calendar month; month is 1-12.
func MonthRange(year, month int, loc *time.Location) (DateRange, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return DateRange{}, ErrBadRequest(CodeInvalidParameters, "invalid year or month")
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return DateRange{From: start, To: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}, nil
}
