// Package timegen derives causally consistent timestamps for work items
// inside a fixed simulation horizon. The engine consumes random draws in a
// fixed, documented order per field so that a seeded run reproduces the same
// timeline end to end.
package timegen

import (
	"math/rand"
	"time"

	"worksim/internal/dist"
)

// Due-date bucket names. The bucket distribution itself comes from
// configuration in insertion order; the day offsets per bucket are fixed.
const (
	BucketWithin1Week   = "within_1_week"
	BucketWithin1Month  = "within_1_month"
	BucketWithin3Months = "within_3_months"
	BucketNoDueDate     = "no_due_date"
	BucketOverdue       = "overdue"
)

// Config carries the horizon and calendar-realism parameters.
type Config struct {
	Start            time.Time
	End              time.Time
	WeekdayBias      float64 // probability of resampling creation onto Mon-Wed
	WeekendAvoidance float64 // probability of shifting a weekend due date to Monday
	SprintDays       int
	Buckets          []dist.Bucket // ordered due-date bucket distribution
}

// Engine produces timestamps for work items.
type Engine struct {
	rng *rand.Rand
	cfg Config
}

// New validates the horizon and builds an engine.
func New(rng *rand.Rand, cfg Config) (*Engine, error) {
	if cfg.End.Before(cfg.Start) {
		return nil, dist.ErrInvalidRange
	}
	if len(cfg.Buckets) == 0 {
		return nil, dist.ErrInvalidDistribution
	}
	if cfg.SprintDays <= 0 {
		cfg.SprintDays = 14
	}
	return &Engine{rng: rng, cfg: cfg}, nil
}

// Now is the simulated current time, the horizon end.
func (e *Engine) Now() time.Time {
	return e.cfg.End
}

// RandomBetween returns a uniform instant in [start, end].
func (e *Engine) RandomBetween(start, end time.Time) (time.Time, error) {
	if end.Before(start) {
		return time.Time{}, dist.ErrInvalidRange
	}
	delta := end.Sub(start).Seconds()
	return start.Add(time.Duration(e.rng.Float64()*delta) * time.Second), nil
}

// CreatedAt draws a creation instant in [start, end]. Draw order: one uniform
// instant; one bias draw, and on success resamples until the instant lands on
// Mon-Wed; then hour and minute draws forcing business hours (09:00-18:59).
func (e *Engine) CreatedAt(start, end time.Time) (time.Time, error) {
	created, err := e.RandomBetween(start, end)
	if err != nil {
		return time.Time{}, err
	}
	if e.rng.Float64() < e.cfg.WeekdayBias {
		// A short range may contain no Mon-Wed at all; give up after a
		// bounded number of resamples rather than spinning.
		for i := 0; i < 64 && !earlyWeekday(created); i++ {
			created, _ = e.RandomBetween(start, end)
		}
	}
	hour := 9 + e.rng.Intn(10)
	minute := e.rng.Intn(60)
	return time.Date(created.Year(), created.Month(), created.Day(), hour, minute, 0, 0, created.Location()), nil
}

func earlyWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Monday || wd == time.Tuesday || wd == time.Wednesday
}

// DueDate selects a due-date bucket for a work item created at createdAt and
// maps it to a date, or nil for the no-due-date bucket. Draw order: one
// uniform bucket draw; one day-offset draw (except no_due_date); a clamp draw
// when the date would pass the horizon end; one weekend-avoidance draw and
// possible Monday shift.
//
// The overdue bucket intentionally places the due date before creation: the
// item was already late when it entered the system.
func (e *Engine) DueDate(createdAt time.Time) (*time.Time, error) {
	draw := e.rng.Float64()
	bucket, err := dist.BucketedPick(e.cfg.Buckets, draw)
	if err != nil {
		return nil, err
	}

	var days int
	switch bucket {
	case BucketWithin1Week:
		days = dist.UniformInt(e.rng, 1, 7)
	case BucketWithin1Month:
		days = dist.UniformInt(e.rng, 8, 30)
	case BucketWithin3Months:
		days = dist.UniformInt(e.rng, 31, 90)
	case BucketNoDueDate:
		return nil, nil
	case BucketOverdue:
		days = -dist.UniformInt(e.rng, 1, 30)
	default:
		days = dist.UniformInt(e.rng, 7, 30)
	}

	due := dateOnly(createdAt.AddDate(0, 0, days))
	if due.After(dateOnly(e.cfg.End)) {
		due = dateOnly(e.cfg.End.AddDate(0, 0, -dist.UniformInt(e.rng, 1, 7)))
	}
	due = e.AvoidWeekend(due)
	return &due, nil
}

// AvoidWeekend shifts a Saturday or Sunday date to the following Monday with
// the configured probability, otherwise leaves it untouched. Consumes exactly
// one draw.
func (e *Engine) AvoidWeekend(d time.Time) time.Time {
	if e.rng.Float64() > e.cfg.WeekendAvoidance {
		return d
	}
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

// CompletionTime derives when a completed item finished. Elapsed days follow
// a log-normal (location 1.5, scale 0.8 in log space, median around 4.5
// days) clipped to [1, 14]. Results past the horizon end are pulled back by
// 1-48 hours. When a due date exists and has passed, a 0.6-probability draw
// clusters completion near the due date (due + uniform(-2,+1) days),
// re-floored at creation + 2-48 hours if the cluster landed before creation.
func (e *Engine) CompletionTime(createdAt time.Time, dueDate *time.Time) time.Time {
	now := e.cfg.End
	days := dist.LogNormal(e.rng, 1.5, 0.8, 1, 14)
	completed := createdAt.Add(time.Duration(days * 24 * float64(time.Hour)))
	if completed.After(now) {
		completed = now.Add(-time.Duration(dist.UniformInt(e.rng, 1, 48)) * time.Hour)
	}
	if dueDate != nil {
		due := dateOnly(*dueDate)
		if e.rng.Float64() < 0.6 && due.Before(now) {
			offset := dist.UniformFloat(e.rng, -2, 1)
			completed = due.Add(time.Duration(offset * 24 * float64(time.Hour)))
			if completed.Before(createdAt) {
				completed = createdAt.Add(time.Duration(dist.UniformInt(e.rng, 2, 48)) * time.Hour)
			}
		}
	}
	return completed
}

// ModifiedAt is the completion time for completed items; otherwise a uniform
// instant between creation and now once more than a day has elapsed, else
// creation itself.
func (e *Engine) ModifiedAt(createdAt time.Time, completedAt *time.Time) time.Time {
	if completedAt != nil {
		return *completedAt
	}
	if e.cfg.End.Sub(createdAt) > 24*time.Hour {
		m, _ := e.RandomBetween(createdAt, e.cfg.End)
		return m
	}
	return createdAt
}

// SprintAlignedDueDate places a due date at the next sprint boundary after
// createdAt, with up to two days of slack either side and weekend avoidance.
// Sprint boundaries are counted from the horizon start.
func (e *Engine) SprintAlignedDueDate(createdAt time.Time) time.Time {
	elapsed := int(dateOnly(createdAt).Sub(dateOnly(e.cfg.Start)).Hours() / 24)
	sprints := elapsed / e.cfg.SprintDays
	boundary := dateOnly(e.cfg.Start).AddDate(0, 0, (sprints+1)*e.cfg.SprintDays)
	due := boundary.AddDate(0, 0, dist.UniformInt(e.rng, -2, 2))
	return e.AvoidWeekend(due)
}

// IsOverdue reports whether a due date has passed relative to the horizon end.
func (e *Engine) IsOverdue(dueDate *time.Time) bool {
	if dueDate == nil {
		return false
	}
	return dateOnly(*dueDate).Before(dateOnly(e.cfg.End))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
