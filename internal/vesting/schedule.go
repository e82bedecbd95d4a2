package vesting

import (
	"errors"
	"fmt"
	"math/bits"
	"time"

	"github.com/sosodev/duration"
)

// MaxLinearPeriods bounds linear expansion; larger schedules are almost certainly a typo.
const MaxLinearPeriods = 365

var (
	ErrScheduleMismatch = errors.New("number of amounts given is not equal to number of release times given")
	ErrTooManyPeriods   = fmt.Errorf("total count of vesting periods is more than %d", MaxLinearPeriods)
	ErrLinearAmounts    = errors.New("linear vesting must have one amount which will split into parts per period")
	ErrNoReleaseTimes   = errors.New("neither release frequency nor release times were set")
	ErrConflictingModes = errors.New("release frequency conflicts with release times")
	ErrInvalidWindow    = errors.New("end time must be after start time")
	ErrFrequencyTooLong = errors.New("release frequency is longer than the vesting window")
	ErrZeroPart         = errors.New("amount is too small to split over the requested periods")
	ErrAmountOverflow   = errors.New("schedule amount overflows u64")
)

// Schedule is a single release step: Amount base units unlock at ReleaseTime (unix seconds).
type Schedule struct {
	ReleaseTime uint64 `json:"release_time"`
	Amount      uint64 `json:"amount"`
}

// ScheduleInput carries the raw command line forms a schedule can be given in.
type ScheduleInput struct {
	Amounts          []uint64
	ReleaseTimes     []uint64
	ReleaseFrequency string // ISO 8601 duration, e.g. P1D
	Start            string // RFC 3339
	End              string // RFC 3339
}

// ParseSchedules turns either an explicit (amounts, release times) pair or a single amount
// plus a linear release frequency into a schedule list.
func ParseSchedules(in ScheduleInput) ([]Schedule, error) {
	if in.ReleaseFrequency != "" && len(in.ReleaseTimes) > 0 {
		return nil, ErrConflictingModes
	}
	if in.ReleaseFrequency == "" {
		if len(in.ReleaseTimes) == 0 {
			return nil, ErrNoReleaseTimes
		}
		return FromLists(in.Amounts, in.ReleaseTimes)
	}
	if len(in.Amounts) != 1 {
		return nil, ErrLinearAmounts
	}
	frequency, err := ParseFrequency(in.ReleaseFrequency)
	if err != nil {
		return nil, err
	}
	start, err := parseTimestamp("start-date-time", in.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseTimestamp("end-date-time", in.End)
	if err != nil {
		return nil, err
	}
	return Linear(in.Amounts[0], frequency, start, end)
}

// ParseFrequency converts an ISO 8601 duration into whole seconds.
func ParseFrequency(value string) (uint64, error) {
	d, err := duration.Parse(value)
	if err != nil {
		return 0, fmt.Errorf("parse release frequency %q: %w", value, err)
	}
	secs := d.ToTimeDuration() / time.Second
	if secs <= 0 {
		return 0, fmt.Errorf("release frequency %q must be at least one second", value)
	}
	return uint64(secs), nil
}

func parseTimestamp(name, value string) (uint64, error) {
	if value == "" {
		return 0, fmt.Errorf("%s is required for linear vesting", name)
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if ts.Unix() < 0 {
		return 0, fmt.Errorf("%s %s is before the unix epoch", name, value)
	}
	return uint64(ts.Unix()), nil
}

// FromLists zips amounts with release times.
func FromLists(amounts, releaseTimes []uint64) ([]Schedule, error) {
	if len(amounts) != len(releaseTimes) {
		return nil, ErrScheduleMismatch
	}
	out := make([]Schedule, len(amounts))
	for i := range amounts {
		out[i] = Schedule{ReleaseTime: releaseTimes[i], Amount: amounts[i]}
	}
	return out, nil
}

// Linear splits total into equal parts released every frequency seconds starting at start.
// The part size is total*frequency/(end-start); the division remainder goes to the last period,
// so the releases can run past end when the window is not a multiple of frequency.
func Linear(total, frequency, start, end uint64) ([]Schedule, error) {
	if end <= start {
		return nil, ErrInvalidWindow
	}
	if frequency == 0 {
		return nil, errors.New("release frequency must be positive")
	}
	span := end - start
	hi, lo := bits.Mul64(total, frequency)
	if hi >= span {
		return nil, ErrAmountOverflow
	}
	part, _ := bits.Div64(hi, lo, span)
	if part == 0 {
		return nil, ErrZeroPart
	}

	periods := total / part
	remainder := total % part
	if periods == 0 {
		return nil, ErrFrequencyTooLong
	}
	if periods > MaxLinearPeriods {
		return nil, ErrTooManyPeriods
	}

	out := make([]Schedule, 0, periods)
	for n := uint64(0); n < periods; n++ {
		out = append(out, Schedule{ReleaseTime: start + n*frequency, Amount: part})
	}
	out[len(out)-1].Amount += remainder

	if sum, err := Total(out); err != nil || sum != total {
		return nil, fmt.Errorf("linear schedule sums to %d, want %d", sum, total)
	}
	return out, nil
}

// Total sums the amounts of every schedule item.
func Total(schedules []Schedule) (uint64, error) {
	var total uint64
	for _, s := range schedules {
		next, carry := bits.Add64(total, s.Amount, 0)
		if carry != 0 {
			return 0, ErrAmountOverflow
		}
		total = next
	}
	return total, nil
}

// Summary splits a schedule into released and locked totals at a point in time.
type Summary struct {
	Total       uint64    `json:"total"`
	Released    uint64    `json:"released"`
	Locked      uint64    `json:"locked"`
	NextRelease *Schedule `json:"next_release,omitempty"`
}

// Summarize reports what part of the schedule has matured at now.
func Summarize(schedules []Schedule, now time.Time) (Summary, error) {
	var out Summary
	total, err := Total(schedules)
	if err != nil {
		return out, err
	}
	out.Total = total
	ts := uint64(0)
	if now.Unix() > 0 {
		ts = uint64(now.Unix())
	}
	for i := range schedules {
		s := schedules[i]
		if s.ReleaseTime <= ts {
			out.Released += s.Amount
			continue
		}
		if out.NextRelease == nil || s.ReleaseTime < out.NextRelease.ReleaseTime {
			next := s
			out.NextRelease = &next
		}
	}
	out.Locked = out.Total - out.Released
	return out, nil
}
