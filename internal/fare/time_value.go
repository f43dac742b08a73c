package fare

import (
	"fmt"
	"strconv"
	"strings"

	"railbooking.org/internal/apierror"
)

// TimeValue is a validated time of day.
type TimeValue struct {
	hour   int
	minute int
}

// NewTimeValue builds a TimeValue, failing with a range error when hour is
// outside 0-23 or minute is outside 0-59.
func NewTimeValue(hour, minute int) (TimeValue, error) {
	if hour < 0 || hour > 23 {
		return TimeValue{}, apierror.Range("", apierror.MsgHourOutOfRange)
	}
	if minute < 0 || minute > 59 {
		return TimeValue{}, apierror.Range("", apierror.MsgMinuteOutOfRange)
	}

	return TimeValue{hour: hour, minute: minute}, nil
}

// ParseTimeValue parses "HH:MM". Both parts must be integers; a missing
// separator or a non integer part is a format error.
func ParseTimeValue(text string) (TimeValue, error) {
	hourText, minuteText, found := strings.Cut(text, ":")
	if !found {
		return TimeValue{}, apierror.Format("", apierror.MsgTimeInvalidFormat)
	}

	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return TimeValue{}, apierror.Format("", apierror.MsgTimeInvalidFormat)
	}

	minute, err := strconv.Atoi(minuteText)
	if err != nil {
		return TimeValue{}, apierror.Format("", apierror.MsgTimeInvalidFormat)
	}

	return NewTimeValue(hour, minute)
}

func (t TimeValue) Hour() int {
	return t.hour
}

func (t TimeValue) Minute() int {
	return t.minute
}

// Comparable returns the key used against discount windows: hour + minute/100.
// It is not elapsed time (10:30 is 10.30, not 10.5); discount windows are
// expressed on the same scale.
func (t TimeValue) Comparable() float64 {
	return float64(t.hour) + float64(t.minute)/100
}

func (t TimeValue) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}
