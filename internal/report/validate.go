package report

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InputError reports a birth parameter outside the civil input domain.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsInputError reports whether err is an InputError, unwrapping as needed.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

func validate(req Request) error {
	if req.Month < 1 || req.Month > 12 {
		return &InputError{Field: "month", Reason: fmt.Sprintf("must be 1..12, got %d", req.Month)}
	}
	if req.Day < 1 || req.Day > 31 {
		return &InputError{Field: "day", Reason: fmt.Sprintf("must be 1..31, got %d", req.Day)}
	}
	if req.Hour < 0 || req.Hour > 23 {
		return &InputError{Field: "hour", Reason: fmt.Sprintf("must be 0..23, got %d", req.Hour)}
	}
	if req.Minute < 0 || req.Minute > 59 {
		return &InputError{Field: "minute", Reason: fmt.Sprintf("must be 0..59, got %d", req.Minute)}
	}
	if math.IsNaN(req.TZHours) || math.IsInf(req.TZHours, 0) {
		return &InputError{Field: "timezone", Reason: "must be finite"}
	}
	if math.IsNaN(req.Longitude) || math.IsInf(req.Longitude, 0) {
		return &InputError{Field: "longitude", Reason: "must be finite"}
	}
	if req.Cycles < 0 {
		return &InputError{Field: "cycles", Reason: fmt.Sprintf("must be non-negative, got %d", req.Cycles)}
	}
	return nil
}

// ParseDate parses "YYYY-MM-DD" into numeric parts with range checks.
func ParseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, &InputError{Field: "date", Reason: fmt.Sprintf("want YYYY-MM-DD, got %q", s)}
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, &InputError{Field: "date", Reason: fmt.Sprintf("non-numeric part %q", p)}
		}
		nums[i] = n
	}
	year, month, day = nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, &InputError{Field: "date", Reason: fmt.Sprintf("out of civil range: %q", s)}
	}
	return year, month, day, nil
}

// ParseTime parses "HH:MM" into numeric parts with range checks. An empty
// string defaults to noon.
func ParseTime(s string) (hour, minute int, err error) {
	if s == "" {
		return 12, 0, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, &InputError{Field: "time", Reason: fmt.Sprintf("want HH:MM, got %q", s)}
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return 0, 0, &InputError{Field: "time", Reason: fmt.Sprintf("non-numeric part in %q", s)}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, &InputError{Field: "time", Reason: fmt.Sprintf("out of range: %q", s)}
	}
	return h, m, nil
}
