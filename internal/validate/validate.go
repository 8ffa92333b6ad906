package validate

import (
	"fmt"
	"math"
	"net/mail"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Errors maps a dot-joined field path to a single human-readable message.
// The first message recorded for a path wins; later rules for the same
// path are ignored so every failing field reports exactly one reason.
type Errors map[string]string

func (e Errors) Add(path, message string) {
	path = strings.TrimSpace(path)
	message = strings.TrimSpace(message)
	if path == "" || message == "" {
		return
	}
	if _, exists := e[path]; exists {
		return
	}
	e[path] = message
}

func (e Errors) Has() bool {
	return len(e) > 0
}

// Paths returns the failing field paths in sorted order.
func (e Errors) Paths() []string {
	paths := make([]string, 0, len(e))
	for path := range e {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Join builds a nested field path, e.g. Join("salary", "min") -> "salary.min".
func Join(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ".")
}

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	alnumPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// Checker accumulates rule failures across a whole input in one pass. It
// never stops at the first failure; callers run every rule and then inspect
// the collected error map.
type Checker struct {
	errs Errors
}

func NewChecker() *Checker {
	return &Checker{errs: Errors{}}
}

func (c *Checker) Errors() Errors {
	return c.errs
}

func (c *Checker) Failed() bool {
	return c.errs.Has()
}

func (c *Checker) Add(path, message string) {
	c.errs.Add(path, message)
}

// String trims the value, enforces presence and length bounds, and returns
// the normalized form. A zero min marks the field optional.
func (c *Checker) String(path, value string, min, max int) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if min > 0 {
			c.Add(path, "is required")
		}
		return ""
	}
	if len(trimmed) < min {
		c.Add(path, fmt.Sprintf("must be at least %d characters", min))
		return trimmed
	}
	if max > 0 && len(trimmed) > max {
		c.Add(path, fmt.Sprintf("must be at most %d characters", max))
	}
	return trimmed
}

// Email trims, lower-cases and checks the value against RFC 5322 address
// grammar, returning the normalized address.
func (c *Checker) Email(path, value string, required bool) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		if required {
			c.Add(path, "is required")
		}
		return ""
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		c.Add(path, "must be a valid email address")
		return trimmed
	}
	return trimmed
}

// Date enforces the strict YYYY-MM-DD lexical pattern and calendar validity:
// "2023-02-30" matches the pattern but is rejected because it does not
// round-trip through time.Parse.
func (c *Checker) Date(path, value string, required bool) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			c.Add(path, "is required")
		}
		return time.Time{}, false
	}
	if !datePattern.MatchString(trimmed) {
		c.Add(path, "must be a date in YYYY-MM-DD format")
		return time.Time{}, false
	}
	parsed, err := time.Parse("2006-01-02", trimmed)
	if err != nil || parsed.Format("2006-01-02") != trimmed {
		c.Add(path, "must be a valid calendar date")
		return time.Time{}, false
	}
	return parsed, true
}

// Enum checks case-sensitive membership in a closed literal set.
func (c *Checker) Enum(path, value string, allowed []string, required bool) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			c.Add(path, "is required")
		}
		return ""
	}
	for _, candidate := range allowed {
		if trimmed == candidate {
			return trimmed
		}
	}
	c.Add(path, "must be one of "+strings.Join(allowed, ", "))
	return trimmed
}

// Number enforces finiteness and an inclusive range.
func (c *Checker) Number(path string, value, min, max float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		c.Add(path, "must be a finite number")
		return 0
	}
	if value < min {
		c.Add(path, fmt.Sprintf("must be at least %s", trimFloat(min)))
		return value
	}
	if value > max {
		c.Add(path, fmt.Sprintf("must be at most %s", trimFloat(max)))
	}
	return value
}

// Positive enforces a strictly positive finite number with an upper sanity
// bound.
func (c *Checker) Positive(path string, value, max float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		c.Add(path, "must be a finite number")
		return 0
	}
	if value <= 0 {
		c.Add(path, "must be greater than zero")
		return value
	}
	if value > max {
		c.Add(path, fmt.Sprintf("must be at most %s", trimFloat(max)))
	}
	return value
}

// Token enforces a non-empty alphanumeric identifier with a length cap.
func (c *Checker) Token(path, value string, max int) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		c.Add(path, "is required")
		return ""
	}
	if !alnumPattern.MatchString(trimmed) {
		c.Add(path, "must contain only letters and digits")
		return trimmed
	}
	if max > 0 && len(trimmed) > max {
		c.Add(path, fmt.Sprintf("must be at most %d characters", max))
	}
	return trimmed
}

// ClockTime accepts HH:MM on a 24-hour clock.
func (c *Checker) ClockTime(path, value string, required bool) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			c.Add(path, "is required")
		}
		return ""
	}
	if _, err := time.Parse("15:04", trimmed); err != nil {
		c.Add(path, "must be a time in HH:MM format")
	}
	return trimmed
}

func trimFloat(v float64) string {
	formatted := fmt.Sprintf("%.2f", v)
	formatted = strings.TrimRight(formatted, "0")
	return strings.TrimRight(formatted, ".")
}
