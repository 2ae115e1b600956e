// Package validate implements declarative per-field request validation.
//
// A Ruleset is an ordered list of field rules. Running it against decoded
// request data collects every violation rather than stopping at the first,
// and writes transformed/coerced values back over the originals so
// downstream code sees normalized input.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shoplite/shoplite-go/internal/model"
)

// Field declares the checks and transforms for a single request field.
// Fields are read from the decoded request body.
type Field struct {
	Name       string
	Optional   bool
	Transforms []func(string) string
	// Coerce converts the raw value to its target type. A non-empty
	// returned message is recorded as a violation and skips the checks.
	Coerce func(any) (any, string)
	Checks []func(any) []string
}

// Ruleset is an ordered list of field rules applied to one request.
type Ruleset []Field

// Apply runs every rule against data, returning all violations in rule
// order. Transformed and coerced values replace the originals in data.
func (rs Ruleset) Apply(data map[string]any) []model.ValidationError {
	var errs []model.ValidationError
	for _, f := range rs {
		value, present := data[f.Name]

		if s, ok := value.(string); ok {
			for _, tr := range f.Transforms {
				s = tr(s)
			}
			value = s
			data[f.Name] = s
		}

		if !present || value == nil || value == "" {
			if !f.Optional {
				errs = append(errs, violation(f, fmt.Sprintf("The %s field is required.", f.Name)))
			}
			continue
		}

		if f.Coerce != nil {
			coerced, msg := f.Coerce(value)
			if msg != "" {
				errs = append(errs, violation(f, msg))
				continue
			}
			value = coerced
			data[f.Name] = coerced
		}

		for _, check := range f.Checks {
			for _, msg := range check(value) {
				errs = append(errs, violation(f, msg))
			}
		}
	}
	return errs
}

func violation(f Field, msg string) model.ValidationError {
	return model.ValidationError{Field: f.Name, Message: msg, Location: model.LocationBody}
}

// Trim and Lower are the field transforms used by the rulesets.
var (
	Trim  = strings.TrimSpace
	Lower = strings.ToLower
)

// LengthBetween checks the rune length of a string value, inclusive.
func LengthBetween(min, max int, msg string) func(any) []string {
	return func(v any) []string {
		s, ok := v.(string)
		if !ok || len([]rune(s)) < min || len([]rune(s)) > max {
			return []string{msg}
		}
		return nil
	}
}

// MaxLength checks the rune length of a string value against a cap.
func MaxLength(max int, msg string) func(any) []string {
	return func(v any) []string {
		if s, ok := v.(string); !ok || len([]rune(s)) > max {
			return []string{msg}
		}
		return nil
	}
}

// Matches checks a string value against a pattern.
func Matches(re *regexp.Regexp, msg string) func(any) []string {
	return func(v any) []string {
		if s, ok := v.(string); !ok || !re.MatchString(s) {
			return []string{msg}
		}
		return nil
	}
}

// Min checks a coerced float64 value against a lower bound.
func Min(min float64, msg string) func(any) []string {
	return func(v any) []string {
		if f, ok := v.(float64); !ok || f < min {
			return []string{msg}
		}
		return nil
	}
}

// MinInt checks a coerced int value against a lower bound.
func MinInt(min int, msg string) func(any) []string {
	return func(v any) []string {
		if n, ok := v.(int); !ok || n < min {
			return []string{msg}
		}
		return nil
	}
}

// OneOf checks a string value for set membership.
func OneOf(allowed []string, msg string) func(any) []string {
	return func(v any) []string {
		s, ok := v.(string)
		if !ok {
			return []string{msg}
		}
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return []string{msg}
	}
}

// passwordSymbols is the accepted symbol class. Runes outside every
// class (spaces included) satisfy no requirement.
const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// Password checks complexity class by class and reports every missing
// class as its own violation: minimum length 8, at least one uppercase
// letter, lowercase letter, digit, and symbol.
func Password(v any) []string {
	s, ok := v.(string)
	if !ok {
		return []string{"The password must be a string."}
	}

	var msgs []string
	if len([]rune(s)) < 8 {
		msgs = append(msgs, "The password must be at least 8 characters.")
	}

	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}

	if !upper {
		msgs = append(msgs, "The password must contain at least one uppercase letter.")
	}
	if !lower {
		msgs = append(msgs, "The password must contain at least one lowercase letter.")
	}
	if !digit {
		msgs = append(msgs, "The password must contain at least one digit.")
	}
	if !symbol {
		msgs = append(msgs, "The password must contain at least one symbol.")
	}
	return msgs
}

// CoerceFloat accepts JSON numbers and numeric strings.
func CoerceFloat(msg string) func(any) (any, string) {
	return func(v any) (any, string) {
		switch val := v.(type) {
		case float64:
			return val, ""
		case string:
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, msg
			}
			return f, ""
		default:
			return nil, msg
		}
	}
}

// CoerceInt accepts whole JSON numbers and integer strings.
func CoerceInt(msg string) func(any) (any, string) {
	return func(v any) (any, string) {
		switch val := v.(type) {
		case float64:
			if val != float64(int(val)) {
				return nil, msg
			}
			return int(val), ""
		case string:
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, msg
			}
			return n, ""
		default:
			return nil, msg
		}
	}
}
