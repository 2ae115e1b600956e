// Package sanitize provides pure transforms that neutralize markup and
// query-operator tokens in arbitrarily nested request and response data.
//
// All transforms return a new structure and never mutate their input, so
// values already handed to other middleware stages cannot be aliased.
package sanitize

import (
	"errors"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ErrInjection is returned when a string leaf contains a denylisted
// query operator. The request must be rejected outright.
var ErrInjection = errors.New("potentially dangerous request")

var (
	scriptRE    = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	metaCharsRE = regexp.MustCompile(`[\$\[\]\{\}]`)

	strict = bluemonday.StrictPolicy()
)

// operators is the fixed deny list of query-operator tokens. A single
// substring match anywhere in a string leaf rejects the whole request.
var operators = []string{
	"$where", "$ne", "$gt", "$gte", "$lt", "$lte", "$in", "$nin",
	"$and", "$or", "$not", "$nor", "$exists", "$type", "$mod",
	"$regex", "$text", "$expr", "$jsonSchema", "$all", "$elemMatch",
	"$size",
}

// Escape walks v and HTML-escapes every string leaf, then removes any
// <script>...</script> fragment. Mapping keys and sequence order are
// preserved; non-string leaves pass through unchanged.
func Escape(v any) any {
	return mapStrings(v, func(s string) string {
		return scriptRE.ReplaceAllString(html.EscapeString(s), "")
	})
}

// StripTags walks v and strips all HTML tags and attributes from every
// string leaf. Applied to outbound payloads before serialization.
func StripTags(v any) any {
	return mapStrings(v, strict.Sanitize)
}

// CheckInjection scans every string leaf of v against the operator deny
// list. The first match rejects the request with ErrInjection; no
// further leaves are inspected. If no operator is present, the
// characters $ [ ] { } are stripped from string leaves and the
// rewritten structure is returned.
func CheckInjection(v any) (any, error) {
	if err := scan(v); err != nil {
		return nil, err
	}
	return mapStrings(v, func(s string) string {
		return metaCharsRE.ReplaceAllString(s, "")
	}), nil
}

func scan(v any) error {
	switch val := v.(type) {
	case string:
		for _, op := range operators {
			if strings.Contains(val, op) {
				return ErrInjection
			}
		}
	case []any:
		for _, item := range val {
			if err := scan(item); err != nil {
				return err
			}
		}
	case map[string]any:
		for _, item := range val {
			if err := scan(item); err != nil {
				return err
			}
		}
	}
	return nil
}

// mapStrings rebuilds v with fn applied to every string leaf.
func mapStrings(v any, fn func(string) string) any {
	switch val := v.(type) {
	case string:
		return fn(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = mapStrings(item, fn)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = mapStrings(item, fn)
		}
		return out
	default:
		return v
	}
}
