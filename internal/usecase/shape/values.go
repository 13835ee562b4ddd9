package shape

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
)

// Lookup returns the member of obj named exactly name. Member names in legacy
// records contain spaces and punctuation, so no path syntax is involved.
func Lookup(obj gjson.Result, name string) gjson.Result {
	var out gjson.Result
	if !obj.IsObject() {
		return out
	}
	obj.ForEach(func(key, value gjson.Result) bool {
		if key.String() == name {
			out = value
			return false
		}
		return true
	})
	return out
}

// Text returns the textual value of v; only strings and numbers count as text
func Text(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	}
	return ""
}

// FirstText returns the first non-blank text among names
func FirstText(obj gjson.Result, names []string) string {
	for _, name := range names {
		if s := Text(Lookup(obj, name)); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// FirstPresent returns the name and value of the first member of obj present under names
func FirstPresent(obj gjson.Result, names []string) (string, gjson.Result, bool) {
	for _, name := range names {
		if v := Lookup(obj, name); v.Exists() {
			return name, v, true
		}
	}
	return "", gjson.Result{}, false
}

// Answer reads a Yes/No field; JSON booleans from older records map onto Yes/No
func Answer(v gjson.Result) string {
	switch v.Type {
	case gjson.True:
		return entities.AnswerYes
	case gjson.False:
		return entities.AnswerNo
	}
	return Text(v)
}

// DateText reads a date field; spreadsheet serial numbers are rendered as ISO dates
func DateText(v gjson.Result) string {
	if v.Type == gjson.Number {
		if t, ok := ParseDate(v.Raw); ok {
			return t.Format("2006-01-02")
		}
	}
	return Text(v)
}

// FirstDate is FirstText for date fields
func FirstDate(obj gjson.Result, names []string) string {
	for _, name := range names {
		if s := DateText(Lookup(obj, name)); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// Strings returns the textual elements of an array, skipping anything else
func Strings(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}
	out := make([]string, 0)
	v.ForEach(func(_, item gjson.Result) bool {
		if s := Text(item); s != "" {
			out = append(out, s)
		} else if name := Text(Lookup(item, "name")); name != "" {
			out = append(out, name)
		}
		return true
	})
	return out
}
