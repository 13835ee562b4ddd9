package validation

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/usecase/shape"
	pkgvalidator "github.com/johnquangdev/lti-omt/pkg/validator"
)

// isolationIDPattern is the full identifier format, stricter than the system-code prefix
var isolationIDPattern = regexp.MustCompile(`^` + entities.IsolationPrefix + `-\d{3}-\d{3}$`)

var answerFields = []string{"mocRequired", "partsRequired", "supportRequired"}

const (
	tagISODate   = "datetime=2006-01-02"
	tagTimestamp = "datetime=2006-01-02T15:04:05Z07:00"
	tagRiskLevel = "oneof=Critical High Medium Low"
	tagAnswer    = "oneof=Yes No"
)

// ValidateMeeting checks a raw meeting record, recursing into its isolations
func ValidateMeeting(raw []byte) (out Result) {
	defer recoverInto(&out)

	if !gjson.ValidBytes(raw) {
		return Result{IsValid: false, Errors: []string{"Meeting must be valid JSON"}}
	}
	return meeting(gjson.ParseBytes(raw))
}

// ValidateIsolation checks a raw isolation record
func ValidateIsolation(raw []byte) (out Result) {
	defer recoverInto(&out)

	if !gjson.ValidBytes(raw) {
		return Result{IsValid: false, Errors: []string{"Isolation must be valid JSON"}}
	}
	return isolation(gjson.ParseBytes(raw))
}

// ValidateResponse checks a raw response record
func ValidateResponse(raw []byte) (out Result) {
	defer recoverInto(&out)

	if !gjson.ValidBytes(raw) {
		return Result{IsValid: false, Errors: []string{"Response must be valid JSON"}}
	}
	return response(gjson.ParseBytes(raw))
}

func meeting(doc gjson.Result) Result {
	var res Result
	if !doc.IsObject() {
		res.add("Meeting must be an object")
		return res.finish()
	}

	date := shape.Lookup(doc, "date")
	switch {
	case !present(date):
		res.add("Meeting date is required")
	case !matches(shape.Text(date), tagISODate):
		res.add("Meeting date must be in YYYY-MM-DD format")
	}
	timestamp := shape.Lookup(doc, "timestamp")
	switch {
	case !present(timestamp):
		res.add("Meeting timestamp is required")
	case !matches(shape.Text(timestamp), tagTimestamp):
		res.add("Meeting timestamp must be an ISO 8601 date-time")
	}

	if attendees := shape.Lookup(doc, "attendees"); attendees.Exists() && !attendees.IsArray() {
		res.add("Attendees must be an array")
	}

	if isolations := shape.Lookup(doc, "isolations"); isolations.Exists() {
		if !isolations.IsArray() {
			res.add("Isolations must be an array")
		} else {
			index := 0
			isolations.ForEach(func(_, item gjson.Result) bool {
				index++
				res.merge("Isolation "+itoa(index)+": ", isolation(item))
				return true
			})
		}
	}

	if responses := shape.Lookup(doc, "responses"); responses.Exists() {
		if !responses.IsObject() {
			res.add("Responses must be an object")
		}
	}

	return res.finish()
}

func isolation(v gjson.Result) Result {
	var res Result
	if !v.IsObject() {
		res.add("Isolation must be an object")
		return res.finish()
	}

	id := shape.Lookup(v, "id")
	switch {
	case !present(id):
		res.add("Isolation ID is required")
	case !isolationIDPattern.MatchString(shape.Text(id)):
		res.add("Isolation ID must match format %s-NNN-NNN", entities.IsolationPrefix)
	}

	if shape.FirstText(v, shape.Names(shape.FieldDescription)) == "" {
		res.add("Isolation description is required")
	}

	if name, value, ok := shape.FirstPresent(v, shape.Names(shape.FieldPlannedStartDate)); ok && present(value) {
		if _, parsed := shape.ParseDate(shape.DateText(value)); !parsed {
			res.add("%s must be a valid date", name)
		}
	}

	return res.finish()
}

func response(v gjson.Result) Result {
	var res Result
	if !v.IsObject() {
		res.add("Response must be an object")
		return res.finish()
	}

	for _, name := range shape.Names(shape.FieldRiskLevel) {
		if value := shape.Lookup(v, name); value.Exists() && !matches(shape.Text(value), tagRiskLevel) {
			res.add("%s must be one of Critical, High, Medium, Low", name)
		}
	}

	for _, name := range answerFields {
		if value := shape.Lookup(v, name); value.Exists() && !matches(shape.Text(value), tagAnswer) {
			res.add("%s must be Yes or No", name)
		}
	}

	if items := shape.Lookup(v, "actionItems"); items.Exists() && !items.IsArray() {
		res.add("actionItems must be an array")
	}

	return res.finish()
}

// present reports whether a field exists and is not blank
func present(v gjson.Result) bool {
	if !v.Exists() || v.Type == gjson.Null {
		return false
	}
	if v.Type == gjson.String {
		return strings.TrimSpace(v.Str) != ""
	}
	return true
}

// matches runs a single validator tag against s
func matches(s, tag string) bool {
	if s == "" {
		return false
	}
	return pkgvalidator.Shared().Var(s, tag) == nil
}
