package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMeeting_Valid(t *testing.T) {
	res := ValidateMeeting([]byte(`{
		"date": "2024-03-01",
		"timestamp": "2024-03-01T10:00:00Z",
		"attendees": ["Ana"],
		"isolations": [{"id": "CAHE-123-001", "description": "Pump"}],
		"responses": {"CAHE-123-001": {"riskLevel": "High"}}
	}`))

	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.NotNil(t, res.Errors)
}

func TestValidateMeeting_MissingAndMalformedFields(t *testing.T) {
	res := ValidateMeeting([]byte(`{"date": "03/01/2024", "attendees": "Ana", "isolations": {}, "responses": []}`))

	assert.False(t, res.IsValid)
	assert.Equal(t, []string{
		"Meeting date must be in YYYY-MM-DD format",
		"Meeting timestamp is required",
		"Attendees must be an array",
		"Isolations must be an array",
		"Responses must be an object",
	}, res.Errors)
}

func TestValidateMeeting_RecursesIntoIsolations(t *testing.T) {
	res := ValidateMeeting([]byte(`{"date":"2024-03-01","timestamp":"2024-03-01T10:00:00.000Z","isolations":[{"id":"CAHE-123-001","title":"ok"},{"id":"CAHE-12-1"}]}`))

	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 2)
	assert.True(t, strings.HasPrefix(res.Errors[0], "Isolation 2: Isolation ID must match"))
	assert.Equal(t, "Isolation 2: Isolation description is required", res.Errors[1])
}

func TestValidateMeeting_RejectsImpossibleDate(t *testing.T) {
	res := ValidateMeeting([]byte(`{"date":"2024-02-30","timestamp":"2024-02-28T08:15:00+07:00"}`))
	assert.Equal(t, []string{"Meeting date must be in YYYY-MM-DD format"}, res.Errors)
}

func TestValidateMeeting_ParsesTimestamp(t *testing.T) {
	for _, ts := range []string{"2024-03-01T10:00:00Z", "2024-03-01T10:00:00.000Z", "2024-03-01T17:00:00+07:00"} {
		res := ValidateMeeting([]byte(`{"date":"2024-03-01","timestamp":"` + ts + `"}`))
		assert.True(t, res.IsValid, ts)
	}

	for _, ts := range []string{"yesterday", "2024-03-01", "2024-03-01 10:00:00", "2024-13-01T10:00:00Z"} {
		res := ValidateMeeting([]byte(`{"date":"2024-03-01","timestamp":"` + ts + `"}`))
		assert.Equal(t, []string{"Meeting timestamp must be an ISO 8601 date-time"}, res.Errors, ts)
	}
}

func TestValidateIsolation(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"canonical", `{"id":"CAHE-123-456","description":"d"}`, true},
		{"legacy description", `{"id":"CAHE-123-456","Isolation Description":"d"}`, true},
		{"prefix only", `{"id":"CAHE-123","description":"d"}`, false},
		{"four digits", `{"id":"CAHE-1234-456","description":"d"}`, false},
		{"trailing text", `{"id":"CAHE-123-456x","description":"d"}`, false},
		{"missing id", `{"description":"d"}`, false},
		{"bad start date", `{"id":"CAHE-123-456","description":"d","plannedStartDate":"soon"}`, false},
		{"good start date", `{"id":"CAHE-123-456","description":"d","Planned Start Date":"2024-01-01"}`, true},
		{"serial start date", `{"id":"CAHE-123-456","description":"d","startDate":45000}`, true},
		{"not an object", `"CAHE-123-456"`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateIsolation([]byte(tc.raw))
			assert.Equal(t, tc.valid, res.IsValid, res.Errors)
		})
	}
}

func TestValidateResponse(t *testing.T) {
	assert.True(t, ValidateResponse([]byte(`{}`)).IsValid)
	assert.True(t, ValidateResponse([]byte(`{"risk":"Low","mocRequired":"No","partsRequired":"Yes","actionItems":[]}`)).IsValid)

	res := ValidateResponse([]byte(`{"riskLevel":"Severe","mocRequired":"yes","actionItems":{}}`))
	assert.False(t, res.IsValid)
	assert.Equal(t, []string{
		"riskLevel must be one of Critical, High, Medium, Low",
		"mocRequired must be Yes or No",
		"actionItems must be an array",
	}, res.Errors)
}

func TestValidateResponse_ChecksEveryRiskSynonym(t *testing.T) {
	res := ValidateResponse([]byte(`{"riskLevel":"High","risk":"Bogus"}`))
	assert.Equal(t, []string{"risk must be one of Critical, High, Medium, Low"}, res.Errors)

	assert.True(t, ValidateResponse([]byte(`{"riskLevel":"High","risk":"Low"}`)).IsValid)
}

func TestValidators_InvalidJSONIsAResult(t *testing.T) {
	for _, res := range []Result{
		ValidateMeeting([]byte(`{`)),
		ValidateIsolation(nil),
		ValidateResponse([]byte(`nope`)),
	} {
		assert.False(t, res.IsValid)
		assert.Len(t, res.Errors, 1)
	}
}

func TestRecoverInto(t *testing.T) {
	run := func() (out Result) {
		defer recoverInto(&out)
		panic("boom")
	}

	res := run()
	assert.False(t, res.IsValid)
	assert.Equal(t, []string{"Validation error: boom"}, res.Errors)
}
