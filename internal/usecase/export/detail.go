package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
)

// Assessment is one optional risk-assessment rating with its comment
type Assessment struct {
	Label   string
	Rating  string
	Comment string
}

// IsolationDetail is an isolation merged with its response, ready for rendering
type IsolationDetail struct {
	ID               string
	Description      string
	PlannedStartDate string
	Age              string

	RiskLevel         string
	IsolationDuration string
	BusinessImpact    string
	MOCRequired       string
	MOCNumber         string
	PartsRequired     string
	PartsExpectedDate string
	SupportRequired   string
	Comments          string
	Assessments       []Assessment
	ActionItems       []entities.ActionItem

	HasResponse bool
}

// ActionRequired reports whether the meeting raised any action item for the isolation
func (d IsolationDetail) ActionRequired() string {
	for _, item := range d.ActionItems {
		if !item.Empty() {
			return entities.AnswerYes
		}
	}
	return entities.AnswerNo
}

// BuildDetails merges every normalized isolation with its response by ID.
// Map-only records already carry isolations rebuilt from their response keys.
func BuildDetails(m *entities.Meeting, now time.Time) []IsolationDetail {
	details := make([]IsolationDetail, 0, len(m.Isolations))
	for _, iso := range m.Isolations {
		resp, ok := m.ResponseFor(iso.ID)
		details = append(details, merge(iso, resp, ok, now))
	}
	return details
}

func merge(iso entities.Isolation, resp entities.Response, hasResponse bool, now time.Time) IsolationDetail {
	description := iso.Description
	if description == "" {
		description = resp.Description
	}
	start := iso.PlannedStartDate
	if start == "" {
		start = resp.PlannedStartDate
	}

	d := IsolationDetail{
		ID:                iso.ID,
		Description:       description,
		PlannedStartDate:  start,
		Age:               FormatAge(start, now),
		RiskLevel:         string(resp.RiskLevel),
		IsolationDuration: resp.IsolationDuration,
		BusinessImpact:    resp.BusinessImpact,
		MOCRequired:       resp.MOCRequired,
		MOCNumber:         resp.MOCNumber,
		PartsRequired:     resp.PartsRequired,
		PartsExpectedDate: resp.PartsExpectedDate,
		SupportRequired:   resp.SupportRequired,
		Comments:          resp.Comments,
		ActionItems:       resp.ActionItems,
		HasResponse:       hasResponse,
	}

	for _, a := range []Assessment{
		{Label: "Corrosion Risk", Rating: resp.CorrosionRisk, Comment: resp.CorrosionRiskComment},
		{Label: "Dead Legs Risk", Rating: resp.DeadLegsRisk, Comment: resp.DeadLegsRiskComment},
		{Label: "Automation Loss Risk", Rating: resp.AutomationLossRisk, Comment: resp.AutomationLossRiskComment},
	} {
		if a.Rating != "" || a.Comment != "" {
			d.Assessments = append(d.Assessments, a)
		}
	}
	return d
}

// FormatActionItems flattens action items as "{description} (Owner: {owner})" joined by "; "
func FormatActionItems(items []entities.ActionItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.Empty() {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (Owner: %s)", OrNA(item.Description), OrNA(item.Owner)))
	}
	return strings.Join(parts, "; ")
}
