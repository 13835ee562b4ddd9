package shape

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
)

// ParseIsolation normalizes one isolation object; ok is false for non-objects
func ParseIsolation(v gjson.Result) (entities.Isolation, bool) {
	if !v.IsObject() {
		return entities.Isolation{}, false
	}
	return entities.Isolation{
		ID:               FirstText(v, Names(FieldID)),
		Description:      FirstText(v, Names(FieldDescription)),
		PlannedStartDate: FirstDate(v, Names(FieldPlannedStartDate)),
		Raw:              json.RawMessage(v.Raw),
	}, true
}

// ParseIsolations normalizes an isolations array in order, skipping non-objects
func ParseIsolations(v gjson.Result) []entities.Isolation {
	if !v.IsArray() {
		return nil
	}
	out := make([]entities.Isolation, 0)
	v.ForEach(func(_, item gjson.Result) bool {
		if iso, ok := ParseIsolation(item); ok {
			out = append(out, iso)
		}
		return true
	})
	return out
}

// ParseResponse normalizes one response object. Anything that is not an object
// yields the zero Response.
func ParseResponse(v gjson.Result) entities.Response {
	if !v.IsObject() {
		return entities.Response{}
	}
	return entities.Response{
		RiskLevel:                 entities.RiskLevel(FirstText(v, Names(FieldRiskLevel))),
		IsolationDuration:         Text(Lookup(v, "isolationDuration")),
		BusinessImpact:            Text(Lookup(v, "businessImpact")),
		MOCRequired:               Answer(Lookup(v, "mocRequired")),
		MOCNumber:                 Text(Lookup(v, "mocNumber")),
		PartsRequired:             Answer(Lookup(v, "partsRequired")),
		PartsExpectedDate:         DateText(Lookup(v, "partsExpectedDate")),
		SupportRequired:           Answer(Lookup(v, "supportRequired")),
		Comments:                  Text(Lookup(v, "comments")),
		ActionItems:               ParseActionItems(Lookup(v, "actionItems")),
		CorrosionRisk:             Answer(Lookup(v, "corrosionRisk")),
		CorrosionRiskComment:      FirstText(v, Names(FieldCorrosionRiskComment)),
		DeadLegsRisk:              Answer(Lookup(v, "deadLegsRisk")),
		DeadLegsRiskComment:       FirstText(v, Names(FieldDeadLegsRiskComment)),
		AutomationLossRisk:        Answer(Lookup(v, "automationLossRisk")),
		AutomationLossRiskComment: FirstText(v, Names(FieldAutomationLossRiskComment)),
		Description:               FirstText(v, Names(FieldDescription)),
		PlannedStartDate:          FirstDate(v, Names(FieldPlannedStartDate)),
	}
}

// ParseActionItems keeps one entry per array element so counts match the
// source sequence even when elements are malformed.
func ParseActionItems(v gjson.Result) []entities.ActionItem {
	if !v.IsArray() {
		return nil
	}
	out := make([]entities.ActionItem, 0)
	v.ForEach(func(_, item gjson.Result) bool {
		switch {
		case item.IsObject():
			out = append(out, entities.ActionItem{
				Description: FirstText(item, Names(FieldActionDescription)),
				Owner:       FirstText(item, Names(FieldActionOwner)),
			})
		default:
			out = append(out, entities.ActionItem{Description: Text(item)})
		}
		return true
	})
	return out
}

// ParseResponses normalizes a responses mapping, returning its keys in document order
func ParseResponses(v gjson.Result) (map[string]entities.Response, []string) {
	responses := make(map[string]entities.Response)
	var order []string
	if !v.IsObject() {
		return responses, order
	}
	v.ForEach(func(key, value gjson.Result) bool {
		id := key.String()
		if _, dup := responses[id]; !dup {
			order = append(order, id)
		}
		responses[id] = ParseResponse(value)
		return true
	})
	return responses, order
}

// hasResponseFields reports whether an isolation-shaped object also carries findings
func hasResponseFields(v gjson.Result) bool {
	for _, name := range []string{"riskLevel", "risk", "actionItems", "comments", "mocRequired", "isolationDuration"} {
		if Lookup(v, name).Exists() {
			return true
		}
	}
	return false
}

// ParseMeetingData reads a pre-computed meetingData block. nil means the block
// carries no statistics (older records used meetingData only to nest isolations).
func ParseMeetingData(md gjson.Result) *entities.MeetingData {
	summary := Lookup(md, "executiveSummary")
	analysis := Lookup(md, "riskAnalysis")
	if !summary.IsObject() && !analysis.IsObject() {
		return nil
	}

	data := &entities.MeetingData{
		ExecutiveSummary: entities.ExecutiveSummary{
			TotalIsolationsReviewed:  int(Lookup(summary, "totalIsolationsReviewed").Int()),
			ReviewedCount:            int(Lookup(summary, "reviewedCount").Int()),
			CriticalFindings:         int(Lookup(summary, "criticalFindings").Int()),
			ActionItemsGenerated:     int(Lookup(summary, "actionItemsGenerated").Int()),
			MeetingEfficiencyScore:   int(Lookup(summary, "meetingEfficiencyScore").Int()),
			RelatedIsolationWarnings: parseWarnings(Lookup(summary, "relatedIsolationWarnings")),
		},
		RiskAnalysis: entities.RiskAnalysis{Distribution: entities.NewRiskDistribution()},
	}

	if info := Lookup(md, "meetingInfo"); info.IsObject() {
		data.MeetingInfo = entities.MeetingInfo{
			Date:      Text(Lookup(info, "date")),
			Attendees: Strings(Lookup(info, "attendees")),
		}
	}

	dist := Lookup(analysis, "distribution")
	for _, level := range entities.RiskLevels {
		slot := Lookup(dist, string(level))
		switch {
		case slot.IsObject():
			data.RiskAnalysis.Distribution[level] = entities.RiskBucket{
				Count:      int(Lookup(slot, "count").Int()),
				Percentage: Lookup(slot, "percentage").Float(),
			}
		case slot.Type == gjson.Number:
			// early records stored bare counts
			data.RiskAnalysis.Distribution[level] = entities.RiskBucket{Count: int(slot.Int())}
		}
	}
	return data
}

func parseWarnings(v gjson.Result) []entities.RelatedIsolationWarning {
	out := make([]entities.RelatedIsolationWarning, 0)
	v.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		w := entities.RelatedIsolationWarning{
			IsolationID:          Text(Lookup(item, "isolationId")),
			IsolationDescription: Text(Lookup(item, "isolationDescription")),
			RelatedIDs:           Strings(Lookup(item, "relatedIds")),
		}
		if count := Lookup(item, "relatedCount"); count.Exists() {
			w.RelatedCount = int(count.Int())
		} else {
			w.RelatedCount = len(w.RelatedIDs)
		}
		out = append(out, w)
		return true
	})
	return out
}
