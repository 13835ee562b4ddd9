package shape

// Field is a logical field whose value may live under several historical names
type Field string

const (
	FieldID                        Field = "id"
	FieldDescription               Field = "description"
	FieldPlannedStartDate          Field = "plannedStartDate"
	FieldRiskLevel                 Field = "riskLevel"
	FieldCorrosionRiskComment      Field = "corrosionRiskComment"
	FieldDeadLegsRiskComment       Field = "deadLegsRiskComment"
	FieldAutomationLossRiskComment Field = "automationLossRiskComment"
	FieldActionDescription         Field = "actionDescription"
	FieldActionOwner               Field = "actionOwner"
)

// Synonyms lists, per logical field, the source names tried in order. The first
// populated one wins.
var Synonyms = map[Field][]string{
	FieldID:                        {"id", "isolationId", "Isolation ID", "isolationNumber"},
	FieldDescription:               {"description", "isolationDescription", "Isolation Description", "Description", "desc", "title"},
	FieldPlannedStartDate:          {"plannedStartDate", "Planned Start Date", "startDate", "Start Date", "plannedStart", "dateCreated"},
	FieldRiskLevel:                 {"riskLevel", "risk"},
	FieldCorrosionRiskComment:      {"corrosionRiskComment", "corrosionComment"},
	FieldDeadLegsRiskComment:       {"deadLegsRiskComment", "deadLegsComment"},
	FieldAutomationLossRiskComment: {"automationLossRiskComment", "automationLossComment"},
	FieldActionDescription:         {"description", "action", "task"},
	FieldActionOwner:               {"owner", "assignee", "responsible"},
}

// Names returns the ordered synonym list for f
func Names(f Field) []string {
	return Synonyms[f]
}
