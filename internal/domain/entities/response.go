package entities

// RiskLevel is the meeting's risk rating for an isolation
type RiskLevel string

const (
	RiskCritical RiskLevel = "Critical"
	RiskHigh     RiskLevel = "High"
	RiskMedium   RiskLevel = "Medium"
	RiskLow      RiskLevel = "Low"
)

// RiskLevels lists the canonical levels from most to least severe
var RiskLevels = []RiskLevel{RiskCritical, RiskHigh, RiskMedium, RiskLow}

// Valid reports whether r is one of the canonical levels
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskCritical, RiskHigh, RiskMedium, RiskLow:
		return true
	}
	return false
}

// IsCriticalFinding reports whether r counts towards the critical findings figure
func (r RiskLevel) IsCriticalFinding() bool {
	return r == RiskCritical || r == RiskHigh
}

// Yes/No answers used by the boolean-as-string response fields
const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

// Response holds the meeting's findings for one isolation
type Response struct {
	RiskLevel         RiskLevel    `json:"riskLevel,omitempty"`
	IsolationDuration string       `json:"isolationDuration,omitempty"`
	BusinessImpact    string       `json:"businessImpact,omitempty"`
	MOCRequired       string       `json:"mocRequired,omitempty"`
	MOCNumber         string       `json:"mocNumber,omitempty"`
	PartsRequired     string       `json:"partsRequired,omitempty"`
	PartsExpectedDate string       `json:"partsExpectedDate,omitempty"`
	SupportRequired   string       `json:"supportRequired,omitempty"`
	Comments          string       `json:"comments,omitempty"`
	ActionItems       []ActionItem `json:"actionItems,omitempty"`

	CorrosionRisk             string `json:"corrosionRisk,omitempty"`
	CorrosionRiskComment      string `json:"corrosionRiskComment,omitempty"`
	DeadLegsRisk              string `json:"deadLegsRisk,omitempty"`
	DeadLegsRiskComment       string `json:"deadLegsRiskComment,omitempty"`
	AutomationLossRisk        string `json:"automationLossRisk,omitempty"`
	AutomationLossRiskComment string `json:"automationLossRiskComment,omitempty"`

	// Legacy map-only meetings sometimes carried the isolation's own fields on the response
	Description      string `json:"description,omitempty"`
	PlannedStartDate string `json:"plannedStartDate,omitempty"`
}
