package entities

// MeetingEfficiencyScore is reported verbatim in every executive summary; it is
// not derived from meeting inputs.
const MeetingEfficiencyScore = 95

// MeetingInfo is the descriptive part of a meeting passed to the aggregator
type MeetingInfo struct {
	Date      string   `json:"date"`
	Attendees []string `json:"attendees"`
}

// RelatedIsolationWarning flags isolations sharing a system code with others in the meeting
type RelatedIsolationWarning struct {
	IsolationID          string   `json:"isolationId"`
	IsolationDescription string   `json:"isolationDescription"`
	RelatedCount         int      `json:"relatedCount"`
	RelatedIDs           []string `json:"relatedIds"`
}

// ExecutiveSummary holds the headline figures of a meeting
type ExecutiveSummary struct {
	TotalIsolationsReviewed  int                       `json:"totalIsolationsReviewed"`
	ReviewedCount            int                       `json:"reviewedCount"`
	CriticalFindings         int                       `json:"criticalFindings"`
	ActionItemsGenerated     int                       `json:"actionItemsGenerated"`
	MeetingEfficiencyScore   int                       `json:"meetingEfficiencyScore"`
	RelatedIsolationWarnings []RelatedIsolationWarning `json:"relatedIsolationWarnings"`
}

// RiskBucket is one slot of the risk distribution
type RiskBucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RiskAnalysis groups risk-level derived figures
type RiskAnalysis struct {
	Distribution map[RiskLevel]RiskBucket `json:"distribution"`
}

// MeetingData is the derived statistics block stored alongside newer meeting records
type MeetingData struct {
	MeetingInfo      MeetingInfo      `json:"meetingInfo"`
	ExecutiveSummary ExecutiveSummary `json:"executiveSummary"`
	RiskAnalysis     RiskAnalysis     `json:"riskAnalysis"`
}

// NewRiskDistribution returns a distribution with every canonical level at zero
func NewRiskDistribution() map[RiskLevel]RiskBucket {
	dist := make(map[RiskLevel]RiskBucket, len(RiskLevels))
	for _, level := range RiskLevels {
		dist[level] = RiskBucket{}
	}
	return dist
}
