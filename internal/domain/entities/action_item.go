package entities

// ActionItem is one follow-up recorded against an isolation during a meeting
type ActionItem struct {
	Description string `json:"description"`
	Owner       string `json:"owner"`
}

// Empty reports whether neither field carries text; legacy records sometimes
// store placeholders in the actionItems sequence.
func (a ActionItem) Empty() bool {
	return a.Description == "" && a.Owner == ""
}
