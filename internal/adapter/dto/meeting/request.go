package meeting

// IsolationRef identifies an isolation in relationship queries
type IsolationRef struct {
	ID          string `json:"id" validate:"required"`
	Description string `json:"description,omitempty"`
}

// RelatedRequest is the body of POST /isolations/related
type RelatedRequest struct {
	Target     IsolationRef   `json:"target" validate:"required"`
	Isolations []IsolationRef `json:"isolations" validate:"required,dive"`
}

// ListArchiveRequest holds the query of GET /exports/archive
type ListArchiveRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
}
