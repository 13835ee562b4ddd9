package export

// ArchiveResponse describes an archived export document
type ArchiveResponse struct {
	ID          string `json:"id"`
	ObjectName  string `json:"objectName"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	MeetingDate string `json:"meetingDate,omitempty"`
	CreatedAt   string `json:"createdAt"`
	URL         string `json:"url,omitempty"`
}

// ArchiveListResponse is the body of GET /exports/archive
type ArchiveListResponse struct {
	Items []ArchiveResponse `json:"items"`
	Count int               `json:"count"`
}
