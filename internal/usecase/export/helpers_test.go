package export

import (
	"fmt"

	"github.com/tidwall/sjson"
)

func pad(n int) string {
	return fmt.Sprintf("%03d", n)
}

// setResponse adds a response with action items to a raw meeting
func setResponse(raw []byte, id string) ([]byte, error) {
	return sjson.SetRawBytes(raw, "responses."+id, []byte(`{"riskLevel":"Medium","comments":"follow up next week","actionItems":[{"description":"check","owner":"ops"}]}`))
}
