package shape

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
)

// MaxSearchDepth bounds the recursive search for isolation-shaped objects
const MaxSearchDepth = 6

// derivedBlocks are the statistics members of meetingData. Their warnings carry
// isolation IDs but are not isolation data.
var derivedBlocks = map[string]bool{
	"executiveSummary": true,
	"riskAnalysis":     true,
}

// deepResult collects what the recursive search recovered, in document order
type deepResult struct {
	isolations []entities.Isolation
	responses  map[string]entities.Response
	seen       map[string]bool
}

// DeepSearch is the last-resort recovery strategy for records whose isolation
// data sits at an unknown location. An object counts as an isolation when its
// member name, or its id/isolationId field, starts with the isolation prefix.
// Matched objects are not searched further. Objects deeper than maxDepth are ignored.
func DeepSearch(doc gjson.Result, maxDepth int) ([]entities.Isolation, map[string]entities.Response) {
	res := &deepResult{
		responses: make(map[string]entities.Response),
		seen:      make(map[string]bool),
	}
	res.walk(doc, "", 0, maxDepth)
	return res.isolations, res.responses
}

func (r *deepResult) walk(v gjson.Result, name string, depth, maxDepth int) {
	if depth > maxDepth {
		return
	}
	switch {
	case v.IsObject():
		if depth > 0 {
			if id, ok := isolationID(name, v); ok {
				r.add(id, v)
				return
			}
		}
		v.ForEach(func(key, child gjson.Result) bool {
			if name == "meetingData" && derivedBlocks[key.String()] {
				return true
			}
			r.walk(child, key.String(), depth+1, maxDepth)
			return true
		})
	case v.IsArray():
		v.ForEach(func(_, child gjson.Result) bool {
			r.walk(child, "", depth+1, maxDepth)
			return true
		})
	}
}

func (r *deepResult) add(id string, v gjson.Result) {
	if r.seen[id] {
		return
	}
	r.seen[id] = true

	iso, _ := ParseIsolation(v)
	iso.ID = id
	r.isolations = append(r.isolations, iso)
	if hasResponseFields(v) {
		r.responses[id] = ParseResponse(v)
	}
}

func isolationID(name string, v gjson.Result) (string, bool) {
	for _, field := range []string{"id", "isolationId"} {
		if id := Text(Lookup(v, field)); strings.HasPrefix(id, entities.IsolationPrefix) {
			return id, true
		}
	}
	if strings.HasPrefix(name, entities.IsolationPrefix) {
		return name, true
	}
	return "", false
}
