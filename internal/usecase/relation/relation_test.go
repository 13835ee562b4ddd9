package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
)

func isolations(ids ...string) []entities.Isolation {
	out := make([]entities.Isolation, 0, len(ids))
	for _, id := range ids {
		out = append(out, entities.Isolation{ID: id})
	}
	return out
}

func ids(list []entities.Isolation) []string {
	out := make([]string, 0, len(list))
	for _, iso := range list {
		out = append(out, iso.ID)
	}
	return out
}

func TestSystemCode(t *testing.T) {
	cases := []struct {
		id   string
		code string
		ok   bool
	}{
		{"CAHE-123-001", "123", true},
		{"CAHE-123", "123", true},
		{"CAHE-123A", "123", true},
		{"CAHE-1234-001", "", false},
		{"CAHE-12-001", "", false},
		{"XCAHE-123-001", "", false},
		{"cahe-123-001", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		code, ok := SystemCode(tc.id)
		assert.Equal(t, tc.ok, ok, tc.id)
		assert.Equal(t, tc.code, code, tc.id)
	}
}

func TestFindRelated_Mutual(t *testing.T) {
	all := isolations("CAHE-123-001", "CAHE-123-002", "CAHE-456-001")

	assert.Equal(t, []string{"CAHE-123-002"}, ids(FindRelated(all, all[0])))
	assert.Equal(t, []string{"CAHE-123-001"}, ids(FindRelated(all, all[1])))
	assert.Empty(t, FindRelated(all, all[2]))
}

func TestFindRelated_NeverIncludesTarget(t *testing.T) {
	all := isolations("CAHE-123-001", "CAHE-123-001", "CAHE-123-003")

	related := FindRelated(all, all[0])
	assert.Equal(t, []string{"CAHE-123-003"}, ids(related))
}

func TestFindRelated_NonConformingNeverMatch(t *testing.T) {
	all := isolations("CAHE-123-001", "CAHE-1234-001", "ABCD-123-001", "CAHE-12-001", "CAHE-123-009")

	assert.Equal(t, []string{"CAHE-123-009"}, ids(FindRelated(all, all[0])))
	assert.Empty(t, FindRelated(all, all[1]))
	assert.Empty(t, FindRelated(all, all[2]))
}

func TestFindRelated_PreservesInputOrder(t *testing.T) {
	all := isolations("CAHE-777-003", "CAHE-001-001", "CAHE-777-001", "CAHE-777-002")

	assert.Equal(t, []string{"CAHE-777-003", "CAHE-777-001"}, ids(FindRelated(all, all[3])))
}
