// Package relation detects isolations that share equipment through their system code.
package relation

import (
	"regexp"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
)

// systemCodePattern captures the three-digit group right after "CAHE-". A fourth
// digit means the ID does not conform.
var systemCodePattern = regexp.MustCompile(`^` + entities.IsolationPrefix + `-(\d{3})(?:\D|$)`)

// SystemCode extracts the system code from an isolation ID
func SystemCode(id string) (string, bool) {
	match := systemCodePattern.FindStringSubmatch(id)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// FindRelated returns, in input order, every isolation in all whose system code
// equals target's. The target itself (same ID) is never included and
// non-conforming IDs never match.
func FindRelated(all []entities.Isolation, target entities.Isolation) []entities.Isolation {
	code, ok := SystemCode(target.ID)
	if !ok {
		return nil
	}

	var related []entities.Isolation
	for _, candidate := range all {
		if candidate.ID == target.ID {
			continue
		}
		if other, ok := SystemCode(candidate.ID); ok && other == code {
			related = append(related, candidate)
		}
	}
	return related
}
