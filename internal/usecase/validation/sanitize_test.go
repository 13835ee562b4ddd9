package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	cases := map[string]string{
		"  Ana  ":                                     "Ana",
		"Bo<script>alert(1)</script>":                 "Bo",
		"<SCRIPT type=\"x\">\nsteal()\n</SCRIPT > Cy": "Cy",
		"JavaScript:alert(1)":                         "alert(1)",
		`<img onerror="x" src=y>`:                     `<img "x" src=y>`,
		"onion = vegetable":                           "vegetable",
		"plain text":                                  "plain text",
	}
	for input, want := range cases {
		assert.Equal(t, want, SanitizeString(input), input)
	}
}

func TestSanitize_PassesNonStringsThrough(t *testing.T) {
	assert.Equal(t, 42, Sanitize(42))
	assert.Nil(t, Sanitize(nil))
	assert.Equal(t, "x", Sanitize(" x "))
}
