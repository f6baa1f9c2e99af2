package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLinkID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"raw bet id", "example-bet", "example-bet"},
		{"too short code", "ab", ""},
		{"minimum length code", "abcd", "abcd"},
		{"app share code", "bet/example-bet", "example-bet"},
		{"creator share code", "creator/creator_example", "creator_example"},
		{"full url", "https://betthat.app/bet/example-bet", "example-bet"},
		{"full creator url", "https://betthat.app/creator/abc123", "abc123"},
		{"pasted with spaces", "  https://betthat.app/bet/exa mple-bet  ", "example-bet"},
		{"nested path keeps last segment", "https://x.dev/share/bet/deep-id", "deep-id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLinkID(tt.value))
		})
	}
}

func TestBuildLinks(t *testing.T) {
	assert.Equal(t, "bet/abc", BetLink("abc"))
	assert.Equal(t, "creator/xyz", CreatorLink("xyz"))
}
