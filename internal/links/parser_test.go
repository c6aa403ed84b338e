package links

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "multiple lines with comment",
			raw:      "https://a\nhttps://b\n\n# comment\n https://c ",
			expected: []string{"https://a", "https://b", "https://c"},
		},
		{
			name:     "space separated",
			raw:      "https://x https://y    https://z",
			expected: []string{"https://x", "https://y", "https://z"},
		},
		{
			name:     "mixed separators",
			raw:      "https://a, https://b;https://c\nnotalink https://d",
			expected: []string{"https://a", "https://b", "https://c", "https://d"},
		},
		{
			name:     "deduplicate preserving first-seen order",
			raw:      "https://a https://b https://a https://c",
			expected: []string{"https://a", "https://b", "https://c"},
		},
		{
			name:     "non-http schemes dropped",
			raw:      "ftp://a mailto:x https://ok\nnot_a_url",
			expected: []string{"https://ok"},
		},
		{
			name:     "non-ascii noise dropped",
			raw:      "— not url — https://good\n» also noise",
			expected: []string{"https://good"},
		},
		{
			name:     "plain http accepted",
			raw:      "http://plain https://secure",
			expected: []string{"http://plain", "https://secure"},
		},
		{
			name:     "empty input",
			raw:      "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			raw:      "  \n\t \r ",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseText(test.raw))
		})
	}
}

func TestParseText_Idempotent(t *testing.T) {
	raw := "https://a, https://b;https://c\n# note\nnoise https://a https://d"
	first := ParseText(raw)
	second := ParseText(JoinText(first))
	assert.Equal(t, first, second)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.txt")
	require.NoError(t, os.WriteFile(path, []byte("https://f1\n# skip\nhttps://f2"), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://f1", "https://f2"}, got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}
