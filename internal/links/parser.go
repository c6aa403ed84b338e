package links

import (
	"fmt"
	"os"
	"strings"
)

// Separators treated as line breaks before parsing
const normalizedSeparators = "\t,;\r"

// URL scheme prefixes accepted by the parser
const (
	PrefixHTTP  = "http://"
	PrefixHTTPS = "https://"
)

// Comment marker for links files and pasted text
const CommentPrefix = "#"

// ParseText extracts an ordered, de-duplicated list of HTTP(S) URLs from
// free-form text. Tabs, commas, semicolons and carriage returns act as
// line breaks; blank lines and lines starting with '#' are skipped; each
// remaining line is split on whitespace and only tokens with an http:// or
// https:// prefix survive. The first occurrence of a URL wins.
func ParseText(raw string) []string {
	if raw == "" {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(normalizedSeparators, r) {
			return '\n'
		}
		return r
	}, raw)

	var result []string
	seen := make(map[string]struct{})
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		for _, token := range strings.Fields(line) {
			if !strings.HasPrefix(token, PrefixHTTP) && !strings.HasPrefix(token, PrefixHTTPS) {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			result = append(result, token)
		}
	}
	return result
}

// JoinText joins a parsed link list back into newline-separated text.
// ParseText(JoinText(ParseText(x))) always equals ParseText(x).
func JoinText(links []string) string {
	return strings.Join(links, "\n")
}

// ReadFile parses the links file at path. A missing file is an input
// error for the run, not a silent no-op.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("links file not found: %w", err)
	}
	return ParseText(string(data)), nil
}
