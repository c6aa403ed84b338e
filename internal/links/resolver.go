package links

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Resolver decides which fallback source supplies links when the user
// gave none directly. The process boundary reads the default links file
// and the environment once and injects the raw text here, so resolution
// itself stays a pure function.
//
// Precedence is uniform regardless of interactivity: non-blank file text
// wins over env text, env text over nothing.
type Resolver struct {
	FileText string // contents of the default links file, if it exists
	EnvText  string // IG_LINKS environment value, if set
}

// Resolve returns the fallback link list.
func (r Resolver) Resolve() []string {
	if strings.TrimSpace(r.FileText) != "" {
		return ParseText(r.FileText)
	}
	if strings.TrimSpace(r.EnvText) != "" {
		return ParseText(r.EnvText)
	}
	return nil
}

// Prompt asks the user to paste URLs on the console, terminated by a
// blank line or EOF. A read error or an empty paste falls back to
// Resolve(). The caller must only invoke this on an interactive stdin.
func (r Resolver) Prompt(in io.Reader, out io.Writer) []string {
	fmt.Fprintln(out, "No URLs provided. Paste one or more URLs below. End with an empty line:")

	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return r.Resolve()
	}

	parsed := ParseText(strings.Join(lines, "\n"))
	if len(parsed) == 0 {
		return r.Resolve()
	}
	return parsed
}
