package selfcheck

import (
	"fmt"
	"io"
	"slices"

	"github.com/igget/ig2mp3/internal/exitcode"
	"github.com/igget/ig2mp3/internal/links"
)

// Package selfcheck backs the --run-tests flag: a quick, dependency-free
// verification of the pure decision logic, runnable from a packaged
// binary where `go test` is not available.

type check struct {
	name string
	fn   func() error
}

// Run executes every check, prints one line per check to w and returns
// 0 when all pass, 1 otherwise.
func Run(w io.Writer) int {
	failed := 0
	for _, c := range checks() {
		if err := c.fn(); err != nil {
			failed++
			fmt.Fprintf(w, "FAIL  %s: %v\n", c.name, err)
			continue
		}
		fmt.Fprintf(w, "ok    %s\n", c.name)
	}
	if failed > 0 {
		fmt.Fprintf(w, "%d check(s) failed\n", failed)
		return 1
	}
	fmt.Fprintln(w, "all checks passed")
	return 0
}

func checks() []check {
	return []check{
		{"parser dedupes preserving order", func() error {
			return expectLinks(
				links.ParseText("https://a https://b https://a https://c"),
				"https://a", "https://b", "https://c")
		}},
		{"parser normalizes mixed separators", func() error {
			return expectLinks(
				links.ParseText("https://a, https://b;https://c\nnotalink https://d"),
				"https://a", "https://b", "https://c", "https://d")
		}},
		{"parser drops comments and noise", func() error {
			return expectLinks(
				links.ParseText("# comment\nftp://no mailto:no https://ok\n— noise"),
				"https://ok")
		}},
		{"parser returns nothing for empty input", func() error {
			return expectLinks(links.ParseText(""))
		}},
		{"parser is idempotent over its own output", func() error {
			first := links.ParseText("https://a, https://b\n# c\nhttps://a https://d")
			second := links.ParseText(links.JoinText(first))
			if !slices.Equal(first, second) {
				return fmt.Errorf("re-parse changed the list: %v vs %v", first, second)
			}
			return nil
		}},
		{"fallback prefers file text over env text", func() error {
			r := links.Resolver{FileText: "https://f1\nhttps://f2", EnvText: "https://env1"}
			return expectLinks(r.Resolve(), "https://f1", "https://f2")
		}},
		{"fallback uses env text when file blank", func() error {
			r := links.Resolver{FileText: " ", EnvText: "https://env1 https://env2"}
			return expectLinks(r.Resolve(), "https://env1", "https://env2")
		}},
		{"fallback empty when both blank", func() error {
			r := links.Resolver{FileText: " ", EnvText: ""}
			return expectLinks(r.Resolve())
		}},
		{"exit: zero result never terminates", func() error {
			return expectDecision(exitcode.Decide(0, false, false), false, 0)
		}},
		{"exit: interactive non-zero ends silently", func() error {
			return expectDecision(exitcode.Decide(2, true, false), false, 2)
		}},
		{"exit: non-interactive non-zero terminates", func() error {
			return expectDecision(exitcode.Decide(2, false, false), true, 2)
		}},
		{"exit: force overrides interactivity", func() error {
			return expectDecision(exitcode.Decide(1, true, true), true, 1)
		}},
	}
}

func expectLinks(got []string, expected ...string) error {
	if len(expected) == 0 && len(got) == 0 {
		return nil
	}
	if !slices.Equal(got, expected) {
		return fmt.Errorf("got %v, expected %v", got, expected)
	}
	return nil
}

func expectDecision(d exitcode.Decision, terminate bool, code int) error {
	if d.Terminate != terminate || d.Code != code {
		return fmt.Errorf("got (%v, %d), expected (%v, %d)", d.Terminate, d.Code, terminate, code)
	}
	return nil
}
