// Package nocheck reads "#nocheck" directives that silence checks on lines
// of a formula file.
//
//	p → q   #nocheck:cnf,roundtrip   silences two checks on this line
//	#nocheck                          silences every check on the next line
//
// A standalone directive before the first formula that is not directly
// followed by a formula applies to the whole file.
package nocheck

import (
	"fmt"
	"strings"
)

const directive = "nocheck"

// Manager holds the directive scopes of one file.
type Manager struct {
	scopes []scope
}

// scope is a line range, inclusive, where the listed checks are silenced.
type scope struct {
	checks map[string]struct{}
	start  int
	end    int
}

// wholeFile marks a scope without an upper bound.
const wholeFile = int(^uint(0) >> 1)

// Parse scans content for directives. Malformed directives are ignored.
func Parse(content []byte) *Manager {
	lines := strings.Split(string(content), "\n")
	formulaLines := make(map[int]bool, len(lines))
	firstFormula := 0
	for i, line := range lines {
		code, _, _ := strings.Cut(line, "#")
		if strings.TrimSpace(code) != "" {
			formulaLines[i+1] = true
			if firstFormula == 0 {
				firstFormula = i + 1
			}
		}
	}

	m := &Manager{}
	for i, line := range lines {
		ln := i + 1
		code, comment, found := strings.Cut(line, "#")
		if !found {
			continue
		}
		checks, err := parseDirective(comment)
		if err != nil {
			continue
		}

		s := scope{checks: checks, start: ln, end: ln}
		switch {
		case strings.TrimSpace(code) != "":
			// inline: the line itself
		case formulaLines[ln+1]:
			s.end = ln + 1
		case firstFormula == 0 || ln < firstFormula:
			s.start, s.end = 1, wholeFile
		}
		m.scopes = append(m.scopes, s)
	}
	return m
}

// parseDirective reads the text after '#'. It accepts "nocheck" and
// "nocheck:a,b", with optional space after the '#'.
func parseDirective(comment string) (map[string]struct{}, error) {
	text := strings.TrimSpace(comment)
	rest, ok := strings.CutPrefix(text, directive)
	if !ok {
		return nil, fmt.Errorf("not a directive")
	}
	if fields := strings.Fields(rest); len(fields) > 0 {
		rest = fields[0]
	}
	if rest == "" {
		return map[string]struct{}{}, nil
	}
	if rest[0] != ':' {
		return nil, fmt.Errorf("invalid directive format")
	}
	rest = strings.TrimSpace(rest[1:])
	if rest == "" {
		return nil, fmt.Errorf("invalid directive: no checks specified after colon")
	}
	return parseCheckNames(rest), nil
}

func parseCheckNames(text string) map[string]struct{} {
	checks := make(map[string]struct{})
	for _, name := range strings.Split(text, ",") {
		if name = strings.TrimSpace(name); name != "" {
			checks[name] = struct{}{}
		}
	}
	return checks
}

// IsIgnored reports whether check is silenced on line. A nil Manager
// silences nothing.
func (m *Manager) IsIgnored(line int, check string) bool {
	if m == nil {
		return false
	}
	for _, s := range m.scopes {
		if line < s.start || line > s.end {
			continue
		}
		// an empty list silences every check
		if len(s.checks) == 0 {
			return true
		}
		if _, ok := s.checks[check]; ok {
			return true
		}
	}
	return false
}
