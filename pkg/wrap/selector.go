package wrap

import (
	"strings"

	"golang.org/x/net/html"
)

// Minimal structural selector support: "#id", ".class", "tag", simple
// compounds like "tag.class" or "tag#id", and space-separated descendant
// chains ("div .note"). Anything unparseable matches nothing — the engine
// favors zero matches over failure.

// selStep is one link of a descendant chain.
type selStep struct {
	tag     string
	id      string
	classes []string
}

func parseStep(s string) (selStep, bool) {
	var step selStep
	for len(s) > 0 {
		switch s[0] {
		case '#':
			rest := s[1:]
			end := strings.IndexAny(rest, "#.")
			if end == -1 {
				end = len(rest)
			}
			if end == 0 {
				return step, false
			}
			step.id = rest[:end]
			s = rest[end:]
		case '.':
			rest := s[1:]
			end := strings.IndexAny(rest, "#.")
			if end == -1 {
				end = len(rest)
			}
			if end == 0 {
				return step, false
			}
			step.classes = append(step.classes, rest[:end])
			s = rest[end:]
		default:
			end := strings.IndexAny(s, "#.")
			if end == -1 {
				end = len(s)
			}
			step.tag = strings.ToLower(s[:end])
			s = s[end:]
		}
	}
	if step.tag == "" && step.id == "" && len(step.classes) == 0 {
		return step, false
	}
	return step, true
}

func (s selStep) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if s.tag != "" && !strings.EqualFold(n.Data, s.tag) {
		return false
	}
	if s.id != "" && attrVal(n, "id") != s.id {
		return false
	}
	if len(s.classes) > 0 {
		have := strings.Fields(attrVal(n, "class"))
		for _, want := range s.classes {
			found := false
			for _, c := range have {
				if c == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

// resolve returns the elements matching selector under doc, in document
// order, deduplicated.
func resolve(doc *html.Node, selector string) []*html.Node {
	fields := strings.Fields(selector)
	if len(fields) == 0 {
		return nil
	}
	roots := []*html.Node{doc}
	for _, f := range fields {
		step, ok := parseStep(f)
		if !ok {
			return nil
		}
		var next []*html.Node
		seen := make(map[*html.Node]bool)
		for _, r := range roots {
			collectMatches(r, step, &next, seen)
		}
		roots = next
		if len(roots) == 0 {
			return nil
		}
	}
	return roots
}

// collectMatches appends descendants of root matching step, depth-first.
func collectMatches(root *html.Node, step selStep, out *[]*html.Node, seen map[*html.Node]bool) {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if step.matches(c) && !seen[c] {
			seen[c] = true
			*out = append(*out, c)
		}
		collectMatches(c, step, out, seen)
	}
}
