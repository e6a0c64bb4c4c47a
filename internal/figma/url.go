package figma

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	fileKeyPattern = regexp.MustCompile(`/(?:file|design|proto)/([a-zA-Z0-9]+)`)
	nodeIDPattern  = regexp.MustCompile(`node-id=([^&#]+)`)
)

// ParseFileKey extracts the file key from a Figma URL. Returns "" when the
// URL does not contain one.
func ParseFileKey(rawURL string) string {
	m := fileKeyPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// ParseNodeID extracts the selected node id from a Figma URL. Browser URLs
// spell ids as "1-23"; the API expects "1:23".
func ParseNodeID(rawURL string) string {
	m := nodeIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	id, err := url.QueryUnescape(m[1])
	if err != nil {
		id = m[1]
	}
	if !strings.Contains(id, ":") {
		id = strings.Replace(id, "-", ":", 1)
	}
	return id
}

// FindNodes returns every node under root whose name contains term,
// case-insensitively, in depth-first order.
func FindNodes(root Node, term string) []Node {
	term = strings.ToLower(term)
	var matches []Node
	root.Walk(func(n Node) bool {
		if strings.Contains(strings.ToLower(n.Name), term) {
			matches = append(matches, n)
		}
		return true
	})
	return matches
}
