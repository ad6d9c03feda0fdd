package ribbon

import (
	"strings"

	"github.com/go-drift/ribbon/pkg/decl"
)

// ParentToken is the placeholder a cookie uses for its parent's path.
const ParentToken = decl.ParentToken

// PathSeparator joins the segments of an identity path.
const PathSeparator = ";"

// Substitute replaces every ParentToken in cookie with prefix.
func Substitute(cookie, prefix string) string {
	if !strings.Contains(cookie, ParentToken) {
		return cookie
	}
	return strings.ReplaceAll(cookie, ParentToken, prefix)
}

// JoinPath appends id to prefix. An empty id contributes no segment.
func JoinPath(prefix, id string) string {
	switch {
	case id == "":
		return prefix
	case prefix == "":
		return id
	}
	return prefix + PathSeparator + id
}

// SplitPath returns the segments of path.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, PathSeparator)
}
