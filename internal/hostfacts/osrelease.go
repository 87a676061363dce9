package hostfacts

import (
	"bufio"
	"bytes"
	"strings"
)

// osRelease holds the fields of /etc/os-release that platform resolution
// cares about.
type osRelease struct {
	ID        string
	VersionID string
	IDLike    []string
}

// parseOSRelease parses os-release(5) content. Lines are KEY=VALUE with
// optional single or double quoting; comments and malformed lines are
// skipped rather than rejected, since the file is best-effort input.
func parseOSRelease(content []byte) osRelease {
	var rel osRelease

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = unquote(strings.TrimSpace(value))

		switch strings.TrimSpace(key) {
		case "ID":
			rel.ID = value
		case "VERSION_ID":
			rel.VersionID = value
		case "ID_LIKE":
			rel.IDLike = strings.Fields(value)
		}
	}

	return rel
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// inFamily reports whether the release identifies as, or is derived from,
// any of the given distribution IDs.
func (r osRelease) inFamily(ids ...string) bool {
	for _, id := range ids {
		if r.ID == id {
			return true
		}
		for _, like := range r.IDLike {
			if like == id {
				return true
			}
		}
	}
	return false
}
