package core

import (
	"strconv"
	"strings"

	"github.com/bmeddeb/gitlens/schema"
)

// commitAttribution caches the author metadata the porcelain stream prints
// only the first time a commit appears.
type commitAttribution struct {
	author    string
	timestamp int64
}

// ParseBlamePorcelain decodes a blame --porcelain stream into one BlameLine
// per content line of the file. Header lines carry the commit hash and the
// original line number; author metadata appears once per commit and is
// cached for the commit's later lines. The entry count equals the file's
// current line count.
func ParseBlamePorcelain(out []byte) []schema.BlameLine {
	var (
		lines         []schema.BlameLine
		attributions  = make(map[string]*commitAttribution)
		currentCommit string
		currentLine   int
	)

	for _, line := range strings.Split(string(out), "\n") {
		switch {
		case strings.HasPrefix(line, "\t"):
			attr := attributions[currentCommit]
			if attr == nil {
				attr = &commitAttribution{}
			}
			lines = append(lines, schema.BlameLine{
				CommitHash:      currentCommit,
				Author:          attr.author,
				AuthorTimestamp: attr.timestamp,
				OriginalLine:    currentLine,
				Content:         line[1:],
			})
		case strings.HasPrefix(line, "author "):
			ensureAttribution(attributions, currentCommit).author = line[len("author "):]
		case strings.HasPrefix(line, "author-time "):
			if ts, err := strconv.ParseInt(line[len("author-time "):], 10, 64); err == nil {
				ensureAttribution(attributions, currentCommit).timestamp = ts
			}
		default:
			if hash, orig, ok := parseBlameHeader(line); ok {
				currentCommit = hash
				currentLine = orig
			}
		}
	}
	return lines
}

// parseBlameHeader matches "<40-hex-hash> <orig-line> <final-line> [count]".
func parseBlameHeader(line string) (string, int, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 || len(fields[0]) != 40 {
		return "", 0, false
	}
	for _, c := range fields[0] {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return "", 0, false
		}
	}
	orig, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, false
	}
	return fields[0], orig, true
}

func ensureAttribution(m map[string]*commitAttribution, hash string) *commitAttribution {
	attr, ok := m[hash]
	if !ok {
		attr = &commitAttribution{}
		m[hash] = attr
	}
	return attr
}
