package core

import (
	"strconv"
	"strings"

	"github.com/bmeddeb/gitlens/internal/contract"
)

// touchEvent is one decoded commit from the name-only touch stream:
// the commit identity plus the set of paths it modified.
type touchEvent struct {
	hash      string
	author    string
	timestamp int64
	paths     []string
}

// parseTouchLog decodes the touch stream into per-commit events. Each
// commit contributes one header line (hash, author, timestamp) followed by
// the paths it touched, blank-line separated from the next commit. A
// malformed header drops the whole commit block and counts as an anomaly;
// its path lines are discarded with it.
func parseTouchLog(out []byte) ([]touchEvent, int) {
	var (
		events    []touchEvent
		pending   *touchEvent
		seen      map[string]bool
		anomalies int
		dropping  bool
	)

	flush := func() {
		if pending != nil {
			events = append(events, *pending)
			pending = nil
		}
	}

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, contract.TouchHeaderPrefix) {
			flush()
			parts := strings.SplitN(line[len(contract.TouchHeaderPrefix):], "|", 3)
			if len(parts) != 3 {
				anomalies++
				dropping = true
				continue
			}
			ts, err := strconv.ParseInt(parts[2], 10, 64)
			if err != nil {
				anomalies++
				dropping = true
				continue
			}
			pending = &touchEvent{hash: parts[0], author: parts[1], timestamp: ts}
			seen = make(map[string]bool)
			dropping = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if pending == nil {
			if !dropping {
				anomalies++ // path line with no commit header at all
			}
			continue
		}
		// Never double-count a path touched more than once in one commit.
		if seen[line] {
			continue
		}
		seen[line] = true
		pending.paths = append(pending.paths, line)
	}
	flush()
	return events, anomalies
}
