package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bmeddeb/gitlens/schema"
)

func TestWindowArgs_Defaults(t *testing.T) {
	args := windowArgs(schema.NewQueryWindow(), true)

	assert.Empty(t, args)
}

func TestWindowArgs_AllConstraints(t *testing.T) {
	window := schema.QueryWindow{
		MaxResults:    25,
		Skip:          5,
		IncludeMerges: false,
		AuthorFilter:  "alice",
		PathFilter:    "core/",
		Since:         1600000000,
		Until:         1700000000,
	}

	args := windowArgs(window, true)

	assert.Equal(t, []string{
		"--no-merges",
		"--author", "alice",
		"--since=@1600000000",
		"--until=@1700000000",
		"--max-count", "25",
		"--skip", "5",
		"--", "core/",
	}, args)
}

func TestWindowArgs_PathFilterSuppressed(t *testing.T) {
	window := schema.NewQueryWindow()
	window.PathFilter = "core/"

	args := windowArgs(window, false)

	assert.NotContains(t, args, "core/")
}

func TestSplitNonEmptyLines(t *testing.T) {
	out := []byte("main.go\r\ncore/agg.go\n\n  \nREADME.md\n")

	lines := splitNonEmptyLines(out)

	assert.Equal(t, []string{"main.go", "core/agg.go", "README.md"}, lines)
}

func TestSplitNonEmptyLines_Empty(t *testing.T) {
	assert.Empty(t, splitNonEmptyLines(nil))
	assert.Empty(t, splitNonEmptyLines([]byte("\n\n")))
}
