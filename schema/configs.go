package schema

// TimePeriod selects the calendar bucket size for timeline aggregation.
type TimePeriod string

// Supported aggregation periods.
const (
	HourPeriod  TimePeriod = "hour"
	DayPeriod   TimePeriod = "day"
	WeekPeriod  TimePeriod = "week"
	MonthPeriod TimePeriod = "month"
	YearPeriod  TimePeriod = "year"
)

// ParsePeriod converts a string into a TimePeriod. Unknown values are a
// configuration error, never silently defaulted.
func ParsePeriod(s string) (TimePeriod, error) {
	switch TimePeriod(s) {
	case HourPeriod, DayPeriod, WeekPeriod, MonthPeriod, YearPeriod:
		return TimePeriod(s), nil
	default:
		return "", NewConfigError("unknown period: %q (expected hour, day, week, month or year)", s)
	}
}

// OutputMode selects the output rendering format.
type OutputMode string

// Supported output formats.
const (
	TextOut OutputMode = "text"
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// ParseOutputMode converts a string into an OutputMode.
func ParseOutputMode(s string) (OutputMode, error) {
	switch OutputMode(s) {
	case TextOut, CSVOut, JSONOut:
		return OutputMode(s), nil
	case "":
		return TextOut, nil
	default:
		return "", NewConfigError("unknown output format: %q (expected text, csv or json)", s)
	}
}

// DatabaseBackend selects the persistence backend for analysis tracking.
type DatabaseBackend string

// Supported persistence backends.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ParseDatabaseBackend converts a string into a DatabaseBackend.
func ParseDatabaseBackend(s string) (DatabaseBackend, error) {
	switch DatabaseBackend(s) {
	case SQLiteBackend, MySQLBackend, PostgreSQLBackend, NoneBackend:
		return DatabaseBackend(s), nil
	case "":
		return NoneBackend, nil
	default:
		return "", NewConfigError("unknown database backend: %q (expected sqlite, mysql, postgresql or none)", s)
	}
}

// QueryWindow expresses the filtering and pagination intent shared by every
// analysis entry point. The zero value of MaxResults, Skip, Since and Until
// means "unbounded". It is a pure value; the history source translates it
// into query constraints.
type QueryWindow struct {
	MaxResults    int    `json:"max_results,omitempty"`
	Skip          int    `json:"skip,omitempty"`
	IncludeMerges bool   `json:"include_merges"`
	AuthorFilter  string `json:"author_filter,omitempty"`
	PathFilter    string `json:"path_filter,omitempty"`
	Since         int64  `json:"since,omitempty"` // unix seconds, inclusive
	Until         int64  `json:"until,omitempty"` // unix seconds, inclusive
}

// NewQueryWindow returns a window with the defaults applied
// (merge commits included, everything else unbounded).
func NewQueryWindow() QueryWindow {
	return QueryWindow{IncludeMerges: true}
}

// Validate fails fast on malformed bounds so that a bad window is rejected
// before any history query is issued.
func (w QueryWindow) Validate() error {
	if w.MaxResults < 0 {
		return NewConfigError("max results must be >= 0, got %d", w.MaxResults)
	}
	if w.Skip < 0 {
		return NewConfigError("skip must be >= 0, got %d", w.Skip)
	}
	if w.Since != 0 && w.Until != 0 && w.Since > w.Until {
		return NewConfigError("since (%d) must not be after until (%d)", w.Since, w.Until)
	}
	return nil
}
