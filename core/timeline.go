package core

import (
	"context"
	"fmt"
	"time"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// PeriodKey formats a unix timestamp into a calendar bucket key for the
// given period, using the local time zone of the analysis process. Week
// keys follow ISO-8601: the week-numbering year, not the calendar year,
// so 2021-01-01 buckets to 2020-W53.
func PeriodKey(timestamp int64, period schema.TimePeriod) (string, error) {
	t := time.Unix(timestamp, 0)
	switch period {
	case schema.HourPeriod:
		return t.Format("2006-01-02 15:00"), nil
	case schema.DayPeriod:
		return t.Format("2006-01-02"), nil
	case schema.WeekPeriod:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week), nil
	case schema.MonthPeriod:
		return t.Format("2006-01"), nil
	case schema.YearPeriod:
		return t.Format("2006"), nil
	default:
		return "", schema.NewConfigError("unknown period: %q", string(period))
	}
}

// AggregateTimeline buckets commit timestamps into calendar periods.
// The result is sparse: buckets absent from the input never appear.
func AggregateTimeline(commits []schema.CommitRecord, period schema.TimePeriod) (map[string]int, error) {
	// Reject unknown periods before touching any commit.
	if _, err := PeriodKey(0, period); err != nil {
		return nil, err
	}
	buckets := make(map[string]int)
	for _, c := range commits {
		key, err := PeriodKey(c.Timestamp, period)
		if err != nil {
			return nil, err
		}
		buckets[key]++
	}
	return buckets, nil
}

// GetTimelineResults runs the timeline analysis over the configured window.
func GetTimelineResults(ctx context.Context, cfg *contract.Config, src contract.HistorySource) (*schema.TimelineResult, error) {
	commits, anomalies, err := GetCommits(ctx, cfg, src)
	if err != nil {
		return nil, err
	}
	buckets, err := AggregateTimeline(commits, cfg.Period)
	if err != nil {
		return nil, err
	}
	return &schema.TimelineResult{Buckets: buckets, Anomalies: anomalies}, nil
}
