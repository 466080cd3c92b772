package store

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// MockAnalyticsStore is a mock implementation of AnalyticsStore for testing.
type MockAnalyticsStore struct {
	mock.Mock
}

var _ contract.AnalyticsStore = &MockAnalyticsStore{} // Compile-time check

// BeginRun implements the AnalyticsStore interface.
func (m *MockAnalyticsStore) BeginRun(startTime time.Time, operation string, params map[string]any) (int64, error) {
	args := m.Called(startTime, operation, params)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the AnalyticsStore interface.
func (m *MockAnalyticsStore) EndRun(runID int64, endTime time.Time, resultCount int) error {
	args := m.Called(runID, endTime, resultCount)
	return args.Error(0)
}

// RecordHotspots implements the AnalyticsStore interface.
func (m *MockAnalyticsStore) RecordHotspots(runID int64, entries []schema.HotspotEntry) error {
	args := m.Called(runID, entries)
	return args.Error(0)
}

// RecordChurn implements the AnalyticsStore interface.
func (m *MockAnalyticsStore) RecordChurn(runID int64, records []*schema.ChurnRecord) error {
	args := m.Called(runID, records)
	return args.Error(0)
}

// Close implements the AnalyticsStore interface.
func (m *MockAnalyticsStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
