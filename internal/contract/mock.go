package contract

import (
	"context"

	"github.com/bmeddeb/gitlens/schema"
	"github.com/stretchr/testify/mock"
)

// MockHistorySource is a testify-based mock of the HistorySource interface
// for testing core logic without a real git executable.
type MockHistorySource struct {
	mock.Mock
}

var _ HistorySource = &MockHistorySource{} // Compile-time check

// Run implements the HistorySource interface.
func (m *MockHistorySource) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	callArgs := []any{ctx, repoPath}
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	ret := m.Called(callArgs...)
	return toBytes(ret.Get(0)), ret.Error(1)
}

// CommitLog implements the HistorySource interface.
func (m *MockHistorySource) CommitLog(ctx context.Context, repoPath string, window schema.QueryWindow) ([]byte, error) {
	ret := m.Called(ctx, repoPath, window)
	return toBytes(ret.Get(0)), ret.Error(1)
}

// FileFollowLog implements the HistorySource interface.
func (m *MockHistorySource) FileFollowLog(ctx context.Context, repoPath, path string, window schema.QueryWindow) ([]byte, error) {
	ret := m.Called(ctx, repoPath, path, window)
	return toBytes(ret.Get(0)), ret.Error(1)
}

// TouchLog implements the HistorySource interface.
func (m *MockHistorySource) TouchLog(ctx context.Context, repoPath string, window schema.QueryWindow) ([]byte, error) {
	ret := m.Called(ctx, repoPath, window)
	return toBytes(ret.Get(0)), ret.Error(1)
}

// BlamePorcelain implements the HistorySource interface.
func (m *MockHistorySource) BlamePorcelain(ctx context.Context, repoPath, path string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, path)
	return toBytes(ret.Get(0)), ret.Error(1)
}

// TrackedFiles implements the HistorySource interface.
func (m *MockHistorySource) TrackedFiles(ctx context.Context, repoPath string) ([]string, error) {
	ret := m.Called(ctx, repoPath)
	return toStrings(ret.Get(0)), ret.Error(1)
}

// ReadFile implements the HistorySource interface.
func (m *MockHistorySource) ReadFile(ctx context.Context, repoPath, path string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, path)
	return toBytes(ret.Get(0)), ret.Error(1)
}

// DiffNumstat implements the HistorySource interface.
func (m *MockHistorySource) DiffNumstat(ctx context.Context, repoPath, commitA, commitB string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, commitA, commitB)
	return toBytes(ret.Get(0)), ret.Error(1)
}

// MergeBase implements the HistorySource interface.
func (m *MockHistorySource) MergeBase(ctx context.Context, repoPath, ref1, ref2 string) (string, error) {
	ret := m.Called(ctx, repoPath, ref1, ref2)
	return ret.String(0), ret.Error(1)
}

// RevListCount implements the HistorySource interface.
func (m *MockHistorySource) RevListCount(ctx context.Context, repoPath, rangeExpr string) (int, error) {
	ret := m.Called(ctx, repoPath, rangeExpr)
	return ret.Int(0), ret.Error(1)
}

// DiffNamesOnly implements the HistorySource interface.
func (m *MockHistorySource) DiffNamesOnly(ctx context.Context, repoPath, ref1, ref2 string) ([]string, error) {
	ret := m.Called(ctx, repoPath, ref1, ref2)
	return toStrings(ret.Get(0)), ret.Error(1)
}

func toBytes(v any) []byte {
	if v == nil {
		return nil
	}
	return v.([]byte)
}

func toStrings(v any) []string {
	if v == nil {
		return nil
	}
	return v.([]string)
}
