package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

func TestBuildKnowledgeMap_Profiles(t *testing.T) {
	ownership := &schema.OwnershipResult{
		Files: map[string]map[string]int{
			"core/a.go":  {"Alice": 60, "Bob": 20},
			"scripts.py": {"Bob": 20},
		},
		Directories: map[string]map[string]int{
			"core": {"Alice": 60, "Bob": 20},
			"":     {"Bob": 20},
		},
	}

	expertise := BuildKnowledgeMap(ownership)

	require.Len(t, expertise, 2)

	alice := expertise["Alice"]
	require.NotNil(t, alice)
	assert.Equal(t, 60, alice.TotalLines)
	assert.Equal(t, map[string]int{"core/a.go": 60}, alice.Files)
	assert.Equal(t, map[string]int{"core": 60}, alice.Directories)
	assert.Equal(t, map[string]int{"go": 60}, alice.Languages)
	assert.InDelta(t, 60.0, alice.RepositoryContribution, 1e-9)

	bob := expertise["Bob"]
	require.NotNil(t, bob)
	assert.Equal(t, 40, bob.TotalLines)
	assert.Equal(t, map[string]int{"go": 20, "py": 20}, bob.Languages)
	assert.InDelta(t, 40.0, bob.RepositoryContribution, 1e-9)

	// Shares cover the whole repository.
	assert.InDelta(t, 100.0, alice.RepositoryContribution+bob.RepositoryContribution, 1e-9)
}

func TestBuildKnowledgeMap_DirectoryDataNeverIntroducesAuthor(t *testing.T) {
	ownership := &schema.OwnershipResult{
		Files: map[string]map[string]int{
			"core/a.go": {"Alice": 10},
		},
		Directories: map[string]map[string]int{
			"core": {"Alice": 10, "Ghost": 5},
		},
	}

	expertise := BuildKnowledgeMap(ownership)

	assert.Contains(t, expertise, "Alice")
	assert.NotContains(t, expertise, "Ghost")
}

func TestBuildKnowledgeMap_EmptyOwnership(t *testing.T) {
	expertise := BuildKnowledgeMap(&schema.OwnershipResult{
		Files:       map[string]map[string]int{},
		Directories: map[string]map[string]int{},
	})

	assert.Empty(t, expertise)
}

func TestBuildKnowledgeMap_ZeroAttributedLines(t *testing.T) {
	ownership := &schema.OwnershipResult{
		Files: map[string]map[string]int{
			"empty.go": {"Alice": 0},
		},
		Directories: map[string]map[string]int{},
	}

	expertise := BuildKnowledgeMap(ownership)

	require.Contains(t, expertise, "Alice")
	assert.Equal(t, 0.0, expertise["Alice"].RepositoryContribution)
}

func TestGetKnowledgeResults_Success(t *testing.T) {
	ctx := context.Background()
	mockSrc := &contract.MockHistorySource{}
	cfg := &contract.Config{RepoPath: "/test/repo", Window: schema.NewQueryWindow()}

	mockSrc.On("TrackedFiles", ctx, "/test/repo").Return([]string{"main.go"}, nil)
	mockSrc.On("BlamePorcelain", ctx, "/test/repo", "main.go").Return(
		blameStream([2]string{blameHashA, "Alice"}), nil)

	result, err := GetKnowledgeResults(ctx, cfg, mockSrc)

	require.NoError(t, err)
	require.Contains(t, result.Authors, "Alice")
	assert.InDelta(t, 100.0, result.Authors["Alice"].RepositoryContribution, 1e-9)
	assert.Empty(t, result.SkippedFiles)
	mockSrc.AssertExpectations(t)
}
