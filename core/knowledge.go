package core

import (
	"context"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// BuildKnowledgeMap converts ownership attribution into per-author
// expertise profiles. The file pass populates files, languages and total
// lines; the directory pass only augments authors already present, so
// directory-only data never introduces an author. Repository contribution
// is each author's share of all attributed lines, or 0 when nothing is
// attributed.
func BuildKnowledgeMap(ownership *schema.OwnershipResult) map[string]*schema.AuthorExpertise {
	expertise := make(map[string]*schema.AuthorExpertise)

	for path, authors := range ownership.Files {
		language := schema.LanguageOf(path)
		for author, lineCount := range authors {
			exp, ok := expertise[author]
			if !ok {
				exp = &schema.AuthorExpertise{
					Files:       make(map[string]int),
					Directories: make(map[string]int),
					Languages:   make(map[string]int),
				}
				expertise[author] = exp
			}
			exp.Files[path] = lineCount
			exp.TotalLines += lineCount
			exp.Languages[language] += lineCount
		}
	}

	for dir, authors := range ownership.Directories {
		for author, lineCount := range authors {
			if exp, ok := expertise[author]; ok {
				exp.Directories[dir] = lineCount
			}
		}
	}

	totalLines := 0
	for _, exp := range expertise {
		totalLines += exp.TotalLines
	}
	for _, exp := range expertise {
		if totalLines > 0 {
			exp.RepositoryContribution = float64(exp.TotalLines) / float64(totalLines) * 100.0
		} else {
			exp.RepositoryContribution = 0
		}
	}

	return expertise
}

// GetKnowledgeResults runs ownership attribution and builds the knowledge map.
func GetKnowledgeResults(ctx context.Context, cfg *contract.Config, src contract.HistorySource) (*schema.KnowledgeResult, error) {
	ownership, err := GetOwnershipResults(ctx, cfg, src)
	if err != nil {
		return nil, err
	}
	return &schema.KnowledgeResult{
		Authors:      BuildKnowledgeMap(ownership),
		SkippedFiles: ownership.SkippedFiles,
	}, nil
}
