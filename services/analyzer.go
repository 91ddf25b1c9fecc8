package services

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
)

// ThesisAnalysis is the root analysis result. Only sections actually detected
// in the document appear, in first-occurrence order. A fresh object is built
// on every call; re-analysis never mutates a previous result.
type ThesisAnalysis struct {
	OverallScore int               `json:"overall_score"`
	Sections     []SectionFeedback `json:"sections"`
	Summary      AnalysisSummary   `json:"summary"`
	AnalyzedAt   time.Time         `json:"analyzed_at"`
}

// AnalysisSummary aggregates cross-section feedback.
type AnalysisSummary struct {
	ImprovementAreas []string `json:"improvement_areas"`
}

// ThesisAnalyzer is the top-level entry point of the analysis engine. It is
// stateless apart from the logger and safe for concurrent use.
type ThesisAnalyzer struct {
	Logger *zap.Logger
}

// NewThesisAnalyzer cria um novo analisador de manuscritos.
func NewThesisAnalyzer(logger *zap.Logger) *ThesisAnalyzer {
	return &ThesisAnalyzer{Logger: logger}
}

// Analyze segments the document, evaluates the checklist and builds feedback
// for every detected section, then aggregates the overall score and summary.
// A document with no recognizable sections yields a valid empty analysis with
// score 0, never an error.
func (a *ThesisAnalyzer) Analyze(ctx context.Context, document string) *ThesisAnalysis {
	a.Logger.Info("Starting thesis analysis",
		zap.Int("document_length", len(document)))

	segments := SegmentDocument(document)
	analysis := &ThesisAnalysis{AnalyzedAt: time.Now()}

	scoreSum := 0
	for _, section := range segments.Order() {
		text, _ := segments.Text(section)
		checklist := BuildChecklist(section, text)
		feedback := BuildFeedback(section, text, checklist)

		analysis.Sections = append(analysis.Sections, feedback)
		scoreSum += checklist.Score

		a.Logger.Debug("Section analyzed",
			zap.String("section", string(section)),
			zap.Int("score", checklist.Score),
			zap.String("priority", string(feedback.Priority)))
	}

	if len(analysis.Sections) > 0 {
		analysis.OverallScore = int(math.Round(float64(scoreSum) / float64(len(analysis.Sections))))
	} else {
		a.Logger.Warn("No sections detected in document")
	}

	analysis.Summary.ImprovementAreas = collectImprovementAreas(analysis.Sections)

	a.Logger.Info("Thesis analysis completed",
		zap.Int("sections", len(analysis.Sections)),
		zap.Int("overall_score", analysis.OverallScore))

	return analysis
}

// collectImprovementAreas gathers distinct weakness and suggestion texts
// across all sections, preserving encounter order. Capping is left to the
// consumer.
func collectImprovementAreas(sections []SectionFeedback) []string {
	seen := make(map[string]bool)
	var areas []string
	add := func(entries []string) {
		for _, entry := range entries {
			if !seen[entry] {
				seen[entry] = true
				areas = append(areas, entry)
			}
		}
	}
	for _, section := range sections {
		add(section.Weaknesses)
		add(section.Suggestions)
	}
	return areas
}
