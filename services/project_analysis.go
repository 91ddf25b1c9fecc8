package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"orientador/models"
)

// ProjectAnalysisService orquestra a análise de projetos persistidos: carrega
// os documentos, executa o motor de análise e grava o snapshot do resultado.
type ProjectAnalysisService struct {
	DB       *gorm.DB
	Logger   *zap.Logger
	Analyzer *ThesisAnalyzer
}

// NewProjectAnalysisService cria uma nova instância do serviço.
func NewProjectAnalysisService(db *gorm.DB, logger *zap.Logger, analyzer *ThesisAnalyzer) *ProjectAnalysisService {
	return &ProjectAnalysisService{
		DB:       db,
		Logger:   logger,
		Analyzer: analyzer,
	}
}

// AnalyzeProject concatenates the project's documents in position order, runs
// the analysis engine and persists an AnalysisRecord.
func (s *ProjectAnalysisService) AnalyzeProject(ctx context.Context, projectID uint) (*models.AnalysisRecord, *ThesisAnalysis, error) {
	var documents []models.ThesisDocument
	if err := s.DB.Where("project_id = ?", projectID).
		Order("position asc, id asc").
		Find(&documents).Error; err != nil {
		s.Logger.Error("Failed to load project documents",
			zap.Uint("project_id", projectID), zap.Error(err))
		return nil, nil, err
	}

	parts := make([]string, 0, len(documents))
	for _, doc := range documents {
		parts = append(parts, doc.Content)
	}
	fullText := strings.Join(parts, "\n\n")

	analysis := s.Analyzer.Analyze(ctx, fullText)

	payload, err := json.Marshal(analysis)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal analysis: %w", err)
	}

	record := models.AnalysisRecord{
		ProjectID:    projectID,
		OverallScore: analysis.OverallScore,
		SectionCount: len(analysis.Sections),
		Result:       payload,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		s.Logger.Error("Failed to persist analysis record",
			zap.Uint("project_id", projectID), zap.Error(err))
		return nil, nil, err
	}

	s.Logger.Info("Project analyzed",
		zap.Uint("project_id", projectID),
		zap.Int("documents", len(documents)),
		zap.Int("overall_score", analysis.OverallScore))

	return &record, analysis, nil
}

// RunPending re-analyzes every project whose documents changed after its
// latest analysis record. Used by the cron schedule.
func (s *ProjectAnalysisService) RunPending(ctx context.Context) (int, error) {
	var projects []models.Project
	if err := s.DB.Find(&projects).Error; err != nil {
		s.Logger.Error("Failed to load projects", zap.Error(err))
		return 0, err
	}

	analyzed := 0
	for _, project := range projects {
		stale, err := s.isStale(project.ID)
		if err != nil {
			s.Logger.Error("Failed to check project staleness",
				zap.Uint("project_id", project.ID), zap.Error(err))
			continue
		}
		if !stale {
			continue
		}
		if _, _, err := s.AnalyzeProject(ctx, project.ID); err != nil {
			s.Logger.Error("Scheduled analysis failed",
				zap.Uint("project_id", project.ID), zap.Error(err))
			continue
		}
		analyzed++
	}
	return analyzed, nil
}

// isStale reports whether a project has documents newer than its latest
// analysis (or documents but no analysis at all).
func (s *ProjectAnalysisService) isStale(projectID uint) (bool, error) {
	var docCount int64
	if err := s.DB.Model(&models.ThesisDocument{}).
		Where("project_id = ?", projectID).
		Count(&docCount).Error; err != nil {
		return false, err
	}
	if docCount == 0 {
		return false, nil
	}

	var latest models.AnalysisRecord
	err := s.DB.Where("project_id = ?", projectID).
		Order("created_at desc").
		First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	var changed int64
	if err := s.DB.Model(&models.ThesisDocument{}).
		Where("project_id = ? AND updated_at > ?", projectID, latest.CreatedAt).
		Count(&changed).Error; err != nil {
		return false, err
	}
	return changed > 0, nil
}
