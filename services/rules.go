package services

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"orientador/models"
)

// RuleResult is the outcome of one rule against one piece of content.
// MatchedAt carries the 1-based line of the match when the rule passed by
// actually matching.
type RuleResult struct {
	Rule      models.Rule `json:"rule"`
	Passed    bool        `json:"passed"`
	MatchedAt int         `json:"matched_at,omitempty"`
}

// RulesAnalysis aggregates the results of an evaluation run. PassedCount is an
// unweighted count; weighting is a consumer concern.
type RulesAnalysis struct {
	Results     []RuleResult `json:"results"`
	PassedCount int          `json:"passed_count"`
	TotalCount  int          `json:"total_count"`
}

// ValidatePattern verifica se um padrão de regra compila com as flags usadas
// na avaliação.
func ValidatePattern(pattern string) error {
	_, err := regexp.Compile(`(?im)` + pattern)
	return err
}

// RuleRepository abstracts rule persistence so the engine carries no
// dependency on any storage mechanism.
type RuleRepository interface {
	Load(ctx context.Context) ([]models.Rule, error)
	Save(ctx context.Context, rules []models.Rule) error
}

// RuleEngine evaluates regex rules against document content, independent of
// the checklist scoring lane.
type RuleEngine struct {
	Logger *zap.Logger
	Repo   RuleRepository
}

// NewRuleEngine cria um novo motor de regras.
func NewRuleEngine(logger *zap.Logger, repo RuleRepository) *RuleEngine {
	return &RuleEngine{Logger: logger, Repo: repo}
}

// EvaluateRules runs every applicable rule against the content. A rule is
// applicable when it is enabled and either global (empty Section) or scoped to
// the detected section; inapplicable rules are excluded from TotalCount
// entirely. An invalid pattern passes vacuously (fail-open): one misconfigured
// user rule must never flag every document.
func (e *RuleEngine) EvaluateRules(content string, detectedSection SectionType, rules []models.Rule) RulesAnalysis {
	analysis := RulesAnalysis{}

	for _, rule := range rules {
		if !rule.IsEnabled {
			continue
		}
		if rule.Section != "" && rule.Section != string(detectedSection) {
			continue
		}

		result := RuleResult{Rule: rule, Passed: true}
		re, err := regexp.Compile(`(?im)` + rule.Pattern)
		if err != nil {
			e.Logger.Warn("Invalid rule pattern, treating as vacuous pass",
				zap.String("rule_id", rule.ID),
				zap.String("pattern", rule.Pattern),
				zap.Error(err))
		} else if loc := re.FindStringIndex(content); loc != nil {
			result.MatchedAt = lineOfOffset(content, loc[0])
		} else {
			result.Passed = false
		}

		analysis.Results = append(analysis.Results, result)
		analysis.TotalCount++
		if result.Passed {
			analysis.PassedCount++
		}
	}

	e.Logger.Debug("Rule evaluation completed",
		zap.Int("total", analysis.TotalCount),
		zap.Int("passed", analysis.PassedCount))

	return analysis
}

// CheckRule evaluates a single rule without the applicability pre-filter used
// by EvaluateRules. A disabled rule, a rule scoped to a different section or
// an invalid pattern all yield a vacuous pass: an inapplicable rule must never
// penalize a score.
func (e *RuleEngine) CheckRule(content string, detectedSection SectionType, rule models.Rule) RuleResult {
	result := RuleResult{Rule: rule, Passed: true}

	if !rule.IsEnabled {
		return result
	}
	if rule.Section != "" && rule.Section != string(detectedSection) {
		return result
	}

	re, err := regexp.Compile(`(?im)` + rule.Pattern)
	if err != nil {
		e.Logger.Warn("Invalid rule pattern, treating as vacuous pass",
			zap.String("rule_id", rule.ID),
			zap.Error(err))
		return result
	}

	if loc := re.FindStringIndex(content); loc != nil {
		result.MatchedAt = lineOfOffset(content, loc[0])
		return result
	}

	result.Passed = false
	return result
}
