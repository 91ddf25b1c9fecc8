package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orientador/models"
)

func newTestEngine() *RuleEngine {
	return NewRuleEngine(zap.NewNop(), nil)
}

func TestEvaluateRules(t *testing.T) {
	engine := newTestEngine()
	rules := []models.Rule{
		{ID: "r1", Name: "objetivo", Pattern: `objetivo`, IsEnabled: true},
		{ID: "r2", Name: "hipótese", Pattern: `hip[óo]tese`, IsEnabled: true},
	}

	analysis := engine.EvaluateRules("o objetivo geral deste estudo", "", rules)

	require.Len(t, analysis.Results, 2)
	assert.Equal(t, 2, analysis.TotalCount)
	assert.Equal(t, 1, analysis.PassedCount)

	assert.True(t, analysis.Results[0].Passed)
	assert.Equal(t, 1, analysis.Results[0].MatchedAt)
	assert.False(t, analysis.Results[1].Passed)
}

func TestEvaluateRulesSkipsInapplicable(t *testing.T) {
	engine := newTestEngine()
	rules := []models.Rule{
		{ID: "r1", Name: "desabilitada", Pattern: `x`, IsEnabled: false},
		{ID: "r2", Name: "outra seção", Pattern: `x`, Section: "methodology", IsEnabled: true},
		{ID: "r3", Name: "global", Pattern: `objetivo`, IsEnabled: true},
		{ID: "r4", Name: "mesma seção", Pattern: `objetivo`, Section: "introduction", IsEnabled: true},
	}

	analysis := engine.EvaluateRules("o objetivo geral", SectionIntroduction, rules)

	// regras desabilitadas ou de outra seção ficam fora do total
	assert.Equal(t, 2, analysis.TotalCount)
	assert.Equal(t, 2, analysis.PassedCount)
}

func TestEvaluateRulesInvalidPatternPassesVacuously(t *testing.T) {
	engine := newTestEngine()
	rules := []models.Rule{
		{ID: "r1", Name: "padrão quebrado", Pattern: `([`, IsEnabled: true},
	}

	analysis := engine.EvaluateRules("qualquer texto", "", rules)

	require.Len(t, analysis.Results, 1)
	assert.True(t, analysis.Results[0].Passed)
	assert.Equal(t, 0, analysis.Results[0].MatchedAt)
	assert.Equal(t, 1, analysis.PassedCount)
}

func TestEvaluateRulesMatchLine(t *testing.T) {
	engine := newTestEngine()
	rules := []models.Rule{
		{ID: "r1", Name: "conclusão", Pattern: `conclui-se`, IsEnabled: true},
	}

	content := "## Conclusão\n\nConclui-se que o estudo atingiu o objetivo."
	analysis := engine.EvaluateRules(content, SectionConclusion, rules)

	require.Len(t, analysis.Results, 1)
	assert.True(t, analysis.Results[0].Passed)
	assert.Equal(t, 3, analysis.Results[0].MatchedAt)
}

func TestCheckRule(t *testing.T) {
	engine := newTestEngine()

	t.Run("regra aplicável que casa", func(t *testing.T) {
		rule := models.Rule{ID: "r1", Pattern: `objetivo`, IsEnabled: true}
		result := engine.CheckRule("o objetivo geral", "", rule)
		assert.True(t, result.Passed)
		assert.Equal(t, 1, result.MatchedAt)
	})

	t.Run("regra aplicável que não casa", func(t *testing.T) {
		rule := models.Rule{ID: "r1", Pattern: `hip[óo]tese`, IsEnabled: true}
		result := engine.CheckRule("o objetivo geral", "", rule)
		assert.False(t, result.Passed)
	})

	t.Run("regra desabilitada passa vacuamente", func(t *testing.T) {
		rule := models.Rule{ID: "r1", Pattern: `hip[óo]tese`, IsEnabled: false}
		result := engine.CheckRule("o objetivo geral", "", rule)
		assert.True(t, result.Passed)
	})

	t.Run("regra de outra seção passa vacuamente", func(t *testing.T) {
		rule := models.Rule{ID: "r1", Pattern: `hip[óo]tese`, Section: "methodology", IsEnabled: true}
		result := engine.CheckRule("o objetivo geral", SectionIntroduction, rule)
		assert.True(t, result.Passed)
	})

	t.Run("padrão inválido passa vacuamente", func(t *testing.T) {
		rule := models.Rule{ID: "r1", Pattern: `([`, IsEnabled: true}
		result := engine.CheckRule("o objetivo geral", "", rule)
		assert.True(t, result.Passed)
	})
}

func TestValidatePattern(t *testing.T) {
	assert.NoError(t, ValidatePattern(`objetivo\s+geral`))
	assert.Error(t, ValidatePattern(`([`))
}
