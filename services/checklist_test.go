package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findItem(t *testing.T, checklist SectionChecklist, id string) ChecklistItem {
	t.Helper()
	for _, item := range checklist.Items {
		if item.ID == id {
			return item
		}
	}
	require.Failf(t, "item não encontrado", "id: %s", id)
	return ChecklistItem{}
}

func TestBuildChecklistEmptyText(t *testing.T) {
	checklist := BuildChecklist(SectionIntroduction, "")

	assert.Equal(t, SectionIntroduction, checklist.Section)
	assert.Equal(t, "Introdução", checklist.SectionLabel)
	assert.Equal(t, 0, checklist.Score)
	assert.Equal(t, 100, checklist.MaxScore)
	for _, item := range checklist.Items {
		assert.Equal(t, StatusIncomplete, item.Status)
		assert.False(t, item.AutoDetected)
	}
}

func TestBuildChecklistDetectsItems(t *testing.T) {
	text := "## Introdução\nNo contexto atual, o problema da evasão é relevante.\nEste trabalho tem como objetivo geral analisar a evasão escolar."

	checklist := BuildChecklist(SectionIntroduction, text)

	objective := findItem(t, checklist, "intro-objective-general")
	assert.Equal(t, StatusComplete, objective.Status)
	assert.True(t, objective.AutoDetected)
	assert.Equal(t, "Linha 3", objective.DetectedAt)

	problem := findItem(t, checklist, "intro-problem")
	assert.Equal(t, StatusComplete, problem.Status)
	assert.Equal(t, "Linha 2", problem.DetectedAt)

	hypothesis := findItem(t, checklist, "intro-hypothesis")
	assert.Equal(t, StatusIncomplete, hypothesis.Status)

	assert.Greater(t, checklist.Score, 0)
	assert.LessOrEqual(t, checklist.Score, 100)
}

func TestBuildChecklistScoreIsWeighted(t *testing.T) {
	// Introdução: peso total 18; apenas o objetivo geral (peso 3) detectado
	checklist := BuildChecklist(SectionIntroduction, "tem como objetivo")

	objective := findItem(t, checklist, "intro-objective-general")
	require.Equal(t, StatusComplete, objective.Status)

	assert.Equal(t, 17, checklist.Score) // round(100 * 3 / 18)
}

func TestBuildChecklistScoreMonotonicity(t *testing.T) {
	// satisfazer um item adicional nunca reduz o score
	base := "tem como objetivo"
	more := base + " e desdobra-se em objetivos específicos"
	full := more + " para responder ao problema no contexto atual"

	first := BuildChecklist(SectionIntroduction, base)
	second := BuildChecklist(SectionIntroduction, more)
	third := BuildChecklist(SectionIntroduction, full)

	assert.GreaterOrEqual(t, second.Score, first.Score)
	assert.GreaterOrEqual(t, third.Score, second.Score)
	assert.Greater(t, third.Score, first.Score)
}

func TestBuildChecklistManualReviewItemStaysIncomplete(t *testing.T) {
	// título-subtítulo não tem padrão de detecção registrado
	checklist := BuildChecklist(SectionTitle, "# Evasão escolar no ensino médio: um estudo de caso")

	subtitle := findItem(t, checklist, "title-subtitle")
	assert.Equal(t, StatusIncomplete, subtitle.Status)

	present := findItem(t, checklist, "title-present")
	assert.Equal(t, StatusComplete, present.Status)
}

func TestBuildChecklistUnknownSection(t *testing.T) {
	checklist := BuildChecklist(SectionType("outra"), "qualquer texto")
	assert.Empty(t, checklist.Items)
	assert.Equal(t, 0, checklist.Score)
}
