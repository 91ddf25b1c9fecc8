package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFeedbackMissingRequiredItems(t *testing.T) {
	checklist := BuildChecklist(SectionIntroduction, "")
	fb := BuildFeedback(SectionIntroduction, "", checklist)

	assert.Equal(t, PriorityHigh, fb.Priority)
	assert.Empty(t, fb.Strengths)
	// quatro itens obrigatórios faltando mais a heurística de extensão
	assert.Len(t, fb.Weaknesses, 5)
	assert.Len(t, fb.Suggestions, 5)
	assert.Contains(t, fb.Weaknesses[0], "não identificado")
	// a heurística de extensão cabe dentro do limite de cinco entradas
	assert.Contains(t, strings.Join(fb.Weaknesses, "\n"), "Introdução muito curta")
}

func TestBuildFeedbackCompletedItemsBecomeStrengths(t *testing.T) {
	text := "tem como objetivo geral analisar o fenômeno"
	checklist := BuildChecklist(SectionIntroduction, text)
	fb := BuildFeedback(SectionIntroduction, text, checklist)

	require.NotEmpty(t, fb.Strengths)
	assert.Contains(t, fb.Strengths[0], "Objetivo geral identificado")
	assert.Contains(t, fb.Strengths[0], "Linha 1")
}

func TestBuildFeedbackOptionalCompleteIsBonus(t *testing.T) {
	text := "A hipótese deste estudo é que X influencia Y."
	checklist := BuildChecklist(SectionIntroduction, text)
	fb := BuildFeedback(SectionIntroduction, text, checklist)

	found := false
	for _, s := range fb.Strengths {
		if strings.Contains(s, "Hipótese presente (item bônus)") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuildFeedbackPriorityThresholds(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  FeedbackPriority
	}{
		{"score baixo", 39, PriorityHigh},
		{"score mediano", 59, PriorityMedium},
		{"score bom", 80, PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// checklist sintético sem itens: a prioridade depende só do score
			checklist := SectionChecklist{
				Section:      SectionResults,
				SectionLabel: SectionLabel(SectionResults),
				Score:        tt.score,
				MaxScore:     100,
			}
			fb := BuildFeedback(SectionResults, "texto", checklist)
			assert.Equal(t, tt.want, fb.Priority)
		})
	}
}

func TestBuildFeedbackPriorityByMissingRequiredCount(t *testing.T) {
	missing := func(n int) []ChecklistItem {
		items := make([]ChecklistItem, n)
		for i := range items {
			items[i] = ChecklistItem{
				ID:       fmt.Sprintf("item-%d", i),
				Label:    fmt.Sprintf("Item %d", i),
				Required: true,
				Status:   StatusIncomplete,
			}
		}
		return items
	}

	// score alto não compensa quatro itens obrigatórios ausentes
	checklist := SectionChecklist{Section: SectionResults, Score: 90, MaxScore: 100, Items: missing(4)}
	fb := BuildFeedback(SectionResults, "texto", checklist)
	assert.Equal(t, PriorityHigh, fb.Priority)

	checklist = SectionChecklist{Section: SectionResults, Score: 90, MaxScore: 100, Items: missing(2)}
	fb = BuildFeedback(SectionResults, "texto", checklist)
	assert.Equal(t, PriorityMedium, fb.Priority)

	checklist = SectionChecklist{Section: SectionResults, Score: 90, MaxScore: 100, Items: missing(1)}
	fb = BuildFeedback(SectionResults, "texto", checklist)
	assert.Equal(t, PriorityLow, fb.Priority)
}

func TestBuildFeedbackSuggestionFallback(t *testing.T) {
	// item obrigatório sem template registrado cai na sugestão genérica
	checklist := SectionChecklist{
		Section: SectionResults,
		Score:   50,
		Items: []ChecklistItem{
			{ID: "sem-template", Label: "Item avulso", Description: "Descrição do item avulso", Required: true, Status: StatusIncomplete},
		},
	}
	fb := BuildFeedback(SectionResults, "texto", checklist)

	require.Len(t, fb.Suggestions, 1)
	assert.Equal(t, "Adicione: Descrição do item avulso", fb.Suggestions[0])

	// itens opcionais da tabela sem template usam o mesmo fallback
	got := suggestionFor(ChecklistItem{ID: "lit-synthesis", Description: "Sintetiza e posiciona as fontes entre si"})
	assert.Equal(t, "Adicione: Sintetiza e posiciona as fontes entre si", got)
}

func TestBuildFeedbackSuggestionCarriesTemplate(t *testing.T) {
	checklist := BuildChecklist(SectionIntroduction, "")
	fb := BuildFeedback(SectionIntroduction, "", checklist)

	joined := strings.Join(fb.Suggestions, "\n")
	assert.Contains(t, joined, "Modelo:")
}

func TestLiteratureReviewCitationHeuristics(t *testing.T) {
	// todos os itens obrigatórios presentes; restam só as heurísticas
	text := "Segundo [@silva2020], o conceito central deriva da teoria X, como mostram estudos anteriores."
	checklist := BuildChecklist(SectionLiteratureReview, text)
	fb := BuildFeedback(SectionLiteratureReview, text, checklist)

	joined := strings.Join(fb.Weaknesses, "\n")
	assert.Contains(t, joined, "Poucas citações na revisão (1)")
	assert.Contains(t, joined, "muito curta")
}

func TestLiteratureReviewNoCitations(t *testing.T) {
	text := "Segundo o conceito da teoria X, estudos anteriores mostram resultados."
	checklist := BuildChecklist(SectionLiteratureReview, text)
	fb := BuildFeedback(SectionLiteratureReview, text, checklist)

	joined := strings.Join(fb.Weaknesses, "\n")
	assert.Contains(t, joined, "Nenhuma citação encontrada na revisão de literatura")
}

func TestConclusionLengthHeuristics(t *testing.T) {
	short := "Conclui-se que o objetivo foi atingido."
	checklist := BuildChecklist(SectionConclusion, short)
	fb := BuildFeedback(SectionConclusion, short, checklist)
	assert.Contains(t, strings.Join(fb.Weaknesses, "\n"), "Conclusão muito curta")

	adequate := "Conclui-se que o objetivo proposto foi plenamente atingido. " + strings.Repeat("A contribuição do estudo se confirma em cada análise realizada aqui. ", 20)
	checklist = BuildChecklist(SectionConclusion, adequate)
	fb = BuildFeedback(SectionConclusion, adequate, checklist)
	assert.Contains(t, strings.Join(fb.Strengths, "\n"), "Conclusão com extensão adequada")
}

func TestIntroductionLengthHeuristics(t *testing.T) {
	long := strings.Repeat("palavra ", 520)
	fb := SectionFeedback{}
	applySectionHeuristics(&fb, SectionIntroduction, long, time.Now().Year())
	assert.Contains(t, strings.Join(fb.Strengths, "\n"), "boa extensão")

	fb = SectionFeedback{}
	applySectionHeuristics(&fb, SectionIntroduction, "curta demais", time.Now().Year())
	assert.Contains(t, strings.Join(fb.Weaknesses, "\n"), "Introdução muito curta (2 palavras)")
}

func TestLiteratureReviewRecency(t *testing.T) {
	currentYear := 2026

	var old []string
	for year := 1990; year < 2000; year++ {
		old = append(old, fmt.Sprintf("(Silva, %d)", year))
	}
	fb := SectionFeedback{}
	applySectionHeuristics(&fb, SectionLiteratureReview, strings.Join(old, " "), currentYear)
	assert.Contains(t, strings.Join(fb.Weaknesses, "\n"), "Referências desatualizadas")

	recent := "(Silva, 2025) (Souza, 2024) (Lima, 2023) (Alves, 1998)"
	fb = SectionFeedback{}
	applySectionHeuristics(&fb, SectionLiteratureReview, recent, currentYear)
	assert.Contains(t, strings.Join(fb.Strengths, "\n"), "Referências atuais")
}
