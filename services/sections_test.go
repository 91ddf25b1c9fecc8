package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySection(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    SectionType
		matched bool
	}{
		{"introducao nivel 2", "## Introdução", SectionIntroduction, true},
		{"introducao sem acento", "## Introducao", SectionIntroduction, true},
		{"introducao numerada", "# 1. Introdução", SectionIntroduction, true},
		{"introduction em ingles", "## Introduction", SectionIntroduction, true},
		{"resumo", "## Resumo", SectionAbstract, true},
		{"abstract", "# Abstract", SectionAbstract, true},
		{"revisao de literatura", "## Revisão de Literatura", SectionLiteratureReview, true},
		{"referencial teorico", "## 2. Referencial Teórico", SectionLiteratureReview, true},
		{"fundamentacao teorica", "## Fundamentação Teórica", SectionLiteratureReview, true},
		{"metodologia", "## Metodologia", SectionMethodology, true},
		{"materiais e metodos", "## Materiais e Métodos", SectionMethodology, true},
		{"resultados", "## 4. Resultados", SectionResults, true},
		{"discussao", "## Discussão", SectionDiscussion, true},
		{"conclusao", "## Conclusão", SectionConclusion, true},
		{"consideracoes finais", "## Considerações Finais", SectionConclusion, true},
		{"referencias", "## Referências", SectionReferences, true},
		{"referencias bibliograficas", "## Referências Bibliográficas", SectionReferences, true},
		{"bibliografia", "## Bibliografia", SectionReferences, true},
		{"titulo", "# Título", SectionTitle, true},
		{"title", "# Title", SectionTitle, true},
		{"paragrafo comum", "A pesquisa acadêmica exige rigor.", "", false},
		{"heading desconhecido", "## Agradecimentos", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifySection(tt.line)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// "# Introdução" é um heading de nível 1 como "# Título"; a ordem de avaliação
// garante que a seção específica vence o tipo título.
func TestClassifySectionTitleEvaluatedLast(t *testing.T) {
	got, ok := ClassifySection("# Introdução")
	assert.True(t, ok)
	assert.Equal(t, SectionIntroduction, got)

	got, ok = ClassifySection("# Conclusão")
	assert.True(t, ok)
	assert.Equal(t, SectionConclusion, got)
}

func TestSectionLabel(t *testing.T) {
	assert.Equal(t, "Introdução", SectionLabel(SectionIntroduction))
	assert.Equal(t, "Revisão de Literatura", SectionLabel(SectionLiteratureReview))
	// tipo desconhecido cai no próprio valor
	assert.Equal(t, "outro", SectionLabel(SectionType("outro")))
}
