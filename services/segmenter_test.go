package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentDocument(t *testing.T) {
	document := strings.Join([]string{
		"## Introdução",
		"O presente trabalho aborda o tema.",
		"",
		"## Metodologia",
		"Trata-se de uma pesquisa qualitativa.",
		"",
		"## Conclusão",
		"Conclui-se que o objetivo foi atingido.",
	}, "\n")

	segments := SegmentDocument(document)

	require.Equal(t, 3, segments.Len())
	assert.Equal(t, []SectionType{SectionIntroduction, SectionMethodology, SectionConclusion}, segments.Order())

	intro, ok := segments.Text(SectionIntroduction)
	require.True(t, ok)
	// o heading pertence ao bloco da própria seção
	assert.True(t, strings.HasPrefix(intro, "## Introdução"))
	assert.Contains(t, intro, "O presente trabalho aborda o tema.")

	method, ok := segments.Text(SectionMethodology)
	require.True(t, ok)
	assert.Contains(t, method, "pesquisa qualitativa")
	assert.NotContains(t, method, "Conclui-se")
}

func TestSegmentDocumentDiscardsPreamble(t *testing.T) {
	document := "linha solta antes de qualquer seção\noutra linha\n## Resumo\nEste estudo investiga X."

	segments := SegmentDocument(document)

	require.Equal(t, 1, segments.Len())
	text, ok := segments.Text(SectionAbstract)
	require.True(t, ok)
	assert.NotContains(t, text, "linha solta")
}

func TestSegmentDocumentRepeatedSectionReplacesText(t *testing.T) {
	document := strings.Join([]string{
		"## Introdução",
		"primeira versão",
		"## Metodologia",
		"pesquisa quantitativa",
		"## Introdução",
		"segunda versão",
	}, "\n")

	segments := SegmentDocument(document)

	// a reaparição substitui o texto mas mantém a posição original na ordem
	assert.Equal(t, []SectionType{SectionIntroduction, SectionMethodology}, segments.Order())

	intro, ok := segments.Text(SectionIntroduction)
	require.True(t, ok)
	assert.Contains(t, intro, "segunda versão")
	assert.NotContains(t, intro, "primeira versão")
}

func TestSegmentDocumentEmpty(t *testing.T) {
	segments := SegmentDocument("")
	assert.Equal(t, 0, segments.Len())

	_, ok := segments.Text(SectionIntroduction)
	assert.False(t, ok)
}
