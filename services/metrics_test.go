package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 2, CountWords("duas palavras"))
	// marcadores markdown não contam como palavras
	assert.Equal(t, 3, CountWords("## Introdução *do* `trabalho`"))
}

func TestCountCitations(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"sem citações", "texto sem nenhuma referência", 0},
		{"chave de bibliografia", "como mostra [@silva2023]", 1},
		{"autor-data", "como mostra (Silva, 2023)", 1},
		{"autor-data com sufixo", "(Souza, 2021a) aponta", 1},
		{"numérica", "estudos anteriores [3] indicam", 1},
		{"numérica composta", "estudos [1, 2; 5] indicam", 1},
		{"estilos combinados", "[@silva2023] e (Souza, 2021) e [4]", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountCitations(tt.text))
		})
	}
}

func TestExtractCitationYears(t *testing.T) {
	text := "(Silva, 1999) e (Souza, 2020) e novamente (Lima, 2020) e (Alves, 2015)"

	years := ExtractCitationYears(text)

	// deduplicado e ordenado do mais recente para o mais antigo
	assert.Equal(t, []int{2020, 2015, 1999}, years)
}

func TestExtractCitationYearsIgnoresNonYears(t *testing.T) {
	assert.Empty(t, ExtractCitationYears("amostra de 1234 participantes em 3000 domicílios"))
	// ano colado em identificador não tem fronteira de palavra
	assert.Empty(t, ExtractCitationYears("[@silva2023]"))
}
