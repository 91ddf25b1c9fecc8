package services

import (
	"fmt"
	"time"
)

// FeedbackPriority signals how urgently a section needs attention.
type FeedbackPriority string

const (
	PriorityHigh   FeedbackPriority = "high"
	PriorityMedium FeedbackPriority = "medium"
	PriorityLow    FeedbackPriority = "low"
)

const maxFeedbackEntries = 5

// SectionFeedback is the human-readable assessment of one section: up to five
// strengths, weaknesses and suggestions (earlier entries take priority) plus
// an overall priority level.
type SectionFeedback struct {
	Section      SectionType      `json:"section"`
	SectionLabel string           `json:"section_label"`
	Checklist    SectionChecklist `json:"checklist"`
	Strengths    []string         `json:"strengths"`
	Weaknesses   []string         `json:"weaknesses"`
	Suggestions  []string         `json:"suggestions"`
	Priority     FeedbackPriority `json:"priority"`
}

// BuildFeedback derives feedback for a section from its evaluated checklist,
// its raw text and the lexical metrics.
func BuildFeedback(section SectionType, text string, checklist SectionChecklist) SectionFeedback {
	fb := SectionFeedback{
		Section:      section,
		SectionLabel: checklist.SectionLabel,
		Checklist:    checklist,
	}

	missingRequired := 0
	for _, item := range checklist.Items {
		switch {
		case item.Required && item.Status == StatusComplete:
			if item.DetectedAt != "" {
				fb.Strengths = append(fb.Strengths, fmt.Sprintf("%s identificado (%s)", item.Label, item.DetectedAt))
			} else {
				fb.Strengths = append(fb.Strengths, fmt.Sprintf("%s identificado", item.Label))
			}
		case !item.Required && item.Status == StatusComplete:
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("%s presente (item bônus)", item.Label))
		case item.Required && item.Status != StatusComplete:
			missingRequired++
			fb.Weaknesses = append(fb.Weaknesses, fmt.Sprintf("%s não identificado", item.Label))
			fb.Suggestions = append(fb.Suggestions, suggestionFor(item))
		}
		// optional + incomplete: silently ignored
	}

	applySectionHeuristics(&fb, section, text, time.Now().Year())

	switch {
	case checklist.Score < 40 || missingRequired >= 4:
		fb.Priority = PriorityHigh
	case checklist.Score < 60 || missingRequired >= 2:
		fb.Priority = PriorityMedium
	default:
		fb.Priority = PriorityLow
	}

	fb.Strengths = truncate(fb.Strengths)
	fb.Weaknesses = truncate(fb.Weaknesses)
	fb.Suggestions = truncate(fb.Suggestions)
	return fb
}

// applySectionHeuristics layers length, citation-density and recency checks
// computed from the raw text on top of the checklist-derived feedback.
func applySectionHeuristics(fb *SectionFeedback, section SectionType, text string, currentYear int) {
	words := CountWords(text)
	citations := CountCitations(text)

	switch section {
	case SectionIntroduction:
		if words < 300 {
			fb.Weaknesses = append(fb.Weaknesses, fmt.Sprintf("Introdução muito curta (%d palavras)", words))
			fb.Suggestions = append(fb.Suggestions, "Expanda a introdução para 500-800 palavras seguindo a estrutura: (1) contextualização do tema, (2) problema e justificativa, (3) objetivos geral e específicos, (4) organização do trabalho.")
		} else if words >= 500 {
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Introdução com boa extensão (%d palavras)", words))
		}

	case SectionLiteratureReview:
		switch {
		case citations == 0:
			fb.Weaknesses = append(fb.Weaknesses, "Nenhuma citação encontrada na revisão de literatura")
			fb.Suggestions = append(fb.Suggestions, "Cite as fontes usando um dos formatos aceitos: chave de bibliografia [@silva2023], autor-data (Silva, 2023) ou numeração [1].")
		case citations < 5:
			fb.Weaknesses = append(fb.Weaknesses, fmt.Sprintf("Poucas citações na revisão (%d)", citations))
			fb.Suggestions = append(fb.Suggestions, "Uma revisão de literatura consistente costuma reunir ao menos 15-20 citações de fontes distintas.")
		case citations >= 10:
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Revisão bem referenciada (%d citações)", citations))
		}

		years := ExtractCitationYears(text)
		if len(years) > 0 {
			recent := 0
			for _, year := range years {
				if currentYear-year <= 5 {
					recent++
				}
			}
			ratio := float64(recent) / float64(len(years))
			if float64(recent) < float64(len(years))*0.3 {
				fb.Weaknesses = append(fb.Weaknesses, fmt.Sprintf("Referências desatualizadas: apenas %.0f%% dos anos citados são dos últimos 5 anos", ratio*100))
				fb.Suggestions = append(fb.Suggestions, "Busque fontes recentes: recomenda-se que ao menos metade das referências tenha sido publicada nos últimos 5 anos.")
			} else if float64(recent) >= float64(len(years))*0.5 {
				fb.Strengths = append(fb.Strengths, fmt.Sprintf("Referências atuais: %.0f%% dos anos citados são dos últimos 5 anos", ratio*100))
			}
		}

		if words < 500 {
			fb.Weaknesses = append(fb.Weaknesses, fmt.Sprintf("Revisão de literatura muito curta (%d palavras)", words))
			fb.Suggestions = append(fb.Suggestions, "Expanda a revisão para 2000-3000 palavras, organizando-a por temas ou correntes teóricas.")
		}

	case SectionMethodology:
		if words < 300 {
			fb.Weaknesses = append(fb.Weaknesses, fmt.Sprintf("Metodologia muito curta (%d palavras)", words))
			fb.Suggestions = append(fb.Suggestions, "Uma metodologia completa descreve 7 elementos: tipo de pesquisa, abordagem, população, amostra, instrumentos de coleta, procedimentos e técnica de análise dos dados.")
		} else if words >= 500 {
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Metodologia detalhada (%d palavras)", words))
		}

	case SectionDiscussion:
		if citations == 0 {
			fb.Weaknesses = append(fb.Weaknesses, "A discussão não dialoga com a literatura (nenhuma citação)")
			fb.Suggestions = append(fb.Suggestions, "Confronte seus achados com estudos anteriores usando conectivos como \"corrobora\", \"está de acordo com\", \"diverge de\", \"em consonância com\".")
		}
		if words < 300 {
			fb.Weaknesses = append(fb.Weaknesses, fmt.Sprintf("Discussão muito curta (%d palavras)", words))
			fb.Suggestions = append(fb.Suggestions, "A discussão deve responder 6 perguntas: o que os resultados significam? Confirmam ou contrariam a literatura? Confirmam a hipótese? Quais as explicações alternativas? Quais as implicações? Quais as limitações?")
		} else if words >= 500 {
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Discussão com boa extensão (%d palavras)", words))
		}

	case SectionConclusion:
		switch {
		case words < 150:
			fb.Weaknesses = append(fb.Weaknesses, fmt.Sprintf("Conclusão muito curta (%d palavras)", words))
			fb.Suggestions = append(fb.Suggestions, "Estruture a conclusão em 5 partes: retomada do objetivo, síntese dos achados, contribuições, limitações e trabalhos futuros.")
		case words > 800:
			fb.Weaknesses = append(fb.Weaknesses, fmt.Sprintf("Conclusão muito longa (%d palavras)", words))
			fb.Suggestions = append(fb.Suggestions, "A conclusão não deve conter: dados novos, discussão extensa de resultados, citações inéditas nem detalhamento metodológico. Mova esse conteúdo para as seções apropriadas.")
		default:
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Conclusão com extensão adequada (%d palavras)", words))
		}
	}
}

func truncate(entries []string) []string {
	if len(entries) > maxFeedbackEntries {
		return entries[:maxFeedbackEntries]
	}
	return entries
}
