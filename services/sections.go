package services

import "regexp"

// SectionType identifica uma das nove seções canônicas de um trabalho acadêmico.
type SectionType string

const (
	SectionTitle            SectionType = "title"
	SectionAbstract         SectionType = "abstract"
	SectionIntroduction     SectionType = "introduction"
	SectionLiteratureReview SectionType = "literature-review"
	SectionMethodology      SectionType = "methodology"
	SectionResults          SectionType = "results"
	SectionDiscussion       SectionType = "discussion"
	SectionConclusion       SectionType = "conclusion"
	SectionReferences       SectionType = "references"
)

// sectionLabels mapeia o tipo de seção para o nome exibido ao usuário.
var sectionLabels = map[SectionType]string{
	SectionTitle:            "Título",
	SectionAbstract:         "Resumo",
	SectionIntroduction:     "Introdução",
	SectionLiteratureReview: "Revisão de Literatura",
	SectionMethodology:      "Metodologia",
	SectionResults:          "Resultados",
	SectionDiscussion:       "Discussão",
	SectionConclusion:       "Conclusão",
	SectionReferences:       "Referências",
}

// SectionLabel returns the display name for a section type.
func SectionLabel(section SectionType) string {
	if label, ok := sectionLabels[section]; ok {
		return label
	}
	return string(section)
}

// classifierOrder is the fixed evaluation order for section classification.
// "title" MUST come last: its patterns ("# Título", "# Title") would otherwise
// shadow every other level-1 heading.
var classifierOrder = []SectionType{
	SectionAbstract,
	SectionIntroduction,
	SectionLiteratureReview,
	SectionMethodology,
	SectionResults,
	SectionDiscussion,
	SectionConclusion,
	SectionReferences,
	SectionTitle,
}

// sectionPatterns holds the ordered recognition patterns per section type.
// Headers are recognized in Portuguese (accented and unaccented spellings) and
// English, with optional "1." style numbering and both # and ## depths.
var sectionPatterns = map[SectionType][]*regexp.Regexp{
	SectionAbstract: {
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?resumo\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?abstract\b`),
	},
	SectionIntroduction: {
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?introdu[çc][ãa]o\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?introduction\b`),
	},
	SectionLiteratureReview: {
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?revis[ãa]o\s+(?:de\s+|da\s+)?literatura\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?(?:referencial|fundamenta[çc][ãa]o)\s+te[óo]ric[oa]\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?(?:literature\s+review|related\s+work)\b`),
	},
	SectionMethodology: {
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?metodologia\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?(?:materiais\s+e\s+)?m[ée]todos?\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?(?:methodology|methods?|materials\s+and\s+methods)\b`),
	},
	SectionResults: {
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?resultados?\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?results\b`),
	},
	SectionDiscussion: {
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?discuss[ãa]o\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?discussion\b`),
	},
	SectionConclusion: {
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?conclus[ãa]o\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?conclus[õo]es\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?considera[çc][õo]es\s+finais\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?conclusions?\b`),
	},
	SectionReferences: {
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?refer[êe]ncias(?:\s+bibliogr[áa]ficas)?\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?bibliografia\b`),
		regexp.MustCompile(`(?im)^#{1,2}\s*(?:\d+\.?\s*)?(?:references|bibliography)\b`),
	},
	SectionTitle: {
		regexp.MustCompile(`(?im)^#\s*t[íi]tulo\b`),
		regexp.MustCompile(`(?im)^#\s*title\b`),
	},
}

// ClassifySection maps a chunk of markdown (typically a single line) to a
// section type. Types are tried in classifierOrder, patterns within a type in
// listed order; first match wins. Returns false when nothing matches.
func ClassifySection(text string) (SectionType, bool) {
	for _, section := range classifierOrder {
		for _, pattern := range sectionPatterns[section] {
			if pattern.MatchString(text) {
				return section, true
			}
		}
	}
	return "", false
}
