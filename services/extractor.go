package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"orientador/models"
)

// ExtractedPattern is a candidate rule derived from a reference document. It
// has the shape of a Rule minus identity and ownership; each one becomes a
// persisted REFERENCE rule.
type ExtractedPattern struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Category    models.RuleCategory `json:"category"`
	Pattern     string              `json:"pattern"`
	Section     SectionType         `json:"section,omitempty"` // empty = global
	Severity    models.RuleSeverity `json:"severity"`
	Weight      int                 `json:"weight"`
}

// headerKeywords maps lowercased header substrings to section types, tried in
// listed order so extraction stays order-stable across runs.
var headerKeywords = []struct {
	keyword string
	section SectionType
}{
	{"resumo", SectionAbstract},
	{"abstract", SectionAbstract},
	{"introdu", SectionIntroduction},
	{"revis", SectionLiteratureReview},
	{"referencial te", SectionLiteratureReview},
	{"fundamenta", SectionLiteratureReview},
	{"literature", SectionLiteratureReview},
	{"metodolog", SectionMethodology},
	{"method", SectionMethodology},
	{"resultado", SectionResults},
	{"results", SectionResults},
	{"discuss", SectionDiscussion},
	{"conclus", SectionConclusion},
	{"considera", SectionConclusion},
	{"referência", SectionReferences},
	{"referencia", SectionReferences},
	{"bibliograf", SectionReferences},
	{"references", SectionReferences},
}

// academicPhrases are canonical formulations whose presence in a reference
// document is worth replicating; matching is accent-insensitive.
var academicPhrases = []struct {
	phrase  string
	section SectionType
}{
	{"o presente trabalho", SectionIntroduction},
	{"tem como objetivo", SectionIntroduction},
	{"este estudo", SectionIntroduction},
	{"no contexto de", SectionIntroduction},
	{"justifica-se", SectionIntroduction},
	{"de acordo com", SectionLiteratureReview},
	{"segundo os autores", SectionLiteratureReview},
	{"com base na literatura", SectionLiteratureReview},
	{"a coleta de dados", SectionMethodology},
	{"a análise dos dados", SectionMethodology},
	{"os resultados obtidos", SectionResults},
	{"a partir dos resultados", SectionDiscussion},
	{"conclui-se que", SectionConclusion},
}

// citationStyles are the named styles probed in a reference document; a style
// seen at least citationStyleThreshold times becomes a citation rule.
var citationStyles = []struct {
	name    string
	pattern string
}{
	{"autor-data", `\([A-ZÀ-Ü][^()\d]*,\s*\d{4}[a-z]?\)`},
	{"numérico", `\[\d{1,3}\]`},
	{"chave de bibliografia", `\[@[^\]\s]+\]`},
}

const citationStyleThreshold = 3

// methodologyTerms flag methodological vocabulary worth carrying over.
var methodologyTerms = []string{
	"pesquisa qualitativa",
	"pesquisa quantitativa",
	"estudo de caso",
	"revisão sistemática",
	"survey",
	"entrevista semiestruturada",
	"análise de conteúdo",
	"amostragem",
	"questionário",
	"observação participante",
}

var markdownHeader = regexp.MustCompile(`(?m)^#+\s+(.+)$`)

// PatternExtractor derives candidate rules from the plaintext of an uploaded
// reference document (PDF/DOCX extraction happens upstream).
type PatternExtractor struct {
	Logger *zap.Logger
}

// NewPatternExtractor cria um novo extrator de padrões.
func NewPatternExtractor(logger *zap.Logger) *PatternExtractor {
	return &PatternExtractor{Logger: logger}
}

// ExtractPatterns runs the four sub-scans (section structure, academic
// phrases, citation styles, methodology terms) and concatenates their results
// in a stable order. Running twice on the same text yields an identical list.
func (pe *PatternExtractor) ExtractPatterns(text string) []ExtractedPattern {
	var patterns []ExtractedPattern
	patterns = append(patterns, pe.scanSectionStructure(text)...)
	patterns = append(patterns, pe.scanAcademicPhrases(text)...)
	patterns = append(patterns, pe.scanCitationStyles(text)...)
	patterns = append(patterns, pe.scanMethodologyTerms(text)...)

	pe.Logger.Info("Pattern extraction completed",
		zap.Int("text_length", len(text)),
		zap.Int("patterns", len(patterns)))

	return patterns
}

// scanSectionStructure emits one STRUCTURE pattern per markdown header whose
// text matches a known section keyword.
func (pe *PatternExtractor) scanSectionStructure(text string) []ExtractedPattern {
	var patterns []ExtractedPattern
	for _, match := range markdownHeader.FindAllStringSubmatch(text, -1) {
		header := strings.ToLower(strings.TrimSpace(match[1]))
		for _, entry := range headerKeywords {
			if strings.Contains(header, entry.keyword) {
				patterns = append(patterns, ExtractedPattern{
					Name:        fmt.Sprintf("Seção: %s", strings.TrimSpace(match[1])),
					Description: fmt.Sprintf("O documento de referência possui a seção \"%s\"", strings.TrimSpace(match[1])),
					Category:    models.CategoryStructure,
					Pattern:     `^#+\s*` + regexp.QuoteMeta(strings.TrimSpace(match[1])),
					Section:     entry.section,
					Severity:    models.SeverityInfo,
					Weight:      1,
				})
				break
			}
		}
	}
	return patterns
}

// scanAcademicPhrases emits one CONTENT pattern per canonical academic phrase
// found in the document, ignoring diacritics on both sides.
func (pe *PatternExtractor) scanAcademicPhrases(text string) []ExtractedPattern {
	folded := stripDiacritics(strings.ToLower(text))

	var patterns []ExtractedPattern
	for _, entry := range academicPhrases {
		if strings.Contains(folded, stripDiacritics(entry.phrase)) {
			patterns = append(patterns, ExtractedPattern{
				Name:        fmt.Sprintf("Expressão acadêmica: \"%s\"", entry.phrase),
				Description: fmt.Sprintf("O documento de referência utiliza a expressão \"%s\"", entry.phrase),
				Category:    models.CategoryContent,
				Pattern:     regexp.QuoteMeta(entry.phrase),
				Section:     entry.section,
				Severity:    models.SeverityInfo,
				Weight:      1,
			})
		}
	}
	return patterns
}

// scanCitationStyles emits one CITATION pattern per style with at least
// citationStyleThreshold occurrences.
func (pe *PatternExtractor) scanCitationStyles(text string) []ExtractedPattern {
	var patterns []ExtractedPattern
	for _, style := range citationStyles {
		count := len(regexp.MustCompile(style.pattern).FindAllString(text, -1))
		if count >= citationStyleThreshold {
			patterns = append(patterns, ExtractedPattern{
				Name:        fmt.Sprintf("Estilo de citação %s", style.name),
				Description: fmt.Sprintf("O documento de referência cita no estilo %s (%d ocorrências)", style.name, count),
				Category:    models.CategoryCitation,
				Pattern:     style.pattern,
				Severity:    models.SeverityInfo,
				Weight:      1,
			})
		}
	}
	return patterns
}

// scanMethodologyTerms emits one CONTENT pattern per methodology term found,
// scoped to the methodology section.
func (pe *PatternExtractor) scanMethodologyTerms(text string) []ExtractedPattern {
	folded := stripDiacritics(strings.ToLower(text))

	var patterns []ExtractedPattern
	for _, term := range methodologyTerms {
		if strings.Contains(folded, stripDiacritics(term)) {
			patterns = append(patterns, ExtractedPattern{
				Name:        fmt.Sprintf("Termo metodológico: \"%s\"", term),
				Description: fmt.Sprintf("O documento de referência emprega o termo \"%s\"", term),
				Category:    models.CategoryContent,
				Pattern:     regexp.QuoteMeta(term),
				Section:     SectionMethodology,
				Severity:    models.SeverityInfo,
				Weight:      1,
			})
		}
	}
	return patterns
}

var diacriticsRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stripDiacritics remove acentos para comparação insensível a diacríticos.
func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticsRemover, s)
	if err != nil {
		return s
	}
	return out
}
