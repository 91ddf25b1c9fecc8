package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// ItemStatus is the computed completion state of a checklist item.
type ItemStatus string

const (
	StatusComplete   ItemStatus = "complete"
	StatusPartial    ItemStatus = "partial"
	StatusIncomplete ItemStatus = "incomplete"
)

// ChecklistItem is one content expectation within a section. Status fields are
// recomputed on every analysis run; only the definition (id, label, weight,
// required) is static.
type ChecklistItem struct {
	ID           string     `json:"id"`
	Label        string     `json:"label"`
	Description  string     `json:"description"`
	Required     bool       `json:"required"`
	Weight       int        `json:"weight"`
	Status       ItemStatus `json:"status"`
	AutoDetected bool       `json:"auto_detected"`
	DetectedAt   string     `json:"detected_at,omitempty"`
}

// SectionChecklist is the evaluated checklist of one detected section.
type SectionChecklist struct {
	Section      SectionType     `json:"section"`
	SectionLabel string          `json:"section_label"`
	Items        []ChecklistItem `json:"items"`
	Score        int             `json:"score"`
	MaxScore     int             `json:"max_score"`
}

// itemDef is the static definition of a checklist item, instantiated fresh on
// every run.
type itemDef struct {
	id          string
	label       string
	description string
	required    bool
	weight      int
}

// defaultChecklists is the hand-authored knowledge base: which content each
// section of a thesis is expected to carry.
var defaultChecklists = map[SectionType][]itemDef{
	SectionTitle: {
		{"title-present", "Título principal", "O documento apresenta um título em destaque", true, 3},
		{"title-theme", "Tema identificável", "O título comunica o tema central do trabalho", true, 2},
		// sem padrões de detecção registrados: requer revisão manual
		{"title-subtitle", "Subtítulo", "Subtítulo complementando o título principal", false, 1},
	},
	SectionAbstract: {
		{"abstract-context", "Contextualização", "Apresenta brevemente o contexto do estudo", true, 2},
		{"abstract-objective", "Objetivo", "Declara o objetivo do trabalho", true, 3},
		{"abstract-method", "Método", "Resume a abordagem metodológica", true, 3},
		{"abstract-results", "Resultados", "Antecipa os principais resultados", true, 3},
		{"abstract-conclusion", "Conclusão", "Fecha com a principal conclusão", true, 2},
		{"abstract-keywords", "Palavras-chave", "Lista de palavras-chave ao final do resumo", true, 2},
	},
	SectionIntroduction: {
		{"intro-context", "Contextualização do tema", "Situa o leitor no contexto e no cenário do problema", true, 3},
		{"intro-relevance", "Relevância e justificativa", "Explica por que o tema merece ser estudado", false, 2},
		{"intro-problem", "Problema de pesquisa", "Formula o problema ou a lacuna que motiva o estudo", true, 3},
		{"intro-question", "Pergunta de pesquisa", "Enuncia a pergunta que o trabalho pretende responder", false, 2},
		{"intro-objective-general", "Objetivo geral", "Declara o objetivo geral do trabalho", true, 3},
		{"intro-objectives-specific", "Objetivos específicos", "Desdobra o objetivo geral em objetivos específicos", true, 2},
		{"intro-hypothesis", "Hipótese", "Apresenta hipótese ou pressuposto de pesquisa", false, 1},
		{"intro-structure", "Estrutura do trabalho", "Descreve como o documento está organizado", false, 1},
		{"intro-scope", "Delimitação do escopo", "Delimita o alcance e os limites do estudo", false, 1},
	},
	SectionLiteratureReview: {
		{"lit-citations", "Citações de fontes", "Referencia autores e obras da área", true, 3},
		{"lit-concepts", "Conceitos fundamentais", "Define os conceitos centrais do trabalho", true, 2},
		{"lit-theories", "Teorias e modelos", "Apresenta teorias ou modelos que sustentam a análise", true, 2},
		{"lit-related-work", "Trabalhos relacionados", "Discute estudos anteriores sobre o tema", true, 2},
		{"lit-gap", "Lacuna identificada", "Aponta a lacuna que o trabalho pretende preencher", false, 2},
		{"lit-synthesis", "Síntese crítica", "Sintetiza e posiciona as fontes entre si", false, 1},
	},
	SectionMethodology: {
		{"method-type", "Tipo de pesquisa", "Classifica a pesquisa (qualitativa, quantitativa, mista...)", true, 3},
		{"method-population", "População e amostra", "Descreve participantes, população ou amostra", true, 2},
		{"method-instruments", "Instrumentos de coleta", "Especifica os instrumentos de coleta de dados", true, 2},
		{"method-procedures", "Procedimentos", "Detalha as etapas e os procedimentos adotados", true, 2},
		{"method-analysis", "Análise dos dados", "Explica como os dados foram analisados", true, 2},
		{"method-ethics", "Aspectos éticos", "Menciona comitê de ética ou consentimento", false, 1},
	},
	SectionResults: {
		{"results-presentation", "Apresentação dos resultados", "Relata objetivamente o que foi encontrado", true, 3},
		{"results-data", "Dados e evidências", "Apoia os resultados em tabelas, figuras ou números", true, 2},
		{"results-link-objective", "Vínculo com os objetivos", "Relaciona os resultados aos objetivos propostos", false, 1},
	},
	SectionDiscussion: {
		{"disc-interpretation", "Interpretação dos achados", "Interpreta o significado dos resultados", true, 3},
		{"disc-literature", "Diálogo com a literatura", "Confronta os achados com estudos anteriores", true, 3},
		{"disc-implications", "Implicações", "Discute implicações teóricas ou práticas", true, 2},
		{"disc-limitations", "Limitações", "Reconhece as limitações do estudo", false, 2},
	},
	SectionConclusion: {
		{"concl-objective-recap", "Retomada do objetivo", "Retoma o objetivo e avalia seu alcance", true, 3},
		{"concl-findings", "Principais conclusões", "Sintetiza as principais conclusões do estudo", true, 3},
		{"concl-contributions", "Contribuições", "Explicita a contribuição do trabalho", true, 2},
		{"concl-future-work", "Trabalhos futuros", "Sugere desdobramentos e pesquisas futuras", false, 2},
		{"concl-limitations", "Limitações reconhecidas", "Menciona limitações na conclusão", false, 1},
	},
	SectionReferences: {
		{"ref-present", "Referências listadas", "Apresenta a lista de obras citadas", true, 3},
		{"ref-format", "Formatação das entradas", "Entradas em formato autor-data reconhecível", false, 1},
		{"ref-recent", "Fontes recentes", "Inclui fontes publicadas nos últimos anos", false, 1},
	},
}

// detectionPatterns maps item ids to their ordered detection regexes,
// evaluated against the full section text; first match wins. Items without an
// entry here are always reported incomplete (manual-review items).
var detectionPatterns = map[string][]*regexp.Regexp{
	"title-present": {
		regexp.MustCompile(`(?m)^#\s+\S+`),
	},
	"title-theme": {
		regexp.MustCompile(`(?m)^#\s+\S+(?:\s+\S+){2,}`),
	},

	"abstract-context": {
		regexp.MustCompile(`(?i)contexto|cen[áa]rio|atualmente|nos [úu]ltimos anos|panorama`),
	},
	"abstract-objective": {
		regexp.MustCompile(`(?i)objetivo|prop[õo]e-se|objective|aims? to`),
	},
	"abstract-method": {
		regexp.MustCompile(`(?i)metodologia|m[ée]todo|abordagem|procedimento|method`),
	},
	"abstract-results": {
		regexp.MustCompile(`(?i)resultados?|achados|evidenciou|results|findings`),
	},
	"abstract-conclusion": {
		regexp.MustCompile(`(?i)conclui|conclus[ãa]o|conclu[sd]`),
	},
	"abstract-keywords": {
		regexp.MustCompile(`(?i)palavras?[- ]chaves?|keywords`),
	},

	"intro-context": {
		regexp.MustCompile(`(?i)contexto|contextualiza|cen[áa]rio|panorama|atualmente|nos [úu]ltimos anos|nas [úu]ltimas d[ée]cadas`),
	},
	"intro-relevance": {
		regexp.MustCompile(`(?i)relev[âa]ncia|import[âa]ncia|justifica|[ée] importante|se justifica`),
	},
	"intro-problem": {
		regexp.MustCompile(`(?i)problema|problem[áa]tica|lacuna|desafio|dificuldade`),
	},
	"intro-question": {
		regexp.MustCompile(`(?i)pergunta de pesquisa|quest[ãa]o de pesquisa|research question`),
		regexp.MustCompile(`(?m)\?\s*$`),
	},
	"intro-objective-general": {
		regexp.MustCompile(`(?i)objetivo geral`),
		regexp.MustCompile(`(?i)(?:este|o presente) (?:trabalho|estudo|artigo) tem como objetivo`),
		regexp.MustCompile(`(?i)tem (?:como|por) objetivo`),
		regexp.MustCompile(`(?i)this (?:work|study|thesis) aims`),
	},
	"intro-objectives-specific": {
		regexp.MustCompile(`(?i)objetivos espec[íi]ficos|specific objectives`),
	},
	"intro-hypothesis": {
		regexp.MustCompile(`(?i)hip[óo]tese|pressuposto|hypothes[ie]s`),
	},
	"intro-structure": {
		regexp.MustCompile(`(?i)est[áa] organizado|estrutura(?:do)? (?:do|deste) (?:trabalho|documento)|is organized as follows`),
		regexp.MustCompile(`(?i)(?:cap[íi]tulo|se[çc][ãa]o)\s+\d+\s+(?:apresenta|descreve|discute)`),
	},
	"intro-scope": {
		regexp.MustCompile(`(?i)escopo|delimita[çc][ãa]o|delimita-se|limita-se a|scope`),
	},

	"lit-citations": {
		regexp.MustCompile(`\[@[^\]\s]+\]`),
		regexp.MustCompile(`\([A-ZÀ-Ü][^()\d]*,\s*\d{4}[a-z]?\)`),
		regexp.MustCompile(`\[\d{1,3}\]`),
	},
	"lit-concepts": {
		regexp.MustCompile(`(?i)conceito|define(?:-se)?|defini[çc][ãa]o|entende-se por|segundo|de acordo com`),
	},
	"lit-theories": {
		regexp.MustCompile(`(?i)teoria|modelo te[óo]rico|abordagem te[óo]rica|framework|arcabou[çc]o`),
	},
	"lit-related-work": {
		regexp.MustCompile(`(?i)trabalhos relacionados|estudos (?:anteriores|recentes|pr[ée]vios)|pesquisas anteriores|related work`),
	},
	"lit-gap": {
		regexp.MustCompile(`(?i)lacuna|gap|pouco explorad|carece|ainda n[ãa]o (?:foi|foram)`),
	},
	"lit-synthesis": {
		regexp.MustCompile(`(?i)em s[íi]ntese|sintetizando|em resumo|observa-se que|percebe-se que`),
	},

	"method-type": {
		regexp.MustCompile(`(?i)pesquisa (?:qualitativa|quantitativa|mista|explorat[óo]ria|descritiva|aplicada)`),
		regexp.MustCompile(`(?i)abordagem (?:qualitativa|quantitativa|mista)`),
		regexp.MustCompile(`(?i)estudo de caso|revis[ãa]o sistem[áa]tica|pesquisa-a[çc][ãa]o|survey|experimento`),
	},
	"method-population": {
		regexp.MustCompile(`(?i)popula[çc][ãa]o|amostra|participantes|sujeitos|respondentes|sample`),
	},
	"method-instruments": {
		regexp.MustCompile(`(?i)instrumento|question[áa]rio|entrevista|observa[çc][ãa]o|formul[áa]rio|roteiro`),
	},
	"method-procedures": {
		regexp.MustCompile(`(?i)procedimento|etapas|coleta de dados|protocolo|condu[çc][ãa]o`),
	},
	"method-analysis": {
		regexp.MustCompile(`(?i)an[áa]lise (?:de|dos) dados|an[áa]lise estat[íi]stica|an[áa]lise de conte[úu]do|tratamento dos dados|an[áa]lise tem[áa]tica`),
	},
	"method-ethics": {
		regexp.MustCompile(`(?i)comit[êe] de [ée]tica|termo de consentimento|TCLE|aspectos [ée]ticos`),
	},

	"results-presentation": {
		regexp.MustCompile(`(?i)os resultados|observou-se|verificou-se|constatou-se|identificou-se|foram obtidos`),
	},
	"results-data": {
		regexp.MustCompile(`(?i)tabela|figura|gr[áa]fico|quadro`),
		regexp.MustCompile(`\d+(?:[.,]\d+)?\s*%`),
		regexp.MustCompile(`(?i)m[ée]dia|mediana|desvio[- ]padr[ãa]o`),
	},
	"results-link-objective": {
		regexp.MustCompile(`(?i)(?:em rela[çc][ãa]o|quanto) ao objetivo|atendendo ao objetivo`),
	},

	"disc-interpretation": {
		regexp.MustCompile(`(?i)isso (?:indica|sugere|demonstra)|sugere(?:m)? que|evidencia|pode ser explicad|interpreta`),
	},
	"disc-literature": {
		regexp.MustCompile(`(?i)corrobora|est[áa] de acordo com|diverge|contrasta|em conson[âa]ncia|semelhante ao encontrado|como apontado por`),
	},
	"disc-implications": {
		regexp.MustCompile(`(?i)implica[çc][õo]es|implica(?:m)?|contribui para|sugere a ado[çc][ãa]o`),
	},
	"disc-limitations": {
		regexp.MustCompile(`(?i)limita[çc][ãa]o|limita[çc][õo]es|ressalva`),
	},

	"concl-objective-recap": {
		regexp.MustCompile(`(?i)o objetivo (?:geral )?(?:foi|era|deste)|retoma(?:ndo)?|atingi[ud]o|alcan[çc]ad|respondeu`),
	},
	"concl-findings": {
		regexp.MustCompile(`(?i)conclui-se|principais (?:resultados|achados|conclus[õo]es|contribui[çc][õo]es)|evidenciou(?:-se)?`),
	},
	"concl-contributions": {
		regexp.MustCompile(`(?i)contribui[çc][ãa]o|contribui[çc][õo]es|contribui(?:u)? (?:para|com)|avan[çc]o`),
	},
	"concl-future-work": {
		regexp.MustCompile(`(?i)trabalhos futuros|pesquisas futuras|estudos futuros|future work|desdobramentos`),
	},
	"concl-limitations": {
		regexp.MustCompile(`(?i)limita[çc][ãa]o|limita[çc][õo]es`),
	},

	"ref-present": {
		regexp.MustCompile(`(?m)^[A-ZÀ-Ü][A-ZÀ-Üa-zà-ü'-]+,\s`),
		regexp.MustCompile(`(?i)doi\.org|doi:\s*10\.`),
		regexp.MustCompile(`https?://\S+`),
	},
	"ref-format": {
		regexp.MustCompile(`(?m)^[A-ZÀ-Ü][A-ZÀ-Ü'-]+,\s+[A-ZÀ-Ü]`),
	},
	"ref-recent": {
		regexp.MustCompile(`\b202\d\b`),
	},
}

// BuildChecklist evaluates the default checklist of a section against its
// text. Each item is matched by its ordered detection patterns; the first hit
// marks it complete and records the 1-based line of the match. Items with no
// registered patterns stay incomplete by construction.
func BuildChecklist(section SectionType, text string) SectionChecklist {
	checklist := SectionChecklist{
		Section:      section,
		SectionLabel: SectionLabel(section),
		MaxScore:     100,
	}

	defs := defaultChecklists[section]
	totalWeight := 0
	completedWeight := 0

	for _, def := range defs {
		item := ChecklistItem{
			ID:          def.id,
			Label:       def.label,
			Description: def.description,
			Required:    def.required,
			Weight:      def.weight,
			Status:      StatusIncomplete,
		}
		totalWeight += def.weight

		for _, pattern := range detectionPatterns[def.id] {
			if loc := pattern.FindStringIndex(text); loc != nil {
				item.Status = StatusComplete
				item.AutoDetected = true
				item.DetectedAt = fmt.Sprintf("Linha %d", lineOfOffset(text, loc[0]))
				completedWeight += def.weight
				break
			}
		}

		checklist.Items = append(checklist.Items, item)
	}

	if totalWeight > 0 {
		checklist.Score = int(math.Round(100 * float64(completedWeight) / float64(totalWeight)))
	}
	return checklist
}

// lineOfOffset returns the 1-based line number containing a byte offset.
func lineOfOffset(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	return strings.Count(text[:offset], "\n") + 1
}
