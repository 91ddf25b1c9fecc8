package services

import (
	"fmt"
	"strings"
)

// Suggestion is the structured writing advice attached to a checklist item:
// a short summary, a longer explanation, a fill-in-the-blank template the
// student can paste and adapt, and optionally a list of recommended verbs.
type Suggestion struct {
	Summary  string
	Detail   string
	Template string
	Verbs    []string
}

// suggestionTemplates is the per-item advice table. Items absent here fall
// back to a generic "Adicione: <description>" suggestion.
var suggestionTemplates = map[string]Suggestion{
	// ---- Título ----
	"title-present": {
		Summary:  "Adicione um título principal",
		Detail:   "Todo trabalho começa com um título de nível 1 (#) na primeira página. Ele é o primeiro contato do leitor e da banca com o seu tema.",
		Template: "# [Tema central]: [recorte ou contexto específico do estudo]",
	},
	"title-theme": {
		Summary:  "Torne o título mais descritivo",
		Detail:   "Um título de poucas palavras raramente comunica tema, recorte e contexto. Prefira um título com tema + delimitação (10 a 15 palavras).",
		Template: "# [Fenômeno estudado] em [população/contexto]: uma análise [tipo de estudo]",
	},

	// ---- Resumo ----
	"abstract-context": {
		Summary:  "Abra o resumo com uma frase de contexto",
		Detail:   "O resumo deve situar o leitor em uma ou duas frases antes de anunciar o objetivo.",
		Template: "No contexto de [área/cenário], [fenômeno] tem ganhado relevância devido a [motivo].",
	},
	"abstract-objective": {
		Summary:  "Declare o objetivo no resumo",
		Detail:   "O objetivo é o elemento obrigatório mais cobrado em resumos acadêmicos. Use um verbo no infinitivo logo nas primeiras linhas.",
		Template: "Este trabalho tem como objetivo [verbo no infinitivo] [objeto de estudo] em [contexto].",
		Verbs:    []string{"analisar", "avaliar", "investigar", "comparar", "propor"},
	},
	"abstract-method": {
		Summary:  "Resuma a metodologia em uma frase",
		Detail:   "Indique tipo de pesquisa, instrumento e forma de análise, sem detalhar procedimentos.",
		Template: "Trata-se de uma pesquisa [qualitativa/quantitativa/mista], conduzida por meio de [instrumento] com [participantes/fontes].",
	},
	"abstract-results": {
		Summary:  "Antecipe os principais resultados",
		Detail:   "O resumo não é um trailer de suspense: os achados centrais devem aparecer nele de forma direta.",
		Template: "Os resultados indicam que [achado principal], com destaque para [achado secundário].",
	},
	"abstract-conclusion": {
		Summary:  "Feche o resumo com a conclusão central",
		Detail:   "A última frase do resumo deve responder, em síntese, ao objetivo declarado.",
		Template: "Conclui-se que [resposta ao objetivo], o que contribui para [implicação].",
	},
	"abstract-keywords": {
		Summary:  "Inclua as palavras-chave",
		Detail:   "Liste de três a cinco palavras-chave separadas por ponto, logo após o texto do resumo.",
		Template: "Palavras-chave: [termo 1]. [termo 2]. [termo 3].",
	},

	// ---- Introdução ----
	"intro-context": {
		Summary:  "Contextualize o tema antes de afunilar",
		Detail:   "A introdução deve partir do panorama geral da área e afunilar até o seu recorte. Sem contexto, o leitor não entende por que o problema existe.",
		Template: "Nos últimos anos, [área/tema] tem passado por [transformação/tendência], o que evidencia [aspecto que leva ao seu problema].",
	},
	"intro-relevance": {
		Summary:  "Justifique a relevância do estudo",
		Detail:   "Explique para quem e por que este trabalho importa: relevância científica (lacuna na literatura) e/ou prática (impacto em pessoas, organizações ou políticas).",
		Template: "Estudar [tema] é relevante porque [justificativa científica] e porque [justificativa prática].",
	},
	"intro-problem": {
		Summary:  "Formule explicitamente o problema de pesquisa",
		Detail:   "O problema é a tensão que move o trabalho: algo que não se sabe, não funciona ou não foi suficientemente estudado. Nomeie-o com clareza, de preferência em um parágrafo próprio.",
		Template: "Apesar de [o que já se sabe/faz], ainda [lacuna ou dificuldade], o que configura o problema desta pesquisa.",
	},
	"intro-question": {
		Summary:  "Enuncie a pergunta de pesquisa",
		Detail:   "Converta o problema em uma pergunta direta, respondível com a metodologia escolhida. Ela guiará a banca na avaliação da coerência do trabalho.",
		Template: "Diante desse cenário, esta pesquisa busca responder: de que forma [fenômeno] [relação] [contexto]?",
	},
	"intro-objective-general": {
		Summary:  "Declare o objetivo geral",
		Detail:   "O objetivo geral é uma única frase com verbo no infinitivo, espelhando a pergunta de pesquisa. Evite verbos vagos como \"estudar\" ou \"abordar\".",
		Template: "O objetivo geral deste trabalho é [verbo no infinitivo] [objeto] em [contexto/população].",
		Verbs:    []string{"analisar", "avaliar", "caracterizar", "comparar", "compreender", "identificar", "propor", "verificar"},
	},
	"intro-objectives-specific": {
		Summary:  "Liste os objetivos específicos",
		Detail:   "Desdobre o objetivo geral em três a cinco etapas verificáveis, cada uma iniciada por verbo no infinitivo. Juntas, elas devem ser suficientes para atingir o objetivo geral.",
		Template: "Como objetivos específicos, pretende-se: (i) [mapear/levantar ...]; (ii) [analisar/comparar ...]; (iii) [avaliar/propor ...].",
		Verbs:    []string{"mapear", "levantar", "descrever", "classificar", "mensurar", "relacionar"},
	},
	"intro-hypothesis": {
		Summary:  "Considere declarar uma hipótese",
		Detail:   "Em pesquisas com lógica confirmatória, a hipótese antecipa a resposta esperada e orienta a análise.",
		Template: "Parte-se da hipótese de que [resposta esperada], com base em [fundamento].",
	},
	"intro-structure": {
		Summary:  "Descreva a estrutura do trabalho",
		Detail:   "Feche a introdução com um parágrafo guiando o leitor pelos capítulos seguintes.",
		Template: "Este trabalho está organizado em [N] seções: a Seção 2 apresenta [...], a Seção 3 descreve [...], e a Seção 4 discute [...].",
	},
	"intro-scope": {
		Summary:  "Delimite o escopo do estudo",
		Detail:   "Dizer o que o trabalho NÃO cobre protege você de cobranças indevidas na defesa.",
		Template: "Este estudo delimita-se a [recorte]; não são objeto de análise [aspectos excluídos].",
	},

	// ---- Revisão de Literatura ----
	"lit-citations": {
		Summary:  "Cite as fontes que sustentam a revisão",
		Detail:   "Uma revisão sem citações é opinião. Use o formato autor-data (Silva, 2023), chaves de bibliografia [@silva2023] ou numeração [1].",
		Template: "Segundo [Autor] ([ano]), [ideia central da fonte] [@chave].",
	},
	"lit-concepts": {
		Summary:  "Defina os conceitos fundamentais",
		Detail:   "Todo termo técnico central deve ser definido a partir da literatura antes de ser usado nas análises.",
		Template: "Neste trabalho, entende-se por [conceito] a definição de [Autor] ([ano]): [definição].",
	},
	"lit-theories": {
		Summary:  "Apresente as teorias de base",
		Detail:   "Explicite o arcabouço teórico que orienta a interpretação dos dados, e não apenas conceitos isolados.",
		Template: "A análise apoia-se na [teoria/modelo] proposta por [Autor] ([ano]), segundo a qual [proposição central].",
	},
	"lit-related-work": {
		Summary:  "Discuta trabalhos relacionados",
		Detail:   "Mostre o que estudos anteriores já encontraram sobre o seu problema e como o seu trabalho se posiciona em relação a eles.",
		Template: "Estudos anteriores ([Autor1], [ano]; [Autor2], [ano]) investigaram [aspecto], encontrando [resultado]; contudo, [diferença para o seu estudo].",
	},
	"lit-gap": {
		Summary:  "Aponte a lacuna na literatura",
		Detail:   "A lacuna conecta a revisão ao seu problema de pesquisa e justifica a originalidade do trabalho.",
		Template: "Apesar desses avanços, permanece pouco explorado [aspecto], lacuna que este trabalho busca preencher.",
	},

	// ---- Metodologia ----
	"method-type": {
		Summary:  "Classifique o tipo de pesquisa",
		Detail:   "Declare a natureza (qualitativa/quantitativa/mista), o propósito (exploratória/descritiva/explicativa) e a estratégia (estudo de caso, survey, experimento...).",
		Template: "Esta é uma pesquisa [natureza], de caráter [propósito], conduzida por meio de [estratégia].",
	},
	"method-population": {
		Summary:  "Descreva população e amostra",
		Detail:   "Informe quem (ou o quê) foi estudado, quantos, e por qual critério de seleção.",
		Template: "A amostra foi composta por [N] [participantes/documentos/casos], selecionados por [critério de amostragem].",
	},
	"method-instruments": {
		Summary:  "Especifique os instrumentos de coleta",
		Detail:   "Detalhe cada instrumento (questionário, roteiro de entrevista, log de sistema...) e o que ele mede.",
		Template: "Os dados foram coletados por meio de [instrumento], composto por [estrutura], aplicado [forma/período].",
	},
	"method-procedures": {
		Summary:  "Detalhe os procedimentos",
		Detail:   "Descreva as etapas na ordem em que ocorreram, com detalhe suficiente para permitir replicação.",
		Template: "O estudo foi conduzido em [N] etapas: primeiramente [etapa 1]; em seguida [etapa 2]; por fim [etapa 3].",
	},
	"method-analysis": {
		Summary:  "Explique a análise dos dados",
		Detail:   "Diga qual técnica de análise foi aplicada (estatística descritiva/inferencial, análise de conteúdo, análise temática...) e com quais ferramentas.",
		Template: "Os dados foram submetidos a [técnica de análise], com apoio de [ferramenta/software], seguindo [procedimento ou autor de referência].",
	},
	"method-ethics": {
		Summary:  "Registre os aspectos éticos",
		Detail:   "Pesquisas com seres humanos exigem menção ao comitê de ética e ao termo de consentimento.",
		Template: "O projeto foi aprovado pelo Comitê de Ética em Pesquisa (parecer nº [número]); todos os participantes assinaram o TCLE.",
	},

	// ---- Resultados ----
	"results-presentation": {
		Summary:  "Apresente os resultados de forma objetiva",
		Detail:   "Relate o que foi encontrado sem interpretar (a interpretação pertence à discussão). Use construções impessoais.",
		Template: "Observou-se que [achado], conforme apresentado na Tabela [N].",
		Verbs:    []string{"observou-se", "verificou-se", "constatou-se", "identificou-se"},
	},
	"results-data": {
		Summary:  "Apoie os resultados em dados",
		Detail:   "Resultados precisam de evidência: números, percentuais, tabelas, figuras ou trechos de falas (em pesquisas qualitativas).",
		Template: "Dos [N] casos analisados, [X] ([Y]%) apresentaram [característica] (Figura [N]).",
	},

	// ---- Discussão ----
	"disc-interpretation": {
		Summary:  "Interprete o significado dos achados",
		Detail:   "A discussão responde \"e daí?\": o que os números e categorias encontrados significam para o problema de pesquisa.",
		Template: "O predomínio de [achado] sugere que [interpretação], possivelmente porque [mecanismo/explicação].",
	},
	"disc-literature": {
		Summary:  "Dialogue com a literatura",
		Detail:   "Confronte cada achado relevante com estudos anteriores: convergências fortalecem, divergências pedem explicação.",
		Template: "Esse resultado corrobora [Autor] ([ano]), que também observou [achado]; por outro lado, diverge de [Autor] ([ano]) quanto a [aspecto].",
	},
	"disc-implications": {
		Summary:  "Discuta as implicações",
		Detail:   "Explicite o que os achados mudam na teoria, na prática profissional ou em políticas da área.",
		Template: "Esses achados implicam que [consequência], o que sugere [recomendação] para [público].",
	},
	"disc-limitations": {
		Summary:  "Reconheça as limitações",
		Detail:   "Limitações declaradas pelo autor pesam menos que limitações descobertas pela banca.",
		Template: "Entre as limitações deste estudo estão [limitação 1] e [limitação 2], que restringem [alcance da generalização].",
	},

	// ---- Conclusão ----
	"concl-objective-recap": {
		Summary:  "Retome o objetivo e avalie seu alcance",
		Detail:   "A conclusão abre reapresentando o objetivo geral e afirmando, com base nos resultados, se e como ele foi atingido.",
		Template: "Este trabalho teve como objetivo [objetivo geral]; os resultados permitem afirmar que ele foi [atingido/parcialmente atingido], uma vez que [síntese].",
	},
	"concl-findings": {
		Summary:  "Sintetize as principais conclusões",
		Detail:   "Liste as duas ou três conclusões centrais em linguagem afirmativa, sem introduzir dados novos.",
		Template: "Conclui-se que: (i) [conclusão 1]; (ii) [conclusão 2]; e (iii) [conclusão 3].",
	},
	"concl-contributions": {
		Summary:  "Explicite as contribuições",
		Detail:   "Diferencie contribuição teórica (o que a literatura ganha) de contribuição prática (o que profissionais ganham).",
		Template: "A principal contribuição deste estudo é [contribuição], relevante para [comunidade/prática].",
	},
	"concl-future-work": {
		Summary:  "Sugira trabalhos futuros",
		Detail:   "Aponte desdobramentos concretos, de preferência derivados das limitações reconhecidas.",
		Template: "Como trabalhos futuros, sugere-se [desdobramento 1] e [desdobramento 2].",
	},

	// ---- Referências ----
	"ref-present": {
		Summary:  "Liste as referências",
		Detail:   "Toda obra citada no texto deve aparecer na lista de referências, em ordem alfabética pelo sobrenome do autor.",
		Template: "SOBRENOME, Nome. Título da obra. Cidade: Editora, ano.",
	},
}

// suggestionFor renders the suggestion text for a missing checklist item:
// structured template when registered, generic fallback otherwise.
func suggestionFor(item ChecklistItem) string {
	tpl, ok := suggestionTemplates[item.ID]
	if !ok {
		return fmt.Sprintf("Adicione: %s", item.Description)
	}

	var b strings.Builder
	b.WriteString(tpl.Summary)
	b.WriteString(". ")
	b.WriteString(tpl.Detail)
	if tpl.Template != "" {
		b.WriteString(" Modelo: \"")
		b.WriteString(tpl.Template)
		b.WriteString("\"")
	}
	if len(tpl.Verbs) > 0 {
		b.WriteString(" Verbos recomendados: ")
		b.WriteString(strings.Join(tpl.Verbs, ", "))
		b.WriteString(".")
	}
	return b.String()
}
