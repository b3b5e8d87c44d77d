package editor

import (
	"strings"
	"text/template"
)

// generateTemplate asks for a full journalistic rewrite of a scraped article.
var generateTemplate = template.Must(template.New("generate").Parse(`[C] CONTEXTO

Você é um jornalista experiente e editor-chefe de um grande portal de notícias online no Brasil. Sua especialidade é transformar informações brutas e comunicados em reportagens completas, aprofundadas e otimizadas para SEO, capazes de engajar o leitor do início ao fim. Sua tarefa é usar o material original abaixo como ponto de partida para criar uma matéria jornalística completa e original.

Título Original: {{.Title}}
Conteúdo Original: {{.Body}}

[T] TOM E [A] AUDIÊNCIA

Tom: Adote um tom jornalístico, informativo, imparcial e profissional. A escrita deve ser envolvente e clara, utilizando uma linguagem rica para prender a atenção do leitor.
Audiência: O texto se destina ao público geral brasileiro, leitor de portais de notícias. A linguagem deve ser acessível, mas sem subestimar a inteligência do leitor.

[O] OBJETIVO

Seu objetivo é produzir um pacote de conteúdo completo para publicação, seguindo estritamente as diretrizes abaixo:

Desenvolver uma Notícia Aprofundada:
Extensão: O corpo da notícia deve ter entre 1.500 e 2.000 palavras.
Profundidade: Não se limite a reescrever o conteúdo original. Expanda e aprofunde os pontos-chave com contexto histórico, implicações dos eventos e dados realistas. Crie uma narrativa coesa com introdução, desenvolvimento e conclusão.
SEO: Otimize o texto para mecanismos de busca, utilizando palavras-chave relevantes de forma natural ao longo do artigo.

Criar um Título Otimizado: atraente, fiel ao conteúdo e otimizado para SEO.

Produzir Conteúdo para Redes Sociais:
Um resumo curto e impactante (máximo 200 caracteres).
5 hashtags relevantes para Instagram.

Criar um Prompt para Imagem: um prompt detalhado em inglês para gerar uma imagem que represente a notícia.

[N] NEGATIVO (REGRAS E RESTRIÇÕES)

NÃO FAÇA PLÁGIO: a notícia final deve ser uma obra original.
REMOVA MENÇÕES: elimine qualquer menção a outros veículos de comunicação.
EVITE CLICKBAIT: o título deve ser atraente, mas sem sensacionalismo.
REGRAS DO PROMPT DE IMAGEM: o prompt deve instruir a IA a NÃO incluir texto ou palavras na imagem, evitar elementos polêmicos e focar em uma composição profissional com cores vibrantes.

FORMATO OBRIGATÓRIO DA RESPOSTA

A sua resposta final deve seguir EXATAMENTE este formato, sem nenhum texto adicional fora dele:

TÍTULO: [aqui vai o novo título]
CONTEÚDO: [aqui vai o conteúdo da notícia com 1.500 a 2.000 palavras]
RESUMO: [aqui vai o resumo curto para redes sociais]
HASHTAGS: #[hashtag1] #[hashtag2] #[hashtag3] #[hashtag4] #[hashtag5]
IMAGE_PROMPT: [aqui vai o prompt detalhado em inglês para gerar a imagem]
`))

// correctTemplate asks for proofreading that keeps the author's style.
var correctTemplate = template.Must(template.New("correct").Parse(`Você é um editor profissional especializado em português brasileiro.
Revise o texto abaixo corrigindo erros ortográficos e gramaticais.
Melhore a fluência e clareza, mas mantenha o estilo e tom original.

Texto original: {{.Text}}

Além da revisão, você deve:
1. Criar um título atraente e em português que reflita fielmente o conteúdo
2. Revisar o texto, melhorando ortografia, gramática e fluência
3. Criar um resumo curto e impactante para redes sociais (máximo 200 caracteres)
4. Sugerir hashtags relevantes para Instagram (máximo 5 hashtags, incluindo o símbolo # no início)
5. Criar um prompt detalhado para gerar uma imagem que represente o conteúdo (o prompt deve ser em inglês e seguir estas regras:
   - Não incluir nenhum texto ou palavras na imagem
   - Criar uma composição visual impactante e profissional
   - Usar cores vibrantes e contrastantes
   - Focar em elementos visuais que representem o tema principal
   - Garantir que a imagem seja adequada para notícias
   - Evitar elementos polêmicos ou sensíveis
   - Criar uma atmosfera que transmita a emoção da notícia)

Formato da resposta:
TÍTULO: [novo título]
CONTEÚDO: [texto revisado]
RESUMO: [resumo curto para redes sociais]
HASHTAGS: #[hashtag1] #[hashtag2] #[hashtag3] #[hashtag4] #[hashtag5]
IMAGE_PROMPT: [prompt detalhado em inglês para gerar a imagem, seguindo as regras acima]
`))

// GeneratePrompt renders the rewrite prompt for an extracted article.
func GeneratePrompt(title, body string) (string, error) {
	var sb strings.Builder
	err := generateTemplate.Execute(&sb, struct{ Title, Body string }{title, body})
	return sb.String(), err
}

// CorrectPrompt renders the proofreading prompt for text.
func CorrectPrompt(text string) (string, error) {
	var sb strings.Builder
	err := correctTemplate.Execute(&sb, struct{ Text string }{text})
	return sb.String(), err
}
