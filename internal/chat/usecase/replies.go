package usecase

import "github.com/3moscas/tgbot/internal/model"

// User-facing message catalog. The bot speaks Portuguese by default.
const (
	msgUnsupportedLanguage = "Desculpe, ainda não falo esse idioma. Por favor, escreva em português ou inglês."
	msgUnknownCommand      = "Comando desconhecido. Digite /help para ver os comandos disponíveis."
	msgCorpusUnavailable   = "Ainda não tenho um assunto carregado. Use /wiki <tópico> para me ensinar algo."
	msgSummarizeTooShort   = "Texto muito curto para resumir."
	msgSummarizeUsage      = "Envie o texto junto com o comando: /summarize <texto>."
	msgSentimentUsage      = "Envie o texto junto com o comando: /sentiment <texto>."
	msgLangUsage           = "Envie o texto junto com o comando: /lang <texto>."
	msgWikiUsage           = "Envie o tópico junto com o comando: /wiki <tópico>."
	msgWikiNotFound        = "Não encontrei esse artigo na Wikipédia."
	msgWikiFailed          = "Não consegui carregar esse assunto agora. Tente novamente."
	msgUnintelligibleAudio = "Não consegui entender o áudio. Pode tentar de novo?"

	msgStart = "Olá! Eu sou um bot de conversa. Me mande uma mensagem de texto ou de voz e eu respondo com o que sei sobre o assunto carregado.\n\nDigite /help para ver os comandos."

	msgHelp = "Comandos disponíveis:\n" +
		"/start — apresentação\n" +
		"/help — esta mensagem\n" +
		"/lang <texto> — detecta o idioma do texto\n" +
		"/sentiment <texto> — analisa o sentimento do texto\n" +
		"/summarize <texto> — resume o texto\n" +
		"/wiki <tópico> — carrega um artigo da Wikipédia como assunto"
)

// The minimum input the summarize command forwards to the model.
const summarizeMinRunes = 100

// Voice notes are transcribed with a Brazilian Portuguese hint.
const transcriptionLanguage = "pt-BR"

var fallbackReplies = map[model.Language]string{
	model.LanguagePortuguese: "Desculpe, não entendi o que você quis dizer. Pode reformular?",
	model.LanguageEnglish:    "Sorry, I did not quite get that. Could you rephrase?",
}

// fallbackReply returns the no-match reply for lang, defaulting to
// Portuguese for languages without a dedicated text.
func fallbackReply(lang model.Language) string {
	if reply, ok := fallbackReplies[lang]; ok {
		return reply
	}
	return fallbackReplies[model.DefaultLanguage]
}

var languageNames = map[model.Language]string{
	model.LanguagePortuguese: "português",
	model.LanguageEnglish:    "inglês",
	model.LanguageSpanish:    "espanhol",
	model.LanguageFrench:     "francês",
}

func languageName(lang model.Language) string {
	if name, ok := languageNames[lang]; ok {
		return name
	}
	return string(lang)
}
