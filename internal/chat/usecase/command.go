package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/3moscas/tgbot/internal/chat"
	"github.com/3moscas/tgbot/internal/model"
	"github.com/3moscas/tgbot/pkg/wiki"
)

var sentimentLabels = map[string]string{
	"positive": "positivo",
	"negative": "negativo",
	"neutral":  "neutro",
}

// dispatchCommand routes one recognized slash command. The switch is
// exhaustive over the Command set; new commands must be handled here.
func (uc *implUseCase) dispatchCommand(ctx context.Context, cmd chat.Command, arg string, lang model.Language) (chat.Reply, error) {
	uc.l.Infof(ctx, "dispatchCommand: cmd=%s arg_len=%d", cmd, len(arg))

	switch cmd {
	case chat.CommandStart:
		return chat.Reply{Text: msgStart, Language: lang}, nil

	case chat.CommandHelp:
		return chat.Reply{Text: msgHelp, Language: lang}, nil

	case chat.CommandLang:
		if arg == "" {
			return chat.Reply{Text: msgLangUsage, Language: lang}, nil
		}
		detected := uc.detector.Detect(arg)
		return chat.Reply{
			Text:     fmt.Sprintf("Idioma detectado: %s.", languageName(detected)),
			Language: lang,
		}, nil

	case chat.CommandSentiment:
		if arg == "" {
			return chat.Reply{Text: msgSentimentUsage, Language: lang}, nil
		}
		score := uc.analyzer.Analyze(ctx, arg)
		return chat.Reply{
			Text:     fmt.Sprintf("Sentimento: %s (%.2f).", sentimentLabels[string(score.Label)], score.Compound),
			Language: lang,
		}, nil

	case chat.CommandSummarize:
		return uc.summarize(ctx, arg, lang)

	case chat.CommandWiki:
		return uc.reloadFromWiki(ctx, arg, lang)

	case chat.CommandUnknown:
		return chat.Reply{Text: msgUnknownCommand, Language: lang}, nil

	default:
		return chat.Reply{Text: msgUnknownCommand, Language: lang}, nil
	}
}

func (uc *implUseCase) summarize(ctx context.Context, arg string, lang model.Language) (chat.Reply, error) {
	if arg == "" {
		return chat.Reply{Text: msgSummarizeUsage, Language: lang}, nil
	}
	if len([]rune(arg)) < summarizeMinRunes {
		return chat.Reply{Text: msgSummarizeTooShort, Language: lang}, nil
	}

	summary, err := uc.summarizer.Summarize(ctx, arg, string(lang))
	if err != nil {
		return chat.Reply{}, fmt.Errorf("failed to summarize text: %w", err)
	}
	return chat.Reply{Text: summary, Language: lang}, nil
}

func (uc *implUseCase) reloadFromWiki(ctx context.Context, topic string, lang model.Language) (chat.Reply, error) {
	if topic == "" {
		return chat.Reply{Text: msgWikiUsage, Language: lang}, nil
	}

	output, err := uc.ReloadCorpus(ctx, topic)
	if errors.Is(err, wiki.ErrPageNotFound) {
		return chat.Reply{Text: msgWikiNotFound, Language: lang}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "reloadFromWiki: reload failed for topic %q: %v", topic, err)
		return chat.Reply{Text: msgWikiFailed, Language: lang}, nil
	}

	return chat.Reply{
		Text:     fmt.Sprintf("Assunto carregado: %s (%d frases). Pode perguntar!", output.Topic, output.SentenceCount),
		Language: lang,
	}, nil
}
