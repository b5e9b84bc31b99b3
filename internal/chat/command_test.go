package chat_test

import (
	"testing"

	"github.com/3moscas/tgbot/internal/chat"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		wantCmd chat.Command
		wantArg string
		wantOK  bool
	}{
		{"start", "/start", chat.CommandStart, "", true},
		{"help", "/help", chat.CommandHelp, "", true},
		{"lang", "/lang", chat.CommandLang, "", true},
		{"sentiment with arg", "/sentiment estou muito feliz", chat.CommandSentiment, "estou muito feliz", true},
		{"summarize with arg", "/summarize um texto longo", chat.CommandSummarize, "um texto longo", true},
		{"wiki with arg", "/wiki Gato", chat.CommandWiki, "Gato", true},
		{"uppercase command", "/WIKI Gato", chat.CommandWiki, "Gato", true},
		{"bot mention suffix", "/help@tres_moscas_bot", chat.CommandHelp, "", true},
		{"leading whitespace", "  /start  ", chat.CommandStart, "", true},
		{"unknown command", "/dance", chat.CommandUnknown, "", true},
		{"unknown with arg", "/dance agora", chat.CommandUnknown, "agora", true},
		{"plain text", "olá, tudo bem?", chat.CommandUnknown, "", false},
		{"slash mid-text", "meio / caminho", chat.CommandUnknown, "", false},
		{"empty", "", chat.CommandUnknown, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, arg, ok := chat.ParseCommand(tc.text)
			if cmd != tc.wantCmd {
				t.Errorf("command: expected %v, got %v", tc.wantCmd, cmd)
			}
			if arg != tc.wantArg {
				t.Errorf("arg: expected %q, got %q", tc.wantArg, arg)
			}
			if ok != tc.wantOK {
				t.Errorf("ok: expected %v, got %v", tc.wantOK, ok)
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	if got := chat.CommandWiki.String(); got != "/wiki" {
		t.Errorf("expected /wiki, got %s", got)
	}
	if got := chat.CommandUnknown.String(); got != "/unknown" {
		t.Errorf("expected /unknown, got %s", got)
	}
}
