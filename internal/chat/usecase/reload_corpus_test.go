package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/3moscas/tgbot/internal/chat"
	"github.com/3moscas/tgbot/pkg/wiki"
)

func TestReloadCorpus(t *testing.T) {
	t.Run("Success Swaps Index", func(t *testing.T) {
		uc, deps := newTestUseCase(nil)
		deps.source.text = "A lua orbita a Terra. Marte é o planeta vermelho. Vênus brilha ao entardecer."

		output, err := uc.ReloadCorpus(context.Background(), "Sistema Solar")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.SentenceCount != 3 {
			t.Errorf("expected 3 sentences, got %d", output.SentenceCount)
		}
		if uc.CorpusSize() != 3 {
			t.Errorf("expected live corpus of 3 sentences, got %d", uc.CorpusSize())
		}
	})

	t.Run("Empty Topic", func(t *testing.T) {
		uc, _ := newTestUseCase(nil)

		_, err := uc.ReloadCorpus(context.Background(), "  ")
		if !errors.Is(err, chat.ErrEmptyTopic) {
			t.Fatalf("expected ErrEmptyTopic, got: %v", err)
		}
	})

	t.Run("Fetch Failure Keeps Old Index", func(t *testing.T) {
		uc, deps := newTestUseCase(buildTestIndex())
		before := uc.CorpusSize()
		deps.source.err = errors.New("network down")

		_, err := uc.ReloadCorpus(context.Background(), "Gato")
		if err == nil {
			t.Fatalf("expected fetch error")
		}
		if uc.CorpusSize() != before {
			t.Errorf("failed reload must keep the previous corpus: %d != %d", uc.CorpusSize(), before)
		}
	})

	t.Run("Empty Text Keeps Old Index", func(t *testing.T) {
		uc, deps := newTestUseCase(buildTestIndex())
		before := uc.CorpusSize()
		deps.source.text = "   "
		deps.source.err = nil

		_, err := uc.ReloadCorpus(context.Background(), "Página vazia")
		if err == nil {
			t.Fatalf("expected build error on empty text")
		}
		if uc.CorpusSize() != before {
			t.Errorf("failed reload must keep the previous corpus: %d != %d", uc.CorpusSize(), before)
		}
	})
}

func TestWikiCommand(t *testing.T) {
	t.Run("Success Reply", func(t *testing.T) {
		uc, deps := newTestUseCase(nil)
		deps.source.text = petCorpus

		reply, err := uc.HandleText(context.Background(), testScope, chat.TextInput{Text: "/wiki Gato"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply.Text, "Gato") || !strings.Contains(reply.Text, "4 frases") {
			t.Errorf("unexpected reload reply: %q", reply.Text)
		}
	})

	t.Run("Missing Topic", func(t *testing.T) {
		uc, _ := newTestUseCase(nil)

		reply, err := uc.HandleText(context.Background(), testScope, chat.TextInput{Text: "/wiki"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Text != msgWikiUsage {
			t.Errorf("expected usage reply, got %q", reply.Text)
		}
	})

	t.Run("Page Not Found", func(t *testing.T) {
		uc, deps := newTestUseCase(nil)
		deps.source.err = wiki.ErrPageNotFound

		reply, err := uc.HandleText(context.Background(), testScope, chat.TextInput{Text: "/wiki Artigo inexistente"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Text != msgWikiNotFound {
			t.Errorf("expected not found reply, got %q", reply.Text)
		}
	})

	t.Run("Fetch Failure Reply", func(t *testing.T) {
		uc, deps := newTestUseCase(buildTestIndex())
		deps.source.err = errors.New("network down")

		reply, err := uc.HandleText(context.Background(), testScope, chat.TextInput{Text: "/wiki Gato"})
		if err != nil {
			t.Fatalf("reload failures must become a terminal reply, got error: %v", err)
		}
		if reply.Text != msgWikiFailed {
			t.Errorf("expected failure reply, got %q", reply.Text)
		}
	})
}
