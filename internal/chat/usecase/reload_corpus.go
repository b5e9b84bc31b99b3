package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/3moscas/tgbot/internal/chat"
	"github.com/3moscas/tgbot/internal/nlp/corpus"
)

// ReloadCorpus fetches the topic text and swaps the live index. The swap is
// all-or-nothing: concurrent readers keep the previous snapshot until a fully
// built replacement is stored.
func (uc *implUseCase) ReloadCorpus(ctx context.Context, topic string) (chat.ReloadOutput, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return chat.ReloadOutput{}, chat.ErrEmptyTopic
	}

	raw, err := uc.source.FetchExtract(ctx, topic)
	if err != nil {
		return chat.ReloadOutput{}, fmt.Errorf("failed to fetch corpus text: %w", err)
	}

	index, err := corpus.Build(raw, uc.detector)
	if err != nil {
		return chat.ReloadOutput{}, fmt.Errorf("failed to build corpus: %w", err)
	}

	uc.index.Store(index)
	uc.l.Infof(ctx, "ReloadCorpus: topic=%q sentences=%d", topic, index.Len())

	return chat.ReloadOutput{Topic: topic, SentenceCount: index.Len()}, nil
}

// CorpusSize reports the sentence count of the live index, zero when no
// corpus is loaded.
func (uc *implUseCase) CorpusSize() int {
	if index := uc.index.Load(); index != nil {
		return index.Len()
	}
	return 0
}
