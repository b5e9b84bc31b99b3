package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage       = errors.New("message text is empty")
	ErrEmptyTopic         = errors.New("wiki topic is empty")
	ErrCorpusUnavailable  = errors.New("no corpus is loaded")
	ErrUnsupportedMessage = errors.New("unsupported message type")
)
