package chat

import "strings"

// Command is a closed set of slash commands the bot understands.
type Command int

const (
	CommandUnknown Command = iota
	CommandStart
	CommandHelp
	CommandLang
	CommandSentiment
	CommandSummarize
	CommandWiki
)

var commandNames = map[string]Command{
	"/start":     CommandStart,
	"/help":      CommandHelp,
	"/lang":      CommandLang,
	"/sentiment": CommandSentiment,
	"/summarize": CommandSummarize,
	"/wiki":      CommandWiki,
}

// String returns the canonical slash form of the command.
func (c Command) String() string {
	for name, cmd := range commandNames {
		if cmd == c {
			return name
		}
	}
	return "/unknown"
}

// ParseCommand splits text into a command and its argument. The second
// return is the argument with surrounding whitespace removed; ok reports
// whether text is a command at all (leading slash). Unrecognized commands
// parse as CommandUnknown with ok true.
func ParseCommand(text string) (Command, string, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "/") {
		return CommandUnknown, "", false
	}

	name, arg, _ := strings.Cut(trimmed, " ")

	// Telegram appends @botname in group chats.
	if at := strings.Index(name, "@"); at > 0 {
		name = name[:at]
	}

	cmd, ok := commandNames[strings.ToLower(name)]
	if !ok {
		return CommandUnknown, strings.TrimSpace(arg), true
	}
	return cmd, strings.TrimSpace(arg), true
}
