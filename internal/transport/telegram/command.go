//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package telegram

import "strings"

// CommandKind represents a recognized bot command
// ENUM(start,help,settings,origin,days,price,duration,increment,direct,reset,approve,reject,users,unknown)
type CommandKind string

// Command is a parsed inbound message: a command kind plus an optional
// single whitespace-delimited argument.
type Command struct {
	Kind      CommandKind
	Arg       string
	IsCommand bool
}

// ParseCommand parses free message text into a Command. Text not
// starting with "/" is not a command at all; a "/something" that is
// not in the closed command set parses as CommandKindUnknown.
func ParseCommand(text string) Command {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return Command{}
	}

	fields := strings.Fields(text)
	name := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	// Commands in groups arrive as /command@bot_name
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}

	cmd := Command{Kind: CommandKindUnknown, IsCommand: true}
	if kind, err := ParseCommandKind(name); err == nil && kind != CommandKindUnknown {
		cmd.Kind = kind
	}
	if len(fields) > 1 {
		cmd.Arg = fields[1]
	}
	return cmd
}
