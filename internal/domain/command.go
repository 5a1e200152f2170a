package domain

import "strings"

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string   `json:"program" yaml:"program" toml:"program"`
	Dir     string   `json:"dir,omitempty" yaml:"dir,omitempty" toml:"dir,omitempty"` // Working directory; empty means the caller's
	Args    []string `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
	Env     []string `json:"env,omitempty" yaml:"env,omitempty" toml:"env,omitempty"` // Extra KEY=VALUE pairs on top of the inherited environment
}

// NewCommand creates an ExecCommand holding its own copy of args.
func NewCommand(program string, args []string, dir string) ExecCommand {
	return ExecCommand{
		Program: program,
		Args:    append([]string(nil), args...),
		Dir:     dir,
	}
}

// String renders the command the way a shell user would type it.
// It is used for plans and logs only; commands are never run through a shell.
func (c ExecCommand) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quoteArg(c.Program))
	for _, a := range c.Args {
		parts = append(parts, quoteArg(a))
	}
	line := strings.Join(parts, " ")
	if c.Dir != "" {
		return "cd " + quoteArg(c.Dir) + " && " + line
	}
	return line
}

func quoteArg(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`&|;<>()*?[]#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
