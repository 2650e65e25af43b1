package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeDelete  Type = "delete"
	TypeOpen    Type = "open"
	TypeExport  Type = "export"
	TypeInspect Type = "inspect"
	TypeVibe    Type = "vibe"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
	ErrCodeNotFound        ErrorCode = "not_found"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs carries the raw name; a blank name is left for the task gate to drop.
type AddArgs struct {
	Name    string
	Urgency *int
}

// TargetArgs names a task either by id or by 1-based list position ("#2").
type TargetArgs struct {
	ID       string
	Position int
}

type VibeArgs struct {
	Level int
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Target *TargetArgs
	Vibe   *VibeArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args), nil
	case TypeDelete, TypeOpen, TypeExport, TypeInspect:
		return parseTarget(input, Type(head), args)
	case TypeVibe:
		return parseVibe(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) Command {
	add := &AddArgs{}
	if len(args) >= 2 {
		if level, err := strconv.Atoi(args[0]); err == nil {
			add.Urgency = &level
			args = args[1:]
		}
	}
	add.Name = strings.Join(args, " ")
	return Command{Type: TypeAdd, Raw: raw, Add: add}
}

func parseTarget(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires one task id or #position", typ)}
	}
	arg := args[0]
	if pos, ok := strings.CutPrefix(arg, "#"); ok {
		n, err := strconv.Atoi(pos)
		if err != nil || n < 1 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid position: %s", arg)}
		}
		return Command{Type: typ, Raw: raw, Target: &TargetArgs{Position: n}}, nil
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{ID: arg}}, nil
}

func parseVibe(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "vibe requires a level between 0 and 100"}
	}
	level, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid vibe level: %s", args[0])}
	}
	return Command{Type: TypeVibe, Raw: raw, Vibe: &VibeArgs{Level: level}}, nil
}
