package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Delete  func(TargetArgs) (Result, error)
	Open    func(TargetArgs) (Result, error)
	Export  func(TargetArgs) (Result, error)
	Inspect func(TargetArgs) (Result, error)
	Vibe    func(VibeArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeDelete:
		return dispatchTarget(cmd, handlers.Delete)
	case TypeOpen:
		return dispatchTarget(cmd, handlers.Open)
	case TypeExport:
		return dispatchTarget(cmd, handlers.Export)
	case TypeInspect:
		return dispatchTarget(cmd, handlers.Inspect)
	case TypeVibe:
		if handlers.Vibe == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Vibe(*cmd.Vibe)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func dispatchTarget(cmd Command, fn func(TargetArgs) (Result, error)) (Result, error) {
	if fn == nil {
		return Result{}, missingHandler(cmd.Type)
	}
	return fn(*cmd.Target)
}

func missingHandler(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
