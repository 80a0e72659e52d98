package errors

// ErrorHandler is the interface for error handling.
// Different implementations can handle errors differently based on context.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console output surface the CLI handler writes to.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler handles errors by printing to stdout/stderr using the colors package.
type CLIHandler struct {
	colors ColorOutput
}

func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string)   { h.colors.Error(msg) }
func (h *CLIHandler) Warning(msg string) { h.colors.Warning(msg) }
func (h *CLIHandler) Info(msg string)    { h.colors.Info(msg) }
func (h *CLIHandler) Success(msg string) { h.colors.Success(msg) }

// Report routes an error to the handler according to its kind: validation and
// duplicate-operation errors are non-fatal notices, stale responses are
// dropped, everything else is an error.
func Report(h ErrorHandler, err error) {
	if err == nil {
		return
	}
	switch {
	case IsStale(err):
		// Expected under rapid navigation; not a user-facing fault.
	case IsDuplicateOperation(err):
		h.Warning(err.Error())
	case IsValidation(err):
		h.Warning(err.Error())
	default:
		h.Error(err.Error())
	}
}
