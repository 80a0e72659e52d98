package errors

// MessageType classifies a TUI status message for styling.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// Message is a status message destined for the TUI status line.
type Message struct {
	Text string
	Type MessageType
}

// TUIHandler delivers messages to the TUI through a callback instead of
// writing to the terminal directly, which would corrupt the alternate screen.
type TUIHandler struct {
	deliver func(Message)
}

// NewTUIHandler creates a TUI error handler with the given delivery callback.
func NewTUIHandler(deliver func(Message)) *TUIHandler {
	return &TUIHandler{deliver: deliver}
}

func (h *TUIHandler) Error(msg string)   { h.deliver(Message{Text: msg, Type: MessageTypeError}) }
func (h *TUIHandler) Warning(msg string) { h.deliver(Message{Text: msg, Type: MessageTypeWarning}) }
func (h *TUIHandler) Info(msg string)    { h.deliver(Message{Text: msg, Type: MessageTypeInfo}) }
func (h *TUIHandler) Success(msg string) { h.deliver(Message{Text: msg, Type: MessageTypeSuccess}) }
