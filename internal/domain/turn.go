package domain

import "time"

// MessageKind distinguishes how an inbound message arrived on the transport.
type MessageKind string

const (
	KindText        MessageKind = "text"
	KindInteractive MessageKind = "interactive"
	KindMedia       MessageKind = "media"
)

// Message is one inbound message as delivered by the transport adapter.
type Message struct {
	Content   string      `json:"content"`
	Kind      MessageKind `json:"kind"`
	Language  string      `json:"language,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Option is one labeled choice in a structured option list. The transport
// adapter decides how to render it on the wire.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Reply is one outbound message produced by a turn. Either plain text, or
// text plus a list of labeled options.
type Reply struct {
	Text    string   `json:"text"`
	Options []Option `json:"options,omitempty"`
}

// Turn is one inbound message plus its classified intent, resulting replies,
// and the state transition it caused. Turns are appended to the context log;
// only the most recent few are ever read back as generation context.
type Turn struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Message   Message       `json:"message"`
	Intent    Intent        `json:"intent"`
	ReplyText string        `json:"replyText"`
	FromState DialogueState `json:"fromState"`
	ToState   DialogueState `json:"toState"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ContextWindowSize bounds the recent-turn history supplied to the
// classifier-adjacent prompt assembly. The context log itself is unbounded.
const ContextWindowSize = 5
