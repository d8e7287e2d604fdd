package decision

// EventType is the closed set of ingestible event types.
type EventType string

const (
	EventQuestionPresented EventType = "question_presented"
	EventChoiceSelected    EventType = "choice_selected"
	EventNoteAdded         EventType = "note_added"
	EventNodeStatusChanged EventType = "node_status_changed"
)

// DefaultSource is recorded when an event names no source.
const DefaultSource = "system"

// MaxSessionExternalIDLen bounds the caller-supplied session id.
const MaxSessionExternalIDLen = 200

// Event is one fully-decoded ingestion envelope. The payload is one of the
// typed variants below; the reducer dispatches on it exhaustively.
type Event struct {
	Source            string
	Type              EventType
	SessionExternalID string
	AgentName         string
	Payload           Payload
}

// Payload is implemented by exactly one type per event type.
type Payload interface {
	isPayload()
}

// ChoiceInput is one normalized choice entry of a question_presented payload.
type ChoiceInput struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuestionPresented creates a question node, its choices, and optionally a
// leads_to edge from a parent node.
type QuestionPresented struct {
	NodeRef       string        `json:"node_ref,omitempty"`
	Title         string        `json:"title"`
	ContextPrompt string        `json:"context_prompt,omitempty"`
	Rationale     string        `json:"rationale,omitempty"`
	Owner         string        `json:"owner,omitempty"`
	Priority      *int          `json:"priority,omitempty"`
	Choices       []ChoiceInput `json:"choices,omitempty"`

	// Parent, when supplied, is resolved within the session; resolution
	// failure is silently ignored (node created, no edge).
	Parent    Reference `json:"-"`
	ParentRef string    `json:"parent_node_ref,omitempty"`
}

// ChoiceSelected marks one choice of a node as the chosen path, clearing any
// previous selection on that node.
type ChoiceSelected struct {
	Target    Reference `json:"-"`
	TargetRef string    `json:"node_ref,omitempty"`
	Label     string    `json:"choice_label"`
	Text      string    `json:"choice_text,omitempty"`
}

// NoteAdded appends free text to a node's rationale.
type NoteAdded struct {
	Target    Reference `json:"-"`
	TargetRef string    `json:"node_ref,omitempty"`
	Note      string    `json:"note"`
}

// NodeStatusChanged overwrites a node's status.
type NodeStatusChanged struct {
	Target    Reference `json:"-"`
	TargetRef string    `json:"node_ref,omitempty"`
	Status    Status    `json:"status"`
}

func (*QuestionPresented) isPayload() {}
func (*ChoiceSelected) isPayload()    {}
func (*NoteAdded) isPayload()         {}
func (*NodeStatusChanged) isPayload() {}
