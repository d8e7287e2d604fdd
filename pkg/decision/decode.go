package decision

import (
	"strconv"
	"strings"
)

// IngestRequest is the transport-neutral shape of an ingestion call, as both
// the HTTP handler and the MCP tool receive it. The payload stays loose here;
// DecodeEvent turns it into a typed Event or fails with a ValidationError.
type IngestRequest struct {
	Source            string         `json:"source"`
	EventType         string         `json:"event_type"`
	SessionExternalID string         `json:"session_external_id"`
	AgentName         string         `json:"agent_name"`
	Payload           map[string]any `json:"payload"`
}

// DecodeEvent validates the envelope, classifies the event type against the
// closed set, and decodes the payload into its typed variant. Node references
// are parsed into Reference values here, once, at the boundary.
func DecodeEvent(req *IngestRequest) (*Event, error) {
	if req == nil {
		return nil, ValidationError{Reason: "missing request body"}
	}

	ext := strings.TrimSpace(req.SessionExternalID)
	if ext == "" {
		return nil, ValidationError{Field: "session_external_id", Reason: "must not be empty"}
	}
	if len(ext) > MaxSessionExternalIDLen {
		return nil, ValidationError{Field: "session_external_id", Reason: "must be at most 200 characters"}
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = DefaultSource
	}

	ev := &Event{
		Source:            source,
		SessionExternalID: ext,
		AgentName:         strings.TrimSpace(req.AgentName),
	}

	if req.Payload == nil {
		return nil, ValidationError{Field: "payload", Reason: "must be present"}
	}

	switch EventType(req.EventType) {
	case EventQuestionPresented:
		ev.Type = EventQuestionPresented
		p, err := decodeQuestionPresented(req.Payload)
		if err != nil {
			return nil, err
		}
		ev.Payload = p
	case EventChoiceSelected:
		ev.Type = EventChoiceSelected
		p, err := decodeChoiceSelected(req.Payload)
		if err != nil {
			return nil, err
		}
		ev.Payload = p
	case EventNoteAdded:
		ev.Type = EventNoteAdded
		p, err := decodeNoteAdded(req.Payload)
		if err != nil {
			return nil, err
		}
		ev.Payload = p
	case EventNodeStatusChanged:
		ev.Type = EventNodeStatusChanged
		p, err := decodeNodeStatusChanged(req.Payload)
		if err != nil {
			return nil, err
		}
		ev.Payload = p
	default:
		return nil, UnsupportedEventTypeError{Type: req.EventType}
	}

	return ev, nil
}

func decodeQuestionPresented(payload map[string]any) (*QuestionPresented, error) {
	title := stringField(payload, "title")
	if title == "" {
		return nil, ValidationError{Field: "title", Reason: "must not be empty"}
	}

	// parent_node_ref is the current field name; from_node_ref is the legacy
	// spelling still emitted by older agents.
	parentRef := stringField(payload, "parent_node_ref", "from_node_ref")

	p := &QuestionPresented{
		NodeRef:       stringField(payload, "node_ref"),
		Title:         title,
		ContextPrompt: stringField(payload, "context_prompt"),
		Rationale:     stringField(payload, "rationale"),
		Owner:         stringField(payload, "owner"),
		Priority:      intField(payload, "priority"),
		Choices:       decodeChoices(payload["choices"]),
		Parent:        ParseReference(parentRef),
		ParentRef:     parentRef,
	}
	return p, nil
}

func decodeChoiceSelected(payload map[string]any) (*ChoiceSelected, error) {
	label := stringField(payload, "choice_label")
	if label == "" {
		return nil, ValidationError{Field: "choice_label", Reason: "must not be empty"}
	}

	targetRef := stringField(payload, "question_node_ref", "node_ref")
	return &ChoiceSelected{
		Target:    ParseReference(targetRef),
		TargetRef: targetRef,
		Label:     label,
		Text:      stringField(payload, "choice_text", "text"),
	}, nil
}

func decodeNoteAdded(payload map[string]any) (*NoteAdded, error) {
	note := stringField(payload, "note")
	if note == "" {
		return nil, ValidationError{Field: "note", Reason: "must not be empty"}
	}

	targetRef := stringField(payload, "node_ref")
	return &NoteAdded{
		Target:    ParseReference(targetRef),
		TargetRef: targetRef,
		Note:      note,
	}, nil
}

func decodeNodeStatusChanged(payload map[string]any) (*NodeStatusChanged, error) {
	status := Status(stringField(payload, "status"))
	if !ValidStatus(status) {
		return nil, ValidationError{Field: "status", Reason: "must be one of open, in_progress, blocked, done"}
	}

	targetRef := stringField(payload, "node_ref")
	return &NodeStatusChanged{
		Target:    ParseReference(targetRef),
		TargetRef: targetRef,
		Status:    status,
	}, nil
}

// decodeChoices normalizes the loose choices list. Entries are either
// {label, text} objects or bare strings; bare strings and unlabeled objects
// are auto-labeled A, B, C, ... by position. Entries whose text resolves to
// empty are skipped.
func decodeChoices(raw any) []ChoiceInput {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	choices := make([]ChoiceInput, 0, len(list))
	for i, entry := range list {
		var label, text string
		switch v := entry.(type) {
		case string:
			text = strings.TrimSpace(v)
		case map[string]any:
			label = stringField(v, "label")
			text = stringField(v, "text")
		default:
			continue
		}

		if text == "" {
			continue
		}
		if label == "" {
			label = autoLabel(i)
		}
		choices = append(choices, ChoiceInput{Label: label, Text: text})
	}
	return choices
}

// autoLabel maps a position to A, B, C, ... falling back to the 1-based
// position past Z.
func autoLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return strconv.Itoa(i + 1)
}

// stringField returns the first present key as a trimmed string. Numeric
// values are rendered base-10 so loosely-typed producers that send numbers
// for reference fields still resolve.
func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		case float64:
			if s == float64(int(s)) {
				return strconv.Itoa(int(s))
			}
		}
	}
	return ""
}

// intField returns the key as an int pointer, nil when absent or non-numeric.
func intField(m map[string]any, key string) *int {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case int:
		i := n
		return &i
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return &i
		}
	}
	return nil
}
