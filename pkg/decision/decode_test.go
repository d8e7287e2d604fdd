package decision_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/atriumhq/atrium/pkg/decision"
)

func TestDecision(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Decision Suite")
}

var _ = Describe("DecodeEvent", func() {
	newRequest := func(eventType string, payload map[string]any) *decision.IngestRequest {
		return &decision.IngestRequest{
			Source:            "agent",
			EventType:         eventType,
			SessionExternalID: "session-1",
			AgentName:         "planner",
			Payload:           payload,
		}
	}

	It("rejects a nil request", func() {
		_, err := decision.DecodeEvent(nil)
		Expect(err).To(BeAssignableToTypeOf(decision.ValidationError{}))
	})

	It("rejects an empty session external id", func() {
		req := newRequest("note_added", map[string]any{"note": "n"})
		req.SessionExternalID = "   "
		_, err := decision.DecodeEvent(req)
		var verr decision.ValidationError
		Expect(err).To(BeAssignableToTypeOf(verr))
	})

	It("rejects a session external id over the length bound", func() {
		long := make([]byte, decision.MaxSessionExternalIDLen+1)
		for i := range long {
			long[i] = 'x'
		}
		req := newRequest("note_added", map[string]any{"note": "n"})
		req.SessionExternalID = string(long)
		_, err := decision.DecodeEvent(req)
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unknown event type", func() {
		req := newRequest("mystery_event", map[string]any{})
		_, err := decision.DecodeEvent(req)
		var uerr decision.UnsupportedEventTypeError
		Expect(err).To(BeAssignableToTypeOf(uerr))
		Expect(err.Error()).To(ContainSubstring("mystery_event"))
	})

	It("rejects a missing payload", func() {
		req := newRequest("note_added", nil)
		_, err := decision.DecodeEvent(req)
		Expect(err).To(HaveOccurred())
	})

	It("defaults the source when blank", func() {
		req := newRequest("note_added", map[string]any{"note": "n"})
		req.Source = "  "
		ev, err := decision.DecodeEvent(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(ev.Source).To(Equal(decision.DefaultSource))
	})

	Describe("question_presented", func() {
		It("decodes a full payload", func() {
			req := newRequest("question_presented", map[string]any{
				"node_ref":        "q-cache",
				"title":           "Pick a cache",
				"context_prompt":  "We need sub-ms reads",
				"rationale":       "latency budget",
				"owner":           "infra",
				"priority":        float64(2),
				"parent_node_ref": "q-root",
				"choices": []any{
					map[string]any{"label": "A", "text": "Redis"},
					map[string]any{"label": "B", "text": "Memcached"},
				},
			})

			ev, err := decision.DecodeEvent(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(ev.Type).To(Equal(decision.EventQuestionPresented))

			p, ok := ev.Payload.(*decision.QuestionPresented)
			Expect(ok).To(BeTrue())
			Expect(p.Title).To(Equal("Pick a cache"))
			Expect(p.ContextPrompt).To(Equal("We need sub-ms reads"))
			Expect(p.Priority).To(HaveValue(Equal(2)))
			Expect(p.Choices).To(HaveLen(2))
			Expect(p.Parent.IsAbsent()).To(BeFalse())
			tag, isExternal := p.Parent.External()
			Expect(isExternal).To(BeTrue())
			Expect(tag).To(Equal("q-root"))
		})

		It("rejects a missing title", func() {
			req := newRequest("question_presented", map[string]any{
				"choices": []any{"Redis"},
			})
			_, err := decision.DecodeEvent(req)
			var verr decision.ValidationError
			Expect(errorsAs(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("title"))
		})

		It("accepts the legacy from_node_ref spelling for the parent", func() {
			req := newRequest("question_presented", map[string]any{
				"title":         "Next step",
				"from_node_ref": "42",
			})
			ev, err := decision.DecodeEvent(req)
			Expect(err).NotTo(HaveOccurred())
			p := ev.Payload.(*decision.QuestionPresented)
			id, isNumeric := p.Parent.Numeric()
			Expect(isNumeric).To(BeTrue())
			Expect(id).To(Equal(42))
		})

		It("auto-labels bare string choices A, B, C by position", func() {
			req := newRequest("question_presented", map[string]any{
				"title":   "Pick one",
				"choices": []any{"first", "second", "third"},
			})
			ev, err := decision.DecodeEvent(req)
			Expect(err).NotTo(HaveOccurred())
			p := ev.Payload.(*decision.QuestionPresented)
			Expect(p.Choices).To(Equal([]decision.ChoiceInput{
				{Label: "A", Text: "first"},
				{Label: "B", Text: "second"},
				{Label: "C", Text: "third"},
			}))
		})

		It("auto-labels unlabeled choice objects by their original position", func() {
			req := newRequest("question_presented", map[string]any{
				"title": "Pick one",
				"choices": []any{
					map[string]any{"label": "X", "text": "explicit"},
					map[string]any{"text": "positional"},
				},
			})
			ev, err := decision.DecodeEvent(req)
			Expect(err).NotTo(HaveOccurred())
			p := ev.Payload.(*decision.QuestionPresented)
			Expect(p.Choices).To(Equal([]decision.ChoiceInput{
				{Label: "X", Text: "explicit"},
				{Label: "B", Text: "positional"},
			}))
		})

		It("skips choices whose text is empty", func() {
			req := newRequest("question_presented", map[string]any{
				"title":   "Pick one",
				"choices": []any{"", "  ", "kept", float64(7)},
			})
			ev, err := decision.DecodeEvent(req)
			Expect(err).NotTo(HaveOccurred())
			p := ev.Payload.(*decision.QuestionPresented)
			Expect(p.Choices).To(HaveLen(1))
			Expect(p.Choices[0].Text).To(Equal("kept"))
		})
	})

	Describe("choice_selected", func() {
		It("decodes the target and label", func() {
			req := newRequest("choice_selected", map[string]any{
				"question_node_ref": "q-cache",
				"choice_label":      "B",
				"choice_text":       "Memcached",
			})
			ev, err := decision.DecodeEvent(req)
			Expect(err).NotTo(HaveOccurred())
			p := ev.Payload.(*decision.ChoiceSelected)
			Expect(p.Label).To(Equal("B"))
			Expect(p.Text).To(Equal("Memcached"))
			tag, isExternal := p.Target.External()
			Expect(isExternal).To(BeTrue())
			Expect(tag).To(Equal("q-cache"))
		})

		It("rejects a missing choice_label", func() {
			req := newRequest("choice_selected", map[string]any{
				"node_ref": "q-cache",
			})
			_, err := decision.DecodeEvent(req)
			var verr decision.ValidationError
			Expect(errorsAs(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("choice_label"))
		})

		It("leaves the target absent when no reference is given", func() {
			req := newRequest("choice_selected", map[string]any{
				"choice_label": "A",
			})
			ev, err := decision.DecodeEvent(req)
			Expect(err).NotTo(HaveOccurred())
			p := ev.Payload.(*decision.ChoiceSelected)
			Expect(p.Target.IsAbsent()).To(BeTrue())
		})
	})

	Describe("note_added", func() {
		It("decodes the note", func() {
			req := newRequest("note_added", map[string]any{
				"node_ref": "17",
				"note":     "benchmarks favor redis",
			})
			ev, err := decision.DecodeEvent(req)
			Expect(err).NotTo(HaveOccurred())
			p := ev.Payload.(*decision.NoteAdded)
			Expect(p.Note).To(Equal("benchmarks favor redis"))
			id, isNumeric := p.Target.Numeric()
			Expect(isNumeric).To(BeTrue())
			Expect(id).To(Equal(17))
		})

		It("rejects an empty note", func() {
			req := newRequest("note_added", map[string]any{"note": "  "})
			_, err := decision.DecodeEvent(req)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("node_status_changed", func() {
		It("decodes a valid status", func() {
			req := newRequest("node_status_changed", map[string]any{
				"node_ref": "q-cache",
				"status":   "blocked",
			})
			ev, err := decision.DecodeEvent(req)
			Expect(err).NotTo(HaveOccurred())
			p := ev.Payload.(*decision.NodeStatusChanged)
			Expect(p.Status).To(Equal(decision.StatusBlocked))
		})

		It("rejects a status outside the closed set", func() {
			req := newRequest("node_status_changed", map[string]any{
				"node_ref": "q-cache",
				"status":   "paused",
			})
			_, err := decision.DecodeEvent(req)
			var verr decision.ValidationError
			Expect(errorsAs(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("status"))
		})
	})
})

var _ = Describe("ParseReference", func() {
	It("classifies empty input as absent", func() {
		ref := decision.ParseReference("")
		Expect(ref.IsAbsent()).To(BeTrue())
		Expect(ref.String()).To(Equal("<absent>"))
	})

	It("classifies integer strings as numeric ids", func() {
		ref := decision.ParseReference("128")
		id, isNumeric := ref.Numeric()
		Expect(isNumeric).To(BeTrue())
		Expect(id).To(Equal(128))
		Expect(ref.String()).To(Equal("128"))
	})

	It("classifies negative integers as external tags", func() {
		ref := decision.ParseReference("-3")
		_, isNumeric := ref.Numeric()
		Expect(isNumeric).To(BeFalse())
		tag, isExternal := ref.External()
		Expect(isExternal).To(BeTrue())
		Expect(tag).To(Equal("-3"))
	})

	It("classifies everything else as external tags", func() {
		ref := decision.ParseReference("q-cache")
		tag, isExternal := ref.External()
		Expect(isExternal).To(BeTrue())
		Expect(tag).To(Equal("q-cache"))
		Expect(ref.String()).To(Equal("q-cache"))
	})
})

var _ = Describe("ValidKind and ValidStatus", func() {
	It("accepts the closed kind set", func() {
		Expect(decision.ValidKind(decision.KindQuestion)).To(BeTrue())
		Expect(decision.ValidKind(decision.KindDecision)).To(BeTrue())
		Expect(decision.ValidKind(decision.KindTask)).To(BeTrue())
		Expect(decision.ValidKind("milestone")).To(BeFalse())
	})

	It("accepts the closed status set", func() {
		Expect(decision.ValidStatus(decision.StatusOpen)).To(BeTrue())
		Expect(decision.ValidStatus(decision.StatusInProgress)).To(BeTrue())
		Expect(decision.ValidStatus(decision.StatusBlocked)).To(BeTrue())
		Expect(decision.ValidStatus(decision.StatusDone)).To(BeTrue())
		Expect(decision.ValidStatus("paused")).To(BeFalse())
	})
})

// errorsAs is a small wrapper so assertions read naturally inside matchers.
func errorsAs[T error](err error, target *T) bool {
	if err == nil {
		return false
	}
	if e, ok := err.(T); ok {
		*target = e
		return true
	}
	return false
}
