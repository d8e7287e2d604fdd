package reducer_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/eventstream/nop"
	"github.com/atriumhq/atrium/pkg/reducer"
	"github.com/atriumhq/atrium/pkg/storage"
	"github.com/atriumhq/atrium/pkg/storage/inmemory"
)

func TestReducer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Reducer Suite")
}

var _ = Describe("Reducer", func() {
	var (
		ctx    context.Context
		driver *inmemory.Driver
		red    *reducer.Reducer
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		red = reducer.New(driver, nop.NewPublisher(), zap.NewNop())
	})

	question := func(sessionExt string, payload *decision.QuestionPresented) *decision.IngestResult {
		res, err := red.Ingest(ctx, &decision.Event{
			Source:            "agent",
			Type:              decision.EventQuestionPresented,
			SessionExternalID: sessionExt,
			Payload:           payload,
		})
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		return res
	}

	It("rejects a nil event", func() {
		_, err := red.Ingest(ctx, nil)
		Expect(err).To(HaveOccurred())
	})

	Describe("session resolution", func() {
		It("creates the session on first sight of an external id", func() {
			res := question("sess-new", &decision.QuestionPresented{Title: "First?"})

			sess, err := driver.SessionByExternalID(ctx, "sess-new")
			Expect(err).NotTo(HaveOccurred())
			Expect(sess.ID).To(Equal(res.SessionID))
			Expect(sess.Name).To(Equal("sess-new"))
			Expect(sess.StartedAt).NotTo(BeNil())
			Expect(sess.EndedAt).To(BeNil())
		})

		It("reuses the session on subsequent events", func() {
			first := question("sess-reuse", &decision.QuestionPresented{Title: "One?"})
			second := question("sess-reuse", &decision.QuestionPresented{Title: "Two?"})
			Expect(second.SessionID).To(Equal(first.SessionID))

			sessions, err := driver.Sessions(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(1))
		})
	})

	Describe("question_presented", func() {
		It("creates an open question node with its choices", func() {
			res := question("sess-q", &decision.QuestionPresented{
				NodeRef:       "q-cache",
				Title:         "Pick a cache",
				ContextPrompt: "sub-ms reads needed",
				Rationale:     "latency budget",
				Owner:         "infra",
				Choices: []decision.ChoiceInput{
					{Label: "A", Text: "Redis"},
					{Label: "B", Text: "Memcached"},
				},
			})
			Expect(res.AffectedNodeID).NotTo(BeNil())

			node, err := driver.NodeByID(ctx, *res.AffectedNodeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Kind).To(Equal(decision.KindQuestion))
			Expect(node.Status).To(Equal(decision.StatusOpen))
			Expect(node.Title).To(Equal("Pick a cache"))
			Expect(node.Rationale).To(HaveValue(Equal("latency budget")))
			Expect(node.Owner).To(HaveValue(Equal("infra")))
			Expect(node.ContextPrompt).To(HaveValue(Equal("sub-ms reads needed")))
			Expect(node.ExternalRef).To(HaveValue(Equal("q-cache")))

			choices, err := driver.ChoicesByNode(ctx, node.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(choices).To(HaveLen(2))
			for _, c := range choices {
				Expect(c.IsChosen).To(BeFalse())
			}
		})

		It("derives the owner from the agent name when none is given", func() {
			res, err := red.Ingest(ctx, &decision.Event{
				Source:            "agent",
				Type:              decision.EventQuestionPresented,
				SessionExternalID: "sess-owner",
				AgentName:         "planner",
				Payload:           &decision.QuestionPresented{Title: "Who owns this?"},
			})
			Expect(err).NotTo(HaveOccurred())

			node, err := driver.NodeByID(ctx, *res.AffectedNodeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Owner).To(HaveValue(Equal("agent:planner")))
		})

		It("links the new node to its parent with a leads_to edge", func() {
			parent := question("sess-edge", &decision.QuestionPresented{
				NodeRef: "q-root",
				Title:   "Root?",
			})
			child := question("sess-edge", &decision.QuestionPresented{
				Title:  "Child?",
				Parent: decision.ExternalRef("q-root"),
			})

			edges, err := driver.EdgesBySession(ctx, child.SessionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges).To(HaveLen(1))
			Expect(edges[0].FromNodeID).To(Equal(*parent.AffectedNodeID))
			Expect(edges[0].ToNodeID).To(Equal(*child.AffectedNodeID))
			Expect(edges[0].Type).To(Equal(decision.EdgeLeadsTo))
		})

		It("resolves numeric parent references within the session", func() {
			parent := question("sess-num", &decision.QuestionPresented{Title: "Root?"})
			child := question("sess-num", &decision.QuestionPresented{
				Title:  "Child?",
				Parent: decision.NumericRef(*parent.AffectedNodeID),
			})

			edges, err := driver.EdgesBySession(ctx, child.SessionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges).To(HaveLen(1))
		})

		It("creates the node without an edge when the parent does not resolve", func() {
			res := question("sess-orphan", &decision.QuestionPresented{
				Title:  "Orphan?",
				Parent: decision.ExternalRef("never-seen"),
			})
			Expect(res.AffectedNodeID).NotTo(BeNil())

			edges, err := driver.EdgesBySession(ctx, res.SessionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges).To(BeEmpty())
		})

		It("does not resolve parents across sessions", func() {
			question("sess-a", &decision.QuestionPresented{NodeRef: "shared", Title: "In A"})
			res := question("sess-b", &decision.QuestionPresented{
				Title:  "In B",
				Parent: decision.ExternalRef("shared"),
			})

			edges, err := driver.EdgesBySession(ctx, res.SessionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges).To(BeEmpty())
		})
	})

	Describe("choice_selected", func() {
		var nodeID int

		BeforeEach(func() {
			res := question("sess-choice", &decision.QuestionPresented{
				NodeRef: "q-pick",
				Title:   "Pick one",
				Choices: []decision.ChoiceInput{
					{Label: "A", Text: "Redis"},
					{Label: "B", Text: "Memcached"},
				},
			})
			nodeID = *res.AffectedNodeID
		})

		selectChoice := func(label, text string) {
			_, err := red.Ingest(ctx, &decision.Event{
				Source:            "agent",
				Type:              decision.EventChoiceSelected,
				SessionExternalID: "sess-choice",
				Payload: &decision.ChoiceSelected{
					Target: decision.ExternalRef("q-pick"),
					Label:  label,
					Text:   text,
				},
			})
			ExpectWithOffset(1, err).NotTo(HaveOccurred())
		}

		It("marks the choice chosen", func() {
			selectChoice("A", "")

			c, err := driver.ChoiceByLabel(ctx, nodeID, "A")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.IsChosen).To(BeTrue())
			Expect(c.ChosenAt).NotTo(BeNil())
			Expect(c.Text).To(Equal("Redis"))
		})

		It("keeps at most one choice chosen, last selection wins", func() {
			selectChoice("A", "")
			selectChoice("B", "")

			a, err := driver.ChoiceByLabel(ctx, nodeID, "A")
			Expect(err).NotTo(HaveOccurred())
			Expect(a.IsChosen).To(BeFalse())
			Expect(a.ChosenAt).To(BeNil())

			b, err := driver.ChoiceByLabel(ctx, nodeID, "B")
			Expect(err).NotTo(HaveOccurred())
			Expect(b.IsChosen).To(BeTrue())
		})

		It("creates an unseen label on the fly, using the label as text", func() {
			selectChoice("C", "")

			c, err := driver.ChoiceByLabel(ctx, nodeID, "C")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.IsChosen).To(BeTrue())
			Expect(c.Text).To(Equal("C"))
		})

		It("overrides the stored text when new text is supplied", func() {
			selectChoice("B", "Memcached with TLS")

			b, err := driver.ChoiceByLabel(ctx, nodeID, "B")
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Text).To(Equal("Memcached with TLS"))
		})

		It("falls back to the latest question node when no target is given", func() {
			latest := question("sess-choice", &decision.QuestionPresented{
				Title:   "Newer question",
				Choices: []decision.ChoiceInput{{Label: "A", Text: "yes"}},
			})

			res, err := red.Ingest(ctx, &decision.Event{
				Source:            "agent",
				Type:              decision.EventChoiceSelected,
				SessionExternalID: "sess-choice",
				Payload:           &decision.ChoiceSelected{Label: "A"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.AffectedNodeID).To(HaveValue(Equal(*latest.AffectedNodeID)))
		})

		It("fails with a not-found error when the target does not resolve", func() {
			_, err := red.Ingest(ctx, &decision.Event{
				Source:            "agent",
				Type:              decision.EventChoiceSelected,
				SessionExternalID: "sess-choice",
				Payload: &decision.ChoiceSelected{
					Target: decision.ExternalRef("missing"),
					Label:  "A",
				},
			})
			var nf storage.NotFoundError
			Expect(err).To(BeAssignableToTypeOf(nf))
		})
	})

	Describe("note_added", func() {
		It("sets the rationale on a node without one", func() {
			res := question("sess-note", &decision.QuestionPresented{Title: "Why?"})

			_, err := red.Ingest(ctx, &decision.Event{
				Source:            "agent",
				Type:              decision.EventNoteAdded,
				SessionExternalID: "sess-note",
				Payload: &decision.NoteAdded{
					Target: decision.NumericRef(*res.AffectedNodeID),
					Note:   "R1",
				},
			})
			Expect(err).NotTo(HaveOccurred())

			node, err := driver.NodeByID(ctx, *res.AffectedNodeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Rationale).To(HaveValue(Equal("R1")))
		})

		It("appends to an existing rationale with a newline", func() {
			res := question("sess-note2", &decision.QuestionPresented{
				Title:     "Why?",
				Rationale: "R1",
			})

			_, err := red.Ingest(ctx, &decision.Event{
				Source:            "agent",
				Type:              decision.EventNoteAdded,
				SessionExternalID: "sess-note2",
				Payload: &decision.NoteAdded{
					Target: decision.NumericRef(*res.AffectedNodeID),
					Note:   "R2",
				},
			})
			Expect(err).NotTo(HaveOccurred())

			node, err := driver.NodeByID(ctx, *res.AffectedNodeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Rationale).To(HaveValue(Equal("R1\nR2")))
		})
	})

	Describe("node_status_changed", func() {
		It("overwrites the node status", func() {
			res := question("sess-status", &decision.QuestionPresented{Title: "Stuck?"})

			_, err := red.Ingest(ctx, &decision.Event{
				Source:            "agent",
				Type:              decision.EventNodeStatusChanged,
				SessionExternalID: "sess-status",
				Payload: &decision.NodeStatusChanged{
					Target: decision.NumericRef(*res.AffectedNodeID),
					Status: decision.StatusBlocked,
				},
			})
			Expect(err).NotTo(HaveOccurred())

			node, err := driver.NodeByID(ctx, *res.AffectedNodeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Status).To(Equal(decision.StatusBlocked))
		})
	})

	Describe("audit log", func() {
		It("returns a distinct event log id per ingestion", func() {
			first := question("sess-audit", &decision.QuestionPresented{Title: "One?"})
			second := question("sess-audit", &decision.QuestionPresented{Title: "Two?"})
			Expect(first.EventLogID).NotTo(Equal(second.EventLogID))
		})

		It("writes nothing when the handler fails", func() {
			res := question("sess-atomic", &decision.QuestionPresented{Title: "Base?"})

			_, err := red.Ingest(ctx, &decision.Event{
				Source:            "agent",
				Type:              decision.EventNoteAdded,
				SessionExternalID: "sess-atomic",
				Payload: &decision.NoteAdded{
					Target: decision.ExternalRef("missing"),
					Note:   "never lands",
				},
			})
			Expect(err).To(HaveOccurred())

			// The failed ingestion must not have advanced the event log.
			next := question("sess-atomic", &decision.QuestionPresented{Title: "After?"})
			Expect(next.EventLogID).To(Equal(res.EventLogID + 1))
		})
	})
})
