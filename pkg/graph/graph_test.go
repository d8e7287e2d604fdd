package graph_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/graph"
	"github.com/atriumhq/atrium/pkg/storage"
	"github.com/atriumhq/atrium/pkg/storage/inmemory"
)

func TestGraph(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Graph Suite")
}

var _ = Describe("Snapshot", func() {
	var (
		ctx    context.Context
		driver *inmemory.Driver

		sessionID int
		decided   *decision.Node
		undecided *decision.Node
		bare      *decision.Node
	)

	strPtr := func(s string) *string { return &s }
	statusPtr := func(s decision.Status) *decision.Status { return &s }

	// Seeds one session with three nodes: a question with a chosen choice,
	// a question with only unchosen choices, and a task with no choices.
	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()

		err := driver.Atomic(ctx, func(tx storage.Mutator) error {
			started := time.Now()
			sess, err := tx.CreateSession(ctx, &decision.Session{
				ExternalID: strPtr("sess-snap"),
				Name:       "sess-snap",
				StartedAt:  &started,
			})
			if err != nil {
				return err
			}
			sessionID = sess.ID

			decided, err = tx.CreateNode(ctx, &decision.Node{
				SessionID: sess.ID,
				Kind:      decision.KindQuestion,
				Title:     "Decided question",
				Status:    decision.StatusDone,
			})
			if err != nil {
				return err
			}
			chosenAt := time.Now()
			if _, err := tx.UpsertChoice(ctx, &decision.Choice{
				NodeID: decided.ID, Label: "A", Text: "picked", IsChosen: true, ChosenAt: &chosenAt,
			}); err != nil {
				return err
			}
			if _, err := tx.UpsertChoice(ctx, &decision.Choice{
				NodeID: decided.ID, Label: "B", Text: "passed over",
			}); err != nil {
				return err
			}

			undecided, err = tx.CreateNode(ctx, &decision.Node{
				SessionID: sess.ID,
				Kind:      decision.KindQuestion,
				Title:     "Open question",
				Status:    decision.StatusOpen,
			})
			if err != nil {
				return err
			}
			if _, err := tx.UpsertChoice(ctx, &decision.Choice{
				NodeID: undecided.ID, Label: "A", Text: "maybe",
			}); err != nil {
				return err
			}

			bare, err = tx.CreateNode(ctx, &decision.Node{
				SessionID: sess.ID,
				Kind:      decision.KindTask,
				Title:     "Choiceless task",
				Status:    decision.StatusOpen,
			})
			if err != nil {
				return err
			}

			_, err = tx.CreateEdge(ctx, &decision.Edge{
				FromNodeID: decided.ID,
				ToNodeID:   undecided.ID,
				Type:       decision.EdgeLeadsTo,
			})
			return err
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("returns the full graph without filters", func() {
		g, err := graph.Snapshot(ctx, driver, sessionID, graph.Filter{})
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Session.ID).To(Equal(sessionID))
		Expect(g.Nodes).To(HaveLen(3))
		Expect(g.Edges).To(HaveLen(1))
		Expect(g.Choices).To(HaveLen(3))
	})

	It("fails with NotFoundError for an unknown session", func() {
		_, err := graph.Snapshot(ctx, driver, 999, graph.Filter{})
		var nf storage.NotFoundError
		Expect(errors.As(err, &nf)).To(BeTrue())
	})

	It("filters nodes by status", func() {
		g, err := graph.Snapshot(ctx, driver, sessionID, graph.Filter{
			Status: statusPtr(decision.StatusDone),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Nodes).To(HaveLen(1))
		Expect(g.Nodes[0].ID).To(Equal(decided.ID))
	})

	It("keeps edges and choices unfiltered when nodes are filtered", func() {
		g, err := graph.Snapshot(ctx, driver, sessionID, graph.Filter{
			Status: statusPtr(decision.StatusDone),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Edges).To(HaveLen(1))
		Expect(g.Choices).To(HaveLen(3))
	})

	It("excludes nodes with a chosen choice under UnchosenOnly", func() {
		g, err := graph.Snapshot(ctx, driver, sessionID, graph.Filter{UnchosenOnly: true})
		Expect(err).NotTo(HaveOccurred())

		ids := make([]int, 0, len(g.Nodes))
		for _, n := range g.Nodes {
			ids = append(ids, n.ID)
		}
		Expect(ids).To(ConsistOf(undecided.ID, bare.ID))
	})

	It("combines status and UnchosenOnly filters", func() {
		g, err := graph.Snapshot(ctx, driver, sessionID, graph.Filter{
			Status:       statusPtr(decision.StatusOpen),
			UnchosenOnly: true,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Nodes).To(HaveLen(2))
	})
})

var _ = Describe("ReplayPrompt", func() {
	var (
		ctx    context.Context
		driver *inmemory.Driver
		nodeID int
	)

	strPtr := func(s string) *string { return &s }

	seedNode := func(contextPrompt *string, withChosen bool) {
		err := driver.Atomic(ctx, func(tx storage.Mutator) error {
			sess, err := tx.CreateSession(ctx, &decision.Session{Name: "replay"})
			if err != nil {
				return err
			}
			node, err := tx.CreateNode(ctx, &decision.Node{
				SessionID:     sess.ID,
				Kind:          decision.KindQuestion,
				Title:         "Pick a driver",
				Status:        decision.StatusDone,
				ContextPrompt: contextPrompt,
			})
			if err != nil {
				return err
			}
			nodeID = node.ID

			chosenAt := time.Now()
			chosen := &decision.Choice{NodeID: node.ID, Label: "A", Text: "sqlite"}
			if withChosen {
				chosen.IsChosen = true
				chosen.ChosenAt = &chosenAt
			}
			if _, err := tx.UpsertChoice(ctx, chosen); err != nil {
				return err
			}
			_, err = tx.UpsertChoice(ctx, &decision.Choice{NodeID: node.ID, Label: "B", Text: "postgres"})
			return err
		})
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
	})

	It("renders the decision point, chosen path, and alternative", func() {
		seedNode(strPtr("Local-first storage is preferred"), true)

		prompt, err := graph.ReplayPrompt(ctx, driver, nodeID, "B")
		Expect(err).NotTo(HaveOccurred())
		Expect(prompt).To(Equal(
			"Decision point: Pick a driver\n" +
				"Local-first storage is preferred\n" +
				"Previously chosen path: A: sqlite\n" +
				"Alternative to execute now: B: postgres"))
	})

	It("omits the chosen line when no choice is chosen", func() {
		seedNode(nil, false)

		prompt, err := graph.ReplayPrompt(ctx, driver, nodeID, "B")
		Expect(err).NotTo(HaveOccurred())
		Expect(prompt).To(Equal(
			"Decision point: Pick a driver\n" +
				"Alternative to execute now: B: postgres"))
	})

	It("fails with NotFoundError for an unknown label", func() {
		seedNode(nil, true)

		_, err := graph.ReplayPrompt(ctx, driver, nodeID, "Z")
		var nf storage.NotFoundError
		Expect(errors.As(err, &nf)).To(BeTrue())
		Expect(nf.Entity).To(Equal("choice"))
	})

	It("fails with NotFoundError for an unknown node", func() {
		_, err := graph.ReplayPrompt(ctx, driver, 404, "A")
		var nf storage.NotFoundError
		Expect(errors.As(err, &nf)).To(BeTrue())
	})
})
