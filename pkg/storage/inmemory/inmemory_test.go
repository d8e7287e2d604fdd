package inmemory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/storage"
	"github.com/atriumhq/atrium/pkg/storage/inmemory"
)

func TestInmemory(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Inmemory Storage Suite")
}

var _ = Describe("Driver", func() {
	var (
		ctx    context.Context
		driver *inmemory.Driver
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
	})

	strPtr := func(s string) *string { return &s }

	createSession := func(externalID string) *decision.Session {
		var sess *decision.Session
		err := driver.Atomic(ctx, func(tx storage.Mutator) error {
			started := time.Now()
			var err error
			sess, err = tx.CreateSession(ctx, &decision.Session{
				ExternalID: strPtr(externalID),
				Name:       externalID,
				StartedAt:  &started,
			})
			return err
		})
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		return sess
	}

	createNode := func(sessionID int, kind decision.Kind, title string, ref *string) *decision.Node {
		var node *decision.Node
		err := driver.Atomic(ctx, func(tx storage.Mutator) error {
			var err error
			node, err = tx.CreateNode(ctx, &decision.Node{
				SessionID:   sessionID,
				Kind:        kind,
				Title:       title,
				Status:      decision.StatusOpen,
				ExternalRef: ref,
			})
			return err
		})
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		return node
	}

	Describe("sessions", func() {
		It("assigns increasing ids starting at 1", func() {
			first := createSession("s-1")
			second := createSession("s-2")
			Expect(first.ID).To(Equal(1))
			Expect(second.ID).To(Equal(2))
		})

		It("looks up sessions by external id", func() {
			created := createSession("s-ext")
			found, err := driver.SessionByExternalID(ctx, "s-ext")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(created.ID))
		})

		It("returns NotFoundError for unknown sessions", func() {
			_, err := driver.SessionByID(ctx, 99)
			var nf storage.NotFoundError
			Expect(errors.As(err, &nf)).To(BeTrue())
			Expect(nf.Entity).To(Equal("session"))
		})

		It("rejects duplicate external ids with ConflictError", func() {
			createSession("s-dup")
			err := driver.Atomic(ctx, func(tx storage.Mutator) error {
				_, err := tx.CreateSession(ctx, &decision.Session{
					ExternalID: strPtr("s-dup"),
					Name:       "s-dup",
				})
				return err
			})
			var conflict storage.ConflictError
			Expect(errors.As(err, &conflict)).To(BeTrue())
		})

		It("lists sessions newest first", func() {
			createSession("s-old")
			createSession("s-new")
			sessions, err := driver.Sessions(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(2))
			Expect(sessions[0].ID).To(BeNumerically(">", sessions[1].ID))
		})

		It("persists SaveSession updates", func() {
			sess := createSession("s-save")
			ended := time.Now()
			err := driver.Atomic(ctx, func(tx storage.Mutator) error {
				sess.EndedAt = &ended
				return tx.SaveSession(ctx, sess)
			})
			Expect(err).NotTo(HaveOccurred())

			found, err := driver.SessionByID(ctx, sess.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.EndedAt).NotTo(BeNil())
		})
	})

	Describe("nodes", func() {
		It("scopes NodeInSession to the given session", func() {
			sessA := createSession("s-a")
			sessB := createSession("s-b")
			node := createNode(sessA.ID, decision.KindQuestion, "In A", nil)

			_, err := driver.NodeInSession(ctx, sessB.ID, node.ID)
			var nf storage.NotFoundError
			Expect(errors.As(err, &nf)).To(BeTrue())

			found, err := driver.NodeInSession(ctx, sessA.ID, node.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Title).To(Equal("In A"))
		})

		It("rejects duplicate external refs with ConflictError", func() {
			sess := createSession("s-ref")
			createNode(sess.ID, decision.KindQuestion, "First", strPtr("q-1"))

			err := driver.Atomic(ctx, func(tx storage.Mutator) error {
				_, err := tx.CreateNode(ctx, &decision.Node{
					SessionID:   sess.ID,
					Kind:        decision.KindQuestion,
					Title:       "Second",
					Status:      decision.StatusOpen,
					ExternalRef: strPtr("q-1"),
				})
				return err
			})
			var conflict storage.ConflictError
			Expect(errors.As(err, &conflict)).To(BeTrue())
		})

		It("returns the question node with the highest id as latest", func() {
			sess := createSession("s-latest")
			createNode(sess.ID, decision.KindQuestion, "Older", nil)
			createNode(sess.ID, decision.KindTask, "A task", nil)
			newest := createNode(sess.ID, decision.KindQuestion, "Newest", nil)

			latest, err := driver.LatestQuestionNode(ctx, sess.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.ID).To(Equal(newest.ID))
		})

		It("fails latest-question lookup when the session has no questions", func() {
			sess := createSession("s-noq")
			createNode(sess.ID, decision.KindTask, "Only tasks", nil)

			_, err := driver.LatestQuestionNode(ctx, sess.ID)
			var nf storage.NotFoundError
			Expect(errors.As(err, &nf)).To(BeTrue())
		})

		It("lists nodes in creation order", func() {
			sess := createSession("s-order")
			first := createNode(sess.ID, decision.KindQuestion, "First", nil)
			second := createNode(sess.ID, decision.KindQuestion, "Second", nil)

			nodes, err := driver.NodesBySession(ctx, sess.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(nodes).To(HaveLen(2))
			Expect(nodes[0].ID).To(Equal(first.ID))
			Expect(nodes[1].ID).To(Equal(second.ID))
		})
	})

	Describe("choices", func() {
		var nodeID int

		BeforeEach(func() {
			sess := createSession("s-choices")
			nodeID = createNode(sess.ID, decision.KindQuestion, "Pick", nil).ID
		})

		It("inserts new labels and updates existing ones", func() {
			err := driver.Atomic(ctx, func(tx storage.Mutator) error {
				if _, err := tx.UpsertChoice(ctx, &decision.Choice{NodeID: nodeID, Label: "A", Text: "one"}); err != nil {
					return err
				}
				_, err := tx.UpsertChoice(ctx, &decision.Choice{NodeID: nodeID, Label: "A", Text: "updated"})
				return err
			})
			Expect(err).NotTo(HaveOccurred())

			choices, err := driver.ChoicesByNode(ctx, nodeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(choices).To(HaveLen(1))
			Expect(choices[0].Text).To(Equal("updated"))
		})

		It("clears all chosen marks on a node", func() {
			now := time.Now()
			err := driver.Atomic(ctx, func(tx storage.Mutator) error {
				if _, err := tx.UpsertChoice(ctx, &decision.Choice{NodeID: nodeID, Label: "A", Text: "one", IsChosen: true, ChosenAt: &now}); err != nil {
					return err
				}
				return tx.ClearChosen(ctx, nodeID)
			})
			Expect(err).NotTo(HaveOccurred())

			c, err := driver.ChoiceByLabel(ctx, nodeID, "A")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.IsChosen).To(BeFalse())
			Expect(c.ChosenAt).To(BeNil())
		})
	})

	Describe("Atomic", func() {
		It("discards all mutations when the transaction fails", func() {
			boom := errors.New("boom")
			err := driver.Atomic(ctx, func(tx storage.Mutator) error {
				if _, err := tx.CreateSession(ctx, &decision.Session{
					ExternalID: strPtr("s-rollback"),
					Name:       "s-rollback",
				}); err != nil {
					return err
				}
				return boom
			})
			Expect(err).To(MatchError(boom))

			_, err = driver.SessionByExternalID(ctx, "s-rollback")
			var nf storage.NotFoundError
			Expect(errors.As(err, &nf)).To(BeTrue())
		})

		It("makes reads inside the transaction see its own writes", func() {
			err := driver.Atomic(ctx, func(tx storage.Mutator) error {
				created, err := tx.CreateSession(ctx, &decision.Session{
					ExternalID: strPtr("s-rw"),
					Name:       "s-rw",
				})
				if err != nil {
					return err
				}
				found, err := tx.SessionByExternalID(ctx, "s-rw")
				if err != nil {
					return err
				}
				Expect(found.ID).To(Equal(created.ID))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("rolls back id counters with the failed transaction", func() {
			// Id counters live on the discarded clone, so the next
			// transaction starts from the same counter values.
			boom := errors.New("boom")
			_ = driver.Atomic(ctx, func(tx storage.Mutator) error {
				if _, err := tx.CreateSession(ctx, &decision.Session{Name: "ghost"}); err != nil {
					return err
				}
				return boom
			})

			sess := createSession("s-after-rollback")
			Expect(sess.ID).To(Equal(1))
		})
	})
})
