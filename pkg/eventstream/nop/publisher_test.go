package nop_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/atriumhq/atrium/pkg/eventstream"
	"github.com/atriumhq/atrium/pkg/eventstream/nop"
)

func TestNopPublisher(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Nop Publisher Suite")
}

var _ = Describe("Publisher", func() {
	It("accepts a well-formed event", func() {
		p := nop.NewPublisher()
		err := p.PublishIngested(context.Background(), &eventstream.EventIngested{
			SchemaVersion:     eventstream.SchemaVersionV1,
			EventType:         eventstream.EventTypeEventIngested,
			EventID:           "evt-1",
			EmittedAt:         time.Now(),
			SessionID:         1,
			SessionExternalID: "sess-1",
			EventLogID:        1,
			DecisionEventType: "question_presented",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a nil event", func() {
		p := nop.NewPublisher()
		err := p.PublishIngested(context.Background(), nil)
		Expect(err).To(MatchError(eventstream.ErrNilEvent))
	})

	It("closes without error", func() {
		p := nop.NewPublisher()
		Expect(p.Close()).To(Succeed())
	})
})
