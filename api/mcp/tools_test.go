package mcp

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/atriumhq/atrium/pkg/eventstream/nop"
	"github.com/atriumhq/atrium/pkg/reducer"
	"github.com/atriumhq/atrium/pkg/storage/inmemory"
)

var _ = Describe("MCP tools", func() {
	var (
		server *Server
		ctx    context.Context
	)

	BeforeEach(func() {
		logger := zap.NewNop()
		driver := inmemory.NewDriver()
		red := reducer.New(driver, nop.NewPublisher(), logger)

		var err error
		server, err = NewServer(Config{
			Storer:  driver,
			Reducer: red,
			Logger:  logger,
		})
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	record := func(eventType string, payload map[string]any) RecordEventOutput {
		result, output, err := server.handleRecordEvent(ctx, nil, RecordEventInput{
			EventType:         eventType,
			SessionExternalID: "mcp-sess",
			AgentName:         "planner",
			Payload:           payload,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.IsError).To(BeFalse())
		return output
	}

	Describe("record_decision_event", func() {
		It("records a question and reports the affected node", func() {
			output := record("question_presented", map[string]any{
				"node_ref": "q-1",
				"title":    "Pick a database",
				"choices":  []any{"sqlite", "postgres"},
			})

			Expect(output.SessionID).NotTo(BeZero())
			Expect(output.EventLogID).NotTo(BeZero())
			Expect(output.AffectedNodeID).NotTo(BeNil())
		})

		It("flags unknown event types as tool errors", func() {
			result, _, err := server.handleRecordEvent(ctx, nil, RecordEventInput{
				EventType:         "telemetry_blob",
				SessionExternalID: "mcp-sess",
				Payload:           map[string]any{},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeTrue())
		})

		It("flags unresolved targets as tool errors", func() {
			result, _, err := server.handleRecordEvent(ctx, nil, RecordEventInput{
				EventType:         "choice_selected",
				SessionExternalID: "mcp-sess",
				Payload: map[string]any{
					"question_node_ref": "missing",
					"choice_label":      "A",
				},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeTrue())
		})
	})

	Describe("get_session_graph", func() {
		BeforeEach(func() {
			record("question_presented", map[string]any{
				"node_ref": "q-1",
				"title":    "Pick a database",
				"choices":  []any{"sqlite", "postgres"},
			})
			record("choice_selected", map[string]any{
				"question_node_ref": "q-1",
				"choice_label":      "A",
			})
			record("question_presented", map[string]any{
				"node_ref":        "q-2",
				"title":           "Pick a driver",
				"parent_node_ref": "q-1",
			})
		})

		It("resolves the session by external id", func() {
			result, g, err := server.handleSessionGraph(ctx, nil, SessionGraphInput{
				SessionExternalID: "mcp-sess",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeFalse())
			Expect(g.Nodes).To(HaveLen(2))
			Expect(g.Edges).To(HaveLen(1))
		})

		It("applies the unchosen_only filter", func() {
			_, g, err := server.handleSessionGraph(ctx, nil, SessionGraphInput{
				SessionExternalID: "mcp-sess",
				UnchosenOnly:      true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Nodes).To(HaveLen(1))
			Expect(g.Nodes[0].Title).To(Equal("Pick a driver"))
		})

		It("requires a session reference", func() {
			result, _, err := server.handleSessionGraph(ctx, nil, SessionGraphInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeTrue())
		})

		It("rejects invalid status filters", func() {
			result, _, err := server.handleSessionGraph(ctx, nil, SessionGraphInput{
				SessionExternalID: "mcp-sess",
				Status:            "bogus",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeTrue())
		})
	})

	Describe("build_replay_prompt", func() {
		var nodeID int

		BeforeEach(func() {
			output := record("question_presented", map[string]any{
				"node_ref": "q-1",
				"title":    "Pick a database",
				"choices": []any{
					map[string]any{"label": "A", "text": "sqlite"},
					map[string]any{"label": "B", "text": "postgres"},
				},
			})
			nodeID = *output.AffectedNodeID

			record("choice_selected", map[string]any{
				"question_node_ref": "q-1",
				"choice_label":      "A",
			})
		})

		It("renders the alternative branch", func() {
			result, output, err := server.handleReplayPrompt(ctx, nil, ReplayPromptInput{
				NodeID:      nodeID,
				ChoiceLabel: "B",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeFalse())
			Expect(output.Prompt).To(ContainSubstring("Previously chosen path: A: sqlite"))
			Expect(output.Prompt).To(ContainSubstring("Alternative to execute now: B: postgres"))
		})

		It("requires a choice label", func() {
			result, _, err := server.handleReplayPrompt(ctx, nil, ReplayPromptInput{NodeID: nodeID})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeTrue())
		})

		It("flags unknown labels as tool errors", func() {
			result, _, err := server.handleReplayPrompt(ctx, nil, ReplayPromptInput{
				NodeID:      nodeID,
				ChoiceLabel: "Z",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeTrue())
		})
	})
})
