package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/eventstream/nop"
	"github.com/atriumhq/atrium/pkg/reducer"
	"github.com/atriumhq/atrium/pkg/storage/inmemory"
)

func TestAPI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Suite")
}

var _ = Describe("API Server", func() {
	var server *Server

	BeforeEach(func() {
		logger, _ := zap.NewDevelopment()
		driver := inmemory.NewDriver()
		red := reducer.New(driver, nop.NewPublisher(), logger)
		server = NewServer(Config{ListenAddr: ":0"}, driver, red, logger)
	})

	postJSON := func(path string, body any) *http.Response {
		data, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())

		req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Content-Type", "application/json")

		resp, err := server.app.Test(req)
		Expect(err).NotTo(HaveOccurred())
		return resp
	}

	get := func(path string) *http.Response {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		Expect(err).NotTo(HaveOccurred())

		resp, err := server.app.Test(req)
		Expect(err).NotTo(HaveOccurred())
		return resp
	}

	decode := func(resp *http.Response, out any) {
		data, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(json.Unmarshal(data, out)).To(Succeed())
	}

	ingest := func(eventType, sessionExt string, payload map[string]any) *http.Response {
		return postJSON("/api/events", map[string]any{
			"source":              "test",
			"event_type":          eventType,
			"session_external_id": sessionExt,
			"payload":             payload,
		})
	}

	Describe("GET /ping", func() {
		It("returns pong", func() {
			resp := get("/ping")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			data, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("pong"))
		})
	})

	Describe("POST /api/events", func() {
		It("creates a session and node from a question event", func() {
			resp := ingest("question_presented", "sess-1", map[string]any{
				"node_ref": "q-1",
				"title":    "Pick a database",
				"choices":  []any{"sqlite", "postgres"},
			})
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))

			var result decision.IngestResult
			decode(resp, &result)
			Expect(result.SessionID).NotTo(BeZero())
			Expect(result.EventLogID).NotTo(BeZero())
			Expect(result.AffectedNodeID).NotTo(BeNil())
		})

		It("rejects unknown event types with 400", func() {
			resp := ingest("telemetry_blob", "sess-1", map[string]any{})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("rejects a missing session external id with 400", func() {
			resp := ingest("question_presented", "", map[string]any{"title": "t"})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 when a choice targets a missing node", func() {
			resp := ingest("choice_selected", "sess-2", map[string]any{
				"question_node_ref": "no-such-node",
				"choice_label":      "A",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("builds a linked graph across events", func() {
			resp := ingest("question_presented", "sess-3", map[string]any{
				"node_ref": "q-1",
				"title":    "Pick a database",
				"choices": []any{
					map[string]any{"label": "A", "text": "sqlite"},
					map[string]any{"label": "B", "text": "postgres"},
				},
			})
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))

			var first decision.IngestResult
			decode(resp, &first)

			resp = ingest("choice_selected", "sess-3", map[string]any{
				"question_node_ref": "q-1",
				"choice_label":      "B",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))

			resp = ingest("question_presented", "sess-3", map[string]any{
				"node_ref":        "q-2",
				"title":           "Pick a driver",
				"parent_node_ref": "q-1",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))

			resp = get(fmt.Sprintf("/api/sessions/%d/graph", first.SessionID))
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var g decision.Graph
			decode(resp, &g)
			Expect(g.Nodes).To(HaveLen(2))
			Expect(g.Edges).To(HaveLen(1))
			Expect(g.Choices).To(HaveLen(2))
		})
	})

	Describe("sessions", func() {
		It("creates and fetches a session", func() {
			resp := postJSON("/api/sessions", map[string]any{
				"external_id": "sess-api",
				"name":        "API session",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))

			var created decision.Session
			decode(resp, &created)
			Expect(created.ID).NotTo(BeZero())
			Expect(created.Name).To(Equal("API session"))

			resp = get(fmt.Sprintf("/api/sessions/%d", created.ID))
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})

		It("rejects an empty name with 400", func() {
			resp := postJSON("/api/sessions", map[string]any{"name": "  "})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("returns 409 for a duplicate external id", func() {
			resp := postJSON("/api/sessions", map[string]any{
				"external_id": "dup",
				"name":        "first",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))

			resp = postJSON("/api/sessions", map[string]any{
				"external_id": "dup",
				"name":        "second",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusConflict))
		})

		It("returns 404 for a missing session", func() {
			resp := get("/api/sessions/999")
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("lists sessions", func() {
			postJSON("/api/sessions", map[string]any{"name": "one"})
			postJSON("/api/sessions", map[string]any{"name": "two"})

			resp := get("/api/sessions")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var listing struct {
				Count    int                 `json:"count"`
				Sessions []*decision.Session `json:"sessions"`
			}
			decode(resp, &listing)
			Expect(listing.Count).To(Equal(2))
		})

		It("ends a session idempotently", func() {
			resp := postJSON("/api/sessions", map[string]any{"name": "ender"})
			var created decision.Session
			decode(resp, &created)

			resp = postJSON(fmt.Sprintf("/api/sessions/%d/end", created.ID), nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var ended decision.Session
			decode(resp, &ended)
			Expect(ended.EndedAt).NotTo(BeNil())

			resp = postJSON(fmt.Sprintf("/api/sessions/%d/end", created.ID), nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var again decision.Session
			decode(resp, &again)
			Expect(again.EndedAt).To(Equal(ended.EndedAt))
		})
	})

	Describe("nodes", func() {
		var sessionID int

		BeforeEach(func() {
			resp := postJSON("/api/sessions", map[string]any{"name": "nodes"})
			var created decision.Session
			decode(resp, &created)
			sessionID = created.ID
		})

		It("creates a node directly", func() {
			resp := postJSON("/api/nodes", map[string]any{
				"session_id": sessionID,
				"type":       "task",
				"title":      "Write migration",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))

			var node decision.Node
			decode(resp, &node)
			Expect(node.Kind).To(Equal(decision.KindTask))
			Expect(node.Status).To(Equal(decision.StatusOpen))
		})

		It("links the node under a parent when given", func() {
			resp := postJSON("/api/nodes", map[string]any{
				"session_id": sessionID,
				"type":       "question",
				"title":      "parent",
			})
			var parent decision.Node
			decode(resp, &parent)

			resp = postJSON("/api/nodes", map[string]any{
				"session_id":     sessionID,
				"type":           "task",
				"title":          "child",
				"parent_node_id": parent.ID,
			})
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))

			resp = get(fmt.Sprintf("/api/sessions/%d/graph", sessionID))
			var g decision.Graph
			decode(resp, &g)
			Expect(g.Edges).To(HaveLen(1))
			Expect(g.Edges[0].FromNodeID).To(Equal(parent.ID))
		})

		It("rejects an invalid node type with 400", func() {
			resp := postJSON("/api/nodes", map[string]any{
				"session_id": sessionID,
				"type":       "mystery",
				"title":      "nope",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 when the session does not exist", func() {
			resp := postJSON("/api/nodes", map[string]any{
				"session_id": 999,
				"type":       "task",
				"title":      "orphan",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("patches node status and rationale", func() {
			resp := postJSON("/api/nodes", map[string]any{
				"session_id": sessionID,
				"type":       "task",
				"title":      "patchable",
			})
			var node decision.Node
			decode(resp, &node)

			req, err := http.NewRequest(http.MethodPatch,
				fmt.Sprintf("/api/nodes/%d", node.ID),
				bytes.NewReader([]byte(`{"status":"done","rationale":"shipped"}`)))
			Expect(err).NotTo(HaveOccurred())
			req.Header.Set("Content-Type", "application/json")

			resp2, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp2.StatusCode).To(Equal(http.StatusOK))

			var patched decision.Node
			decode(resp2, &patched)
			Expect(patched.Status).To(Equal(decision.StatusDone))
			Expect(patched.Rationale).NotTo(BeNil())
			Expect(*patched.Rationale).To(Equal("shipped"))
		})
	})

	Describe("GET /api/sessions/:id/graph", func() {
		var sessionID int

		BeforeEach(func() {
			resp := ingest("question_presented", "graph-sess", map[string]any{
				"node_ref": "q-1",
				"title":    "Pick a database",
				"choices":  []any{"sqlite", "postgres"},
			})
			var result decision.IngestResult
			decode(resp, &result)
			sessionID = result.SessionID

			ingest("choice_selected", "graph-sess", map[string]any{
				"question_node_ref": "q-1",
				"choice_label":      "A",
			})
			ingest("question_presented", "graph-sess", map[string]any{
				"node_ref": "q-2",
				"title":    "Pick a driver",
				"choices":  []any{"pgx", "lib/pq"},
			})
			ingest("node_status_changed", "graph-sess", map[string]any{
				"node_ref": "q-2",
				"status":   "blocked",
			})
		})

		It("filters by status", func() {
			resp := get(fmt.Sprintf("/api/sessions/%d/graph?status=blocked", sessionID))
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var g decision.Graph
			decode(resp, &g)
			Expect(g.Nodes).To(HaveLen(1))
			Expect(g.Nodes[0].Status).To(Equal(decision.StatusBlocked))
		})

		It("filters unchosen nodes", func() {
			resp := get(fmt.Sprintf("/api/sessions/%d/graph?unchosen_only=true", sessionID))
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var g decision.Graph
			decode(resp, &g)
			// q-1 has a chosen choice and drops out; q-2 remains undecided.
			Expect(g.Nodes).To(HaveLen(1))
			Expect(g.Nodes[0].Title).To(Equal("Pick a driver"))
		})

		It("rejects an invalid status filter with 400", func() {
			resp := get(fmt.Sprintf("/api/sessions/%d/graph?status=bogus", sessionID))
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /api/nodes/:id/replay-prompt", func() {
		var nodeID int

		BeforeEach(func() {
			resp := ingest("question_presented", "replay-sess", map[string]any{
				"node_ref":       "q-1",
				"title":          "Pick a database",
				"context_prompt": "We need persistence for the service.",
				"choices": []any{
					map[string]any{"label": "A", "text": "sqlite"},
					map[string]any{"label": "B", "text": "postgres"},
				},
			})
			var result decision.IngestResult
			decode(resp, &result)
			nodeID = *result.AffectedNodeID

			ingest("choice_selected", "replay-sess", map[string]any{
				"question_node_ref": "q-1",
				"choice_label":      "A",
			})
		})

		It("renders the alternative branch", func() {
			resp := get(fmt.Sprintf("/api/nodes/%d/replay-prompt?choice_label=B", nodeID))
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var out ReplayPromptResponse
			decode(resp, &out)
			Expect(out.Prompt).To(ContainSubstring("Decision point: Pick a database"))
			Expect(out.Prompt).To(ContainSubstring("We need persistence"))
			Expect(out.Prompt).To(ContainSubstring("Previously chosen path: A: sqlite"))
			Expect(out.Prompt).To(ContainSubstring("Alternative to execute now: B: postgres"))
		})

		It("requires choice_label", func() {
			resp := get(fmt.Sprintf("/api/nodes/%d/replay-prompt", nodeID))
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for an unknown label", func() {
			resp := get(fmt.Sprintf("/api/nodes/%d/replay-prompt?choice_label=Z", nodeID))
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})
})
