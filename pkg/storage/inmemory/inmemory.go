// Package inmemory provides an in-memory storage driver used by tests and by
// serve mode when no database is configured.
package inmemory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/storage"
)

// Driver implements storage.Driver with plain maps. Atomic clones the whole
// state, lets the mutator work on the clone, and swaps it in on success, so
// a failed transaction leaves no partial mutation behind.
type Driver struct {
	mu sync.RWMutex
	st *state
}

// NewDriver creates an empty in-memory driver.
func NewDriver() *Driver {
	return &Driver{st: newState()}
}

// Atomic runs fn against a clone of the current state and publishes the clone
// only when fn succeeds.
func (d *Driver) Atomic(_ context.Context, fn func(tx storage.Mutator) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	clone := d.st.clone()
	if err := fn(&mutator{st: clone}); err != nil {
		return err
	}
	d.st = clone
	return nil
}

// Close is a no-op.
func (d *Driver) Close() error {
	return nil
}

func (d *Driver) SessionByID(_ context.Context, id int) (*decision.Session, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st.sessionByID(id)
}

func (d *Driver) SessionByExternalID(_ context.Context, externalID string) (*decision.Session, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st.sessionByExternalID(externalID)
}

func (d *Driver) Sessions(_ context.Context) ([]*decision.Session, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st.allSessions(), nil
}

func (d *Driver) NodeByID(_ context.Context, id int) (*decision.Node, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st.nodeByID(id)
}

func (d *Driver) NodeInSession(_ context.Context, sessionID, id int) (*decision.Node, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st.nodeInSession(sessionID, id)
}

func (d *Driver) NodeByExternalRef(_ context.Context, sessionID int, ref string) (*decision.Node, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st.nodeByExternalRef(sessionID, ref)
}

func (d *Driver) LatestQuestionNode(_ context.Context, sessionID int) (*decision.Node, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st.latestQuestionNode(sessionID)
}

func (d *Driver) NodesBySession(_ context.Context, sessionID int) ([]*decision.Node, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st.nodesBySession(sessionID), nil
}

func (d *Driver) EdgesBySession(_ context.Context, sessionID int) ([]*decision.Edge, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st.edgesBySession(sessionID), nil
}

func (d *Driver) ChoicesBySession(_ context.Context, sessionID int) ([]*decision.Choice, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st.choicesBySession(sessionID), nil
}

func (d *Driver) ChoicesByNode(_ context.Context, nodeID int) ([]*decision.Choice, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st.choicesByNode(nodeID), nil
}

func (d *Driver) ChoiceByLabel(_ context.Context, nodeID int, label string) (*decision.Choice, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st.choiceByLabel(nodeID, label)
}

// mutator implements storage.Mutator against a cloned state. Atomic holds the
// driver lock for the whole transaction, so no locking happens here.
type mutator struct {
	st *state
}

func (m *mutator) SessionByID(_ context.Context, id int) (*decision.Session, error) {
	return m.st.sessionByID(id)
}

func (m *mutator) SessionByExternalID(_ context.Context, externalID string) (*decision.Session, error) {
	return m.st.sessionByExternalID(externalID)
}

func (m *mutator) Sessions(_ context.Context) ([]*decision.Session, error) {
	return m.st.allSessions(), nil
}

func (m *mutator) NodeByID(_ context.Context, id int) (*decision.Node, error) {
	return m.st.nodeByID(id)
}

func (m *mutator) NodeInSession(_ context.Context, sessionID, id int) (*decision.Node, error) {
	return m.st.nodeInSession(sessionID, id)
}

func (m *mutator) NodeByExternalRef(_ context.Context, sessionID int, ref string) (*decision.Node, error) {
	return m.st.nodeByExternalRef(sessionID, ref)
}

func (m *mutator) LatestQuestionNode(_ context.Context, sessionID int) (*decision.Node, error) {
	return m.st.latestQuestionNode(sessionID)
}

func (m *mutator) NodesBySession(_ context.Context, sessionID int) ([]*decision.Node, error) {
	return m.st.nodesBySession(sessionID), nil
}

func (m *mutator) EdgesBySession(_ context.Context, sessionID int) ([]*decision.Edge, error) {
	return m.st.edgesBySession(sessionID), nil
}

func (m *mutator) ChoicesBySession(_ context.Context, sessionID int) ([]*decision.Choice, error) {
	return m.st.choicesBySession(sessionID), nil
}

func (m *mutator) ChoicesByNode(_ context.Context, nodeID int) ([]*decision.Choice, error) {
	return m.st.choicesByNode(nodeID), nil
}

func (m *mutator) ChoiceByLabel(_ context.Context, nodeID int, label string) (*decision.Choice, error) {
	return m.st.choiceByLabel(nodeID, label)
}

func (m *mutator) CreateSession(_ context.Context, s *decision.Session) (*decision.Session, error) {
	if s.ExternalID != nil {
		if _, ok := m.st.sessionsByExt[*s.ExternalID]; ok {
			return nil, storage.ConflictError{Entity: "session", Key: *s.ExternalID}
		}
	}

	stored := *s
	stored.ID = m.st.nextSessionID
	m.st.nextSessionID++
	stored.CreatedAt = time.Now()

	m.st.sessions[stored.ID] = &stored
	if stored.ExternalID != nil {
		m.st.sessionsByExt[*stored.ExternalID] = stored.ID
	}
	out := stored
	return &out, nil
}

func (m *mutator) SaveSession(_ context.Context, s *decision.Session) error {
	existing, ok := m.st.sessions[s.ID]
	if !ok {
		return storage.NotFoundError{Entity: "session", Key: strconv.Itoa(s.ID)}
	}
	existing.Name = s.Name
	existing.StartedAt = s.StartedAt
	existing.EndedAt = s.EndedAt
	return nil
}

func (m *mutator) CreateNode(_ context.Context, n *decision.Node) (*decision.Node, error) {
	if n.ExternalRef != nil {
		if _, ok := m.st.nodesByRef[*n.ExternalRef]; ok {
			return nil, storage.ConflictError{Entity: "node", Key: *n.ExternalRef}
		}
	}

	stored := *n
	stored.ID = m.st.nextNodeID
	m.st.nextNodeID++
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	m.st.nodes[stored.ID] = &stored
	if stored.ExternalRef != nil {
		m.st.nodesByRef[*stored.ExternalRef] = stored.ID
	}
	out := stored
	return &out, nil
}

func (m *mutator) SaveNode(_ context.Context, n *decision.Node) error {
	existing, ok := m.st.nodes[n.ID]
	if !ok {
		return storage.NotFoundError{Entity: "node", Key: strconv.Itoa(n.ID)}
	}
	existing.Status = n.Status
	existing.Rationale = n.Rationale
	existing.Owner = n.Owner
	existing.Priority = n.Priority
	existing.UpdatedAt = time.Now()
	return nil
}

func (m *mutator) UpsertChoice(_ context.Context, c *decision.Choice) (*decision.Choice, error) {
	for _, existing := range m.st.choices {
		if existing.NodeID == c.NodeID && existing.Label == c.Label {
			existing.Text = c.Text
			existing.IsChosen = c.IsChosen
			existing.ChosenAt = c.ChosenAt
			out := *existing
			return &out, nil
		}
	}

	stored := *c
	stored.ID = m.st.nextChoiceID
	m.st.nextChoiceID++
	m.st.choices[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *mutator) ClearChosen(_ context.Context, nodeID int) error {
	for _, c := range m.st.choices {
		if c.NodeID == nodeID {
			c.IsChosen = false
			c.ChosenAt = nil
		}
	}
	return nil
}

func (m *mutator) CreateEdge(_ context.Context, e *decision.Edge) (*decision.Edge, error) {
	stored := *e
	stored.ID = m.st.nextEdgeID
	m.st.nextEdgeID++
	stored.CreatedAt = time.Now()
	m.st.edges[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *mutator) AppendEvent(_ context.Context, rec *decision.EventRecord) (*decision.EventRecord, error) {
	stored := *rec
	stored.ID = m.st.nextEventID
	m.st.nextEventID++
	stored.ReceivedAt = time.Now()
	m.st.events[stored.ID] = &stored
	out := stored
	return &out, nil
}

// state is the full store contents. Ids start at 1 and only grow.
type state struct {
	sessions      map[int]*decision.Session
	sessionsByExt map[string]int
	nodes         map[int]*decision.Node
	nodesByRef    map[string]int
	choices       map[int]*decision.Choice
	edges         map[int]*decision.Edge
	events        map[int]*decision.EventRecord

	nextSessionID int
	nextNodeID    int
	nextChoiceID  int
	nextEdgeID    int
	nextEventID   int
}

func newState() *state {
	return &state{
		sessions:      make(map[int]*decision.Session),
		sessionsByExt: make(map[string]int),
		nodes:         make(map[int]*decision.Node),
		nodesByRef:    make(map[string]int),
		choices:       make(map[int]*decision.Choice),
		edges:         make(map[int]*decision.Edge),
		events:        make(map[int]*decision.EventRecord),
		nextSessionID: 1,
		nextNodeID:    1,
		nextChoiceID:  1,
		nextEdgeID:    1,
		nextEventID:   1,
	}
}

func (s *state) clone() *state {
	c := newState()
	c.nextSessionID = s.nextSessionID
	c.nextNodeID = s.nextNodeID
	c.nextChoiceID = s.nextChoiceID
	c.nextEdgeID = s.nextEdgeID
	c.nextEventID = s.nextEventID

	for id, v := range s.sessions {
		cp := *v
		c.sessions[id] = &cp
	}
	for k, v := range s.sessionsByExt {
		c.sessionsByExt[k] = v
	}
	for id, v := range s.nodes {
		cp := *v
		c.nodes[id] = &cp
	}
	for k, v := range s.nodesByRef {
		c.nodesByRef[k] = v
	}
	for id, v := range s.choices {
		cp := *v
		c.choices[id] = &cp
	}
	for id, v := range s.edges {
		cp := *v
		c.edges[id] = &cp
	}
	for id, v := range s.events {
		cp := *v
		c.events[id] = &cp
	}
	return c
}

func (s *state) sessionByID(id int) (*decision.Session, error) {
	v, ok := s.sessions[id]
	if !ok {
		return nil, storage.NotFoundError{Entity: "session", Key: strconv.Itoa(id)}
	}
	out := *v
	return &out, nil
}

func (s *state) sessionByExternalID(externalID string) (*decision.Session, error) {
	id, ok := s.sessionsByExt[externalID]
	if !ok {
		return nil, storage.NotFoundError{Entity: "session", Key: externalID}
	}
	return s.sessionByID(id)
}

func (s *state) allSessions() []*decision.Session {
	out := make([]*decision.Session, 0, len(s.sessions))
	for _, v := range s.sessions {
		cp := *v
		out = append(out, &cp)
	}
	// Newest first, matching the HTTP listing order.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (s *state) nodeByID(id int) (*decision.Node, error) {
	v, ok := s.nodes[id]
	if !ok {
		return nil, storage.NotFoundError{Entity: "node", Key: strconv.Itoa(id)}
	}
	out := *v
	return &out, nil
}

func (s *state) nodeInSession(sessionID, id int) (*decision.Node, error) {
	v, ok := s.nodes[id]
	if !ok || v.SessionID != sessionID {
		return nil, storage.NotFoundError{Entity: "node", Key: strconv.Itoa(id)}
	}
	out := *v
	return &out, nil
}

func (s *state) nodeByExternalRef(sessionID int, ref string) (*decision.Node, error) {
	id, ok := s.nodesByRef[ref]
	if !ok {
		return nil, storage.NotFoundError{Entity: "node", Key: ref}
	}
	return s.nodeInSession(sessionID, id)
}

func (s *state) latestQuestionNode(sessionID int) (*decision.Node, error) {
	var latest *decision.Node
	for _, n := range s.nodes {
		if n.SessionID != sessionID || n.Kind != decision.KindQuestion {
			continue
		}
		if latest == nil || n.ID > latest.ID {
			latest = n
		}
	}
	if latest == nil {
		return nil, storage.NotFoundError{Entity: "node", Key: "latest question"}
	}
	out := *latest
	return &out, nil
}

func (s *state) nodesBySession(sessionID int) []*decision.Node {
	out := make([]*decision.Node, 0)
	for _, n := range s.nodes {
		if n.SessionID == sessionID {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *state) edgesBySession(sessionID int) []*decision.Edge {
	out := make([]*decision.Edge, 0)
	for _, e := range s.edges {
		from, ok := s.nodes[e.FromNodeID]
		if !ok || from.SessionID != sessionID {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *state) choicesBySession(sessionID int) []*decision.Choice {
	out := make([]*decision.Choice, 0)
	for _, c := range s.choices {
		n, ok := s.nodes[c.NodeID]
		if !ok || n.SessionID != sessionID {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *state) choicesByNode(nodeID int) []*decision.Choice {
	out := make([]*decision.Choice, 0)
	for _, c := range s.choices {
		if c.NodeID == nodeID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *state) choiceByLabel(nodeID int, label string) (*decision.Choice, error) {
	for _, c := range s.choices {
		if c.NodeID == nodeID && c.Label == label {
			out := *c
			return &out, nil
		}
	}
	return nil, storage.NotFoundError{Entity: "choice", Key: label}
}
