// Package overlay holds the fused map view: county boundaries joined with
// polled risk scores and active disasters, plus any optimistic edits the
// user has made that the backend has not confirmed yet.
//
// All state transitions run under one mutex and each produces a complete
// new view slice, so consumers never observe a half-built view.
package overlay

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go-kdms/types"
)

const defaultEditTimeout = 10 * time.Second

// ResolveFunc issues the backend mutation behind an optimistic edit.
type ResolveFunc func(ctx context.Context, disasterID int) error

type Store struct {
	mu sync.Mutex

	geometries    []types.CountyGeometry
	geometryNames []string

	// Latest accepted data per poll stream, guarded by per-stream
	// sequence numbers. Stale sequences are dropped, never applied.
	disasters   []types.Disaster
	risks       []types.CountyRisk
	disasterSeq uint64
	riskSeq     uint64

	views   []types.ResolvedCountyView
	pending map[int]*types.PendingEdit

	editTimeout time.Duration
	closed      bool
	now         func() time.Time

	resolveFn    ResolveFunc
	onChange     func([]types.ResolvedCountyView)
	onEditFailed func(disasterID int, reason string)
}

func NewStore(geometries []types.CountyGeometry, resolveFn ResolveFunc) *Store {
	names := make([]string, len(geometries))
	for i, g := range geometries {
		names[i] = g.Name
	}

	s := &Store{
		geometries:    geometries,
		geometryNames: names,
		pending:       make(map[int]*types.PendingEdit),
		editTimeout:   defaultEditTimeout,
		now:           time.Now,
		resolveFn:     resolveFn,
	}
	s.mu.Lock()
	s.rebuildLocked()
	s.mu.Unlock()
	return s
}

// SetEditTimeout overrides how long an optimistic edit is held before the
// store reverts to the polled truth.
func (s *Store) SetEditTimeout(d time.Duration) {
	s.mu.Lock()
	s.editTimeout = d
	s.mu.Unlock()
}

// SetOnChange registers a callback invoked with the new views after every
// accepted rebuild. Called without the store lock held.
func (s *Store) SetOnChange(fn func([]types.ResolvedCountyView)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// SetOnEditFailed registers a callback for edits that were rejected or timed
// out, so the surface can show a user-visible failure.
func (s *Store) SetOnEditFailed(fn func(disasterID int, reason string)) {
	s.mu.Lock()
	s.onEditFailed = fn
	s.mu.Unlock()
}

// ApplyDisasters installs a disaster poll result. The poll is dropped unless
// seq is the highest seen on the disaster stream, so slow or out-of-order
// responses never overwrite newer data. Accepted polls also reconcile
// pending edits: an edit is confirmed when its disaster left the active
// list, and reverted when it is still listed past the edit timeout.
func (s *Store) ApplyDisasters(disasters []types.Disaster, seq uint64) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if seq <= s.disasterSeq {
		log.Printf("Dropping stale disaster poll (seq %d, have %d)", seq, s.disasterSeq)
		s.mu.Unlock()
		return
	}
	s.disasterSeq = seq
	s.disasters = disasters

	reverted := s.reconcileLocked()
	s.rebuildLocked()
	views, onChange, onEditFailed := s.views, s.onChange, s.onEditFailed
	s.mu.Unlock()

	for _, id := range reverted {
		log.Printf("Optimistic resolve for disaster %d timed out, reverting to polled state", id)
		if onEditFailed != nil {
			onEditFailed(id, "backend did not confirm the resolution in time")
		}
	}
	if onChange != nil {
		onChange(views)
	}
}

// ApplyRisks installs a risk poll result under the risk stream's sequence
// discipline.
func (s *Store) ApplyRisks(risks []types.CountyRisk, seq uint64) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if seq <= s.riskSeq {
		log.Printf("Dropping stale risk poll (seq %d, have %d)", seq, s.riskSeq)
		s.mu.Unlock()
		return
	}
	s.riskSeq = seq
	s.risks = risks

	s.rebuildLocked()
	views, onChange := s.views, s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(views)
	}
}

// SubmitEdit optimistically marks a disaster resolved in the current view
// and issues the backend mutation in the background. The view change is
// visible immediately; a failed or ignored mutation reverts it later.
func (s *Store) SubmitEdit(disasterID int) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("overlay store is closed")
	}
	if !s.hasActiveDisasterLocked(disasterID) {
		s.mu.Unlock()
		return fmt.Errorf("no active disaster with id %d", disasterID)
	}
	if _, exists := s.pending[disasterID]; exists {
		s.mu.Unlock()
		return nil // already submitted, nothing to redo
	}

	s.pending[disasterID] = &types.PendingEdit{
		DisasterID:     disasterID,
		IntendedStatus: types.Resolved,
		State:          types.EditSubmitted,
		SubmittedAt:    s.now(),
	}
	s.rebuildLocked()
	views, onChange, timeout := s.views, s.onChange, s.editTimeout
	s.mu.Unlock()

	if onChange != nil {
		onChange(views)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := s.resolveFn(ctx, disasterID); err != nil {
			s.revertEdit(disasterID, err)
		}
	}()
	return nil
}

// Views returns the current fused view set. The slice is replaced wholesale
// on every rebuild and must not be mutated by callers.
func (s *Store) Views() []types.ResolvedCountyView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.views
}

// PendingEditCount reports how many optimistic edits await confirmation.
func (s *Store) PendingEditCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Sequences returns the highest accepted sequence number per stream.
func (s *Store) Sequences() (disasterSeq, riskSeq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disasterSeq, s.riskSeq
}

// Close marks the store dead. Poll results that resolve after teardown are
// ignored instead of mutating a destroyed view.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *Store) revertEdit(disasterID int, cause error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	edit, exists := s.pending[disasterID]
	if !exists {
		s.mu.Unlock()
		return
	}
	edit.State = types.EditReverted
	delete(s.pending, disasterID)
	s.rebuildLocked()
	views, onChange, onEditFailed := s.views, s.onChange, s.onEditFailed
	s.mu.Unlock()

	log.Printf("Resolve request for disaster %d failed, reverting: %v", disasterID, cause)
	if onEditFailed != nil {
		onEditFailed(disasterID, cause.Error())
	}
	if onChange != nil {
		onChange(views)
	}
}

func (s *Store) hasActiveDisasterLocked(disasterID int) bool {
	for _, d := range s.disasters {
		if d.ID == disasterID && d.Status == types.Active {
			return true
		}
	}
	return false
}

// reconcileLocked walks pending edits against the freshly installed
// disaster list and returns the ids of edits that timed out.
func (s *Store) reconcileLocked() []int {
	var reverted []int
	for id, edit := range s.pending {
		if s.hasActiveDisasterLocked(id) {
			// Backend still lists it as active. Hold the edit until the
			// timeout, then fall back to the polled truth.
			if s.now().Sub(edit.SubmittedAt) > s.editTimeout {
				edit.State = types.EditReverted
				delete(s.pending, id)
				reverted = append(reverted, id)
			}
			continue
		}
		// Omitted from the active list: the backend confirmed the
		// resolution.
		edit.State = types.EditConfirmed
		delete(s.pending, id)
	}
	return reverted
}
