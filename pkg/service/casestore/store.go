package casestore

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cloudbridge-lab/minwon/pkg/domain/interfaces"
	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/utils/logging"
)

// ErrSignInRequired is returned by mutations attempted without a signed-in
// member. Callers check it before any network round trip happens.
var ErrSignInRequired = goerr.New("sign-in required")

// MetadataSource resolves the display title and summary for a service id.
type MetadataSource interface {
	CaseMetadata(serviceID types.ServiceID) (title, summary string)
}

// Store is the process-wide cache of the signed-in member's cases. It keeps
// the backend authoritative: every mutation goes through the backend first,
// and the cache is reconciled from the response. Listeners are notified
// after each cache change.
type Store struct {
	backend interfaces.Backend
	meta    MetadataSource
	now     func() time.Time

	mu        sync.Mutex
	cases     []*model.CaseEntry
	listeners map[int]func()
	nextID    int
}

func New(backend interfaces.Backend, meta MetadataSource) *Store {
	return &Store{
		backend:   backend,
		meta:      meta,
		now:       time.Now,
		cases:     []*model.CaseEntry{},
		listeners: map[int]func(){},
	}
}

// Subscribe registers a listener invoked after every cache change. The
// returned function removes the listener.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Load returns the current snapshot. Repeated calls without an intervening
// change return the same slice, so callers can compare by reference.
func (s *Store) Load() []*model.CaseEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cases
}

// Reset clears the cache, typically on sign-out.
func (s *Store) Reset() {
	s.replace([]*model.CaseEntry{})
}

// Refresh reloads the member's cases from the backend. An empty member id
// clears the cache and returns an empty snapshot without touching the
// backend.
func (s *Store) Refresh(ctx context.Context, memberID types.MemberID) ([]*model.CaseEntry, error) {
	if memberID == "" {
		s.Reset()
		return s.Load(), nil
	}

	records, err := s.backend.ListCases(ctx, memberID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list cases", goerr.V("memberID", memberID))
	}

	entries := make([]*model.CaseEntry, len(records))
	for i := range records {
		entries[i] = s.entryFromRecord(&records[i], "", "")
	}
	s.replace(entries)
	return s.Load(), nil
}

// UpdateInput describes one case mutation. Title and Summary override the
// metadata source when set; a zero Status or nil Checklist leaves that field
// untouched on the backend.
type UpdateInput struct {
	MemberID  types.MemberID
	ServiceID types.ServiceID
	Status    types.CaseStatus
	Checklist []string
	Title     string
	Summary   string
}

// UpdateProgress sends a create-or-update to the backend and reconciles the
// cache from the returned record.
func (s *Store) UpdateProgress(ctx context.Context, input UpdateInput) (*model.CaseEntry, error) {
	if input.MemberID == "" {
		return nil, goerr.Wrap(ErrSignInRequired, "case update needs a member",
			goerr.V("serviceID", input.ServiceID))
	}

	record, err := s.backend.UpsertCase(ctx, input.MemberID, interfaces.CaseUpsert{
		ServiceID: input.ServiceID,
		Status:    input.Status,
		Checklist: input.Checklist,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upsert case",
			goerr.V("memberID", input.MemberID), goerr.V("serviceID", input.ServiceID))
	}

	entry := s.entryFromRecord(record, input.Title, input.Summary)
	s.reconcile(entry)
	return entry, nil
}

// StartCase marks a service as in progress for the member.
func (s *Store) StartCase(ctx context.Context, memberID types.MemberID, serviceID types.ServiceID) (*model.CaseEntry, error) {
	return s.UpdateProgress(ctx, UpdateInput{
		MemberID:  memberID,
		ServiceID: serviceID,
		Status:    types.CaseStatusInProgress,
	})
}

// StartPetitionCase starts a case carrying the petition's own title and
// summary instead of the curated metadata.
func (s *Store) StartPetitionCase(ctx context.Context, memberID types.MemberID, petition *model.CivilPetition) (*model.CaseEntry, error) {
	input := UpdateInput{
		MemberID: memberID,
		Status:   types.CaseStatusInProgress,
	}
	if petition != nil {
		input.ServiceID = types.ServiceID(petition.InfoID)
		input.Title = petition.Name
		input.Summary = petition.Summary
	}
	return s.UpdateProgress(ctx, input)
}

// Complete marks the member's case for a service as completed.
func (s *Store) Complete(ctx context.Context, memberID types.MemberID, serviceID types.ServiceID) (*model.CaseEntry, error) {
	return s.UpdateProgress(ctx, UpdateInput{
		MemberID:  memberID,
		ServiceID: serviceID,
		Status:    types.CaseStatusCompleted,
	})
}

// ToggleDocument flips one checklist item and persists the result. When the
// toggled checklist covers every required document and the case is still in
// progress, the case is completed in the same call.
func (s *Store) ToggleDocument(ctx context.Context, memberID types.MemberID, serviceID types.ServiceID, docID string, requiredDocs []string) (*model.CaseEntry, error) {
	if memberID == "" {
		return nil, goerr.Wrap(ErrSignInRequired, "checklist toggle needs a member",
			goerr.V("serviceID", serviceID))
	}

	current := []string{}
	if entry := s.CaseByServiceID(serviceID); entry != nil {
		current = entry.Checklist
	}
	toggled := toggleItem(current, docID)

	input := UpdateInput{
		MemberID:  memberID,
		ServiceID: serviceID,
		Checklist: toggled,
	}
	if coversAll(toggled, requiredDocs) {
		if entry := s.CaseByServiceID(serviceID); entry == nil || entry.Status == types.CaseStatusInProgress {
			input.Status = types.CaseStatusCompleted
		}
	}
	return s.UpdateProgress(ctx, input)
}

// CaseByServiceID returns the cached case for a service, or nil.
func (s *Store) CaseByServiceID(serviceID types.ServiceID) *model.CaseEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.cases {
		if entry.ServiceID == serviceID {
			return entry
		}
	}
	return nil
}

func (s *Store) entryFromRecord(record *model.CaseRecord, title, summary string) *model.CaseEntry {
	serviceID := types.ServiceID(record.CPInfoID)
	if title == "" {
		title, summary = s.meta.CaseMetadata(serviceID)
	}

	entry := &model.CaseEntry{
		CaseID:    types.CaseID(record.CaseID),
		MemberID:  types.MemberID(record.MemberID),
		ServiceID: serviceID,
		Title:     title,
		Summary:   summary,
		Status:    types.CaseStatus(record.Status).Normalize(),
		Checklist: model.ParseChecklist(record.Checklist),
	}

	entry.StartedAt = s.parseTime(record.StartedAt)
	if record.CompletedAt != "" {
		if t, err := time.Parse(time.RFC3339, record.CompletedAt); err == nil {
			entry.CompletedAt = t
		}
	}
	return entry
}

func (s *Store) parseTime(raw string) time.Time {
	if raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
		logging.Default().Warn("unparseable case timestamp", "value", raw)
	}
	return s.now()
}

// reconcile replaces the cached entry with the same case id, or appends when
// none exists. The slice is copied so earlier snapshots stay stable.
func (s *Store) reconcile(entry *model.CaseEntry) {
	s.mu.Lock()
	next := make([]*model.CaseEntry, len(s.cases))
	copy(next, s.cases)

	replaced := false
	for i, existing := range next {
		if existing.CaseID == entry.CaseID {
			next[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, entry)
	}
	s.cases = next
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (s *Store) replace(entries []*model.CaseEntry) {
	s.mu.Lock()
	s.cases = entries
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (s *Store) snapshotListeners() []func() {
	listeners := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	return listeners
}

func toggleItem(items []string, item string) []string {
	out := make([]string, 0, len(items)+1)
	removed := false
	for _, v := range items {
		if v == item {
			removed = true
			continue
		}
		out = append(out, v)
	}
	if !removed {
		out = append(out, item)
	}
	return out
}

func coversAll(checklist, required []string) bool {
	have := make(map[string]bool, len(checklist))
	for _, id := range checklist {
		have[id] = true
	}
	for _, id := range required {
		if !have[id] {
			return false
		}
	}
	return true
}
