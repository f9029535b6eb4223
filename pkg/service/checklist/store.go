package checklist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
)

// Store persists per-service document checklists as JSON files under a state
// directory, so checked items survive restarts even without a signed-in
// member. Malformed files degrade to an empty checklist.
type Store struct {
	dir string

	mu        sync.Mutex
	listeners map[int]func(types.ServiceID)
	nextID    int
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create checklist directory", goerr.V("dir", dir))
	}
	return &Store{
		dir:       dir,
		listeners: map[int]func(types.ServiceID){},
	}, nil
}

// Subscribe registers a listener invoked with the service id after every
// checklist change. The returned function removes the listener.
func (s *Store) Subscribe(fn func(types.ServiceID)) func() {
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

// Load returns the checked document ids for a service. A missing or
// unreadable file yields an empty list.
func (s *Store) Load(serviceID types.ServiceID) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(serviceID)
}

// Toggle flips one document id and persists the result, returning the new
// checklist.
func (s *Store) Toggle(serviceID types.ServiceID, docID string) ([]string, error) {
	s.mu.Lock()

	items := s.read(serviceID)
	out := make([]string, 0, len(items)+1)
	removed := false
	for _, v := range items {
		if v == docID {
			removed = true
			continue
		}
		out = append(out, v)
	}
	if !removed {
		out = append(out, docID)
	}

	if err := s.write(serviceID, out); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(serviceID)
	}
	return out, nil
}

// Clear removes the stored checklist for a service.
func (s *Store) Clear(serviceID types.ServiceID) error {
	s.mu.Lock()

	if err := os.Remove(s.path(serviceID)); err != nil && !os.IsNotExist(err) {
		s.mu.Unlock()
		return goerr.Wrap(err, "failed to clear checklist", goerr.V("serviceID", serviceID))
	}
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(serviceID)
	}
	return nil
}

// IsComplete reports whether every required document id is checked.
func (s *Store) IsComplete(serviceID types.ServiceID, required []string) bool {
	items := s.Load(serviceID)
	have := make(map[string]bool, len(items))
	for _, id := range items {
		have[id] = true
	}
	for _, id := range required {
		if !have[id] {
			return false
		}
	}
	return true
}

func (s *Store) read(serviceID types.ServiceID) []string {
	data, err := os.ReadFile(s.path(serviceID))
	if err != nil {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return []string{}
	}
	return items
}

func (s *Store) write(serviceID types.ServiceID, items []string) error {
	data, err := json.Marshal(items)
	if err != nil {
		return goerr.Wrap(err, "failed to encode checklist", goerr.V("serviceID", serviceID))
	}
	if err := os.WriteFile(s.path(serviceID), data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write checklist", goerr.V("serviceID", serviceID))
	}
	return nil
}

func (s *Store) path(serviceID types.ServiceID) string {
	return filepath.Join(s.dir, "document-checklist-"+serviceID.String()+".json")
}

func (s *Store) snapshotListeners() []func(types.ServiceID) {
	listeners := make([]func(types.ServiceID), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	return listeners
}
