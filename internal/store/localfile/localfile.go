// Package localfile is the same-device store fallback: each collection lives
// in a JSON file under a well-known storage key (bloom_orders.json, ...) and
// change notifications are synchronous in-process callbacks. It only ever
// syncs views on one machine — a development stand-in, not a deployment
// target; postgres is the canonical backend.
package localfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bloom-cafe/api/internal/store"
)

// Store is a file-backed store.Store implementation.
type Store struct {
	dir string

	mu      sync.Mutex
	records map[store.Collection][]map[string]any
	subs    map[store.Collection]map[int]func()
	nextSub int
}

var _ store.Store = (*Store)(nil)

// New opens (or creates) the data directory and loads any existing
// collection files.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{
		dir:     dir,
		records: make(map[store.Collection][]map[string]any),
		subs:    make(map[store.Collection]map[int]func()),
	}
	for _, c := range store.Collections {
		if err := s.load(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// storageKey names the file for a collection, mirroring the well-known
// browser storage keys the site used as its local fallback.
func (s *Store) storageKey(c store.Collection) string {
	return filepath.Join(s.dir, "bloom_"+string(c)+".json")
}

func (s *Store) load(c store.Collection) error {
	raw, err := os.ReadFile(s.storageKey(c))
	if os.IsNotExist(err) {
		s.records[c] = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", c, err)
	}
	var recs []map[string]any
	if err := json.Unmarshal(raw, &recs); err != nil {
		return fmt.Errorf("decode %s: %w", c, err)
	}
	s.records[c] = recs
	return nil
}

// persist writes the collection file atomically (temp file + rename).
// Caller must hold s.mu.
func (s *Store) persist(c store.Collection) error {
	recs := s.records[c]
	if recs == nil {
		recs = []map[string]any{}
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	tmp := s.storageKey(c) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c, err)
	}
	if err := os.Rename(tmp, s.storageKey(c)); err != nil {
		return fmt.Errorf("replace %s: %w", c, err)
	}
	return nil
}

// Create appends the record and returns its id.
func (s *Store) Create(ctx context.Context, c store.Collection, record any) (string, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	id, err := store.RecordID(raw)
	if err != nil {
		return "", err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("decode record: %w", err)
	}

	s.mu.Lock()
	s.records[c] = append(s.records[c], doc)
	if err := s.persist(c); err != nil {
		// The file is the source of truth: a record that never hit disk
		// must not linger in memory, or List would serve the failed write.
		s.records[c] = s.records[c][:len(s.records[c])-1]
		s.mu.Unlock()
		return "", err
	}
	s.mu.Unlock()

	s.notify(c)
	return id, nil
}

// List fills dest (a pointer to a slice of the caller's record type) with the
// collection sorted by the given field.
func (s *Store) List(ctx context.Context, c store.Collection, orderBy string, ascending bool, dest any) error {
	s.mu.Lock()
	recs := make([]map[string]any, len(s.records[c]))
	copy(recs, s.records[c])
	s.mu.Unlock()

	sort.SliceStable(recs, func(i, j int) bool {
		if ascending {
			return fieldLess(recs[i][orderBy], recs[j][orderBy])
		}
		return fieldLess(recs[j][orderBy], recs[i][orderBy])
	})

	return store.Remarshal(recs, dest)
}

// Update merges fields into the record with the given id.
func (s *Store) Update(ctx context.Context, c store.Collection, id string, fields map[string]any) error {
	s.mu.Lock()
	idx := s.indexOf(c, id)
	if idx < 0 {
		s.mu.Unlock()
		return store.ErrNotFound
	}
	prev := s.records[c][idx]
	merged := make(map[string]any, len(prev)+len(fields))
	for k, v := range prev {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	s.records[c][idx] = merged
	if err := s.persist(c); err != nil {
		s.records[c][idx] = prev
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notify(c)
	return nil
}

// Delete removes the record with the given id.
func (s *Store) Delete(ctx context.Context, c store.Collection, id string) error {
	s.mu.Lock()
	idx := s.indexOf(c, id)
	if idx < 0 {
		s.mu.Unlock()
		return store.ErrNotFound
	}
	prev := s.records[c]
	next := make([]map[string]any, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)
	s.records[c] = next
	if err := s.persist(c); err != nil {
		s.records[c] = prev
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notify(c)
	return nil
}

// DeleteAll empties the collection.
func (s *Store) DeleteAll(ctx context.Context, c store.Collection) error {
	s.mu.Lock()
	prev := s.records[c]
	s.records[c] = nil
	if err := s.persist(c); err != nil {
		s.records[c] = prev
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notify(c)
	return nil
}

// Subscribe registers fn to run after every change to the collection.
// Callbacks fire synchronously on the mutating goroutine — the in-process
// analog of the same-tab storage event.
func (s *Store) Subscribe(c store.Collection, fn func()) *store.Subscription {
	s.mu.Lock()
	if s.subs[c] == nil {
		s.subs[c] = make(map[int]func())
	}
	id := s.nextSub
	s.nextSub++
	s.subs[c][id] = fn
	s.mu.Unlock()

	return store.NewSubscription(func() {
		s.mu.Lock()
		delete(s.subs[c], id)
		s.mu.Unlock()
	})
}

// indexOf finds a record by id. Caller must hold s.mu.
func (s *Store) indexOf(c store.Collection, id string) int {
	for i, rec := range s.records[c] {
		if rid, _ := rec["id"].(string); rid == id {
			return i
		}
	}
	return -1
}

// notify invokes subscribers outside the store lock so callbacks can call
// back into the store without deadlocking.
func (s *Store) notify(c store.Collection) {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs[c]))
	for _, fn := range s.subs[c] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// fieldLess orders the JSON field values List sorts by. RFC 3339 timestamps
// compare as times: their string form trims trailing fractional-second zeros
// (".5Z" vs ".52Z"), so lexicographic order is not chronological within a
// second. Other strings, dates included, compare lexicographically.
func fieldLess(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return false
		}
		if at, err := time.Parse(time.RFC3339Nano, av); err == nil {
			if bt, err := time.Parse(time.RFC3339Nano, bv); err == nil {
				return at.Before(bt)
			}
		}
		return av < bv
	case float64:
		bv, ok := b.(float64)
		return ok && av < bv
	case nil:
		return b != nil
	default:
		return fmt.Sprint(a) < fmt.Sprint(b)
	}
}
