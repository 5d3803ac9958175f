// Package postgres is the canonical store backend: one JSONB document table
// per collection, with change notification over LISTEN/NOTIFY so every
// connected process (and with it every staff view) hears about mutations
// made by any other.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bloom-cafe/api/internal/store"
)

// notifyChannel carries the mutated collection name as its payload.
const notifyChannel = "bloom_changes"

// reconnectDelay spaces out listener reconnect attempts after a failure.
const reconnectDelay = time.Second

// tables maps collections to their table names. Collections are the only
// identifiers ever interpolated into SQL, and only through this map.
var tables = map[store.Collection]string{
	store.Orders:          "orders",
	store.Reservations:    "reservations",
	store.ContactMessages: "contact_messages",
}

// Store is a pgx-backed store.Store implementation.
type Store struct {
	pool   *pgxpool.Pool
	cancel context.CancelFunc

	mu      sync.Mutex
	subs    map[store.Collection]map[int]func()
	nextSub int
}

var _ store.Store = (*Store)(nil)

// New connects, ensures the schema exists, and starts the notification
// listener. Call Close when done.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	s := &Store{
		pool: pool,
		subs: make(map[store.Collection]map[int]func()),
	}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	listenCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.listen(listenCtx)

	return s, nil
}

// Close stops the listener and releases the pool.
func (s *Store) Close() {
	s.cancel()
	s.pool.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	for _, table := range tables {
		ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, table)
		if _, err := s.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("ensure table %s: %w", table, err)
		}
	}
	return nil
}

func tableFor(c store.Collection) (string, error) {
	table, ok := tables[c]
	if !ok {
		return "", fmt.Errorf("unknown collection %q", c)
	}
	return table, nil
}

// orderExpr builds the ORDER BY expression for a payload field ($1 is the
// field name). Timestamps must be compared as timestamps: their JSON string
// form trims trailing fractional-second zeros, so text order is not
// chronological within a second.
func orderExpr(orderBy string) string {
	if orderBy == "created_at" {
		return "(payload->>$1)::timestamptz"
	}
	return "payload->>$1"
}

// Create inserts the record and returns its id.
func (s *Store) Create(ctx context.Context, c store.Collection, record any) (string, error) {
	table, err := tableFor(c)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	id, err := store.RecordID(raw)
	if err != nil {
		return "", err
	}

	sql := fmt.Sprintf("INSERT INTO %s (id, payload) VALUES ($1, $2::jsonb)", table)
	if _, err := s.pool.Exec(ctx, sql, id, raw); err != nil {
		return "", fmt.Errorf("insert into %s: %w", table, err)
	}

	s.announce(ctx, c)
	return id, nil
}

// List fills dest with the collection ordered by a payload field.
func (s *Store) List(ctx context.Context, c store.Collection, orderBy string, ascending bool, dest any) error {
	table, err := tableFor(c)
	if err != nil {
		return err
	}
	dir := "DESC"
	if ascending {
		dir = "ASC"
	}
	sql := fmt.Sprintf("SELECT payload FROM %s ORDER BY %s %s", table, orderExpr(orderBy), dir)

	rows, err := s.pool.Query(ctx, sql, orderBy)
	if err != nil {
		return fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var payloads []json.RawMessage
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		payloads = append(payloads, json.RawMessage(raw))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list %s: %w", table, err)
	}

	return store.Remarshal(payloads, dest)
}

// Update merges fields into the stored document. The merge is a single
// UPDATE by id, so per-record atomicity comes from postgres itself.
func (s *Store) Update(ctx context.Context, c store.Collection, id string, fields map[string]any) error {
	table, err := tableFor(c)
	if err != nil {
		return err
	}
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}

	sql := fmt.Sprintf("UPDATE %s SET payload = payload || $2::jsonb WHERE id = $1", table)
	tag, err := s.pool.Exec(ctx, sql, id, patch)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	s.announce(ctx, c)
	return nil
}

// Delete removes the record with the given id.
func (s *Store) Delete(ctx context.Context, c store.Collection, id string) error {
	table, err := tableFor(c)
	if err != nil {
		return err
	}
	sql := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	tag, err := s.pool.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	s.announce(ctx, c)
	return nil
}

// DeleteAll empties the collection.
func (s *Store) DeleteAll(ctx context.Context, c store.Collection) error {
	table, err := tableFor(c)
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}

	s.announce(ctx, c)
	return nil
}

// Subscribe registers fn to run after any change to the collection, whether
// the mutation came from this process or another one sharing the database.
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

// announce publishes the mutation on the notify channel. Our own listener
// hears it too, which is how local subscribers get their callback; a lost
// notification only delays convergence until the next reload.
func (s *Store) announce(ctx context.Context, c store.Collection) {
	if _, err := s.pool.Exec(ctx, "SELECT pg_notify($1, $2)", notifyChannel, string(c)); err != nil {
		log.Printf("ERROR: notify %s change: %v", c, err)
	}
}

// listen holds a dedicated connection on LISTEN and dispatches payloads to
// subscribers, reconnecting on failure until ctx is cancelled.
func (s *Store) listen(ctx context.Context) {
	for {
		if err := s.waitForNotifications(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("ERROR: store change listener: %v", err)
			select {
			case <-time.After(reconnectDelay):
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *Store) waitForNotifications(ctx context.Context) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listener conn: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		s.dispatch(store.Collection(n.Payload))
	}
}

func (s *Store) dispatch(c store.Collection) {
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
