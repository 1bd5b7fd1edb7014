package session

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/recipe-service/internal/metrics"
)

// Stats provides session store counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// Store keeps live sessions keyed by client id. It distributes entries across
// shards to reduce lock contention; each shard is an LRU list with idle TTL.
type Store struct {
	shards    []*shard
	shardMask uint32
	stopOnce  sync.Once
}

// NewStore creates a store holding at most capacity sessions that expire
// after ttl without access. numShards is rounded up to a power of two.
func NewStore(capacity int, ttl time.Duration, numShards int) *Store {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}
	numShards = n

	perShard := capacity / numShards
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*shard, numShards)
	for i := range shards {
		shards[i] = newShard(perShard, ttl)
	}

	s := &Store{
		shards:    shards,
		shardMask: uint32(numShards - 1),
	}
	s.publish()
	return s
}

func (s *Store) shardFor(clientID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clientID))
	return s.shards[h.Sum32()&s.shardMask]
}

// Get returns the live session for clientID and refreshes its TTL.
func (s *Store) Get(clientID string) (*Session, bool) {
	sess, ok := s.shardFor(clientID).get(clientID)
	if ok {
		metrics.RecordSessionOperation("get", "hit")
	} else {
		metrics.RecordSessionOperation("get", "miss")
	}
	return sess, ok
}

// Put stores sess, evicting the least recently used session of its shard
// when the shard is full.
func (s *Store) Put(sess *Session) {
	if s.shardFor(sess.ClientID()).put(sess.ClientID(), sess) {
		metrics.RecordSessionOperation("evict", "capacity")
	}
	metrics.RecordSessionOperation("put", "success")
	s.publish()
}

// Delete removes the session for clientID.
func (s *Store) Delete(clientID string) {
	if s.shardFor(clientID).delete(clientID) {
		metrics.RecordSessionOperation("delete", "success")
	}
	s.publish()
}

// Len returns the number of stored sessions, expired ones included until swept.
func (s *Store) Len() int {
	total := 0
	for _, sh := range s.shards {
		total += sh.len()
	}
	return total
}

// Stats returns aggregated counters from all shards.
func (s *Store) Stats() Stats {
	var total Stats
	for _, sh := range s.shards {
		st := sh.stats()
		total.Hits += st.Hits
		total.Misses += st.Misses
		total.Evictions += st.Evictions
		total.Size += st.Size
		total.Capacity += st.Capacity
	}
	return total
}

// Stop shuts down the background sweepers. It is safe to call more than once.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		for _, sh := range s.shards {
			sh.stop()
		}
	})
}

func (s *Store) publish() {
	st := s.Stats()
	metrics.UpdateSessionMetrics(st.Size, st.Capacity)
}

// shard is a thread-safe LRU list with TTL expiration.
type shard struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*entry
	head      *entry
	tail      *entry
	stopCh    chan struct{}
	doneCh    chan struct{}
	hits      int64
	misses    int64
	evictions int64
}

type entry struct {
	key       string
	value     *Session
	expiresAt time.Time
	prev      *entry
	next      *entry
}

func newShard(capacity int, ttl time.Duration) *shard {
	sh := &shard{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*entry, capacity),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go sh.sweep(sweepInterval(ttl))
	return sh
}

// sweepInterval runs the sweeper often enough for short test TTLs without
// waking every shard constantly in production.
func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 2
	switch {
	case interval < 10*time.Millisecond:
		return 10 * time.Millisecond
	case interval > time.Minute:
		return time.Minute
	}
	return interval
}

func (sh *shard) stop() {
	close(sh.stopCh)
	<-sh.doneCh
}

func (sh *shard) get(key string) (*Session, bool) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e, ok := sh.items[key]
	if !ok {
		atomic.AddInt64(&sh.misses, 1)
		return nil, false
	}
	now := time.Now()
	if now.After(e.expiresAt) {
		sh.removeEntry(e)
		atomic.AddInt64(&sh.misses, 1)
		return nil, false
	}

	e.expiresAt = now.Add(sh.ttl)
	sh.moveToFront(e)
	atomic.AddInt64(&sh.hits, 1)
	return e.value, true
}

// put reports whether an entry was evicted to make room.
func (sh *shard) put(key string, value *Session) bool {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	expiresAt := time.Now().Add(sh.ttl)
	if e, ok := sh.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		sh.moveToFront(e)
		return false
	}

	e := &entry{key: key, value: value, expiresAt: expiresAt}
	sh.items[key] = e
	sh.addToFront(e)

	if len(sh.items) > sh.capacity {
		sh.removeEntry(sh.tail)
		atomic.AddInt64(&sh.evictions, 1)
		return true
	}
	return false
}

func (sh *shard) delete(key string) bool {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e, ok := sh.items[key]
	if ok {
		sh.removeEntry(e)
	}
	return ok
}

func (sh *shard) len() int {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return len(sh.items)
}

func (sh *shard) stats() Stats {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return Stats{
		Hits:      atomic.LoadInt64(&sh.hits),
		Misses:    atomic.LoadInt64(&sh.misses),
		Evictions: atomic.LoadInt64(&sh.evictions),
		Size:      len(sh.items),
		Capacity:  sh.capacity,
	}
}

func (sh *shard) sweep(interval time.Duration) {
	defer close(sh.doneCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sh.removeExpired()
		case <-sh.stopCh:
			return
		}
	}
}

func (sh *shard) removeExpired() {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	now := time.Now()
	for _, e := range sh.items {
		if now.After(e.expiresAt) {
			sh.removeEntry(e)
		}
	}
}

func (sh *shard) removeEntry(e *entry) {
	delete(sh.items, e.key)
	sh.unlink(e)
}

func (sh *shard) moveToFront(e *entry) {
	if e == sh.head {
		return
	}
	sh.unlink(e)
	sh.addToFront(e)
}

func (sh *shard) addToFront(e *entry) {
	e.prev = nil
	e.next = sh.head
	if sh.head != nil {
		sh.head.prev = e
	}
	sh.head = e
	if sh.tail == nil {
		sh.tail = e
	}
}

func (sh *shard) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		sh.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		sh.tail = e.prev
	}
	e.prev, e.next = nil, nil
}
