package service

import (
	"sync"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

// ChangeFeed is the push half of the persistence collaborator: every
// committed write re-reads the job list and hands the full snapshot to all
// subscribers. Snapshots are full-state replacements, never patches.
type ChangeFeed struct {
	mu     sync.Mutex
	subs   map[int]func([]*domain.Job)
	nextID int
	seq    uint64
}

func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{subs: make(map[int]func([]*domain.Job))}
}

// Subscribe registers a snapshot callback and returns its unsubscribe
// function. The callback runs synchronously on the publishing goroutine.
func (f *ChangeFeed) Subscribe(fn func([]*domain.Job)) (unsubscribe func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
	}
}

// Publish bumps the feed sequence and fans the snapshot out to every
// subscriber. Returns the sequence number assigned to this snapshot.
func (f *ChangeFeed) Publish(jobs []*domain.Job) uint64 {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	fns := make([]func([]*domain.Job), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(jobs)
	}
	return seq
}

// Seq returns the sequence number of the most recent snapshot.
func (f *ChangeFeed) Seq() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seq
}
