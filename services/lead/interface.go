package lead

import (
	"context"
	"sync"

	leadRepo "scopex/database/repository/lead"
	"scopex/models"
)

// LeadRegistry combines the local cache and the optional remote store into
// one logical CRUD surface for leads.
type LeadRegistry interface {
	Submit(ctx context.Context, category models.LeadCategory, record models.LeadRecord) bool
	List(ctx context.Context) []models.LeadRecord
	Update(ctx context.Context, id string, category models.LeadCategory, patch models.LeadPatch) bool
	Delete(ctx context.Context, id string, category models.LeadCategory) bool
	Subscribe(fn func(models.LeadRecord))
}

// DefaultLeadRegistry is the production implementation.
type DefaultLeadRegistry struct {
	Cache  *LocalLeadCache
	Remote leadRepo.RemoteLeadRepository

	mu          sync.Mutex
	subscribers []func(models.LeadRecord)
}

// Subscribe registers a callback invoked once per successful local submit,
// carrying the full record.
func (s *DefaultLeadRegistry) Subscribe(fn func(models.LeadRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *DefaultLeadRegistry) notify(record models.LeadRecord) {
	s.mu.Lock()
	subs := make([]func(models.LeadRecord), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(record)
	}
}
