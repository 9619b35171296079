package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/suugaanle/qaamuus/internal/domain/entity"
	repo "github.com/suugaanle/qaamuus/internal/domain/repository"
)

var ErrContributionNotFound = errors.New("contribution not found")

// ContributionService owns user-submitted suggestions and their moderation
// lifecycle. UpdateStatus is an unconditional overwrite: the store keeps no
// transition guard, and any gating lives in the caller.
type ContributionService struct {
	Store  repo.DocumentStore
	Logger *logrus.Logger
	mu     sync.Mutex
}

func NewContributionService(store repo.DocumentStore, logger *logrus.Logger) *ContributionService {
	return &ContributionService{Store: store, Logger: logger}
}

// NewContribution carries the caller-supplied fields of a submission.
type NewContribution struct {
	Type        entity.ContributionType
	Title       string
	Content     string
	Categories  []string
	ContactInfo string
	SubmittedBy string
}

// Submit appends a new pending contribution with a fresh id and timestamp.
func (s *ContributionService) Submit(ctx context.Context, in NewContribution) (entity.Contribution, error) {
	c := entity.Contribution{
		ID:          uuid.NewString(),
		Type:        in.Type,
		Title:       in.Title,
		Content:     in.Content,
		Categories:  in.Categories,
		ContactInfo: in.ContactInfo,
		SubmittedAt: time.Now().UTC(),
		Status:      entity.StatusPending,
		SubmittedBy: in.SubmittedBy,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	contributions := loadCollection[entity.Contribution](ctx, s.Store, keyContributions, s.Logger)
	contributions = append(contributions, c)
	if err := saveCollection(ctx, s.Store, keyContributions, contributions, s.Logger); err != nil {
		return entity.Contribution{}, err
	}
	if s.Logger != nil {
		s.Logger.WithField("title", c.Title).Info("contribution submitted")
	}
	return c, nil
}

// ListAll returns every contribution in submission order.
func (s *ContributionService) ListAll(ctx context.Context) []entity.Contribution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadCollection[entity.Contribution](ctx, s.Store, keyContributions, s.Logger)
}

// ListByStatus filters contributions by moderation status.
func (s *ContributionService) ListByStatus(ctx context.Context, status entity.ContributionStatus) []entity.Contribution {
	all := s.ListAll(ctx)
	out := make([]entity.Contribution, 0, len(all))
	for _, c := range all {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

// UpdateStatus overwrites the status of the matching record.
func (s *ContributionService) UpdateStatus(ctx context.Context, id string, status entity.ContributionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contributions := loadCollection[entity.Contribution](ctx, s.Store, keyContributions, s.Logger)
	found := false
	for i := range contributions {
		if contributions[i].ID == id {
			contributions[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return ErrContributionNotFound
	}
	return saveCollection(ctx, s.Store, keyContributions, contributions, s.Logger)
}

// Delete removes one contribution by id.
func (s *ContributionService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contributions := loadCollection[entity.Contribution](ctx, s.Store, keyContributions, s.Logger)
	kept := contributions[:0:0]
	for _, c := range contributions {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(contributions) {
		return ErrContributionNotFound
	}
	return saveCollection(ctx, s.Store, keyContributions, kept, s.Logger)
}

// Stats recomputes the moderation counts from the full collection. O(n) per
// call; no incremental counters are maintained.
func (s *ContributionService) Stats(ctx context.Context) entity.ContributionStats {
	var stats entity.ContributionStats
	for _, c := range s.ListAll(ctx) {
		stats.Total++
		switch c.Status {
		case entity.StatusPending:
			stats.Pending++
		case entity.StatusApproved:
			stats.Approved++
		case entity.StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}
