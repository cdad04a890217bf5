package lead

import (
	"context"
	"errors"
	"time"

	leadRepo "scopex/database/repository/lead"
	"scopex/models"
	"scopex/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const remoteWriteTimeout = 10 * time.Second

// Submit records a new lead. The local write is the source of truth for the
// caller: the submission succeeds as soon as the record lands in the cache,
// and the remote create runs in the background with its failure swallowed.
func (s *DefaultLeadRegistry) Submit(ctx context.Context, category models.LeadCategory, record models.LeadRecord) bool {
	logger := utils.GetLogger()

	record.ID = models.LocalIDPrefix + uuid.New().String()
	record.Category = category
	record.SubmittedAt = time.Now().Format(models.SubmittedAtLayout)
	record.Status = models.StatusNew
	record.AdminNotes = ""

	records := s.Cache.LoadCategory(ctx, category)
	records = append(records, record)
	if err := s.Cache.SaveCategory(ctx, category, records); err != nil {
		logger.Error("lead submit: local write failed",
			zap.String("category", string(category)), zap.Error(err))
		return false
	}

	s.notify(record)

	go func(rec models.LeadRecord) {
		bgCtx, cancel := context.WithTimeout(context.Background(), remoteWriteTimeout)
		defer cancel()
		if _, err := s.Remote.Create(bgCtx, category, rec); err != nil {
			if !errors.Is(err, leadRepo.ErrRemoteDisabled) {
				logger.Warn("lead submit: remote write failed, record kept locally",
					zap.String("id", rec.ID), zap.Error(err))
			}
		}
	}(record)

	return true
}

// List reads both stores, merges and deduplicates them, and returns the
// records most recent first. A remote failure degrades the listing to the
// local cache alone.
func (s *DefaultLeadRegistry) List(ctx context.Context) []models.LeadRecord {
	logger := utils.GetLogger()

	var remote, local []models.LeadRecord
	for _, category := range []models.LeadCategory{models.CategoryHospital, models.CategoryCamp} {
		recs, err := s.Remote.ListAll(ctx, category)
		if err != nil {
			if !errors.Is(err, leadRepo.ErrRemoteDisabled) {
				logger.Warn("lead list: remote read failed, using local cache only",
					zap.String("category", string(category)), zap.Error(err))
			}
		} else {
			remote = append(remote, recs...)
		}
		local = append(local, s.Cache.LoadCategory(ctx, category)...)
	}

	return mergeLeads(remote, local)
}

// Update applies a partial patch to whichever store(s) currently hold the
// id. Returns false only when neither store accepted it.
func (s *DefaultLeadRegistry) Update(ctx context.Context, id string, category models.LeadCategory, patch models.LeadPatch) bool {
	logger := utils.GetLogger()

	localFound := false
	records := s.Cache.LoadCategory(ctx, category)
	for i := range records {
		if records[i].ID == id {
			patch.Apply(&records[i])
			localFound = true
			break
		}
	}
	if localFound {
		if err := s.Cache.SaveCategory(ctx, category, records); err != nil {
			logger.Error("lead update: local write failed", zap.String("id", id), zap.Error(err))
			localFound = false
		}
	}

	remoteOK := false
	if !models.IsLocalID(id) {
		if err := s.Remote.Update(ctx, category, id, patch); err != nil {
			if !errors.Is(err, leadRepo.ErrRemoteDisabled) {
				logger.Warn("lead update: remote write failed", zap.String("id", id), zap.Error(err))
			}
		} else {
			remoteOK = true
		}
	}

	return localFound || remoteOK
}

// Delete removes the record from the local cache unconditionally; ids
// confirmed by the remote store are deleted there as well. The result is
// the conjunction of the deletions that were actually attempted.
func (s *DefaultLeadRegistry) Delete(ctx context.Context, id string, category models.LeadCategory) bool {
	logger := utils.GetLogger()

	records := s.Cache.LoadCategory(ctx, category)
	filtered := records[:0]
	for _, r := range records {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	localOK := true
	if err := s.Cache.SaveCategory(ctx, category, filtered); err != nil {
		logger.Error("lead delete: local write failed", zap.String("id", id), zap.Error(err))
		localOK = false
	}

	if models.IsLocalID(id) {
		return localOK
	}

	if err := s.Remote.Delete(ctx, category, id); err != nil {
		if errors.Is(err, leadRepo.ErrRemoteDisabled) {
			// No remote half to delete; the local deletion is the whole story.
			return localOK
		}
		logger.Warn("lead delete: remote delete failed", zap.String("id", id), zap.Error(err))
		return false
	}
	return localOK
}
