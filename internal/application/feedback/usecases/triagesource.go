package usecases

import (
	"context"

	"vox/internal/domain/feedback"
	"vox/internal/domain/feedback/triage"
	vo "vox/internal/domain/feedback/valueobjects"
)

// repoCandidateSource adapts the feedback repository to the
// deduplicator's read interface.
type repoCandidateSource struct {
	repo feedback.Repository
}

// NewCandidateSource wraps a feedback repository for use by the
// deduplicator.
func NewCandidateSource(repo feedback.Repository) triage.CandidateSource {
	return &repoCandidateSource{repo: repo}
}

func (s *repoCandidateSource) RecentCandidates(ctx context.Context, feedbackType, category string, limit int) ([]triage.Candidate, error) {
	ft, err := vo.NewFeedbackType(feedbackType)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListRecent(ctx, ft, category, limit)
	if err != nil {
		return nil, err
	}

	candidates := make([]triage.Candidate, 0, len(items))
	for _, item := range items {
		candidates = append(candidates, triage.Candidate{
			ID:              item.ID(),
			Subject:         item.Subject(),
			Description:     item.Description(),
			SimilarityGroup: item.SimilarityGroup(),
		})
	}
	return candidates, nil
}

func (s *repoCandidateSource) CountGroup(ctx context.Context, group string) (int64, error) {
	return s.repo.CountSimilarityGroup(ctx, group)
}
