package service

import (
	"context"

	"CryptoAdvisor/internal/apperr"
	"CryptoAdvisor/internal/metrics"
	"CryptoAdvisor/internal/models"
)

type VoteStore interface {
	UpsertVote(ctx context.Context, userID, itemType, itemID string, value int) (models.Vote, error)
	ListVotes(ctx context.Context, userID string) ([]models.Vote, error)
}

type VoteInput struct {
	Type   any `json:"type"`
	ItemID any `json:"itemId"`
	Value  any `json:"value"`
}

type VoteService struct {
	store VoteStore
}

func NewVoteService(store VoteStore) *VoteService {
	return &VoteService{store: store}
}

var errInvalidVote = apperr.Validation("Invalid vote")

// 투표 저장, 같은 항목이면 값 교체
func (s *VoteService) Upsert(ctx context.Context, userID string, in VoteInput) (models.Vote, error) {
	itemType := stringify(in.Type)
	if !models.IsVoteType(itemType) {
		return models.Vote{}, errInvalidVote
	}
	id, ok := itemID(in.ItemID)
	if !ok {
		return models.Vote{}, errInvalidVote
	}
	value, ok := voteValue(in.Value)
	if !ok {
		return models.Vote{}, errInvalidVote
	}

	vote, err := s.store.UpsertVote(ctx, userID, itemType, id, value)
	if err != nil {
		return models.Vote{}, apperr.Internal("Failed to save vote", err)
	}
	metrics.RecordVote(itemType, value)
	return vote, nil
}

// 내 투표 목록, 최신순
func (s *VoteService) List(ctx context.Context, userID string) ([]models.Vote, error) {
	votes, err := s.store.ListVotes(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch votes", err)
	}
	return votes, nil
}
