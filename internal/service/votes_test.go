package service

import (
	"context"
	"testing"

	"CryptoAdvisor/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteUpsertKeepsSingleRecord(t *testing.T) {
	svc := NewVoteService(newTestStore(t))
	ctx := context.Background()

	first, err := svc.Upsert(ctx, "user-1", VoteInput{Type: "news", ItemID: "n1", Value: 1.0})
	require.NoError(t, err)
	second, err := svc.Upsert(ctx, "user-1", VoteInput{Type: "news", ItemID: "n1", Value: "-1"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, -1, second.Value)

	votes, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, -1, votes[0].Value)
}

func TestVoteNumericItemID(t *testing.T) {
	svc := NewVoteService(newTestStore(t))

	vote, err := svc.Upsert(context.Background(), "user-1", VoteInput{Type: "price", ItemID: 42.0, Value: 1.0})
	require.NoError(t, err)
	assert.Equal(t, "42", vote.ItemID)
}

func TestVoteRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   VoteInput
	}{
		{"zero value", VoteInput{Type: "news", ItemID: "n1", Value: 0.0}},
		{"two", VoteInput{Type: "news", ItemID: "n1", Value: 2.0}},
		{"non numeric string", VoteInput{Type: "news", ItemID: "n1", Value: "up"}},
		{"missing value", VoteInput{Type: "news", ItemID: "n1"}},
		{"boolean value", VoteInput{Type: "news", ItemID: "n1", Value: true}},
		{"unknown type", VoteInput{Type: "tweet", ItemID: "n1", Value: 1.0}},
		{"missing type", VoteInput{ItemID: "n1", Value: 1.0}},
		{"empty item id", VoteInput{Type: "meme", ItemID: "", Value: 1.0}},
		{"zero item id", VoteInput{Type: "meme", ItemID: 0.0, Value: 1.0}},
		{"object item id", VoteInput{Type: "meme", ItemID: map[string]any{}, Value: 1.0}},
	}

	svc := NewVoteService(newTestStore(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upsert(context.Background(), "user-1", tt.in)
			require.Error(t, err)
			assert.Equal(t, 400, apperr.HTTPStatus(err))
			assert.Equal(t, "Invalid vote", apperr.PublicMessage(err, ""))
		})
	}

	votes, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, votes)
}

func TestVoteListScopedToUser(t *testing.T) {
	svc := NewVoteService(newTestStore(t))
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "user-1", VoteInput{Type: "insight", ItemID: "insight-2026-01-01", Value: 1.0})
	require.NoError(t, err)

	votes, err := svc.List(ctx, "user-2")
	require.NoError(t, err)
	assert.NotNil(t, votes)
	assert.Empty(t, votes)
}
