package models

import "time"

// 투표 가능한 항목 종류
const (
	VoteNews    = "news"
	VotePrice   = "price"
	VoteInsight = "insight"
	VoteMeme    = "meme"
)

var voteTypes = map[string]struct{}{
	VoteNews:    {},
	VotePrice:   {},
	VoteInsight: {},
	VoteMeme:    {},
}

func IsVoteType(t string) bool {
	_, ok := voteTypes[t]
	return ok
}

// 사용자 한 명의 항목 한 개에 대한 투표 (Value: +1 / -1)
type Vote struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	ItemID    string    `json:"itemId"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
