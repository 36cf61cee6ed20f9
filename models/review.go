package models

import "time"

// VoteValue is the direction of a helpful vote.
type VoteValue string

const (
	VoteYes VoteValue = "yes"
	VoteNo  VoteValue = "no"
)

// HelpfulVotes is the running tally on a review.
type HelpfulVotes struct {
	Yes int `bson:"yes" json:"yes"`
	No  int `bson:"no" json:"no"`
}

type Review struct {
	ID               int          `bson:"_id" json:"id"`
	ProductID        int          `bson:"productId" json:"productId"`
	CustomerName     string       `bson:"customerName" json:"customerName"`
	Rating           int          `bson:"rating" json:"rating"`
	Title            string       `bson:"title" json:"title"`
	Comment          string       `bson:"comment" json:"comment"`
	Photos           []string     `bson:"photos" json:"photos"`
	ReviewDate       time.Time    `bson:"reviewDate" json:"reviewDate"`
	VerifiedPurchase bool         `bson:"verifiedPurchase" json:"verifiedPurchase"`
	HelpfulVotes     HelpfulVotes `bson:"helpfulVotes" json:"helpfulVotes"`

	// UserVote is the requesting session's vote, attached at read time.
	// Never persisted.
	UserVote VoteValue `bson:"-" json:"userVote,omitempty"`
}
