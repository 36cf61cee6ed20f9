package reviews

import "github.com/threadlab/threadlab-backend-go/models"

// ApplyVote records a helpful vote on a review, given the voter's prior
// vote from the ledger ("" if none). A prior vote is retracted from its
// tally bucket before the new vote is counted, so one voter's net
// contribution is always exactly one vote in one direction.
//
// The caller persists the returned review and writes the new vote value
// back to the ledger.
func ApplyVote(r models.Review, helpful bool, prior models.VoteValue) models.Review {
	switch prior {
	case models.VoteYes:
		if r.HelpfulVotes.Yes > 0 {
			r.HelpfulVotes.Yes--
		}
	case models.VoteNo:
		if r.HelpfulVotes.No > 0 {
			r.HelpfulVotes.No--
		}
	}

	if helpful {
		r.HelpfulVotes.Yes++
		r.UserVote = models.VoteYes
	} else {
		r.HelpfulVotes.No++
		r.UserVote = models.VoteNo
	}
	return r
}
