package reviews

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/threadlab/threadlab-backend-go/models"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func testReviews() []models.Review {
	return []models.Review{
		{
			ID: 1, Rating: 5, Photos: []string{"a.jpg"},
			ReviewDate:   testNow.AddDate(0, 0, -10),
			HelpfulVotes: models.HelpfulVotes{Yes: 8, No: 2}, // ratio 0.8
		},
		{
			ID: 2, Rating: 3,
			ReviewDate:   testNow.AddDate(0, -4, 0),
			HelpfulVotes: models.HelpfulVotes{Yes: 0, No: 0}, // no votes
		},
		{
			ID: 3, Rating: 4,
			ReviewDate:   testNow.AddDate(0, -1, 0),
			HelpfulVotes: models.HelpfulVotes{Yes: 1, No: 0}, // ratio 1.0
		},
		{
			ID: 4, Rating: 5,
			ReviewDate:   testNow.AddDate(0, -6, 0),
			HelpfulVotes: models.HelpfulVotes{Yes: 0, No: 0}, // no votes
		},
		{
			ID: 5, Rating: 1, Photos: []string{"b.jpg", "c.jpg"},
			ReviewDate:   testNow.AddDate(0, 0, -2),
			HelpfulVotes: models.HelpfulVotes{Yes: 1, No: 3}, // ratio 0.25
		},
	}
}

func reviewIDs(list []models.Review) []int {
	out := make([]int, len(list))
	for i, r := range list {
		out[i] = r.ID
	}
	return out
}

func TestFilterKeys(t *testing.T) {
	tests := []struct {
		name      string
		filterKey string
		want      []int // after default recent sort
	}{
		{"all", FilterAll, []int{5, 1, 3, 2, 4}},
		{"unknown key behaves like all", "bogus", []int{5, 1, 3, 2, 4}},
		{"photos only", FilterPhotos, []int{5, 1}},
		{"five star", FilterFiveStar, []int{1, 4}},
		{"four plus", FilterFourPlus, []int{1, 3, 4}},
		{"recent keeps last three months", FilterRecent, []int{5, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAndSort(testReviews(), tt.filterKey, SortRecent, testNow)
			assert.Equal(t, tt.want, reviewIDs(got))
		})
	}
}

func TestSortKeys(t *testing.T) {
	tests := []struct {
		name    string
		sortKey string
		want    []int
	}{
		{"recent is date descending", SortRecent, []int{5, 1, 3, 2, 4}},
		{"unknown key falls back to recent", "bogus", []int{5, 1, 3, 2, 4}},
		{"highest", SortHighest, []int{1, 4, 3, 2, 5}},
		{"lowest", SortLowest, []int{5, 2, 3, 1, 4}},
		{"helpful by ratio, unvoted last", SortHelpful, []int{3, 1, 5, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAndSort(testReviews(), FilterAll, tt.sortKey, testNow)
			assert.Equal(t, tt.want, reviewIDs(got))
		})
	}
}

func TestHelpfulSortZeroVoteReviewsAlwaysAfterVoted(t *testing.T) {
	// Zero-vote reviews lead the input; they must still land after every
	// voted review, keeping their relative order.
	list := []models.Review{
		{ID: 1, HelpfulVotes: models.HelpfulVotes{}},
		{ID: 2, HelpfulVotes: models.HelpfulVotes{}},
		{ID: 3, HelpfulVotes: models.HelpfulVotes{Yes: 0, No: 1}}, // ratio 0, but voted
		{ID: 4, HelpfulVotes: models.HelpfulVotes{Yes: 2, No: 2}}, // ratio 0.5
	}

	got := FilterAndSort(list, FilterAll, SortHelpful, testNow)
	assert.Equal(t, []int{4, 3, 1, 2}, reviewIDs(got))
}

func TestFilterThenSortCompose(t *testing.T) {
	// photos filter first, then highest rating on the subset
	got := FilterAndSort(testReviews(), FilterPhotos, SortHighest, testNow)
	assert.Equal(t, []int{1, 5}, reviewIDs(got))
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	list := testReviews()
	FilterAndSort(list, FilterAll, SortLowest, testNow)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, reviewIDs(list))
}
