package reviews

import (
	"sort"
	"time"

	"github.com/threadlab/threadlab-backend-go/models"
)

// Filter keys. "recent" here means submitted within the last three months;
// the sort key of the same name means newest-first. The source product kept
// both meanings under one label, so both are preserved distinctly.
const (
	FilterAll      = "all"
	FilterPhotos   = "photos"
	FilterFiveStar = "5star"
	FilterFourPlus = "4plus"
	FilterRecent   = "recent"
)

// Sort keys.
const (
	SortRecent  = "recent"
	SortHelpful = "helpful"
	SortHighest = "highest"
	SortLowest  = "lowest"
)

// recentWindow is how far back the "recent" filter reaches.
func recentWindow(now time.Time) time.Time {
	return now.AddDate(0, -3, 0)
}

// FilterAndSort applies the filter key, then sorts the filtered subset.
// Unknown filter keys behave like "all"; unknown sort keys fall back to
// newest-first. The input slice is never mutated.
func FilterAndSort(reviews []models.Review, filterKey, sortKey string, now time.Time) []models.Review {
	out := make([]models.Review, 0, len(reviews))
	cutoff := recentWindow(now)
	for _, r := range reviews {
		switch filterKey {
		case FilterPhotos:
			if len(r.Photos) == 0 {
				continue
			}
		case FilterFiveStar:
			if r.Rating != 5 {
				continue
			}
		case FilterFourPlus:
			if r.Rating < 4 {
				continue
			}
		case FilterRecent:
			if r.ReviewDate.Before(cutoff) {
				continue
			}
		}
		out = append(out, r)
	}

	switch sortKey {
	case SortHelpful:
		sort.SliceStable(out, func(i, j int) bool {
			return moreHelpful(out[i], out[j])
		})
	case SortHighest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortLowest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	default: // SortRecent
		sort.SliceStable(out, func(i, j int) bool { return out[i].ReviewDate.After(out[j].ReviewDate) })
	}
	return out
}

// moreHelpful orders by yes/(yes+no) ratio descending. A review with no
// votes always sorts after any review with votes; ties are left to the
// stable sort.
func moreHelpful(a, b models.Review) bool {
	votesA := a.HelpfulVotes.Yes + a.HelpfulVotes.No
	votesB := b.HelpfulVotes.Yes + b.HelpfulVotes.No
	if votesA == 0 || votesB == 0 {
		return votesA > 0 && votesB == 0
	}
	ratioA := float64(a.HelpfulVotes.Yes) / float64(votesA)
	ratioB := float64(b.HelpfulVotes.Yes) / float64(votesB)
	return ratioA > ratioB
}
