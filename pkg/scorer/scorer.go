// Package score computes buyer-quality and listing-urgency scores for the
// negotiation engine. All scores live in [0, 1].
package score

// Weights defines the relative importance of each urgency factor.
type Weights struct {
	Age      float64
	Interest float64
	LikeRate float64
}

// DefaultWeights returns the default urgency weights.
func DefaultWeights() Weights {
	return Weights{
		Age:      0.50,
		Interest: 0.30,
		LikeRate: 0.20,
	}
}

// Breakdown shows per-factor urgency scores.
type Breakdown struct {
	Age      float64 `json:"age"`
	Interest float64 `json:"interest"`
	LikeRate float64 `json:"like_rate"`
	Total    float64 `json:"total"`
}

// BuyerScore maps a buyer's completed-purchase count to a trust score.
// A buyer with no history scores 0.3 — unknown, not distrusted.
func BuyerScore(completedPurchases int) float64 {
	switch {
	case completedPurchases >= 10:
		return 1.0
	case completedPurchases >= 5:
		return 0.8
	case completedPurchases >= 2:
		return 0.6
	case completedPurchases >= 1:
		return 0.4
	default:
		return 0.3
	}
}

// Urgency computes how motivated the seller should be to close a deal,
// blending listing age, engagement, and like rate.
func Urgency(daysOld, views, likes int, w Weights) Breakdown {
	b := Breakdown{
		Age:      ageUrgency(daysOld),
		Interest: interestUrgency(views),
		LikeRate: likeRateUrgency(views, likes),
	}

	total := b.Age*w.Age + b.Interest*w.Interest + b.LikeRate*w.LikeRate
	if total > 1 {
		total = 1
	}
	if total < 0 {
		total = 0
	}
	b.Total = total

	return b
}

// ageUrgency rises as the listing goes stale.
func ageUrgency(daysOld int) float64 {
	switch {
	case daysOld >= 60:
		return 1.0
	case daysOld >= 30:
		return 0.7
	case daysOld >= 14:
		return 0.4
	default:
		return 0.2
	}
}

// interestUrgency is the inverse of view count: few views, high urgency.
func interestUrgency(views int) float64 {
	switch {
	case views < 10:
		return 0.8
	case views < 30:
		return 0.5
	default:
		return 0.2
	}
}

// likeRateUrgency is the inverse of the like rate. Zero views counts as a
// zero rate, which reads as low engagement.
func likeRateUrgency(views, likes int) float64 {
	rate := 0.0
	if views > 0 {
		rate = float64(likes) / float64(views)
	}
	if rate < 0.05 {
		return 0.7
	}
	return 0.3
}
