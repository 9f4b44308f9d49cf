package feedback

import "cxos/models"

// ClassifySentiment maps a 1-5 rating to its sentiment tag. Total for any
// valid rating; validation guarantees the range before this runs.
func ClassifySentiment(rating int) string {
	switch {
	case rating == 5:
		return models.SentimentPromoter
	case rating == 4:
		return models.SentimentPassive
	default:
		return models.SentimentDetractor
	}
}
