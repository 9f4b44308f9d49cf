package feedback

import (
	"testing"

	"cxos/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifySentiment(t *testing.T) {
	cases := []struct {
		rating int
		want   string
	}{
		{1, models.SentimentDetractor},
		{2, models.SentimentDetractor},
		{3, models.SentimentDetractor},
		{4, models.SentimentPassive},
		{5, models.SentimentPromoter},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifySentiment(tc.rating), "rating %d", tc.rating)
	}
}

func TestClassifySentimentDeterministic(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		first := ClassifySentiment(rating)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, ClassifySentiment(rating))
		}
	}
}
