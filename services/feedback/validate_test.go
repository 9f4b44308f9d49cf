package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContentRatingRange(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		err := ValidateContent(rating, strings.Repeat("a", 150))
		require.NotNil(t, err, "rating %d", rating)
		assert.Equal(t, CodeInvalidRating, err.Code)
	}
}

func TestValidateContentMissingText(t *testing.T) {
	err := ValidateContent(3, "")
	require.NotNil(t, err)
	assert.Equal(t, CodeMissingText, err.Code)

	// Text presence is required even at 5 stars.
	err = ValidateContent(5, "")
	require.NotNil(t, err)
	assert.Equal(t, CodeMissingText, err.Code)
}

func TestValidateContentLengthFloor(t *testing.T) {
	for rating := 1; rating <= 4; rating++ {
		err := ValidateContent(rating, strings.Repeat("a", 99))
		require.NotNil(t, err, "rating %d", rating)
		assert.Equal(t, CodeTextTooShort, err.Code)

		assert.Nil(t, ValidateContent(rating, strings.Repeat("a", 100)))
	}
}

func TestValidateContentFiveStarsNoFloor(t *testing.T) {
	assert.Nil(t, ValidateContent(5, "Great service!"))
}

func TestValidateContentCountsRunesNotBytes(t *testing.T) {
	// 100 multi-byte characters must satisfy the floor.
	assert.Nil(t, ValidateContent(2, strings.Repeat("å", 100)))
}

func TestValidateContentShortCircuits(t *testing.T) {
	// Invalid rating wins over missing text.
	err := ValidateContent(9, "")
	require.NotNil(t, err)
	assert.Equal(t, CodeInvalidRating, err.Code)
}
