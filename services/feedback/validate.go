package feedback

import "unicode/utf8"

// Reviews below 5 stars must carry enough text to act on. Fixed business rule.
const minCriticalTextRunes = 100

// Content rule codes
const (
	CodeInvalidRating = "InvalidRating"
	CodeMissingText   = "MissingText"
	CodeTextTooShort  = "TextTooShort"
)

// ContentError reports a failed content rule. Checks run before any
// persistence; the first failing rule short-circuits.
type ContentError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ContentError) Error() string {
	return e.Message
}

// ValidateContent enforces the rating range and the rating-dependent text
// rules. Text presence is required at every rating; only the length floor is
// relaxed for 5 stars.
func ValidateContent(rating int, reviewText string) *ContentError {
	if rating < 1 || rating > 5 {
		return &ContentError{Code: CodeInvalidRating, Message: "Rating must be between 1 and 5"}
	}
	if reviewText == "" {
		return &ContentError{Code: CodeMissingText, Message: "Review text is required"}
	}
	if rating < 5 && utf8.RuneCountInString(reviewText) < minCriticalTextRunes {
		return &ContentError{Code: CodeTextTooShort, Message: "Reviews with ratings below 5 stars require at least 100 characters"}
	}
	return nil
}
