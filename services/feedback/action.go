package feedback

import (
	"fmt"
	"time"
)

// Next-action kinds
const (
	ActionGoogleRedirect = "GOOGLE_REDIRECT"
	ActionTicketCreated  = "TICKET_CREATED"
	ActionThankYouOnly   = "THANK_YOU_ONLY"
	ActionNotEligible    = "NOT_ELIGIBLE"
)

// Action is the outcome of a submission. Exactly one variant per kind; each
// carries only the fields its kind needs.
type Action interface {
	Kind() string
}

// GoogleRedirect asks a promoter to repost their review publicly.
type GoogleRedirect struct {
	GoogleReviewURL string
	ClipboardText   string
	Coupon          Coupon
}

// TicketCreated reports a support follow-up. TicketID is nil when the ticket
// write failed and the outcome is degraded.
type TicketCreated struct {
	TicketID *string
	Coupon   Coupon
}

// ThankYouOnly is a plain acknowledgement with no side effects.
type ThankYouOnly struct {
	Message string
}

// NotEligible rejects a submission still inside its cooldown window.
type NotEligible struct {
	NextAllowedAt time.Time
	Reason        string
}

func (GoogleRedirect) Kind() string { return ActionGoogleRedirect }
func (TicketCreated) Kind() string  { return ActionTicketCreated }
func (ThankYouOnly) Kind() string   { return ActionThankYouOnly }
func (NotEligible) Kind() string    { return ActionNotEligible }

// EncodeAction renders an action into its wire shape.
func EncodeAction(a Action) map[string]interface{} {
	switch v := a.(type) {
	case GoogleRedirect:
		return map[string]interface{}{
			"type":              ActionGoogleRedirect,
			"google_review_url": v.GoogleReviewURL,
			"clipboard_text":    v.ClipboardText,
			"coupon":            v.Coupon,
		}
	case TicketCreated:
		payload := map[string]interface{}{
			"type":   ActionTicketCreated,
			"coupon": v.Coupon,
		}
		if v.TicketID != nil {
			payload["ticket_id"] = *v.TicketID
		}
		return payload
	case ThankYouOnly:
		return map[string]interface{}{
			"type":    ActionThankYouOnly,
			"message": v.Message,
		}
	case NotEligible:
		return map[string]interface{}{
			"type":              ActionNotEligible,
			"next_allowed_date": v.NextAllowedAt,
			"reason":            v.Reason,
		}
	default:
		panic(fmt.Sprintf("unknown next action %T", a))
	}
}
