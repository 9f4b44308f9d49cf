package feedback

import (
	"context"
	"fmt"
	"time"

	"cxos/config"
	"cxos/logging"
	"cxos/models"
	"cxos/services/eligibility"
	"cxos/services/settings"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const blockedReason = "You have already shared feedback recently. We value your voice again soon ❤️"

// NotEligibleError rejects a submission whose identity is still inside its
// cooldown window. Raised before validation and before anything is persisted.
type NotEligibleError struct {
	NextAllowedAt time.Time
	Reason        string
}

func (e *NotEligibleError) Error() string {
	return e.Reason
}

// SubmitInput is one inbound submission.
type SubmitInput struct {
	Token      string
	Rating     int
	NPS        *int
	ReviewText string
	GuestName  string
	GuestPhone string
	GuestEmail string
	Meta       datatypes.JSON
}

// SubmitResult is a successful (possibly degraded) submission. Warnings list
// secondary writes that failed; callers must surface them, not hide them.
type SubmitResult struct {
	Review   models.Review
	Identity Identity
	Action   Action
	Warnings []string
}

// EligibilityStatus answers the read-only pre-flight check.
type EligibilityStatus struct {
	Eligible      bool
	NextAllowedAt *time.Time
	Reason        string
}

// Engine decides what happens to a submission: eligibility, content rules,
// sentiment, routing and the ordered side effects.
type Engine struct {
	DB       *gorm.DB
	Cache    eligibility.Cache
	Settings settings.Provider

	GoogleReviewURL string
	DefaultQueue    string

	FallbackCooldownMonths int
	FallbackSLAHours       int
	FallbackDiscount       int

	Now func() time.Time
}

// NewEngine builds an engine from the loaded application config.
func NewEngine(db *gorm.DB, cache eligibility.Cache, provider settings.Provider) *Engine {
	cfg := config.AppConfig
	return &Engine{
		DB:                     db,
		Cache:                  cache,
		Settings:               provider,
		GoogleReviewURL:        cfg.GoogleReviewURL,
		DefaultQueue:           cfg.DefaultQueue,
		FallbackCooldownMonths: cfg.ReviewFrequencyMonths,
		FallbackSLAHours:       cfg.SLAHours,
		FallbackDiscount:       cfg.CouponDiscountPercent,
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Submit runs one submission through the full decision pipeline.
//
// Order is fixed: eligibility check, content rules, sentiment, persist review,
// route (ticket is best-effort), record eligibility (best-effort), coupon.
// A failure before the review insert aborts the request; failures after it are
// collected as warnings and the caller still gets a success.
func (e *Engine) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	identity := ResolveIdentity(in.Token, in.GuestPhone)

	if identity.Key != "" {
		status, err := e.Cache.Check(ctx, identity.Key)
		if err != nil {
			return nil, fmt.Errorf("eligibility check: %w", err)
		}
		if !status.Eligible {
			return nil, &NotEligibleError{NextAllowedAt: status.NextAllowedAt, Reason: blockedReason}
		}
	}

	if cerr := ValidateContent(in.Rating, in.ReviewText); cerr != nil {
		return nil, cerr
	}

	now := e.now()
	sentiment := ClassifySentiment(in.Rating)

	review := models.Review{
		IsNonCustomer: identity.Class != ClassCustomer,
		Rating:        in.Rating,
		NPS:           in.NPS,
		ReviewText:    in.ReviewText,
		Sentiment:     sentiment,
		GuestName:     in.GuestName,
		GuestPhone:    in.GuestPhone,
		GuestEmail:    in.GuestEmail,
		Meta:          in.Meta,
		CreatedAt:     now,
	}
	if identity.Class == ClassCustomer {
		token := in.Token
		review.CustomerID = &token
	}

	if err := e.DB.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, fmt.Errorf("persist review: %w", err)
	}

	result := &SubmitResult{Review: review, Identity: identity}
	result.Action = e.route(ctx, result, identity, sentiment, now)

	if identity.Key != "" {
		months := e.Settings.GetInt(ctx, models.SettingReviewFrequencyMonths, e.FallbackCooldownMonths)
		next := now.AddDate(0, months, 0)
		if err := e.Cache.Record(ctx, identity.Key, now, next); err != nil {
			logging.Error("eligibility record failed", logrus.Fields{
				"identity_key": identity.Key,
				"review_id":    review.ID,
				"error":        err.Error(),
			})
			result.Warnings = append(result.Warnings, "eligibility window not recorded")
		}
	}

	return result, nil
}

// route applies the decision table on (classification, sentiment).
func (e *Engine) route(ctx context.Context, result *SubmitResult, identity Identity, sentiment string, now time.Time) Action {
	if identity.Class == ClassAnonymous {
		return ThankYouOnly{Message: "Thanks for your feedback!"}
	}

	discount := e.Settings.GetInt(ctx, models.SettingCouponDiscountPercent, e.FallbackDiscount)
	coupon := MintCoupon(result.Review.ID, discount)

	if sentiment == models.SentimentPromoter {
		return GoogleRedirect{
			GoogleReviewURL: e.GoogleReviewURL,
			ClipboardText:   result.Review.ReviewText,
			Coupon:          coupon,
		}
	}

	action := TicketCreated{Coupon: coupon}
	ticket, err := e.issueTicket(ctx, result.Review, identity.Key, now)
	if err != nil {
		logging.Error("ticket creation failed", logrus.Fields{
			"review_id": result.Review.ID,
			"error":     err.Error(),
		})
		result.Warnings = append(result.Warnings, "support ticket could not be created")
		return action
	}
	action.TicketID = &ticket.ID
	return action
}

// issueTicket opens a support ticket with a deadline fixed at creation time.
func (e *Engine) issueTicket(ctx context.Context, review models.Review, identityKey string, now time.Time) (*models.SupportTicket, error) {
	slaHours := e.Settings.GetInt(ctx, models.SettingSLAHours, e.FallbackSLAHours)

	ticket := models.SupportTicket{
		ReviewID:    review.ID,
		IdentityKey: identityKey,
		Status:      models.TicketOpen,
		AssignedTo:  e.DefaultQueue,
		SLADeadline: now.Add(time.Duration(slaHours) * time.Hour),
	}
	if err := e.DB.WithContext(ctx).Create(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// CheckEligibility answers the read-only pre-flight check. No side effects.
func (e *Engine) CheckEligibility(ctx context.Context, token string) (EligibilityStatus, error) {
	identity := ResolveIdentity(token, "")
	if identity.Key == "" {
		return EligibilityStatus{Eligible: true, Reason: "No token provided, treated as new user"}, nil
	}

	status, err := e.Cache.Check(ctx, identity.Key)
	if err != nil {
		return EligibilityStatus{}, err
	}
	if status.Eligible {
		return EligibilityStatus{Eligible: true}, nil
	}
	next := status.NextAllowedAt
	return EligibilityStatus{Eligible: false, NextAllowedAt: &next, Reason: blockedReason}, nil
}
