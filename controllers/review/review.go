package reviewController

import (
	"errors"
	"strings"
	"time"

	"cxos/database"
	"cxos/middleware"
	"cxos/models"
	"cxos/monitoring"
	"cxos/services/eligibility"
	"cxos/services/feedback"
	"cxos/services/settings"
	reviewValidators "cxos/validators/review"

	"github.com/gofiber/fiber/v2"
)

// newEngine wires the decision engine from the shared connections. The
// eligibility cache runs on Redis when configured, otherwise on the SQL store.
func newEngine() *feedback.Engine {
	db := database.Database.Db

	var cache eligibility.Cache = eligibility.NewGormCache(db)
	if database.Redis != nil {
		cache = eligibility.NewRedisCache(database.Redis)
	}

	return feedback.NewEngine(db, cache, settings.New(db))
}

// SubmitReview runs a submission through the decision engine.
func SubmitReview(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubmitReview").(*reviewValidators.SubmitReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := newEngine().Submit(c.UserContext(), feedback.SubmitInput{
		Token:      reqData.Token,
		Rating:     reqData.Rating,
		NPS:        reqData.NPS,
		ReviewText: reqData.ReviewText,
		GuestName:  reqData.GuestName,
		GuestPhone: reqData.GuestPhone,
		GuestEmail: reqData.GuestEmail,
		Meta:       reqData.Meta,
	})
	if err != nil {
		var blocked *feedback.NotEligibleError
		if errors.As(err, &blocked) {
			monitoring.EligibilityBlocked.Inc()
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, blocked.Reason, fiber.Map{
				"next_allowed_date": blocked.NextAllowedAt,
				"next_action": feedback.EncodeAction(feedback.NotEligible{
					NextAllowedAt: blocked.NextAllowedAt,
					Reason:        blocked.Reason,
				}),
			})
		}

		var content *feedback.ContentError
		if errors.As(err, &content) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, content.Message, fiber.Map{
				"code": content.Code,
			})
		}

		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save review!", nil)
	}

	monitoring.ReviewsSubmitted.WithLabelValues(result.Review.Sentiment).Inc()
	monitoring.NextActions.WithLabelValues(result.Action.Kind()).Inc()
	for range result.Warnings {
		monitoring.DegradedOutcomes.WithLabelValues(result.Action.Kind()).Inc()
	}

	data := fiber.Map{
		"review_id":     result.Review.ID,
		"is_customer":   !result.Review.IsNonCustomer,
		"sentiment_tag": result.Review.Sentiment,
		"next_action":   feedback.EncodeAction(result.Action),
	}
	if len(result.Warnings) > 0 {
		data["warnings"] = result.Warnings
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", data)
}

// CheckEligibility is the read-only pre-flight lookup.
func CheckEligibility(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCheckEligibility").(*reviewValidators.CheckEligibilityRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	status, err := newEngine().CheckEligibility(c.UserContext(), reqData.Token)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check eligibility!", nil)
	}

	data := fiber.Map{"eligible": status.Eligible}
	if status.NextAllowedAt != nil {
		data["next_allowed_date"] = status.NextAllowedAt
	}
	if status.Reason != "" {
		data["reason"] = status.Reason
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Eligibility checked!", data)
}

// AdminReviewList returns reviews filtered by type, sentiment and date range.
func AdminReviewList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminReviewList").(*struct {
		Type      string `query:"type"`
		Range     string `query:"range"`
		Sentiment string `query:"sentiment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Model(&models.Review{})

	switch reqData.Type {
	case "customer":
		db = db.Where("is_non_customer = ?", false)
	case "non-customer":
		db = db.Where("is_non_customer = ?", true)
	}

	if reqData.Sentiment != "" {
		db = db.Where("sentiment IN ?", strings.Split(reqData.Sentiment, ","))
	}

	now := time.Now()
	switch reqData.Range {
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		db = db.Where("created_at >= ?", start)
	case "7d":
		db = db.Where("created_at >= ?", now.AddDate(0, 0, -7))
	case "30d":
		db = db.Where("created_at >= ?", now.AddDate(0, 0, -30))
	}

	var reviews []models.Review
	if err := db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": reviews,
	})
}
