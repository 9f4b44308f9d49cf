package reviewValidators

import (
	"strings"

	"cxos/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

var validate = validator.New()

// SubmitReviewRequest is the inbound submission body. Rating and text rules
// are enforced later by the engine so a blocked identity is rejected first;
// this middleware only checks the payload shape.
type SubmitReviewRequest struct {
	Token      string         `json:"token"`
	Rating     int            `json:"rating"`
	NPS        *int           `json:"nps" validate:"omitempty,min=0,max=10"`
	ReviewText string         `json:"review_text"`
	GuestName  string         `json:"customer_name"`
	GuestPhone string         `json:"customer_phone" validate:"omitempty,min=7,max=20"`
	GuestEmail string         `json:"customer_email" validate:"omitempty,email"`
	Meta       datatypes.JSON `json:"non_customer_meta"`
}

func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitReviewRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Token = strings.TrimSpace(reqData.Token)
		reqData.GuestName = strings.TrimSpace(reqData.GuestName)
		reqData.GuestPhone = strings.TrimSpace(reqData.GuestPhone)
		reqData.GuestEmail = strings.TrimSpace(reqData.GuestEmail)

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "NPS":
					errors["nps"] = "NPS must be between 0 and 10!"
				case "GuestPhone":
					errors["customer_phone"] = "Phone number must be between 7 and 20 characters!"
				case "GuestEmail":
					errors["customer_email"] = "Invalid email address!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmitReview", reqData)
		return c.Next()
	}
}

// CheckEligibilityRequest is the optional pre-flight body.
type CheckEligibilityRequest struct {
	Token string `json:"token"`
}

func CheckEligibility() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CheckEligibilityRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Token = strings.TrimSpace(reqData.Token)

		c.Locals("validatedCheckEligibility", reqData)
		return c.Next()
	}
}

// AdminReviewList validates the admin listing filters.
func AdminReviewList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Type      string `query:"type"`
			Range     string `query:"range"`
			Sentiment string `query:"sentiment"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Type != "" {
			valid := map[string]bool{"customer": true, "non-customer": true, "all": true}
			if !valid[reqData.Type] {
				errors["type"] = "Invalid type! Must be one of: customer, non-customer, all."
			}
		}
		if reqData.Range != "" {
			valid := map[string]bool{"today": true, "7d": true, "30d": true}
			if !valid[reqData.Range] {
				errors["range"] = "Invalid range! Must be one of: today, 7d, 30d."
			}
		}
		if reqData.Sentiment != "" {
			valid := map[string]bool{"promoter": true, "passive": true, "detractor": true}
			for _, s := range strings.Split(reqData.Sentiment, ",") {
				if !valid[s] {
					errors["sentiment"] = "Invalid sentiment! Allowed: promoter, passive, detractor."
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminReviewList", reqData)
		return c.Next()
	}
}
