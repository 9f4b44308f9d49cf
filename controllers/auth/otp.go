package authController

import (
	"time"

	"cxos/config"
	"cxos/middleware"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// The OTP flow lives with the external auth provider; these handlers only
// proxy to it so the provider key never reaches the client.

func newProviderClient() *resty.Client {
	return resty.New().
		SetBaseURL(config.AppConfig.OTPProviderURL).
		SetHeader("Authorization-Key", config.AppConfig.OTPProviderKey).
		SetTimeout(10 * time.Second)
}

// GenerateOTP forwards an OTP request for the given mobile number.
func GenerateOTP(c *fiber.Ctx) error {
	mobile := c.Query("mobile")
	if mobile == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Mobile number is required!", nil)
	}

	resp, err := newProviderClient().R().
		SetQueryParam("mobile", mobile).
		Get("/generate-otp-rb-auth")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to connect to OTP service!", nil)
	}

	c.Set("Content-Type", "application/json")
	return c.Status(resp.StatusCode()).Send(resp.Body())
}

// VerifyOTP forwards OTP verification; on success the provider response
// carries the opaque customer token used for identified submissions.
func VerifyOTP(c *fiber.Ctx) error {
	mobile := c.Query("mobile")
	otp := c.Query("otp")
	if mobile == "" || otp == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Mobile number and OTP are required!", nil)
	}

	resp, err := newProviderClient().R().
		SetQueryParam("mobile", mobile).
		SetQueryParam("otp", otp).
		Post("/rb-auth")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to connect to auth service!", nil)
	}

	c.Set("Content-Type", "application/json")
	return c.Status(resp.StatusCode()).Send(resp.Body())
}
