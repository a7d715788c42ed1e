package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Tracking
	TrackClickHandler      Handler
	IssueChallengeHandler  Handler
	VerifyChallengeHandler Handler

	// Operator
	ListBlockedHandler Handler
	UnblockHandler     Handler
	ListClicksHandler  Handler

	// System
	HealthHandler     Handler
	GetVersionHandler Handler
}
