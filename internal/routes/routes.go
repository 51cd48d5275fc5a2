// Package routes wires repositories, services, and handlers onto the
// fiber application.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"paygate/internal/handlers"
	"paygate/internal/repositories"
	"paygate/internal/services/bank"
	"paygate/internal/services/payment"
	"paygate/internal/validation"
)

// SetupRoutes builds the processing pipeline over the given store and
// bank client and registers all HTTP routes.
func SetupRoutes(app *fiber.App, store repositories.PaymentRepository, bankClient bank.Client, storeBackend string) {
	validator := validation.NewPaymentValidator()
	paymentService := payment.NewService(validator, bankClient, store)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	app.Get("/health", handlers.HealthCheck(storeBackend))

	app.Post("/payment", paymentHandler.ProcessPayment)
	app.Get("/payment/:id", paymentHandler.GetPayment)
}
