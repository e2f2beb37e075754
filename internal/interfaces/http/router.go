package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/maletas-pro/internal/application/dto"
	"github.com/jhoicas/maletas-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SellerUC      *usecase.SellerUseCase
	CaseUC        *usecase.CaseUseCase
	ReceiptUC     *usecase.ReceiptUseCase
	StatsUC       *usecase.StatsUseCase
	RecognitionUC *usecase.RecognitionUseCase
}

// Router registra las rutas de la API. Las rutas /api no matcheadas devuelven
// 404 con cuerpo estructurado; las no-API las atiende el bundle estático.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sellers
	sellers := api.Group("/sellers")
	sellerHandler := NewSellerHandler(deps.SellerUC)
	sellers.Get("/", sellerHandler.List)
	sellers.Post("/", sellerHandler.Create)
	sellers.Put("/:id", sellerHandler.Update)
	sellers.Delete("/:id", sellerHandler.Delete)

	// Cases (maletas)
	cases := api.Group("/cases")
	caseHandler := NewCaseHandler(deps.CaseUC, deps.ReceiptUC)
	cases.Get("/", caseHandler.List)
	cases.Post("/", caseHandler.Create)
	// La ruta fija va antes que las paramétricas con :id
	cases.Delete("/status/:status", caseHandler.DeleteByStatus)
	cases.Get("/:id/items", caseHandler.Items)
	cases.Get("/:id/pdf", caseHandler.Receipt)
	cases.Get("/:id/whatsapp", caseHandler.WhatsappLink)
	cases.Patch("/:id/status", caseHandler.ChangeStatus)
	cases.Put("/:id", caseHandler.Replace)
	cases.Delete("/:id", caseHandler.Delete)

	// Stats
	statsHandler := NewStatsHandler(deps.StatsUC)
	api.Get("/stats", statsHandler.Summary)

	// OCR
	recognitionHandler := NewRecognitionHandler(deps.RecognitionUC)
	api.Post("/ocr", recognitionHandler.Recognize)
	api.Post("/ocr/batch", recognitionHandler.RecognizeBatch)

	// System
	systemHandler := NewSystemHandler(deps.CaseUC)
	api.Delete("/system/reset", systemHandler.Reset)

	// Catch-all de /api: 404 estructurado
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
	})
}
