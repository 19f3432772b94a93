package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// OffersHandler manages the job offer endpoints.
type OffersHandler struct {
	service *service.OfferService
}

// NewOffersHandler constructs handler.
func NewOffersHandler(offerService *service.OfferService) *OffersHandler {
	return &OffersHandler{service: offerService}
}

// List GET /offers. Public: anonymous and authenticated callers see the same
// listing.
func (h *OffersHandler) List(c *fiber.Ctx) error {
	offers, err := h.service.ListOffers(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.OfferResponse, 0, len(offers))
	for i := range offers {
		items = append(items, offerResponse(&offers[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /offers.
func (h *OffersHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Company) == "" {
		return apperrors.NewValidationError("title and company required", nil)
	}

	offer, err := h.service.CreateOffer(c.UserContext(), principal, service.OfferCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Salary:      req.Salary,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": offerResponse(offer)})
}

// Delete DELETE /offers/:id.
func (h *OffersHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid offer id", nil)
	}

	if err := h.service.DeleteOffer(c.UserContext(), principal, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "job offer deleted"})
}

func offerResponse(offer *domain.JobOffer) dto.OfferResponse {
	return dto.OfferResponse{
		ID:          offer.ID,
		Title:       offer.Title,
		Description: offer.Description,
		Company:     offer.Company,
		Salary:      offer.Salary,
		Owner:       offer.OwnerUsername,
		CreatedAt:   offer.CreatedAt,
	}
}
