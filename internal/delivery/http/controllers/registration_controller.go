package controllers

import (
	"log/slog"
	"net/http"

	"regrelay/internal/delivery/http/helpers"
	"regrelay/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// LearnerInput is the registrant portion of the registration request body.
type LearnerInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Company   string `json:"company" validate:"omitempty,max=200"`
	Notes     string `json:"notes" validate:"omitempty,max=2000"`
}

// RegisterRequest is the request body for POST /api/register.
// identifierType defaults to "code" when omitted.
type RegisterRequest struct {
	IdentifierType  string       `json:"identifierType" validate:"omitempty,oneof=id code legacyId"`
	IdentifierValue string       `json:"identifierValue" validate:"required"`
	Learner         LearnerInput `json:"learner" validate:"required"`
}

// RegisterResponse is the success response body for POST /api/register.
// swagger:model RegisterResponse
type RegisterResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EventID   string `json:"eventId"`
	ContactID string `json:"contactId"`
}

// Register godoc
// @Summary Register a learner for an event
// @Description Resolves the event by id, code, or legacy id, looks the learner up by email (creating a contact when auto-create is configured), and registers the contact on the event.
// @Tags registration
// @Accept json
// @Produce json
// @Param body body controllers.RegisterRequest true "Event identifier and learner"
// @Success 200 {object} controllers.RegisterResponse
// @Failure 400 {object} helpers.ErrorResponse "invalid input, auto-create disabled, or provider field errors"
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	ident := domain.EventIdentifier{
		Kind:  domain.IdentifierKind(req.IdentifierType),
		Value: req.IdentifierValue,
	}
	if req.IdentifierType == "" {
		ident.Kind = domain.IdentifierCode
	}
	learner := domain.Learner{
		FirstName: req.Learner.FirstName,
		LastName:  req.Learner.LastName,
		Email:     req.Learner.Email,
		Company:   req.Learner.Company,
		Notes:     req.Learner.Notes,
	}

	result, err := c.Service.Register(r.Context(), ident, learner)
	if err != nil {
		helpers.WriteDomainError(w, c.Logger, r, err)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, RegisterResponse{
		Success:   true,
		Message:   "Registered",
		EventID:   result.EventID,
		ContactID: result.ContactID,
	})
}
