package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/api/dto"
	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/service"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// JobsHandler manages the job listing endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// List GET /jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	page := parseIntDefault(c.Query("page"), 0)
	perPage := parseIntDefault(c.Query("perPage"), 10)

	result, err := h.service.ListJobs(c.Context(), page, perPage)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Create POST /jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	input, err := parseJobPayload(c)
	if err != nil {
		return err
	}
	job, err := h.service.CreateJob(c.Context(), *identity, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(job)
}

// Update PUT /jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	id, err := parseJobID(c)
	if err != nil {
		return err
	}
	input, err := parseJobPayload(c)
	if err != nil {
		return err
	}
	job, err := h.service.UpdateJob(c.Context(), *identity, id, input)
	if err != nil {
		return err
	}
	return c.JSON(job)
}

// Delete DELETE /jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	id, err := parseJobID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteJob(c.Context(), *identity, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// parseIntDefault falls back for absent or non-numeric input. Negative
// numbers pass through so the service can reject them explicitly.
func parseIntDefault(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return parsed
}

func parseJobID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, apperrors.NewValidationError("invalid job id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

func parseJobPayload(c *fiber.Ctx) (service.JobInput, error) {
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return service.JobInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	return service.JobInput{
		Type:        req.Type,
		CreatedAt:   req.CreatedAt,
		Company:     req.Company,
		CompanyURL:  req.CompanyURL,
		Location:    req.Location,
		Title:       req.Title,
		Description: req.Description,
	}, nil
}
