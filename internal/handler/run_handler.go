package handler

import (
	"github.com/gofiber/fiber/v2"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/middleware"
)

type RunHandler struct {
	executor RunExecutor
}

func NewRunHandler(executor RunExecutor) *RunHandler {
	return &RunHandler{executor: executor}
}

func (h *RunHandler) Trigger(c *fiber.Ctx) error {
	job, err := parseJob(c)
	if err != nil {
		return err
	}

	report, err := h.executor.Execute(c.Context(), job)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(report)
}

func (h *RunHandler) Latest(c *fiber.Ctx) error {
	job, err := parseJob(c)
	if err != nil {
		return err
	}

	report, ok := h.executor.Latest(job)
	if !ok {
		return middleware.NotFound("No run recorded for this job since startup")
	}

	return c.Status(fiber.StatusOK).JSON(report)
}

func parseJob(c *fiber.Ctx) (domain.JobName, error) {
	job := domain.JobName(c.Params("job"))
	if !job.IsValid() {
		return "", middleware.NotFound("Unknown job")
	}
	return job, nil
}
