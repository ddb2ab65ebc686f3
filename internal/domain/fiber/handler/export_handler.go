package handler

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fadilmartias/recruit-assistant/internal/export"
	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/fadilmartias/recruit-assistant/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	uc *usecase.CandidateUsecase
}

func NewExportHandler(uc *usecase.CandidateUsecase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func (h *ExportHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/export/candidates.csv", auth, h.csv(export.Full, 0, "candidates"))
	app.Get("/export/candidates.xlsx", auth, h.excel(export.Full, 0, "candidates"))
	app.Get("/export/approved.csv", auth, h.csv(export.Approved, export.ApprovedMinScore, "approved"))
	app.Get("/export/approved.xlsx", auth, h.excel(export.Approved, export.ApprovedMinScore, "approved"))
}

func (h *ExportHandler) csv(layout export.Layout, minScore int, name string) fiber.Handler {
	return h.download(minScore, name+".csv", "text/csv; charset=utf-8", func(buf *bytes.Buffer, list []model.Candidate) error {
		return export.WriteCSV(buf, layout, list)
	})
}

func (h *ExportHandler) excel(layout export.Layout, minScore int, name string) fiber.Handler {
	return h.download(minScore, name+".xlsx", xlsxContentType, func(buf *bytes.Buffer, list []model.Candidate) error {
		return export.WriteExcel(buf, layout, list)
	})
}

func (h *ExportHandler) download(minScore int, filename, contentType string, write func(*bytes.Buffer, []model.Candidate) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := h.uc.Export(c.UserContext(), minScore)
		if err != nil {
			return fail(c, "failed to export candidates", err)
		}

		var buf bytes.Buffer
		if err := write(&buf, list); err != nil {
			return fail(c, "failed to export candidates", err)
		}

		stamped := fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), filename)
		c.Set(fiber.HeaderContentType, contentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, stamped))
		return c.Send(buf.Bytes())
	}
}
