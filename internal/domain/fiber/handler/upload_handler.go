package handler

import (
	"io"
	"mime/multipart"

	"github.com/fadilmartias/recruit-assistant/internal/usecase"
	"github.com/fadilmartias/recruit-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

const uploadField = "files"

type UploadHandler struct {
	uc *usecase.UploadUsecase
}

func NewUploadHandler(uc *usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

func (h *UploadHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/upload", auth, h.Page)
	app.Post("/api/upload", auth, h.Upload)
}

func (h *UploadHandler) Page(c *fiber.Ctx) error {
	return c.Render("upload", fiber.Map{"Title": "Upload résumés"}, "layouts/main")
}

// Upload processes a multipart batch of résumés sequentially and reports
// what happened to each file.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "expected a multipart form", err)
	}
	headers := form.File[uploadField]
	if len(headers) == 0 {
		return badRequest(c, "no files sent", nil)
	}

	batch := make([]usecase.UploadFile, len(headers))
	for i, fh := range headers {
		batch[i] = usecase.UploadFile{Name: fh.Filename, Open: opener(fh)}
	}

	summary := h.uc.Process(c.UserContext(), batch)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: summary.Message,
		Data:    summary,
	})
}

func opener(fh *multipart.FileHeader) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return fh.Open()
	}
}
