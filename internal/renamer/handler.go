package renamer

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-renamer/internal/archive"
	"invoice-renamer/internal/rename"
	"invoice-renamer/internal/shared/server/respond"
	"invoice-renamer/internal/shared/util"
)

const archiveDownloadName = "renamed_invoices.zip"

// Handler wires the upload routes to the rename pipeline.
type Handler struct {
	svc            *Service
	maxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches one upload route per renaming scheme.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload(rename.Customer()))
	rg.POST("/upload/invoice", h.upload(rename.Invoice()))
	rg.POST("/upload/customer-invoice", h.upload(rename.CustomerInvoice()))
	rg.POST("/upload/sales-order", h.upload(rename.SalesOrder()))
}

func (h *Handler) upload(scheme rename.Scheme) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("scheme", scheme.Name())
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

		form, err := c.MultipartForm()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid multipart body", nil)
			return
		}
		parts := form.File["files"]
		if len(parts) == 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "no files supplied", nil)
			return
		}

		uploads := make([]Upload, 0, len(parts))
		for _, part := range parts {
			name, err := util.SanitizeFileName(part.Filename)
			if err != nil {
				respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
				return
			}
			data, err := readPart(part)
			if err != nil {
				respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read "+name, nil)
				return
			}
			uploads = append(uploads, Upload{OriginalName: name, Data: data})
		}
		c.Set("fileCount", len(uploads))

		files := h.svc.Rename(c.Request.Context(), scheme, uploads)
		blob, err := archive.Build(files)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "archive_error", "failed to build archive", nil)
			return
		}

		c.Header("Content-Disposition", `attachment; filename="`+archiveDownloadName+`"`)
		c.Data(http.StatusOK, "application/zip", blob)
	}
}

func readPart(part *multipart.FileHeader) ([]byte, error) {
	f, err := part.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
