package handlers

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careerfuture/backend/cv"
	"github.com/careerfuture/backend/logging"
	"github.com/careerfuture/backend/models"
)

// Archive stores uploaded CVs and returns their location.
type Archive interface {
	UploadCV(ctx context.Context, filename string, content []byte) (string, error)
}

// CVHandler handles CV uploads
type CVHandler struct {
	analyzer *cv.Analyzer
	archive  Archive
	maxBytes int64
	logger   *zap.Logger
}

// NewCVHandler creates a new CV handler. archive may be nil, in which case
// uploads are analysed but not stored.
func NewCVHandler(analyzer *cv.Analyzer, archive Archive, maxUploadMB int, logger *zap.Logger) *CVHandler {
	return &CVHandler{
		analyzer: analyzer,
		archive:  archive,
		maxBytes: int64(maxUploadMB) << 20,
		logger:   logger.With(zap.String("component", "cv")),
	}
}

// UploadCV accepts a CV file and returns an analysis
// @Summary Upload CV
// @Description Upload a CV (PDF, DOCX, HTML or text) and get an analysis with the skills found in it
// @Tags CV
// @Accept multipart/form-data
// @Produce json
// @Param cv_file formData file true "CV file"
// @Success 200 {object} models.UploadCVResponse "CV analysis"
// @Failure 400 {object} models.ErrorResponse "No file uploaded"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Router /upload-cv [post]
func (h *CVHandler) UploadCV(c *gin.Context) {
	log := logging.FromContext(c, h.logger)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)

	header, err := c.FormFile("cv_file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			log.Warn("CV upload too large", zap.Int64("limit", tooLarge.Limit))
			respondError(c, http.StatusRequestEntityTooLarge, "File too large")
		case h.emptyFilePart(c):
			log.Warn("CV upload attempted with empty filename")
			respondError(c, http.StatusBadRequest, "No file selected")
		default:
			log.Warn("CV upload attempted without file", zap.Error(err))
			respondError(c, http.StatusBadRequest, "No file uploaded")
		}
		return
	}
	if header.Filename == "" {
		respondError(c, http.StatusBadRequest, "No file selected")
		return
	}

	content, err := readUpload(header)
	if err != nil {
		log.Error("failed to read CV upload", zap.String("filename", header.Filename), zap.Error(err))
		respondError(c, http.StatusBadRequest, "Failed to read CV file")
		return
	}

	log.Info("CV upload received", zap.String("filename", header.Filename), zap.Int("bytes", len(content)))

	resp := models.UploadCVResponse{
		Status:   models.StatusSuccess,
		Message:  cv.UploadMessage(header.Filename),
		Analysis: h.analyzer.Analyze(header.Filename, content),
	}

	if h.archive != nil {
		url, err := h.archive.UploadCV(c.Request.Context(), header.Filename, content)
		if err != nil {
			log.Error("failed to archive CV", zap.String("filename", header.Filename), zap.Error(err))
		} else {
			resp.StoredURL = url
		}
	}

	log.Info("CV analysis completed", zap.String("filename", header.Filename))
	c.JSON(http.StatusOK, resp)
}

// emptyFilePart reports whether cv_file was sent without a filename. Such a
// part is parsed as a plain form value rather than a file.
func (h *CVHandler) emptyFilePart(c *gin.Context) bool {
	if c.Request.MultipartForm == nil {
		return false
	}
	_, ok := c.Request.MultipartForm.Value["cv_file"]
	return ok
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
