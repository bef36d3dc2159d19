package compress

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/filepress/service/internal/converter"
	"github.com/filepress/service/internal/response"
)

// Machine-readable error codes for the compression routes.
const (
	CodeNoFile      = "NO_FILE"
	CodePDFFailed   = "PDF_COMPRESSION_FAILED"
	CodeImageFailed = "IMAGE_COMPRESSION_FAILED"
	CodeVideoFailed = "VIDEO_COMPRESSION_FAILED"
)

// Handler holds HTTP handlers for the compression endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new compression Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type compressionResponse struct {
	Success        bool   `json:"success"        example:"true"`
	DownloadURL    string `json:"downloadUrl"    example:"/download?file=compressed-1756500000000-a1b2c3d4-report.pdf"`
	OriginalSize   int64  `json:"originalSize"   example:"1048576"`
	CompressedSize int64  `json:"compressedSize" example:"524288"`
	Savings        int    `json:"savings"        example:"50"`
}

// CompressPDF godoc
//
//	@Summary		Compress a PDF
//	@Description	Uploads a PDF, rewrites it through the PDF engine, and returns a one-time download reference.
//	@Tags			compress
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"PDF to compress"
//	@Param			quality	formData	string	false	"Accepted for API symmetry; not applied by the PDF engine"
//	@Success		200		{object}	compressionResponse
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/api/compress-pdf [post]
func (h *Handler) CompressPDF(w http.ResponseWriter, r *http.Request) {
	h.compress(w, r, converter.KindPDF, CodePDFFailed, "Failed to compress PDF")
}

// CompressImage godoc
//
//	@Summary		Compress an image
//	@Description	Uploads an image and re-encodes it as JPEG at the requested quality.
//	@Tags			compress
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image to compress"
//	@Param			quality	formData	int		false	"Encoder quality 1-100 (default 80)"
//	@Success		200		{object}	compressionResponse
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/api/compress-image [post]
func (h *Handler) CompressImage(w http.ResponseWriter, r *http.Request) {
	h.compress(w, r, converter.KindImage, CodeImageFailed, "Failed to compress image")
}

// CompressVideo godoc
//
//	@Summary		Compress a video
//	@Description	Uploads a video and transcodes it at the tier named by quality. "high" compresses hardest; unknown values fall back to "medium".
//	@Tags			compress
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Video to compress"
//	@Param			quality	formData	string	false	"Compression tier: high, medium, or low"
//	@Success		200		{object}	compressionResponse
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/api/compress-video [post]
func (h *Handler) CompressVideo(w http.ResponseWriter, r *http.Request) {
	h.compress(w, r, converter.KindVideo, CodeVideoFailed, "Failed to compress video")
}

// compress is the shared upload → convert → respond pipeline. failCode
// and failMessage shape the 500 body for the specific route.
func (h *Handler) compress(w http.ResponseWriter, r *http.Request, kind converter.Kind, failCode, failMessage string) {
	up, err := h.svc.receiveFile(w, r, "file")
	if err != nil {
		if errors.Is(err, ErrNoFile) {
			response.BadRequest(w, CodeNoFile, "No file uploaded")
			return
		}
		log.Printf("[%s] %s upload error: %v", chiMiddleware.GetReqID(r.Context()), kind, err)
		response.InternalError(w, failCode, failMessage)
		return
	}

	quality := r.FormValue("quality")

	result, err := h.svc.Process(r.Context(), kind, quality, up)
	if err != nil {
		log.Printf("[%s] %s compression error: %v", chiMiddleware.GetReqID(r.Context()), kind, err)
		response.InternalError(w, failCode, failMessage)
		return
	}

	response.JSON(w, http.StatusOK, compressionResponse{
		Success:        true,
		DownloadURL:    "/download?file=" + url.QueryEscape(result.DownloadName),
		OriginalSize:   result.OriginalSize,
		CompressedSize: result.CompressedSize,
		Savings:        result.Savings,
	})
}
