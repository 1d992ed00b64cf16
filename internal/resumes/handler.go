package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.GET("/:id/pdf", h.download)
	rg.POST("/:id/email", h.resendEmail)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var in ResumeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Personal details are required", err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create resume", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"id":        result.Resume.ID,
		"message":   "Resume created successfully",
		"data":      toResponse(result.Resume),
		"pdfUrl":    PDFURL(result.Resume.PDFFilename),
		"emailSent": result.EmailSent,
	})
}

func (h *Handler) list(c *gin.Context) {
	records, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resumes", nil)
		return
	}

	resp := make([]ResumeResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, toResponse(r))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	r, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		return
	}
	respond.OK(c, toResponse(r))
}

func (h *Handler) download(c *gin.Context) {
	path, downloadName, err := h.Svc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrFileMissing):
			respond.Error(c, http.StatusNotFound, "not_found", "PDF file not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to download resume PDF", nil)
		}
		return
	}
	c.FileAttachment(path, downloadName)
}

func (h *Handler) resendEmail(c *gin.Context) {
	err := h.Svc.Resend(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrPDFNotGenerated):
			respond.Error(c, http.StatusNotFound, "not_found", "PDF not generated for this resume", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to send resume PDF via email", nil)
		}
		return
	}
	respond.OK(c, gin.H{"message": "Resume PDF sent successfully to your email"})
}

func (h *Handler) update(c *gin.Context) {
	var in ResumeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update resume", nil)
		return
	}

	respond.OK(c, gin.H{
		"message": "Resume updated successfully",
		"data":    toResponse(result.Resume),
		"pdfUrl":  PDFURL(result.PDFFilename),
	})
}

func (h *Handler) delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete resume", nil)
		return
	}
	respond.OK(c, gin.H{"message": "Resume deleted successfully"})
}
