package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mugeshkumards/resume-entity-extractor/extractor"
	"github.com/mugeshkumards/resume-entity-extractor/parsers"
	"github.com/mugeshkumards/resume-entity-extractor/services"
	"github.com/mugeshkumards/resume-entity-extractor/utils"
)

// ExtractController exposes the extraction core over HTTP.
type ExtractController struct {
	extractor *extractor.Extractor
	s3Service *services.S3Service
}

// NewExtractController creates the controller. s3Service may be nil, which
// disables the S3 endpoint with a 503 instead of failing startup.
func NewExtractController(ex *extractor.Extractor, s3Service *services.S3Service) *ExtractController {
	return &ExtractController{
		extractor: ex,
		s3Service: s3Service,
	}
}

type extractRequest struct {
	Text string `json:"text"`
}

type exportRequest struct {
	Text   string `json:"text"`
	Format string `json:"format"`
}

type s3ExtractRequest struct {
	Key string `json:"key"`
}

// Health reports liveness.
func (c *ExtractController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ExtractFromText runs entity extraction over pasted resume text.
func (c *ExtractController) ExtractFromText(ctx *gin.Context) {
	var req extractRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request body", err)
		return
	}
	if req.Text == "" {
		utils.BadRequestError(ctx, "Field 'text' is required", nil)
		return
	}

	result := c.extractor.ExtractEntities(req.Text)
	utils.LogInfo("entities extracted", gin.H{"skills": len(result.Skills), "source": "text"})

	ctx.JSON(http.StatusOK, result)
}

// ParseResume accepts a multipart resume upload (PDF, DOCX or TXT), turns
// it into text and extracts entities. The file parsers report failures as
// text; extraction still runs over whatever string they produce.
func (c *ExtractController) ParseResume(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("resume")
	if err != nil {
		utils.BadRequestError(ctx, "Could not get uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to read uploaded file", err)
		return
	}

	text := parsers.ExtractTextFromFile(header.Filename, data)
	result := c.extractor.ExtractEntities(text)
	utils.LogInfo("resume parsed", gin.H{"filename": header.Filename, "bytes": len(data)})

	ctx.JSON(http.StatusOK, gin.H{
		"text":     text,
		"entities": result,
	})
}

// ExportResult extracts entities from the given text and returns them as a
// downloadable attachment in the requested format.
func (c *ExtractController) ExportResult(ctx *gin.Context) {
	var req exportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request body", err)
		return
	}
	if req.Text == "" {
		utils.BadRequestError(ctx, "Field 'text' is required", nil)
		return
	}

	result := c.extractor.ExtractEntities(req.Text)

	switch req.Format {
	case "json":
		data, err := result.ToJSON()
		if err != nil {
			utils.InternalServerError(ctx, "Failed to build JSON export", err)
			return
		}
		sendAttachment(ctx, "resume_data.json", "application/json", data)
	case "csv":
		data, err := utils.BuildCSV(result)
		if err != nil {
			utils.InternalServerError(ctx, "Failed to build CSV export", err)
			return
		}
		sendAttachment(ctx, "resume_data.csv", "text/csv", data)
	case "txt":
		sendAttachment(ctx, "resume_report.txt", "text/plain", []byte(utils.BuildTextReport(result)))
	case "docx":
		data, err := utils.BuildWordReport(result)
		if err != nil {
			utils.InternalServerError(ctx, "Failed to build DOCX export", err)
			return
		}
		sendAttachment(ctx, "resume_report.docx",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document", data)
	default:
		utils.BadRequestError(ctx, fmt.Sprintf("Unsupported export format %q", req.Format), nil)
	}
}

// ExtractFromS3 downloads a stored resume by object key and extracts
// entities from it.
func (c *ExtractController) ExtractFromS3(ctx *gin.Context) {
	if c.s3Service == nil {
		utils.ServiceUnavailableError(ctx, "S3 storage is not configured")
		return
	}

	var req s3ExtractRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request body", err)
		return
	}
	if req.Key == "" {
		utils.BadRequestError(ctx, "Field 'key' is required", nil)
		return
	}

	data, err := c.s3Service.DownloadResume(req.Key)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to download resume", err)
		return
	}

	text := parsers.ExtractTextFromFile(req.Key, data)
	result := c.extractor.ExtractEntities(text)
	utils.LogInfo("resume extracted from S3", gin.H{"key": req.Key})

	ctx.JSON(http.StatusOK, gin.H{
		"text":     text,
		"entities": result,
	})
}

func sendAttachment(ctx *gin.Context, filename, contentType string, data []byte) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, contentType, data)
}
