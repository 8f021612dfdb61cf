package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"path/filepath"

	"bank-transactions/internal/dto"
	"bank-transactions/internal/errors"
	"bank-transactions/internal/models"
	"bank-transactions/internal/parser"
	"bank-transactions/internal/services"

	"github.com/labstack/echo/v4"
)

// ImportHandler handles batch import HTTP requests.
// Request paths are resolved inside importDir and may not leave it.
type ImportHandler struct {
	importService services.ImportServiceInterface
	importDir     string
}

// NewImportHandler creates a new import handler serving files under importDir
func NewImportHandler(importService services.ImportServiceInterface, importDir string) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		importDir:     importDir,
	}
}

// RunImport re-runs the batch import and replaces the stored working set
// @Summary Run a batch import
// @Description Imports the statement file at path, relative to the import directory,
// @Description or the configured file when path is omitted.
// @Description A failed import leaves the stored transactions untouched.
// @Tags Imports
// @Accept json
// @Produce json
// @Param request body dto.ImportRequest false "Import source"
// @Success 201 {object} dto.ImportResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Path outside the import directory"
// @Failure 422 {object} errors.ErrorResponse "IMPORT_001/002/003 - Import failed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /imports [post]
func (h *ImportHandler) RunImport(c echo.Context) error {
	var req dto.ImportRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
		}
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	var (
		batch *models.ImportBatch
		err   error
	)
	if req.Path == "" {
		batch, err = h.importService.ImportDefault(ctx)
	} else {
		if !filepath.IsLocal(req.Path) {
			return SendError(c, errors.ValidationInvalidFormat,
				errors.WithDetails("path must be relative to the import directory"))
		}
		batch, err = h.importService.ImportFile(ctx, filepath.Join(h.importDir, req.Path))
	}
	if err != nil {
		return sendImportError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewImportResponse(batch))
}

// sendImportError never echoes file contents: parser messages and rejected
// field values stay in the logs.
func sendImportError(c echo.Context, err error) error {
	var fieldErr *parser.FieldError
	switch {
	case stderrors.As(err, &fieldErr):
		return SendError(c, errors.ImportFieldInvalid, errors.WithDetails(
			fmt.Sprintf("record %d: field %q %s", fieldErr.Index, fieldErr.Field, fieldErr.Reason),
		))
	case stderrors.Is(err, parser.ErrFileUnreadable):
		return SendError(c, errors.ImportFileUnreadable)
	case stderrors.Is(err, parser.ErrFileUnparseable):
		return SendError(c, errors.ImportFileUnparseable)
	case stderrors.Is(err, parser.ErrFieldInvalid):
		return SendError(c, errors.ImportFieldInvalid)
	case stderrors.Is(err, services.ErrImportPathRequired):
		return SendError(c, errors.ImportSourceRequired)
	default:
		return SendSystemError(c, err)
	}
}
