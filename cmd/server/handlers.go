package main

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/thebartekbanach/canvas/pkg/images"
)

const uploadFieldName = "image"

type errorResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

type uploadResponse struct {
	Hash string `json:"hash"`
}

type handlers struct {
	images images.ImageService
	logger *logrus.Logger
}

func (h *handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// upload stores the first multipart part, which must be the image field.
// Remaining parts are never read.
func (h *handlers) upload(c echo.Context) error {
	reader, err := c.Request().MultipartReader()
	if err != nil {
		return images.BadRequest("expected a multipart/form-data body", err)
	}

	part, err := reader.NextPart()
	if err != nil {
		if tooLarge(err) {
			return err
		}
		return images.BadRequest("missing image field", err)
	}
	defer part.Close()

	if part.FormName() != uploadFieldName {
		return images.BadRequest("the first field must be named "+uploadFieldName, nil)
	}

	data, err := io.ReadAll(part)
	if err != nil {
		if tooLarge(err) {
			return err
		}
		return images.BadRequest("could not read image field", err)
	}

	hash, err := h.images.Upload(c.Request().Context(), data)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, uploadResponse{Hash: hash})
}

func (h *handlers) render(c echo.Context) error {
	hash := c.Param("hash")
	// Presence is enough, an empty value still counts.
	_, conditional := c.Request().Header[http.CanonicalHeaderKey("If-None-Match")]

	rendition, err := h.images.Render(c.Request().Context(), hash, c.QueryParams(), conditional)
	if err != nil {
		return err
	}

	header := c.Response().Header()
	for name, values := range rendition.Headers {
		header[name] = values
	}

	if rendition.Status == images.RenditionNotModified {
		return c.NoContent(http.StatusNotModified)
	}

	return c.Blob(http.StatusOK, rendition.Headers.Get("Content-Type"), rendition.Body)
}

func (h *handlers) describe(c echo.Context) error {
	info, err := h.images.Describe(c.Request().Context(), c.Param("hash"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, info)
}

func tooLarge(err error) bool {
	var httpErr *echo.HTTPError
	return errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge
}

// statusFor maps every service error kind onto an HTTP status.
func statusFor(kind images.ErrorKind) int {
	switch kind {
	case images.KindBadRequest:
		return http.StatusBadRequest
	case images.KindNotFound:
		return http.StatusNotFound
	case images.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorHandler renders every failure as {"status_code", "message"}.
func (h *handlers) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var serviceErr *images.Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &serviceErr):
		status = statusFor(serviceErr.Kind)
		message = serviceErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if text, ok := httpErr.Message.(string); ok {
			message = text
		} else {
			message = http.StatusText(status)
		}
	}

	if status >= http.StatusInternalServerError {
		h.logger.WithError(err).WithField("path", c.Request().URL.Path).Error("request failed")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, errorResponse{StatusCode: status, Message: message})
	}
	if writeErr != nil {
		h.logger.WithError(writeErr).Warn("could not write error response")
	}
}
