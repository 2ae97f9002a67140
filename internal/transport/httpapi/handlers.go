package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/internal/service/briefing"
	"github.com/sandevgo/tuskmemo/internal/service/render"
	"github.com/sandevgo/tuskmemo/internal/source/bundle"
)

const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) handleListBundles(c *gin.Context) {
	names, err := s.briefing.Bundles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"bundles": names,
	})
}

func (s *Server) handleBundleMemo(c *gin.Context) {
	format, ok := outputFormat(c)
	if !ok {
		return
	}

	m, err := s.briefing.MemoFor(c.Request.Context(), briefing.TransportHTTP, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondMemo(c, format, m)
}

func (s *Server) handleCreateMemo(c *gin.Context) {
	format, ok := outputFormat(c)
	if !ok {
		return
	}

	input, err := bundle.FormatFromContentType(c.ContentType())
	if err != nil {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{
			"success": false,
			"error":   "content type must be application/json or application/yaml",
		})
		return
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes)
	b, err := bundle.Decode(body, input)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "error": "bundle too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	m, err := s.briefing.Memo(c.Request.Context(), briefing.TransportHTTP, b)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMemo(c, format, m)
}

func outputFormat(c *gin.Context) (string, bool) {
	format := strings.ToLower(c.DefaultQuery("format", formatJSON))
	switch format {
	case formatJSON, formatMarkdown, formatHTML:
		return format, true
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "format must be one of json, markdown, html",
	})
	return "", false
}

func respondMemo(c *gin.Context, format string, m *core.Memo) {
	switch format {
	case formatMarkdown:
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(render.Markdown(m)))
	case formatHTML:
		page, err := render.HTML(m)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	default:
		c.JSON(http.StatusOK, m)
	}
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"
	switch briefing.Reason(err) {
	case briefing.ReasonInvalidInput:
		status, msg = http.StatusBadRequest, err.Error()
	case briefing.ReasonNotFound:
		status, msg = http.StatusNotFound, err.Error()
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   msg,
	})
}
