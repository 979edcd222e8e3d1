package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleAbout serves the embedded help page, rendered from markdown.
func (s *Server) handleAbout(c *gin.Context) {
	source, err := embeddedFiles.ReadFile("help.md")
	if err != nil {
		s.logger.Error("[About] Help page missing: %v", err)
		c.String(http.StatusInternalServerError, "help page not available")
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	body := markdown.ToHTML(source, p, renderer)

	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}
