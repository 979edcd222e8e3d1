package ui

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"eisview/internal/errors"
)

func (s *Server) loadTemplates() error {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return errors.Wrap(err, "failed to parse templates")
	}
	s.router.SetHTMLTemplate(templates)
	return nil
}

func (s *Server) renderTemplate(c *gin.Context, name string, data gin.H) {
	c.HTML(http.StatusOK, name, data)
}
