package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/trackr/internal/models"
	projectservice "github.com/thenoetrevino/trackr/internal/services/project"
)

type statusReq struct {
	Status string `json:"status"`
}

// list answers GET /api/v1/projects through the API stub, so simulated
// latency and failures apply. Optional ?search= and ?status= narrow the result.
func (s *Server) list(c *gin.Context) {
	filter, err := models.ParseStatusFilter(c.DefaultQuery("status", string(models.FilterAll)))
	if err != nil {
		s.writeError(c, "list", err)
		return
	}

	projects, err := s.client.GetProjects(c.Request.Context())
	if err != nil {
		s.writeError(c, "list", err)
		return
	}
	s.metrics.ObserveAPICall("list", "ok")
	s.metrics.SetProjectsListed(len(projects))

	projects = projectservice.Filter(projects, c.Query("search"), filter)
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

// get reads one project straight from the store
func (s *Server) get(c *gin.Context) {
	p, err := s.store.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, "get", err)
		return
	}
	s.metrics.ObserveAPICall("get", "ok")
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (s *Server) updateStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	status, err := models.ParseStatus(req.Status)
	if err != nil {
		s.writeError(c, "update_status", err)
		return
	}

	p, err := s.client.UpdateProjectStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		s.writeError(c, "update_status", err)
		return
	}
	s.metrics.ObserveAPICall("update_status", "ok")
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (s *Server) create(c *gin.Context) {
	var input models.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := s.client.AddProject(c.Request.Context(), input)
	if err != nil {
		s.writeError(c, "create", err)
		return
	}
	s.metrics.ObserveAPICall("create", "ok")
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

// writeError maps domain errors to HTTP status codes
func (s *Server) writeError(c *gin.Context, operation string, err error) {
	code, outcome := errorStatus(err)
	s.metrics.ObserveAPICall(operation, outcome)

	if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable {
		s.logger.Error("request failed", "operation", operation, "error", err)
	}
	c.JSON(code, gin.H{"ok": false, "error": err.Error()})
}

func errorStatus(err error) (int, string) {
	switch {
	case models.IsValidationError(err):
		return http.StatusBadRequest, "invalid"
	case errors.Is(err, models.ErrProjectNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, models.ErrFetchFailed):
		return http.StatusServiceUnavailable, "fetch_failed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "canceled"
	default:
		return http.StatusInternalServerError, "error"
	}
}
