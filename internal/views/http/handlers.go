package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoSim-25-26J-441/seqr-views/internal/auth"
	"github.com/GoSim-25-26J-441/seqr-views/internal/views/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) me(c *gin.Context) {
	access := auth.AccessFrom(c)
	if access == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": h.svc.User(access)})
}

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.svc.Projects(c.Request.Context(), auth.AccessFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

func (h *Handler) projectDetails(c *gin.Context) {
	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	details, err := h.svc.ProjectDetails(c.Request.Context(), auth.AccessFrom(c), c.Param("projectGuid"), opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": details.Project, "families": details.Families,
		"individuals": details.Individuals, "samples": details.Samples, "datasets": details.Datasets})
}

func (h *Handler) family(c *gin.Context) {
	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	family, err := h.svc.Family(c.Request.Context(), auth.AccessFrom(c), c.Param("familyGuid"), opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "family": family})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": domain.ErrForbidden.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
	default:
		h.logger.Error("view request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("user", auth.Username(c)),
			slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
}

func parseOptions(c *gin.Context) (domain.Options, error) {
	opts := domain.DefaultOptions()
	for name, dst := range map[string]*bool{
		"analysedBy":      &opts.AnalysedBy,
		"individualGuids": &opts.IndividualGuids,
		"sampleType":      &opts.SampleType,
	} {
		raw, ok := c.GetQuery(name)
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("invalid %s: %q", name, raw)
		}
		*dst = v
	}
	return opts, nil
}
