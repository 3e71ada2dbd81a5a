// Package http serves a read-only preview of the generated corpus, useful
// while iterating on generation settings.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pzielak/workforge/internal/model"
	"github.com/pzielak/workforge/internal/store"
)

type Handler struct {
	store *store.ArtifactStore
	log   zerolog.Logger
}

func NewHandler(artifacts *store.ArtifactStore, log zerolog.Logger) *Handler {
	return &Handler{store: artifacts, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/health", h.health)
	router.GET("/profiles", h.profiles)
	router.GET("/projects", h.projects)
	router.GET("/rfps", h.rfps)
	router.GET("/stats", h.stats)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) profiles(c *gin.Context) {
	profiles, err := h.store.LoadProfiles()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(profiles))
}

func (h *Handler) projects(c *gin.Context) {
	projects, err := h.store.LoadProjects()
	if err != nil {
		h.fail(c, err)
		return
	}
	if status := c.Query("status"); status != "" {
		var filtered []model.Project
		for _, project := range projects {
			if string(project.Status) == status {
				filtered = append(filtered, project)
			}
		}
		projects = filtered
	}
	c.JSON(http.StatusOK, orEmpty(projects))
}

func (h *Handler) rfps(c *gin.Context) {
	rfps, err := h.store.LoadRFPs()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(rfps))
}

func (h *Handler) stats(c *gin.Context) {
	profiles, err := h.store.LoadProfiles()
	if err != nil {
		h.fail(c, err)
		return
	}
	projects, err := h.store.LoadProjects()
	if err != nil {
		h.fail(c, err)
		return
	}
	rfps, err := h.store.LoadRFPs()
	if err != nil {
		h.fail(c, err)
		return
	}

	historical, staffed, assignments := 0, 0, 0
	for _, project := range projects {
		if project.Status == model.ProjectStatusCompleted {
			historical++
		}
		if len(project.AssignedProgrammers) > 0 {
			staffed++
		}
		assignments += len(project.AssignedProgrammers)
	}

	lastID := 0
	if len(profiles) > 0 {
		lastID = profiles[len(profiles)-1].ID
	}

	c.JSON(http.StatusOK, gin.H{
		"profiles":            len(profiles),
		"last_profile_id":     lastID,
		"projects":            len(projects),
		"historical_projects": historical,
		"active_projects":     len(projects) - historical,
		"staffed_projects":    staffed,
		"assignments":         assignments,
		"rfps":                len(rfps),
	})
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.log.Error().Err(err).Msg("artifact read failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
