package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
	"github.com/uswah23/smart-bike-map/internal/repository/boundary"
	"github.com/uswah23/smart-bike-map/internal/service/signals"
)

// defaultBoundaryName labels the boundary feature.
const defaultBoundaryName = "UTHM"

// errArchiveDisabled is reported when no fix archive is configured.
var errArchiveDisabled = errors.New("fix archive is not configured")

type trackerService interface {
	Snapshot(ctx context.Context) geofence.Snapshot
	TrailLine(ctx context.Context) orb.LineString
	PressOverride(ctx context.Context, actor *geofence.Actor) (geofence.Snapshot, bool)
	Boundary() *geofence.Boundary
}

type signalFeed interface {
	Since(after uint64) []signals.Signal
	Last() uint64
}

type historyService interface {
	History(ctx context.Context, start, end time.Time) ([]geofence.Position, error)
}

// Handler serves the renderer API.
type Handler struct {
	tracker      trackerService
	feed         signalFeed
	history      historyService
	boundaryName string
}

// Option configures a Handler.
type Option func(*Handler)

// WithHistory enables GET /history.
func WithHistory(h historyService) Option {
	return func(handler *Handler) {
		handler.history = h
	}
}

// WithBoundaryName sets the name property of the boundary feature.
func WithBoundaryName(name string) Option {
	return func(handler *Handler) {
		if name != "" {
			handler.boundaryName = name
		}
	}
}

// NewHandler creates the renderer API handler.
func NewHandler(tracker trackerService, feed signalFeed, opts ...Option) *Handler {
	h := &Handler{
		tracker:      tracker,
		feed:         feed,
		boundaryName: defaultBoundaryName,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Register mounts the API routes on r.
func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/tracker", h.GetTracker)
	r.POST("/override", h.PressOverride)
	r.GET("/signals", h.GetSignals)
	r.GET("/boundary", h.GetBoundary)
	r.GET("/trail", h.GetTrail)
	r.GET("/history", h.GetHistory)
}

// GetTracker returns the tracker snapshot.
func (h *Handler) GetTracker(c *gin.Context) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, toTrackerResponse(h.tracker.Snapshot(ctx)))
}

// PressOverride forwards an override press from a renderer.
func (h *Handler) PressOverride(c *gin.Context) {
	var req overrideRequest

	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid override request"})

			return
		}
	}

	actor := &geofence.Actor{
		Hostname: req.Hostname,
		Username: req.Username,
	}

	if actor.Hostname == "" {
		actor.Hostname = c.ClientIP()
	}

	if actor.Username == "" {
		actor.Username = "web"
	}

	snapshot, applied := h.tracker.PressOverride(c.Request.Context(), actor)

	c.JSON(http.StatusOK, overrideResponse{
		Applied: applied,
		State:   toTrackerResponse(snapshot),
	})
}

// GetSignals returns UI signals after the given sequence number.
func (h *Handler) GetSignals(c *gin.Context) {
	var after uint64

	if raw := c.Query("after"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid after parameter"})

			return
		}

		after = parsed
	}

	list := h.feed.Since(after)

	response := signalsResponse{
		Last:    h.feed.Last(),
		Signals: make([]signalResponse, len(list)),
	}

	for i, s := range list {
		response.Signals[i] = toSignalResponse(s)
	}

	c.JSON(http.StatusOK, response)
}

// GetBoundary returns the geofence as a GeoJSON feature.
func (h *Handler) GetBoundary(c *gin.Context) {
	c.JSON(http.StatusOK, boundary.Feature(h.tracker.Boundary(), h.boundaryName))
}

// GetTrail returns the recorded path as a GeoJSON LineString feature.
func (h *Handler) GetTrail(c *gin.Context) {
	line := h.tracker.TrailLine(c.Request.Context())

	feature := geojson.NewFeature(line)
	feature.Properties["fixes"] = len(line)

	c.JSON(http.StatusOK, feature)
}

// GetHistory returns archived fixes between start and end, unix seconds.
func (h *Handler) GetHistory(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errArchiveDisabled.Error()})

		return
	}

	start, err := strconv.ParseInt(c.Query("start"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start parameter"})

		return
	}

	end, err := strconv.ParseInt(c.Query("end"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end parameter"})

		return
	}

	if end < start {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end is before start"})

		return
	}

	positions, err := h.history.History(c.Request.Context(), time.Unix(start, 0), time.Unix(end, 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})

		return
	}

	results := make([]positionResponse, len(positions))
	for i, p := range positions {
		results[i] = toPositionResponse(p)
	}

	c.JSON(http.StatusOK, results)
}
