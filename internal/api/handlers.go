package api

import (
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrtroute/mrtroute_core/internal/cache"
	"github.com/mrtroute/mrtroute_core/internal/db"
	"github.com/mrtroute/mrtroute_core/internal/graph"
	"github.com/mrtroute/mrtroute_core/internal/middleware"
	"github.com/mrtroute/mrtroute_core/internal/models"
)

// SnapshotLoader fetches the network config for a stage, typically from
// the Postgres store or the preset dataset.
type SnapshotLoader func(stage string) (graph.Config, error)

// Server serves route queries over the rail network. Graphs are built
// lazily per stage and memoized; each graph is immutable once built.
type Server struct {
	mu           sync.RWMutex
	graphs       map[string]*graph.RailGraph
	defaultStage string
	stages       []string
	load         SnapshotLoader
	cacheTTL     time.Duration
	checkDB      bool
	adminDB      *pgxpool.Pool
	adminKeyHash string
}

// NewServer creates a Server. stages lists the queryable stage names in
// chronological order; defaultStage is used when a request names none.
func NewServer(defaultStage string, stages []string, load SnapshotLoader) *Server {
	return &Server{
		graphs:       make(map[string]*graph.RailGraph),
		defaultStage: defaultStage,
		stages:       stages,
		load:         load,
		cacheTTL:     cache.LoadConfigFromEnv().TTL,
	}
}

// CheckDatabase includes the Postgres pool in /health. Only enabled when
// snapshots are served from the store.
func (s *Server) CheckDatabase(enabled bool) {
	s.checkDB = enabled
}

// EnableAdmin mounts the key-protected admin endpoints during Register.
// db may be nil when the service runs without Postgres; the query stats
// endpoint then stays unmounted.
func (s *Server) EnableAdmin(db *pgxpool.Pool, keyHash string) {
	s.adminDB = db
	s.adminKeyHash = keyHash
}

// Register mounts all routes on the app.
func (s *Server) Register(app *fiber.App) {
	app.Get("/health", s.Health)
	app.Get("/v1/route", s.Route)
	app.Get("/v1/directions", s.Directions)
	app.Get("/v1/stations", s.Stations)
	app.Get("/v1/stages", s.Stages)

	if s.adminKeyHash != "" {
		admin := app.Group("/v1/admin", middleware.RequireAdminKey(s.adminKeyHash))
		admin.Post("/reload", s.Reload)
		if s.adminDB != nil {
			admin.Get("/stats", s.QueryStats)
		}
	}
}

// Graph returns the memoized graph for a stage, building it on first use.
func (s *Server) Graph(stage string) (*graph.RailGraph, error) {
	s.mu.RLock()
	g, ok := s.graphs[stage]
	s.mu.RUnlock()
	if ok {
		return g, nil
	}

	cfg, err := s.load(stage)
	if err != nil {
		return nil, err
	}
	g, err = graph.New(cfg)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.graphs[stage]; ok {
		return existing, nil
	}
	s.graphs[stage] = g
	return g, nil
}

// Preload builds the default stage's graph ahead of the first request.
func (s *Server) Preload() error {
	_, err := s.Graph(s.defaultStage)
	return err
}

func (s *Server) knownStage(stage string) bool {
	for _, name := range s.stages {
		if name == stage {
			return true
		}
	}
	return false
}

// Health handles GET /health
func (s *Server) Health(c *fiber.Ctx) error {
	ctx := c.Context()

	checks := fiber.Map{}
	healthy := true

	if s.checkDB {
		dbStatus := "ok"
		if err := db.HealthCheck(ctx); err != nil {
			dbStatus = err.Error()
			healthy = false
		}
		checks["database"] = dbStatus
	}

	redisStatus := "ok"
	if err := cache.HealthCheck(ctx); err != nil {
		redisStatus = err.Error()
		healthy = false
	}
	checks["redis"] = redisStatus

	status := "healthy"
	httpStatus := fiber.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = fiber.StatusServiceUnavailable
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status": status,
		"checks": checks,
	})
}

// RouteResponse is the /v1/route response body.
type RouteResponse struct {
	Stage               string   `json:"stage"`
	Start               string   `json:"start"`
	End                 string   `json:"end"`
	Walk                bool     `json:"walk"`
	Stations            []string `json:"stations"`
	EdgeCosts           []int    `json:"edge_costs_seconds"`
	TotalSeconds        int      `json:"total_seconds"`
	PathDistanceKm      *float64 `json:"path_distance_km,omitempty"`
	HaversineDistanceKm *float64 `json:"haversine_distance_km,omitempty"`
	CircuityRatio       *float64 `json:"circuity_ratio,omitempty"`
}

// Route handles GET /v1/route?start=NS1&end=EW24[&walk=true][&stage=...]
func (s *Server) Route(c *fiber.Ctx) error {
	stage, start, end, walk, errResp := s.queryParams(c)
	if errResp != nil {
		return errResp
	}

	g, err := s.Graph(stage)
	if err != nil {
		return s.queryError(c, err)
	}

	path, err := s.findRoute(c, g, stage, start, end, walk)
	if err != nil {
		return s.queryError(c, err)
	}

	resp := RouteResponse{
		Stage:        stage,
		Start:        start,
		End:          end,
		Walk:         walk,
		Stations:     path.Nodes,
		EdgeCosts:    path.EdgeCosts,
		TotalSeconds: path.TotalCost,
	}
	if pathMetres, haversineMetres, err := g.PathAndHaversineDistance(*path); err == nil {
		pathKm, haversineKm := pathMetres/1000, haversineMetres/1000
		ratio := graph.CircuityRatio(pathMetres, haversineMetres)
		resp.PathDistanceKm = &pathKm
		resp.HaversineDistanceKm = &haversineKm
		resp.CircuityRatio = &ratio
	}
	return c.JSON(resp)
}

// Directions handles GET /v1/directions with the same parameters as Route,
// returning the human-readable journey steps.
func (s *Server) Directions(c *fiber.Ctx) error {
	stage, start, end, walk, errResp := s.queryParams(c)
	if errResp != nil {
		return errResp
	}

	g, err := s.Graph(stage)
	if err != nil {
		return s.queryError(c, err)
	}

	path, err := s.findRoute(c, g, stage, start, end, walk)
	if err != nil {
		return s.queryError(c, err)
	}

	steps, err := g.MakeDirections(*path)
	if err != nil {
		return s.queryError(c, err)
	}
	return c.JSON(fiber.Map{
		"stage":         stage,
		"start":         start,
		"end":           end,
		"walk":          walk,
		"steps":         steps,
		"total_seconds": path.TotalCost,
	})
}

// Stations handles GET /v1/stations[?stage=...]
func (s *Server) Stations(c *fiber.Ctx) error {
	stage := c.Query("stage", s.defaultStage)
	if !s.knownStage(stage) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown stage: " + stage,
		})
	}
	g, err := s.Graph(stage)
	if err != nil {
		return s.queryError(c, err)
	}

	type stationEntry struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	stations := g.Stations()
	list := make([]stationEntry, 0, len(stations))
	for code, name := range stations {
		list = append(list, stationEntry{Code: code, Name: name})
	}
	sort.Slice(list, func(i, j int) bool {
		return models.CompareStationCodes(list[i].Code, list[j].Code) < 0
	})
	return c.JSON(fiber.Map{
		"stage":    stage,
		"stations": list,
	})
}

// Stages handles GET /v1/stages
func (s *Server) Stages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"default": s.defaultStage,
		"stages":  s.stages,
	})
}

// Reload handles POST /v1/admin/reload, dropping every memoized graph so
// the next query rebuilds from the snapshot source.
func (s *Server) Reload(c *fiber.Ctx) error {
	s.mu.Lock()
	s.graphs = make(map[string]*graph.RailGraph)
	s.mu.Unlock()

	if err := s.Preload(); err != nil {
		return s.queryError(c, err)
	}
	log.Printf("Graphs reloaded, default stage %s rebuilt", s.defaultStage)
	return c.JSON(fiber.Map{
		"status":  "reloaded",
		"default": s.defaultStage,
	})
}

// QueryStats handles GET /v1/admin/stats[?days=7]
func (s *Server) QueryStats(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days < 1 || days > 90 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "days must be between 1 and 90",
		})
	}
	stats, err := middleware.DailyQueryStats(c.Context(), s.adminDB, days)
	if err != nil {
		log.Printf("Query stats failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
	return c.JSON(fiber.Map{
		"days":  days,
		"stats": stats,
	})
}

func (s *Server) queryParams(c *fiber.Ctx) (stage, start, end string, walk bool, errResp error) {
	start = c.Query("start")
	end = c.Query("end")
	if start == "" || end == "" {
		return "", "", "", false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing required parameters: start and end",
		})
	}
	stage = c.Query("stage", s.defaultStage)
	if !s.knownStage(stage) {
		return "", "", "", false, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown stage: " + stage,
		})
	}
	walk = c.QueryBool("walk", false)
	return stage, start, end, walk, nil
}

// findRoute computes a shortest path with cache-aside: check Redis, take a
// short lock to avoid duplicate computation, fall through to the graph when
// the cache is unavailable.
func (s *Server) findRoute(c *fiber.Ctx, g *graph.RailGraph, stage, start, end string, walk bool) (*models.Path, error) {
	ctx := c.Context()
	cacheKey := cache.RouteKey(stage, start, end, walk)
	lockKey := cache.LockKey(cacheKey)

	c.Locals("cache_hit", false)
	if cached, err := cache.GetRoute(ctx, cacheKey); err == nil && cached != nil {
		c.Locals("cache_hit", true)
		return cached, nil
	}

	acquired, err := cache.AcquireLock(ctx, lockKey, 5*time.Second)
	if err != nil {
		log.Printf("Failed to acquire lock: %v", err)
		// Continue without lock (degrade gracefully)
	} else if !acquired {
		if cached, err := cache.WaitForLock(ctx, cacheKey, 3*time.Second); err == nil && cached != nil {
			c.Locals("cache_hit", true)
			return cached, nil
		}
	}
	defer func() {
		if acquired {
			if err := cache.ReleaseLock(ctx, lockKey); err != nil {
				log.Printf("Failed to release lock: %v", err)
			}
		}
	}()

	path, err := g.FindShortestPath(start, end, walk)
	if err != nil {
		return nil, err
	}

	if err := cache.SetRoute(ctx, cacheKey, &path, s.cacheTTL); err != nil {
		log.Printf("Failed to cache route: %v", err)
	}
	return &path, nil
}

func (s *Server) queryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidStationCode):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, graph.ErrUnknownStation),
		errors.Is(err, graph.ErrNoPath):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("Route query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}
