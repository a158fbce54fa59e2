// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/trackflow/internal/core"
	"github.com/carterperez-dev/trackflow/internal/media"
	"github.com/carterperez-dev/trackflow/internal/submission"
	"github.com/carterperez-dev/trackflow/internal/user"
)

// DataExporter feeds the master-dev export dump. Users come back in
// their sanitized response form so the dump never carries password
// hashes.
type DataExporter interface {
	ListAllUsers(ctx context.Context) ([]user.User, error)
	ListAllSubmissions(ctx context.Context) ([]submission.Submission, error)
	ListAllMedia(ctx context.Context) ([]media.Media, error)
}

// ExportSources bundles the per-domain services into a DataExporter.
type ExportSources struct {
	Users       *user.Service
	Submissions *submission.Service
	Media       *media.Service
}

func (e ExportSources) ListAllUsers(ctx context.Context) ([]user.User, error) {
	return e.Users.ListAll(ctx)
}

func (e ExportSources) ListAllSubmissions(ctx context.Context) ([]submission.Submission, error) {
	return e.Submissions.ListAll(ctx)
}

func (e ExportSources) ListAllMedia(ctx context.Context) ([]media.Media, error) {
	return e.Media.ListAll(ctx)
}

type Handler struct {
	dbStats    func() sql.DBStats
	redisStats func() *redis.PoolStats
	redisPing  func(ctx context.Context) error
	dbPing     func(ctx context.Context) error
	exporter   DataExporter
}

type HandlerConfig struct {
	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
	RedisPing  func(ctx context.Context) error
	DBPing     func(ctx context.Context) error
	Exporter   DataExporter
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		dbStats:    cfg.DBStats,
		redisStats: cfg.RedisStats,
		redisPing:  cfg.RedisPing,
		dbPing:     cfg.DBPing,
		exporter:   cfg.Exporter,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly, masterDevOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/stats", h.GetSystemStats)
		r.Get("/stats/db", h.GetDatabaseStats)
		r.Get("/stats/redis", h.GetRedisStats)
		r.Get("/stats/runtime", h.GetRuntimeStats)

		r.Route("/system", func(r chi.Router) {
			r.Use(masterDevOnly)

			r.Get("/export-data", h.ExportData)
			r.Post("/clear-cache", h.ClearCache)
			r.Post("/emergency-reset", h.EmergencyReset)
		})
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dbHealthy := true
	if h.dbPing != nil {
		if err := h.dbPing(ctx); err != nil {
			dbHealthy = false
		}
	}

	redisHealthy := true
	if h.redisPing != nil {
		if err := h.redisPing(ctx); err != nil {
			redisHealthy = false
		}
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	response := SystemStatsResponse{
		Database: DatabaseStatus{
			Healthy: dbHealthy,
			Stats:   h.getDBStats(),
		},
		Redis: RedisStatus{
			Healthy: redisHealthy,
			Stats:   h.getRedisStats(),
		},
		Runtime: RuntimeStats{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
			MemAlloc:     memStats.Alloc,
			MemSys:       memStats.Sys,
			NumGC:        memStats.NumGC,
		},
	}

	core.OK(w, response)
}

func (h *Handler) GetDatabaseStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.getDBStats())
}

func (h *Handler) GetRedisStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.getRedisStats())
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	response := RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	}

	core.OK(w, response)
}

// ExportData streams a full platform dump as a JSON attachment.
// Reserved for master_dev; users are sanitized before serialization.
func (h *Handler) ExportData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.exporter.ListAllUsers(ctx)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	submissions, err := h.exporter.ListAllSubmissions(ctx)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	mediaRecords, err := h.exporter.ListAllMedia(ctx)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	dump := ExportDump{
		ExportedAt:  time.Now().UTC(),
		Users:       user.ToUserResponseList(users),
		Submissions: submission.ToSubmissionResponseList(submissions),
		Media:       media.ToMediaResponseList(mediaRecords),
	}

	w.Header().Set("Content-Disposition", `attachment; filename="trackflow-export.json"`)
	core.OK(w, dump)
}

// ClearCache and EmergencyReset are operator panic buttons. Nothing is
// actually flushed or reset here; both simulate the work and report
// completion so the surface can be exercised end to end.
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.simulateMaintenance(r.Context(), 500*time.Millisecond)

	core.OK(w, MaintenanceResult{
		Action:      "clear_cache",
		Completed:   true,
		CompletedAt: time.Now().UTC(),
	})
}

func (h *Handler) EmergencyReset(w http.ResponseWriter, r *http.Request) {
	h.simulateMaintenance(r.Context(), 1500*time.Millisecond)

	core.OK(w, MaintenanceResult{
		Action:      "emergency_reset",
		Completed:   true,
		CompletedAt: time.Now().UTC(),
	})
}

func (h *Handler) simulateMaintenance(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (h *Handler) getDBStats() *DBPoolStats {
	if h.dbStats == nil {
		return nil
	}

	stats := h.dbStats()
	return &DBPoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration.String(),
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxIdleTimeClosed:  stats.MaxIdleTimeClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
}

func (h *Handler) getRedisStats() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	stats := h.redisStats()
	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
		StaleConns: stats.StaleConns,
	}
}

type SystemStatsResponse struct {
	Database DatabaseStatus `json:"database"`
	Redis    RedisStatus    `json:"redis"`
	Runtime  RuntimeStats   `json:"runtime"`
}

type DatabaseStatus struct {
	Healthy bool         `json:"healthy"`
	Stats   *DBPoolStats `json:"stats,omitempty"`
}

type RedisStatus struct {
	Healthy bool            `json:"healthy"`
	Stats   *RedisPoolStats `json:"stats,omitempty"`
}

type DBPoolStats struct {
	MaxOpenConnections int    `json:"max_open_connections"`
	OpenConnections    int    `json:"open_connections"`
	InUse              int    `json:"in_use"`
	Idle               int    `json:"idle"`
	WaitCount          int64  `json:"wait_count"`
	WaitDuration       string `json:"wait_duration"`
	MaxIdleClosed      int64  `json:"max_idle_closed"`
	MaxIdleTimeClosed  int64  `json:"max_idle_time_closed"`
	MaxLifetimeClosed  int64  `json:"max_lifetime_closed"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	StaleConns uint32 `json:"stale_conns"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}

type ExportDump struct {
	ExportedAt  time.Time                       `json:"exported_at"`
	Users       []user.UserResponse             `json:"users"`
	Submissions []submission.SubmissionResponse `json:"submissions"`
	Media       []media.MediaResponse           `json:"media"`
}

type MaintenanceResult struct {
	Action      string    `json:"action"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completed_at"`
}
