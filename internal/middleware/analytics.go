package middleware

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// queryLogEntry is one recorded route query.
type queryLogEntry struct {
	Endpoint       string
	Stage          string
	Start          string
	End            string
	Walk           bool
	ResponseTimeMs int
	ResponseStatus int
	CacheHit       bool
	IPAddress      string
	At             time.Time
}

// EnsureQueryLogSchema creates the query_log table if needed.
func EnsureQueryLogSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS query_log (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			endpoint TEXT NOT NULL,
			stage TEXT NOT NULL,
			start_code TEXT NOT NULL,
			end_code TEXT NOT NULL,
			walk BOOLEAN NOT NULL,
			response_time_ms INT NOT NULL,
			response_status INT NOT NULL,
			cache_hit BOOLEAN NOT NULL,
			ip_address TEXT NOT NULL,
			at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

// QueryLog records every route and directions query for usage analysis.
// Inserts run asynchronously; a failed insert never fails the request.
func QueryLog(db *pgxpool.Pool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		path := c.Path()
		if path != "/v1/route" && path != "/v1/directions" {
			return err
		}

		cacheHit, _ := c.Locals("cache_hit").(bool)
		entry := queryLogEntry{
			Endpoint:       path,
			Stage:          c.Query("stage"),
			Start:          c.Query("start"),
			End:            c.Query("end"),
			Walk:           c.QueryBool("walk", false),
			ResponseTimeMs: int(elapsed.Milliseconds()),
			ResponseStatus: c.Response().StatusCode(),
			CacheHit:       cacheHit,
			IPAddress:      c.IP(),
			At:             time.Now(),
		}

		go insertQueryLog(db, entry)

		c.Set("X-Response-Time", elapsed.String())
		c.Set("X-Cache-Hit", strconv.FormatBool(cacheHit))

		return err
	}
}

func insertQueryLog(db *pgxpool.Pool, entry queryLogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, `
		INSERT INTO query_log (
			endpoint, stage, start_code, end_code, walk,
			response_time_ms, response_status, cache_hit, ip_address, at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		entry.Endpoint,
		entry.Stage,
		entry.Start,
		entry.End,
		entry.Walk,
		entry.ResponseTimeMs,
		entry.ResponseStatus,
		entry.CacheHit,
		entry.IPAddress,
		entry.At,
	)
	if err != nil {
		log.Println("Failed to log query:", err)
	}
}

// DailyStats is one day of aggregated query metrics.
type DailyStats struct {
	Date          string  `json:"date"`
	TotalQueries  int64   `json:"total_queries"`
	Successful    int64   `json:"successful"`
	Failed        int64   `json:"failed"`
	AvgResponseMs float64 `json:"avg_response_ms"`
	CacheHits     int64   `json:"cache_hits"`
	CacheHitRate  float64 `json:"cache_hit_rate"`
}

// DailyQueryStats aggregates the query log per day, most recent first.
func DailyQueryStats(ctx context.Context, db *pgxpool.Pool, days int) ([]DailyStats, error) {
	rows, err := db.Query(ctx, `
		SELECT
			DATE(at) AS date,
			COUNT(*) AS total_queries,
			COUNT(*) FILTER (WHERE response_status >= 200 AND response_status < 300) AS successful,
			COUNT(*) FILTER (WHERE response_status >= 400) AS failed,
			AVG(response_time_ms) AS avg_response_time,
			COUNT(*) FILTER (WHERE cache_hit = true) AS cache_hits
		FROM query_log
		WHERE at >= NOW() - $1 * INTERVAL '1 day'
		GROUP BY DATE(at)
		ORDER BY date DESC
	`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []DailyStats
	for rows.Next() {
		var (
			date        time.Time
			s           DailyStats
			avgResponse *float64
		)
		if err := rows.Scan(&date, &s.TotalQueries, &s.Successful, &s.Failed, &avgResponse, &s.CacheHits); err != nil {
			return nil, err
		}
		s.Date = date.Format("2006-01-02")
		if avgResponse != nil {
			s.AvgResponseMs = *avgResponse
		}
		if s.TotalQueries > 0 {
			s.CacheHitRate = float64(s.CacheHits) / float64(s.TotalQueries) * 100
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
