package health

import (
	"context"
	"time"

	"hotel-backend/internal/cache"
	"hotel-backend/internal/store"
)

// Checker probes the configured store backend. It works against the Pinger
// contract, so the same endpoint covers both the database and the
// spreadsheet backend.
type Checker struct {
	backend string
	pinger  store.Pinger
}

type Status struct {
	Status  string      `json:"status"`
	Store   StoreHealth `json:"store"`
	Redis   string      `json:"redis"`
	Backend string      `json:"backend"`
}

type StoreHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewChecker(backend string, pinger store.Pinger) *Checker {
	return &Checker{backend: backend, pinger: pinger}
}

func (c *Checker) Check() Status {
	storeHealth := c.checkStore()

	status := "healthy"
	if storeHealth.Status != "healthy" {
		status = "unhealthy"
	}

	// Redis is optional; a missing cache never degrades overall health.
	redisStatus := "disabled"
	if cache.IsHealthy() {
		redisStatus = "healthy"
	}

	return Status{
		Status:  status,
		Store:   storeHealth,
		Redis:   redisStatus,
		Backend: c.backend,
	}
}

func (c *Checker) checkStore() StoreHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err := c.pinger.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return StoreHealth{Status: "unhealthy", ResponseTime: responseTime}
	}
	return StoreHealth{Status: "healthy", ResponseTime: responseTime}
}
