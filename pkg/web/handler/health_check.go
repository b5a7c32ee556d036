package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"golang.org/x/sync/errgroup"
)

// Probe 单个依赖组件的探活
type Probe struct {
	Name   string
	IsCore bool
	Check  func(ctx context.Context) error
}

type HealthCheckHandler struct {
	probes  []Probe
	timeout time.Duration
}

func NewHealthCheckHandler(timeout time.Duration, probes ...Probe) *HealthCheckHandler {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthCheckHandler{probes: probes, timeout: timeout}
}

type HealthStatus struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Uptime     string            `json:"uptime"`
	Components []ComponentStatus `json:"components,omitempty"`
}

type ComponentStatus struct {
	Name    string        `json:"name"`
	Status  string        `json:"status"`
	IsCore  bool          `json:"is_core"`
	Latency time.Duration `json:"latency,omitempty"`
	Error   string        `json:"error,omitempty"`
}

var startupTime = time.Now()

// AdvancedHealthCheck 并发探测 MySQL 与 Redis，核心组件异常时返回 503
func (h *HealthCheckHandler) AdvancedHealthCheck(ctx context.Context, c *app.RequestContext) {
	status := HealthStatus{
		Status:     "healthy",
		Timestamp:  time.Now().UTC(),
		Uptime:     time.Since(startupTime).Round(time.Second).String(),
		Components: h.checkAll(ctx),
	}

	if hasCriticalErrors(status.Components) {
		status.Status = "degraded"
		c.JSON(503, status)
		return
	}

	c.JSON(200, status)
}

func (h *HealthCheckHandler) checkAll(ctx context.Context) []ComponentStatus {
	results := make([]ComponentStatus, len(h.probes))
	probeCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	// 每个探针写自己的下标，探针失败不取消其他探针
	var g errgroup.Group
	for i, p := range h.probes {
		i, p := i, p
		g.Go(func() error {
			start := time.Now()
			err := p.Check(probeCtx)
			results[i] = ComponentStatus{
				Name:    p.Name,
				Status:  "ok",
				IsCore:  p.IsCore,
				Latency: time.Since(start),
			}
			if err != nil {
				// 原始错误只进日志，响应里不暴露地址和驱动信息
				hlog.CtxWarnf(ctx, "health check %s failed: %v", p.Name, err)
				results[i].Status = "error"
				results[i].Error = "unreachable"
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func hasCriticalErrors(components []ComponentStatus) bool {
	for _, comp := range components {
		// 核心组件状态异常或任意组件发生严重错误
		if (comp.IsCore && comp.Status != "ok") || comp.Status == "critical" {
			return true
		}
	}
	return false
}
