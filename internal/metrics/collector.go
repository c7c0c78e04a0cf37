// Package metrics exposes console backend state to Prometheus.
package metrics

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"accessctl/internal/client"
	"accessctl/pkg/models"
)

const (
	scrapePageSize = 500
	// maxScrapePages stops a walk over a backend that keeps reporting more pages.
	maxScrapePages = 100
)

var (
	upDesc = prometheus.NewDesc(
		"accessctl_up", "Was the last scrape of the console backend successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"accessctl_scrape_duration_seconds", "Time taken to scrape the backend.", nil, nil,
	)
	notificationsDesc = prometheus.NewDesc(
		"accessctl_notifications", "Message center entries grouped by category.", []string{"category"}, nil,
	)
	unreadDesc = prometheus.NewDesc(
		"accessctl_notifications_unread", "Unread message center entries.", nil, nil,
	)
	personEventsDesc = prometheus.NewDesc(
		"accessctl_person_events", "Person event log entries known to the backend.", nil, nil,
	)
	regionsDesc = prometheus.NewDesc(
		"accessctl_regions", "Regions grouped by type.", []string{"region_type"}, nil,
	)
	deploymentsDesc = prometheus.NewDesc(
		"accessctl_device_deployments", "Device deployments grouped by status.", []string{"status"}, nil,
	)
)

// Collector scrapes the backend on every Prometheus collection.
type Collector struct {
	Client   *client.ConsoleClient
	Timeout  time.Duration
	PageSize int // records requested per page when counting, default 500
	Log      logrus.FieldLogger

	mu sync.Mutex
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- notificationsDesc
	ch <- unreadDesc
	ch <- personEventsDesc
	ch <- regionsDesc
	ch <- deploymentsDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	success := 1.0

	// 1. Notifications
	if res, err := c.Client.GetNotifications(ctx); err == nil {
		byCategory := make(map[string]float64)
		for _, n := range res.Records {
			byCategory[label(n.Category)]++
		}
		for cat, cnt := range byCategory {
			ch <- prometheus.MustNewConstMetric(notificationsDesc, prometheus.GaugeValue, cnt, cat)
		}
		ch <- prometheus.MustNewConstMetric(unreadDesc, prometheus.GaugeValue, float64(client.CountUnread(res.Records)))
	} else {
		success = 0
		c.logError("notifications", err)
	}

	// 2. Person events; only the paging total is needed
	if res, err := c.Client.ListPersonEventLogs(ctx, models.PersonEventLogQuery{PerPage: 1}); err == nil {
		ch <- prometheus.MustNewConstMetric(personEventsDesc, prometheus.GaugeValue, float64(res.Paging.Total))
	} else {
		success = 0
		c.logError("person_event_logs", err)
	}

	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = scrapePageSize
	}

	// 3. Regions
	byType := make(map[string]float64)
	err := walk(func(page int) (models.ListResult[models.Region], error) {
		return c.Client.ListRegions(ctx, models.RegionQuery{Page: page, PerPage: pageSize})
	}, func(r models.Region) {
		byType[label(r.RegionType)]++
	})
	if err == nil {
		for t, cnt := range byType {
			ch <- prometheus.MustNewConstMetric(regionsDesc, prometheus.GaugeValue, cnt, t)
		}
	} else {
		success = 0
		c.logError("regions", err)
	}

	// 4. Deployments
	byStatus := make(map[string]float64)
	err = walk(func(page int) (models.ListResult[models.DeviceDeployment], error) {
		return c.Client.ListDeviceDeployments(ctx, models.DeviceDeploymentQuery{Page: page, PerPage: pageSize})
	}, func(d models.DeviceDeployment) {
		st := ""
		if d.Status != nil {
			st = string(*d.Status)
		}
		byStatus[label(st)]++
	})
	if err == nil {
		for st, cnt := range byStatus {
			ch <- prometheus.MustNewConstMetric(deploymentsDesc, prometheus.GaugeValue, cnt, st)
		}
	} else {
		success = 0
		c.logError("device_deployments", err)
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

func (c *Collector) logError(resource string, err error) {
	if c.Log == nil {
		return
	}
	c.Log.WithField("resource", resource).WithError(err).Error("scrape failed")
}

// walk visits every record of a paged listing. It stops at the last page the
// backend reports, on an empty page, or when the backend answers with a page
// other than the one requested.
func walk[T any](list func(page int) (models.ListResult[T], error), visit func(T)) error {
	for page := 1; page <= maxScrapePages; page++ {
		res, err := list(page)
		if err != nil {
			return err
		}
		if res.Paging.CurrentPage != page {
			return nil
		}
		for _, r := range res.Records {
			visit(r)
		}
		if len(res.Records) == 0 || page >= res.Paging.TotalPages {
			return nil
		}
	}
	return fmt.Errorf("listing exceeds %d pages", maxScrapePages)
}

func label(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return "unknown"
	}
	return v
}
