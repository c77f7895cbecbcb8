// Package keepalive periodically pings the deployed instance's own URL so
// free-tier hosts don't idle it out. Fully decoupled from request handling.
package keepalive

import (
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

type Pinger struct {
	client   *resty.Client
	url      string
	interval time.Duration
	done     chan struct{}
}

func New(url string, interval time.Duration) *Pinger {
	return &Pinger{
		client:   resty.New().SetTimeout(30 * time.Second),
		url:      url,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start pings immediately, then on every tick until Stop. No-op when the URL
// is unset.
func (p *Pinger) Start() {
	if p.url == "" {
		return
	}
	go func() {
		p.ping()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.ping()
			case <-p.done:
				return
			}
		}
	}()
	slog.Info("keep-alive pinger started", "url", p.url, "interval", p.interval.String())
}

func (p *Pinger) Stop() {
	close(p.done)
}

func (p *Pinger) ping() {
	resp, err := p.client.R().Get(p.url)
	if err != nil {
		slog.Error("keep-alive ping failed", "error", err, "url", p.url)
		return
	}
	slog.Info("keep-alive ping", "status", resp.StatusCode())
}
