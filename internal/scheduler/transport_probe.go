package scheduler

import (
	"net"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ssapio/inferencegate-web/internal/metrics"
	"github.com/ssapio/inferencegate-web/internal/shared/config"
	"github.com/ssapio/inferencegate-web/internal/shared/logger"
)

// TransportProbe periodically checks that the configured SMTP host answers
// on its port and records the result in the smtp_up gauge. The service
// itself is stateless, so a dead transport would otherwise only show up as
// user-facing 500s on the contact form.
type TransportProbe struct {
	cron    *cron.Cron
	cfg     config.SMTPConfig
	log     *logger.Logger
	timeout time.Duration
}

// NewTransportProbe creates a probe for the given transport configuration
func NewTransportProbe(cfg config.SMTPConfig, log *logger.Logger) *TransportProbe {
	return &TransportProbe{
		cron:    cron.New(),
		cfg:     cfg,
		log:     log,
		timeout: 5 * time.Second,
	}
}

// Start schedules the probe. With no transport configured there is nothing
// to watch and the probe stays idle.
func (p *TransportProbe) Start() error {
	if !p.cfg.Configured() {
		p.log.Info("SMTP transport not configured, probe disabled")
		return nil
	}

	if _, err := p.cron.AddFunc(p.cfg.ProbeSchedule, p.Probe); err != nil {
		return err
	}
	p.cron.Start()

	// Prime the gauge without delaying startup.
	go p.Probe()

	p.log.Info("SMTP transport probe started", "schedule", p.cfg.ProbeSchedule, "addr", p.cfg.Addr())
	return nil
}

// Stop stops the probe schedule
func (p *TransportProbe) Stop() {
	p.cron.Stop()
}

// Probe dials the transport once and updates the gauge
func (p *TransportProbe) Probe() {
	conn, err := net.DialTimeout("tcp", p.cfg.Addr(), p.timeout)
	if err != nil {
		metrics.SMTPUp.Set(0)
		p.log.Warn("SMTP transport unreachable", "addr", p.cfg.Addr(), "error", err)
		return
	}
	conn.Close()
	metrics.SMTPUp.Set(1)
}
