// Package poller drives the two refresh streams behind the overlay: active
// disasters and county risk scores. Each stream runs on its own schedule
// and tags every fetch with a monotonically increasing sequence number, so
// the store can drop responses that arrive out of order.
package poller

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"go-kdms/kdms"
	"go-kdms/overlay"
)

const (
	// Risk defaults to a slower cadence: the backend only rescores
	// counties every 30 minutes, polling faster buys nothing.
	defaultDisasterInterval = 60 * time.Second
	defaultRiskInterval     = 5 * time.Minute

	// Consecutive failures on a stream before the overlay reports itself
	// degraded (drives the non-blocking warning banner).
	failureThreshold = 3

	fetchTimeout = 15 * time.Second
)

type Poller struct {
	client *kdms.Client
	store  *overlay.Store
	cron   *cron.Cron

	disasterInterval time.Duration
	riskInterval     time.Duration

	disasterSeq atomic.Uint64
	riskSeq     atomic.Uint64

	disasterFailures atomic.Int32
	riskFailures     atomic.Int32

	polling atomic.Bool
}

func New(client *kdms.Client, store *overlay.Store, disasterInterval, riskInterval time.Duration) *Poller {
	if disasterInterval <= 0 {
		disasterInterval = defaultDisasterInterval
	}
	if riskInterval <= 0 {
		riskInterval = defaultRiskInterval
	}
	return &Poller{
		client:           client,
		store:            store,
		cron:             cron.New(),
		disasterInterval: disasterInterval,
		riskInterval:     riskInterval,
	}
}

// Start schedules both streams and primes them immediately rather than
// waiting out the first interval. Cron runs each job in its own goroutine,
// so a slow risk fetch never delays disaster polling.
func (p *Poller) Start() error {
	if !p.polling.CompareAndSwap(false, true) {
		return fmt.Errorf("poller already started")
	}

	if _, err := p.cron.AddFunc(fmt.Sprintf("@every %s", p.disasterInterval), p.PollDisastersOnce); err != nil {
		return fmt.Errorf("failed to schedule disaster poll: %w", err)
	}
	if _, err := p.cron.AddFunc(fmt.Sprintf("@every %s", p.riskInterval), p.PollRisksOnce); err != nil {
		return fmt.Errorf("failed to schedule risk poll: %w", err)
	}
	p.cron.Start()

	go p.PollDisastersOnce()
	go p.PollRisksOnce()

	log.Printf("Poller started (disasters every %s, risk every %s)", p.disasterInterval, p.riskInterval)
	return nil
}

// Stop halts the schedules and waits for in-flight jobs to finish. After
// Stop returns, no timer owned by this poller will touch the store again.
func (p *Poller) Stop() {
	if !p.polling.CompareAndSwap(true, false) {
		return
	}
	ctx := p.cron.Stop()
	<-ctx.Done()
	log.Println("Poller stopped")
}

// IsPolling reports whether the schedules are running, for loading
// indication on the surface.
func (p *Poller) IsPolling() bool {
	return p.polling.Load()
}

// Degraded reports whether either stream has failed enough consecutive
// cycles to warrant a warning banner. A single transient failure stays
// invisible; the previous view is simply retained.
func (p *Poller) Degraded() bool {
	return p.disasterFailures.Load() >= failureThreshold ||
		p.riskFailures.Load() >= failureThreshold
}

// PollDisastersOnce runs one disaster fetch-and-apply cycle. The sequence
// number is taken before the fetch, so a response that comes back after a
// newer cycle carries a stale number and is dropped by the store.
func (p *Poller) PollDisastersOnce() {
	seq := p.disasterSeq.Add(1)

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	disasters, err := p.client.ActiveDisasters(ctx)
	if err != nil {
		n := p.disasterFailures.Add(1)
		log.Printf("Disaster poll %d failed (%d consecutive): %v", seq, n, err)
		return
	}
	p.disasterFailures.Store(0)
	p.store.ApplyDisasters(disasters, seq)
}

// PollRisksOnce runs one risk fetch-and-apply cycle.
func (p *Poller) PollRisksOnce() {
	seq := p.riskSeq.Add(1)

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	risks, err := p.client.CountyRisks(ctx)
	if err != nil {
		n := p.riskFailures.Add(1)
		log.Printf("Risk poll %d failed (%d consecutive): %v", seq, n, err)
		return
	}
	p.riskFailures.Store(0)
	p.store.ApplyRisks(risks, seq)
}
