// Package sweeper runs the periodic lifecycle sweep: activating auctions
// whose window has opened and ending, settling and announcing expired ones.
package sweeper

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	auction "playmarket/internal/auctionService"
	"playmarket/utils"
)

// Sweeper schedules AuctionService.FinalizeExpired at a fixed interval.
type Sweeper struct {
	svc       *auction.AuctionService
	interval  time.Duration
	scheduler gocron.Scheduler
}

// New creates a sweeper that finalizes due auctions every interval.
func New(svc *auction.AuctionService, interval time.Duration) *Sweeper {
	return &Sweeper{
		svc:      svc,
		interval: interval,
	}
}

// Start launches the sweep job in the background.
func (s *Sweeper) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("sweeper: failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.sweep),
	)
	if err != nil {
		return fmt.Errorf("sweeper: failed to schedule sweep job: %w", err)
	}

	s.scheduler = sched
	sched.Start()
	utils.Info("sweeper started", map[string]any{"interval": s.interval.String()})
	return nil
}

// Stop shuts the scheduler down, waiting for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.scheduler != nil {
		if err := s.scheduler.Shutdown(); err != nil {
			utils.Error("sweeper shutdown failed", map[string]any{"error": err.Error()})
		}
	}
}

func (s *Sweeper) sweep() {
	finalized, err := s.svc.FinalizeExpired()
	if err != nil {
		utils.Error("sweep failed", map[string]any{"error": err.Error()})
		return
	}
	for _, a := range finalized {
		fields := map[string]any{"auction_id": a.AuctionID, "bid_count": a.BidCount}
		if a.CurrentHighestBid != nil {
			fields["winner_id"] = a.HighestBidderID
			fields["winning_amount"] = *a.CurrentHighestBid
		}
		utils.Info("auction ended", fields)
	}
}
