package services

import (
	"context"
	"holidaze/internal/models"
	"holidaze/internal/providers"
	"sync"
)

type ReceiptState int

const (
	ReceiptIdle ReceiptState = iota
	ReceiptPending
)

func (s ReceiptState) String() string {
	if s == ReceiptPending {
		return "pending"
	}
	return "idle"
}

type ProfileFetcher interface {
	GetProfile(ctx context.Context, name string) (*models.Profile, error)
}

type ReceiptOrchestratorInterface interface {
	Observe(ctx context.Context, msg *models.ReceiptMessage) bool
	Dismiss()
	ViewBookings()
	State() ReceiptState
	Receipt() (*models.Receipt, bool)
	Profile() *models.Profile
}

// ReceiptOrchestrator shows a booking confirmation once per booking.
//
// Idle -> Pending when a complete, unconsumed message is observed.
// Pending -> Idle on Dismiss or ViewBookings.
type ReceiptOrchestrator struct {
	mu       sync.RWMutex
	state    ReceiptState
	receipt  *models.Receipt
	profile  *models.Profile
	session  SessionServiceInterface
	profiles ProfileFetcher
	logger   providers.Logger
}

// NewReceiptOrchestrator accepts a nil profiles fetcher; refresh is skipped then.
func NewReceiptOrchestrator(session SessionServiceInterface, profiles ProfileFetcher, logger providers.Logger) ReceiptOrchestratorInterface {
	return &ReceiptOrchestrator{
		session:  session,
		profiles: profiles,
		logger:   logger,
	}
}

func (ro *ReceiptOrchestrator) Observe(ctx context.Context, msg *models.ReceiptMessage) bool {
	if msg == nil || !msg.Complete() {
		return false
	}
	if !msg.Consume() {
		return false
	}

	ro.mu.Lock()
	ro.state = ReceiptPending
	ro.receipt = &models.Receipt{Booking: msg.Booking, Venue: msg.Venue}
	ro.mu.Unlock()

	ro.logger.Infof(providers.TypeApp, "Showing receipt for booking %s", msg.Booking.ID)
	ro.refreshProfile(ctx)
	return true
}

func (ro *ReceiptOrchestrator) refreshProfile(ctx context.Context) {
	if ro.profiles == nil || ro.session == nil {
		return
	}
	user, ok := ro.session.User(ctx)
	if !ok {
		return
	}

	profile, err := ro.profiles.GetProfile(ctx, user.Name)
	if err != nil {
		ro.logger.Errorf(providers.TypeApp, "Profile refresh for %s failed: %s", user.Name, err)
		return
	}

	ro.mu.Lock()
	ro.profile = profile
	ro.mu.Unlock()
}

func (ro *ReceiptOrchestrator) Dismiss() {
	ro.reset()
}

func (ro *ReceiptOrchestrator) ViewBookings() {
	ro.reset()
}

func (ro *ReceiptOrchestrator) reset() {
	ro.mu.Lock()
	defer ro.mu.Unlock()
	ro.state = ReceiptIdle
	ro.receipt = nil
}

func (ro *ReceiptOrchestrator) State() ReceiptState {
	ro.mu.RLock()
	defer ro.mu.RUnlock()
	return ro.state
}

func (ro *ReceiptOrchestrator) Receipt() (*models.Receipt, bool) {
	ro.mu.RLock()
	defer ro.mu.RUnlock()
	if ro.state != ReceiptPending {
		return nil, false
	}
	return ro.receipt, true
}

func (ro *ReceiptOrchestrator) Profile() *models.Profile {
	ro.mu.RLock()
	defer ro.mu.RUnlock()
	return ro.profile
}
