package user

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/event"
	"github.com/osse101/BetEngine_Go/internal/logger"
)

// Service is the local identity provider. The engine never authenticates; it only
// needs a key to partition predictions by.
type Service interface {
	CurrentUserID(ctx context.Context) string
	CurrentUser(ctx context.Context) *domain.UserProfile
	SignIn(ctx context.Context, displayName string) (*domain.UserProfile, error)
	SignOut(ctx context.Context)
}

// Store is the subset of storage.Records the identity provider needs
type Store interface {
	LoadProfile(ctx context.Context) (*domain.UserProfile, bool)
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
	DeleteProfile(ctx context.Context) error
}

// Balance reads the live points balance for the sign-in snapshot
type Balance interface {
	Balance(ctx context.Context) int
}

type service struct {
	store    Store
	balance  Balance
	notifier *event.Notifier

	mu      sync.RWMutex
	loaded  bool
	profile *domain.UserProfile
}

// NewService creates a new identity service
func NewService(store Store, balance Balance, notifier *event.Notifier) Service {
	return &service{
		store:    store,
		balance:  balance,
		notifier: notifier,
	}
}

// CurrentUserID returns the signed-in profile id, or the guest id
func (s *service) CurrentUserID(ctx context.Context) string {
	if p := s.CurrentUser(ctx); p != nil {
		return p.ID
	}
	return domain.GuestUserID
}

// CurrentUser returns a copy of the signed-in profile, or nil for a guest
func (s *service) CurrentUser(ctx context.Context) *domain.UserProfile {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return copyProfile(s.profile)
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return copyProfile(s.profile)
}

// SignIn creates a fresh local profile and makes it the acting user
func (s *service) SignIn(ctx context.Context, displayName string) (*domain.UserProfile, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", ErrContextSignIn, domain.ErrInvalidDisplayName)
	}
	if utf8.RuneCountInString(name) > MaxDisplayNameLength {
		name = string([]rune(name)[:MaxDisplayNameLength])
	}

	profile := domain.UserProfile{
		ID:          uuid.New().String(),
		DisplayName: name,
	}
	if s.balance != nil {
		profile.TotalPoints = s.balance.Balance(ctx)
	}

	s.mu.Lock()
	s.loaded = true
	s.profile = &profile
	s.mu.Unlock()

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistFailed, "error", err)
	}
	logger.FromContext(ctx).Info(LogMsgSignedIn, "user_id", profile.ID)

	s.notifier.Notify(ctx, event.PredictionsChanged)
	return copyProfile(&profile), nil
}

// SignOut forgets the profile; the acting user reverts to guest
func (s *service) SignOut(ctx context.Context) {
	s.mu.Lock()
	s.loaded = true
	s.profile = nil
	s.mu.Unlock()

	if err := s.store.DeleteProfile(ctx); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistFailed, "error", err)
	}
	logger.FromContext(ctx).Info(LogMsgSignedOut)

	s.notifier.Notify(ctx, event.PredictionsChanged)
}

// ensureLoaded must be called with mu held for writing
func (s *service) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	if p, ok := s.store.LoadProfile(ctx); ok && p.ID != "" {
		s.profile = p
		logger.FromContext(ctx).Debug(LogMsgProfileLoaded, "user_id", p.ID)
	}
}

func copyProfile(p *domain.UserProfile) *domain.UserProfile {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
