package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"addressbook/config"
	"addressbook/internal/domain/addressfilter"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/errors"
	"addressbook/internal/infra/cache"
	logs "addressbook/internal/infra/log"
	"addressbook/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ownerBook is one owner's filter engine. mu serializes every Load and Search on it.
type ownerBook struct {
	mu     sync.Mutex
	engine *addressfilter.Engine
	loaded bool
	// stale is set without mu when a write for the owner committed through another entry.
	stale atomic.Bool
}

// AddressSearchServiceParams holds dependencies for the address search service, injected by Fx.
type AddressSearchServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	TxManager   repository.TransactionManager
	Config      *config.Config
	Logger      *slog.Logger
	Recorder    service.SearchRecorder `optional:"true"`
}

type addressSearchService struct {
	addressRepo    repository.AddressRepository
	txManager      repository.TransactionManager
	books          *cache.LRU[uuid.UUID, *ownerBook]
	recorder       service.SearchRecorder
	logger         *slog.Logger
	maxQueryLength int
	maxBookSize    int
	now            func() time.Time
}

// NewAddressSearchService creates a new address search service instance
func NewAddressSearchService(params AddressSearchServiceParams) (usecase.AddressSearchUsecase, error) {
	searchCfg := params.Config.Search
	if searchCfg == nil {
		searchCfg = &config.SearchConfig{}
	}

	cacheSize := searchCfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = config.DefaultSearchCacheSize
	}
	cacheTTL := searchCfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = config.DefaultSearchCacheTTL
	}
	maxQueryLength := searchCfg.MaxQueryLength
	if maxQueryLength <= 0 {
		maxQueryLength = config.DefaultSearchMaxQueryLength
	}
	maxBookSize := searchCfg.MaxBookSize
	if maxBookSize <= 0 {
		maxBookSize = config.DefaultSearchMaxBookSize
	}

	recorder := params.Recorder
	if recorder == nil {
		recorder = service.NoopSearchRecorder{}
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	svc := &addressSearchService{
		addressRepo:    params.AddressRepo,
		txManager:      params.TxManager,
		recorder:       recorder,
		logger:         logger,
		maxQueryLength: maxQueryLength,
		maxBookSize:    maxBookSize,
		now:            time.Now,
	}

	books, err := cache.NewLRU[uuid.UUID, *ownerBook](cacheSize, cacheTTL, svc.onEvict)
	if err != nil {
		return nil, err
	}
	svc.books = books

	return svc, nil
}

func (s *addressSearchService) onEvict(ownerID uuid.UUID, _ *ownerBook) {
	s.recorder.ObserveEviction()
	s.logger.Debug("Address book engine evicted", slog.String("owner_id", ownerID.String()))
}

// book returns the owner's cached engine, creating an empty unloaded one when absent.
func (s *addressSearchService) book(ownerID uuid.UUID) *ownerBook {
	b, _ := s.books.GetOrAdd(ownerID, &ownerBook{engine: addressfilter.New()})

	return b
}

// LoadAddresses reloads the owner's address book from storage
func (s *addressSearchService) LoadAddresses(ctx context.Context, ownerID uuid.UUID) ([]*entity.Address, error) {
	b := s.book(ownerID)
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := s.reloadLocked(ctx, ownerID, b); err != nil {
		return nil, err
	}

	return b.engine.All(), nil
}

// SearchAddresses filters the owner's address book, loading it on first use
func (s *addressSearchService) SearchAddresses(ctx context.Context, ownerID uuid.UUID, query string) (*usecase.SearchResult, error) {
	if utf8.RuneCountInString(query) > s.maxQueryLength {
		return nil, domainerrors.ErrQueryTooLong.WithDetails(fmt.Sprintf("query must be at most %d characters", s.maxQueryLength))
	}

	b := s.book(ownerID)
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.loaded || b.stale.Load() {
		if err := s.reloadLocked(ctx, ownerID, b); err != nil {
			return nil, err
		}
	}

	start := s.now()
	addresses := b.engine.Search(query)
	s.recorder.ObserveSearch(s.now().Sub(start), len(addresses), query == "")

	return &usecase.SearchResult{
		Query:     query,
		Total:     b.engine.Len(),
		Addresses: addresses,
	}, nil
}

// ReplaceAddresses replaces the owner's whole address book in one transaction
func (s *addressSearchService) ReplaceAddresses(ctx context.Context, ownerID uuid.UUID, inputs []usecase.AddressInput) ([]*entity.Address, error) {
	if len(inputs) > s.maxBookSize {
		return nil, domainerrors.ErrAddressBookTooLarge.WithDetails(fmt.Sprintf("at most %d addresses are allowed", s.maxBookSize))
	}

	now := s.now()
	addresses := make([]*entity.Address, 0, len(inputs))
	for i, input := range inputs {
		addresses = append(addresses, &entity.Address{
			ID:           uuid.New(),
			OwnerID:      ownerID,
			Street:       input.Street,
			Number:       input.Number,
			Neighborhood: input.Neighborhood,
			Position:     i,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	b := s.book(ownerID)
	b.mu.Lock()
	defer b.mu.Unlock()

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewAddressRepository()
		if err := repo.DeleteAddressesByOwner(ctx, ownerID); err != nil {
			return err
		}

		return repo.CreateAddresses(ctx, addresses)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to replace address book")
	}

	b.engine.Load(addresses)
	b.loaded = true
	s.recorder.ObserveLoad(len(addresses))
	s.invalidateReplacement(ownerID, b)

	logs.FromContext(ctx, s.logger).Info("Address book replaced",
		slog.String("owner_id", ownerID.String()),
		slog.Int("size", len(addresses)),
	)

	return addresses, nil
}

// AddAddress appends one address to the owner's address book
func (s *addressSearchService) AddAddress(ctx context.Context, ownerID uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	now := s.now()
	address := &entity.Address{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Street:       input.Street,
		Number:       input.Number,
		Neighborhood: input.Neighborhood,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	b := s.book(ownerID)
	b.mu.Lock()
	defer b.mu.Unlock()

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewAddressRepository()

		count, err := repo.CountAddressesByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		if count >= int64(s.maxBookSize) {
			return domainerrors.ErrAddressBookTooLarge.WithDetails(fmt.Sprintf("at most %d addresses are allowed", s.maxBookSize))
		}

		position, err := repo.NextPosition(ctx, ownerID)
		if err != nil {
			return err
		}
		address.Position = position

		return repo.CreateAddress(ctx, address)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add address")
	}

	s.invalidateReplacement(ownerID, b)
	s.reloadAfterCommit(ctx, ownerID, b)

	return address, nil
}

// DeleteAddress removes one of the owner's addresses
func (s *addressSearchService) DeleteAddress(ctx context.Context, ownerID, addressID uuid.UUID) error {
	b := s.book(ownerID)
	b.mu.Lock()
	defer b.mu.Unlock()

	address, err := s.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to find address by ID")
	}

	if address.OwnerID != ownerID {
		return domainerrors.ErrAddressOwnershipViolation
	}

	if err := s.addressRepo.DeleteAddress(ctx, addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to delete address")
	}

	s.invalidateReplacement(ownerID, b)
	s.reloadAfterCommit(ctx, ownerID, b)

	return nil
}

// invalidateReplacement marks a newer entry cached for ownerID while b was evicted
// during a write. That entry may have loaded the book before the write committed.
func (s *addressSearchService) invalidateReplacement(ownerID uuid.UUID, b *ownerBook) {
	if current, ok := s.books.Peek(ownerID); ok && current != b {
		current.stale.Store(true)
	}
}

// reloadAfterCommit refreshes b once a write is durable. A failure leaves b unloaded
// so the next search reads storage again; the write itself already succeeded.
func (s *addressSearchService) reloadAfterCommit(ctx context.Context, ownerID uuid.UUID, b *ownerBook) {
	if err := s.reloadLocked(ctx, ownerID, b); err != nil {
		logs.FromContext(ctx, s.logger).Warn("Failed to reload address book after write",
			slog.String("owner_id", ownerID.String()),
			slog.Any("error", err),
		)
	}
}

// reloadLocked fetches the owner's address book and loads it into b. Callers hold b.mu.
func (s *addressSearchService) reloadLocked(ctx context.Context, ownerID uuid.UUID, b *ownerBook) error {
	b.stale.Store(false)

	addresses, err := s.addressRepo.FindAddressesByOwner(ctx, ownerID)
	if err != nil {
		b.loaded = false

		return errors.Wrap(err, "failed to find addresses by owner")
	}

	b.engine.Load(addresses)
	b.loaded = true
	s.recorder.ObserveLoad(len(addresses))

	logs.FromContext(ctx, s.logger).Debug("Address book loaded",
		slog.String("owner_id", ownerID.String()),
		slog.Int("size", len(addresses)),
	)

	return nil
}
