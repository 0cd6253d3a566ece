package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

var ErrAlreadyListed = errors.New("already in wishlist")

// SlotKey is the fixed storage key holding the wishlist id set.
const SlotKey = "wishlist"

// Storage matches the cart's slot contract; both modules share one
// backing store under different keys.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Service keeps a persistent set of product ids. Like the cart, the
// slot is re-read before every use and written after every mutation.
type Service struct {
	store Storage
	log   *slog.Logger
}

func NewService(store Storage, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, log: log}
}

func (s *Service) load(ctx context.Context) []int {
	raw, err := s.store.Get(ctx, SlotKey)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Warn("wishlist slot unreadable, starting empty", slog.Any("err", err))
		}
		return nil
	}

	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.log.Warn("wishlist slot corrupt, starting empty", slog.Any("err", err))
		return nil
	}
	return ids
}

// Add appends the id unless it is already listed.
func (s *Service) Add(ctx context.Context, productID int) error {
	ids := s.load(ctx)
	for _, id := range ids {
		if id == productID {
			return ErrAlreadyListed
		}
	}

	ids = append(ids, productID)
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("serialize wishlist: %w", err)
	}
	if err := s.store.Put(ctx, SlotKey, raw); err != nil {
		return fmt.Errorf("persist wishlist: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context) []int {
	return s.load(ctx)
}
