package app

import (
	"context"
	"errors"
	"fmt"

	"event_hotels/internal/domain"
)

type QueryService struct {
	repo domain.HotelRepository
}

func NewQueryService(r domain.HotelRepository) *QueryService {
	return &QueryService{repo: r}
}

// ListHotels returns every hotel without rooms. An empty table gives an empty, non-nil slice.
func (s *QueryService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	hs, err := s.repo.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	if hs == nil {
		hs = []domain.Hotel{}
	}
	return hs, nil
}

func (s *QueryService) GetHotelDetail(ctx context.Context, id int64) (domain.HotelWithRooms, error) {
	// No hotel can have a non-positive id.
	if id < 1 {
		return domain.HotelWithRooms{}, domain.ErrHotelMissing
	}
	h, err := s.repo.GetHotelWithRooms(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.HotelWithRooms{}, domain.ErrHotelMissing
	}
	if err != nil {
		return domain.HotelWithRooms{}, fmt.Errorf("get hotel %d: %w", id, err)
	}
	if h.Rooms == nil {
		h.Rooms = []domain.Room{}
	}
	return h, nil
}
