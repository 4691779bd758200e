package httpserver

import (
	"time"

	"event_hotels/internal/domain"
)

// ISO-8601 in UTC with milliseconds, e.g. 2026-03-01T12:30:00.000Z.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

type hotelResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type roomResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	HotelID   int64  `json:"hotelId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type hotelDetailResponse struct {
	hotelResponse
	Rooms []roomResponse `json:"Rooms"`
}

func toHotelResponse(h domain.Hotel) hotelResponse {
	return hotelResponse{
		ID:        h.ID,
		Name:      h.Name,
		Image:     h.Image,
		CreatedAt: formatTime(h.CreatedAt),
		UpdatedAt: formatTime(h.UpdatedAt),
	}
}

func toHotelResponses(hs []domain.Hotel) []hotelResponse {
	out := make([]hotelResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, toHotelResponse(h))
	}
	return out
}

func toHotelDetailResponse(h domain.HotelWithRooms) hotelDetailResponse {
	out := hotelDetailResponse{hotelResponse: toHotelResponse(h.Hotel), Rooms: make([]roomResponse, 0, len(h.Rooms))}
	for _, rm := range h.Rooms {
		out.Rooms = append(out.Rooms, roomResponse{
			ID:        rm.ID,
			Name:      rm.Name,
			Capacity:  rm.Capacity,
			HotelID:   rm.HotelID,
			CreatedAt: formatTime(rm.CreatedAt),
			UpdatedAt: formatTime(rm.UpdatedAt),
		})
	}
	return out
}
