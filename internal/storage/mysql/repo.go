package mysql

import (
	"context"
	"database/sql"
	"errors"

	"event_hotels/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) FindSessionByToken(ctx context.Context, token string) (domain.Session, error) {
	var s domain.Session
	err := r.db.QueryRowContext(ctx, findSessionByTokenSQL, token).
		Scan(&s.ID, &s.UserID, &s.Token, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Session{}, err
	}
	return s, nil
}

func (r *Repo) FindEnrollmentByUser(ctx context.Context, userID int64) (domain.Enrollment, error) {
	var e domain.Enrollment
	err := r.db.QueryRowContext(ctx, findEnrollmentByUserSQL, userID).
		Scan(&e.ID, &e.UserID, &e.Name, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Enrollment{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Enrollment{}, err
	}
	return e, nil
}

func (r *Repo) FindTicketByEnrollment(ctx context.Context, enrollmentID int64) (domain.Ticket, error) {
	var (
		t      domain.Ticket
		status string
	)
	err := r.db.QueryRowContext(ctx, findTicketByEnrollmentSQL, enrollmentID).Scan(
		&t.ID, &t.EnrollmentID, &status, &t.CreatedAt, &t.UpdatedAt,
		&t.Type.ID, &t.Type.Name, &t.Type.Price, &t.Type.IsRemote, &t.Type.IncludesHotel,
		&t.Type.CreatedAt, &t.Type.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Ticket{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Ticket{}, err
	}
	t.Status = domain.TicketStatus(status)
	return t, nil
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) GetHotelWithRooms(ctx context.Context, id int64) (domain.HotelWithRooms, error) {
	h, err := scanHotel(r.db.QueryRowContext(ctx, getHotelSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.HotelWithRooms{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.HotelWithRooms{}, err
	}

	rows, err := r.db.QueryContext(ctx, listRoomsByHotelSQL, id)
	if err != nil {
		return domain.HotelWithRooms{}, err
	}
	defer rows.Close()

	out := domain.HotelWithRooms{Hotel: h, Rooms: []domain.Room{}}
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return domain.HotelWithRooms{}, err
		}
		out.Rooms = append(out.Rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return domain.HotelWithRooms{}, err
	}
	return out, nil
}

type scanner interface{ Scan(dest ...any) error }

func scanHotel(s scanner) (domain.Hotel, error) {
	var (
		h     domain.Hotel
		image sql.NullString
	)
	if err := s.Scan(&h.ID, &h.Name, &image, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return domain.Hotel{}, err
	}
	h.Image = image.String
	return h, nil
}
