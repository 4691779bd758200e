package mysql_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"event_hotels/internal/domain"
	mysqlrepo "event_hotels/internal/storage/mysql"
)

// sqliteSchema mirrors migrations/0001_init.sql with SQLite types.
const sqliteSchema = `
CREATE TABLE users (id INTEGER PRIMARY KEY, email TEXT NOT NULL, password TEXT NOT NULL);
CREATE TABLE sessions (id INTEGER PRIMARY KEY, user_id INTEGER NOT NULL, token TEXT NOT NULL,
  created_at DATETIME NOT NULL, updated_at DATETIME NOT NULL);
CREATE TABLE enrollments (id INTEGER PRIMARY KEY, user_id INTEGER NOT NULL UNIQUE, name TEXT NOT NULL,
  created_at DATETIME NOT NULL, updated_at DATETIME NOT NULL);
CREATE TABLE ticket_types (id INTEGER PRIMARY KEY, name TEXT NOT NULL, price INTEGER NOT NULL,
  is_remote BOOLEAN NOT NULL, includes_hotel BOOLEAN NOT NULL,
  created_at DATETIME NOT NULL, updated_at DATETIME NOT NULL);
CREATE TABLE tickets (id INTEGER PRIMARY KEY, ticket_type_id INTEGER NOT NULL, enrollment_id INTEGER NOT NULL UNIQUE,
  status TEXT NOT NULL, created_at DATETIME NOT NULL, updated_at DATETIME NOT NULL);
CREATE TABLE hotels (id INTEGER PRIMARY KEY, name TEXT NOT NULL, image TEXT NOT NULL,
  created_at DATETIME NOT NULL, updated_at DATETIME NOT NULL);
CREATE TABLE rooms (id INTEGER PRIMARY KEY, name TEXT NOT NULL, capacity INTEGER NOT NULL, hotel_id INTEGER NOT NULL,
  created_at DATETIME NOT NULL, updated_at DATETIME NOT NULL);
`

var seedAt = time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "hotels.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)

	_, err = db.Exec(sqliteSchema)
	require.NoError(t, err)
	return db
}

func exec(t *testing.T, db *sql.DB, q string, args ...any) {
	t.Helper()
	_, err := db.Exec(q, args...)
	require.NoError(t, err)
}

func TestRepo_FindSessionByToken(t *testing.T) {
	db := openSQLite(t)
	exec(t, db, `INSERT INTO sessions (id, user_id, token, created_at, updated_at) VALUES (1, 42, 'tok-a', ?, ?)`, seedAt, seedAt)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	s, err := repo.FindSessionByToken(ctx, "tok-a")
	require.NoError(t, err)
	require.Equal(t, int64(42), s.UserID)
	require.Equal(t, "tok-a", s.Token)

	_, err = repo.FindSessionByToken(ctx, "tok-b")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_EnrollmentAndTicket(t *testing.T) {
	db := openSQLite(t)
	exec(t, db, `INSERT INTO enrollments (id, user_id, name, created_at, updated_at) VALUES (10, 1, 'Ana', ?, ?)`, seedAt, seedAt)
	exec(t, db, `INSERT INTO ticket_types (id, name, price, is_remote, includes_hotel, created_at, updated_at)
		VALUES (5, 'Presencial + Hotel', 600, ?, ?, ?, ?)`, false, true, seedAt, seedAt)
	exec(t, db, `INSERT INTO tickets (id, ticket_type_id, enrollment_id, status, created_at, updated_at)
		VALUES (100, 5, 10, 'PAID', ?, ?)`, seedAt, seedAt)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	enr, err := repo.FindEnrollmentByUser(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(10), enr.ID)
	require.Equal(t, "Ana", enr.Name)

	_, err = repo.FindEnrollmentByUser(ctx, 2)
	require.ErrorIs(t, err, domain.ErrNotFound)

	tk, err := repo.FindTicketByEnrollment(ctx, enr.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TicketPaid, tk.Status)
	require.Equal(t, int64(5), tk.Type.ID)
	require.Equal(t, 600, tk.Type.Price)
	require.True(t, tk.Type.IncludesHotel)
	require.False(t, tk.Type.IsRemote)
	require.NoError(t, tk.HotelAccess())

	_, err = repo.FindTicketByEnrollment(ctx, 11)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_ListHotels(t *testing.T) {
	db := openSQLite(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	hs, err := repo.ListHotels(ctx)
	require.NoError(t, err)
	require.NotNil(t, hs)
	require.Empty(t, hs)

	exec(t, db, `INSERT INTO hotels (id, name, image, created_at, updated_at) VALUES (2, 'B', 'https://img/b.png', ?, ?)`, seedAt, seedAt)
	exec(t, db, `INSERT INTO hotels (id, name, image, created_at, updated_at) VALUES (1, 'A', 'https://img/a.png', ?, ?)`, seedAt, seedAt)

	hs, err = repo.ListHotels(ctx)
	require.NoError(t, err)
	require.Len(t, hs, 2)
	require.Equal(t, int64(1), hs[0].ID)
	require.Equal(t, "A", hs[0].Name)
	require.Equal(t, "https://img/b.png", hs[1].Image)
	require.True(t, hs[0].CreatedAt.Equal(seedAt))
}

func TestRepo_GetHotelWithRooms(t *testing.T) {
	db := openSQLite(t)
	exec(t, db, `INSERT INTO hotels (id, name, image, created_at, updated_at) VALUES (1, 'Full', 'i', ?, ?)`, seedAt, seedAt)
	exec(t, db, `INSERT INTO hotels (id, name, image, created_at, updated_at) VALUES (2, 'Empty', 'i', ?, ?)`, seedAt, seedAt)
	for i, capacity := range []int{1, 3, 6} {
		exec(t, db, `INSERT INTO rooms (id, name, capacity, hotel_id, created_at, updated_at) VALUES (?, ?, ?, 1, ?, ?)`,
			i+1, "room", capacity, seedAt, seedAt)
	}
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	h, err := repo.GetHotelWithRooms(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Full", h.Name)
	require.Len(t, h.Rooms, 3)
	for _, rm := range h.Rooms {
		require.Equal(t, h.ID, rm.HotelID)
	}
	require.Equal(t, 6, h.Rooms[2].Capacity)

	empty, err := repo.GetHotelWithRooms(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, empty.Rooms)
	require.Empty(t, empty.Rooms)

	_, err = repo.GetHotelWithRooms(ctx, 3)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
