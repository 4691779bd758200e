package mysql

// Queries stay portable (plain joins, ? placeholders) so they also run on SQLite in tests.

const findSessionByTokenSQL = `
SELECT id, user_id, token, created_at, updated_at
FROM sessions
WHERE token = ?
`

const findEnrollmentByUserSQL = `
SELECT id, user_id, name, created_at, updated_at
FROM enrollments
WHERE user_id = ?
`

const findTicketByEnrollmentSQL = `
SELECT t.id, t.enrollment_id, t.status, t.created_at, t.updated_at,
       tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
FROM tickets t
JOIN ticket_types tt ON tt.id = t.ticket_type_id
WHERE t.enrollment_id = ?
`

const listHotelsSQL = `
SELECT id, name, image, created_at, updated_at
FROM hotels
ORDER BY id
`

const getHotelSQL = `
SELECT id, name, image, created_at, updated_at
FROM hotels
WHERE id = ?
`

const listRoomsByHotelSQL = `
SELECT id, name, capacity, hotel_id, created_at, updated_at
FROM rooms
WHERE hotel_id = ?
ORDER BY id
`
