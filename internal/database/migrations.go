package database

// Schema is one table in both supported dialects.
type Schema struct {
	Table    string
	SQLite   string
	Postgres string
}

var Reservations = Schema{
	Table: "reservations",
	SQLite: `
CREATE TABLE IF NOT EXISTS reservations (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  flight_number TEXT NOT NULL,
  departure TEXT NOT NULL,
  destination TEXT NOT NULL,
  date TEXT NOT NULL,
  seat_number TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
)`,
	Postgres: `
CREATE TABLE IF NOT EXISTS reservations (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  flight_number TEXT NOT NULL,
  departure TEXT NOT NULL,
  destination TEXT NOT NULL,
  date TEXT NOT NULL,
  seat_number TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
}

var Flights = Schema{
	Table: "flights",
	SQLite: `
CREATE TABLE IF NOT EXISTS flights (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  flight_number TEXT NOT NULL,
  origin TEXT NOT NULL,
  destination TEXT NOT NULL,
  departure_time TEXT NOT NULL,
  arrival_time TEXT NOT NULL,
  price REAL NOT NULL,
  seats_available INTEGER NOT NULL
)`,
	Postgres: `
CREATE TABLE IF NOT EXISTS flights (
  id BIGSERIAL PRIMARY KEY,
  flight_number TEXT NOT NULL,
  origin TEXT NOT NULL,
  destination TEXT NOT NULL,
  departure_time TIMESTAMPTZ NOT NULL,
  arrival_time TIMESTAMPTZ NOT NULL,
  price DOUBLE PRECISION NOT NULL,
  seats_available INTEGER NOT NULL
)`,
}

// FlightBookings shares the reservations table name with Reservations; the
// two live in different databases.
var FlightBookings = Schema{
	Table: "reservations",
	SQLite: `
CREATE TABLE IF NOT EXISTS reservations (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  flight_id INTEGER NOT NULL,
  passenger_name TEXT NOT NULL,
  passenger_email TEXT NOT NULL,
  seats_reserved INTEGER NOT NULL,
  reservation_time TEXT NOT NULL,
  FOREIGN KEY (flight_id) REFERENCES flights (id)
)`,
	Postgres: `
CREATE TABLE IF NOT EXISTS reservations (
  id BIGSERIAL PRIMARY KEY,
  flight_id BIGINT NOT NULL REFERENCES flights (id),
  passenger_name TEXT NOT NULL,
  passenger_email TEXT NOT NULL,
  seats_reserved INTEGER NOT NULL,
  reservation_time TIMESTAMPTZ NOT NULL
)`,
}
