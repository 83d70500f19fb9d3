package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/navigator"
	"github.com/Domenick1991/flightdesk/internal/service/inventory"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	fieldFlightID = iota
	fieldPassengerName
	fieldPassengerEmail
	fieldSeats
)

// InventoryModel lists flights and reserves seats on them.
type InventoryModel struct {
	ctx    context.Context
	svc    inventory.InventoryUseCase
	logger *zap.SugaredLogger
	nav    *navigator.Navigator

	flights  table.Model
	bookings table.Model
	reserve  form
	// onTable is true while keys go to the flights table rather than the form.
	onTable bool

	flightRows  []domain.Flight
	bookingRows []domain.BookingView

	dialog *dialog
	err    error
}

func NewInventoryModel(ctx context.Context, svc inventory.InventoryUseCase, logger *zap.SugaredLogger) (*InventoryModel, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	m := &InventoryModel{
		ctx:    ctx,
		svc:    svc,
		logger: logger,
		flights: table.New(
			table.WithColumns([]table.Column{
				{Title: "ID", Width: 4},
				{Title: "Flight Number", Width: 13},
				{Title: "Origin", Width: 14},
				{Title: "Destination", Width: 14},
				{Title: "Departure", Width: 16},
				{Title: "Arrival", Width: 16},
				{Title: "Price ($)", Width: 9},
				{Title: "Seats Available", Width: 15},
			}),
			table.WithFocused(true),
			table.WithHeight(8),
		),
		bookings: table.New(
			table.WithColumns([]table.Column{
				{Title: "Reservation ID", Width: 14},
				{Title: "Flight Number", Width: 13},
				{Title: "Passenger Name", Width: 18},
				{Title: "Passenger Email", Width: 22},
				{Title: "Seats Reserved", Width: 14},
				{Title: "Reservation Time", Width: 19},
			}),
			table.WithFocused(true),
			table.WithHeight(12),
		),
		reserve: newForm("Flight ID", "Passenger Name", "Passenger Email", "Number of Seats"),
		onTable: true,
	}
	m.reserve.setValue(fieldSeats, "1")

	nav, err := navigator.New(navigator.Flights,
		navigator.Register(navigator.Flights, m.loadFlights),
		navigator.Register(navigator.ReservationsDialog, m.loadBookings),
	)
	if err != nil {
		return nil, err
	}
	m.nav = nav
	return m, nil
}

func (m *InventoryModel) Err() error { return m.err }

func (m *InventoryModel) Current() navigator.View { return m.nav.Current() }

func (m *InventoryModel) Flights() []domain.Flight { return m.flightRows }

func (m *InventoryModel) Bookings() []domain.BookingView { return m.bookingRows }

func (m *InventoryModel) loadFlights(ctx context.Context) error {
	list, err := m.svc.ListFlights(ctx)
	if err != nil {
		m.flightRows = nil
		m.flights.SetRows(nil)
		return err
	}
	m.flightRows = list
	rows := make([]table.Row, 0, len(list))
	for _, f := range list {
		rows = append(rows, table.Row{
			strconv.FormatInt(f.ID, 10),
			f.FlightNumber,
			f.Origin,
			f.Destination,
			f.DepartureTime.Format(domain.TimeLayout),
			f.ArrivalTime.Format(domain.TimeLayout),
			strconv.FormatFloat(f.Price, 'f', 2, 64),
			strconv.Itoa(f.SeatsAvailable),
		})
	}
	m.flights.SetRows(rows)
	if m.flights.Cursor() >= len(rows) {
		m.flights.SetCursor(max(len(rows)-1, 0))
	}
	return nil
}

func (m *InventoryModel) loadBookings(ctx context.Context) error {
	list, err := m.svc.ListBookings(ctx)
	if err != nil {
		m.bookingRows = nil
		m.bookings.SetRows(nil)
		return err
	}
	m.bookingRows = list
	rows := make([]table.Row, 0, len(list))
	for _, b := range list {
		rows = append(rows, table.Row{
			strconv.FormatInt(b.ID, 10),
			b.FlightNumber,
			b.PassengerName,
			b.PassengerEmail,
			strconv.Itoa(b.SeatsReserved),
			b.ReservedAt.Local().Format("2006-01-02 15:04:05"),
		})
	}
	m.bookings.SetRows(rows)
	if len(rows) > 0 {
		m.bookings.SetCursor(0)
	}
	return nil
}

// Init loads the flight list for the initial view.
func (m *InventoryModel) Init() tea.Cmd {
	return m.goTo(navigator.Flights)
}

func (m *InventoryModel) goTo(v navigator.View) tea.Cmd {
	cmd, err := show(m.ctx, m.nav, v, &m.err)
	if err != nil {
		m.dialog = actionFailed(m.logger, "show "+string(v), err)
	}
	return cmd
}

func (m *InventoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if !m.onTable && m.nav.Current() == navigator.Flights {
			return m, m.reserve.update(msg)
		}
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.dialog != nil {
		return m, updateDialog(&m.dialog, key)
	}

	switch m.nav.Current() {
	case navigator.Flights:
		if m.onTable {
			return m, m.updateTable(key)
		}
		return m, m.updateForm(key)
	case navigator.ReservationsDialog:
		return m, m.updateBookings(key)
	}
	return m, nil
}

func (m *InventoryModel) fillFlightID() {
	i := m.flights.Cursor()
	if i < 0 || i >= len(m.flightRows) {
		return
	}
	m.reserve.setValue(fieldFlightID, strconv.FormatInt(m.flightRows[i].ID, 10))
}

func (m *InventoryModel) focusTable() {
	m.reserve.blur()
	m.flights.Focus()
	m.onTable = true
}

func (m *InventoryModel) focusForm(field int) tea.Cmd {
	m.flights.Blur()
	m.onTable = false
	return m.reserve.focusField(field)
}

func (m *InventoryModel) updateTable(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "q", "esc":
		return tea.Quit
	case "v":
		return m.goTo(navigator.ReservationsDialog)
	case "tab":
		return m.focusForm(fieldFlightID)
	case "shift+tab":
		return m.focusForm(fieldSeats)
	case "enter":
		m.fillFlightID()
		return m.focusForm(fieldPassengerName)
	}
	var cmd tea.Cmd
	m.flights, cmd = m.flights.Update(key)
	m.fillFlightID()
	return cmd
}

func (m *InventoryModel) updateForm(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.focusTable()
		return nil
	case "enter":
		return m.submitReservation()
	case "tab":
		if m.reserve.focus == fieldSeats {
			m.focusTable()
			return nil
		}
		return m.reserve.next()
	case "shift+tab":
		if m.reserve.focus == fieldFlightID {
			m.focusTable()
			return nil
		}
		return m.reserve.prev()
	}
	return m.reserve.update(key)
}

func (m *InventoryModel) submitReservation() tea.Cmd {
	flightID, idErr := strconv.ParseInt(strings.TrimSpace(m.reserve.value(fieldFlightID)), 10, 64)
	seats, seatsErr := strconv.Atoi(strings.TrimSpace(m.reserve.value(fieldSeats)))
	if idErr != nil || seatsErr != nil {
		m.dialog = errorDialog(domain.NewValidationError("please enter valid numeric values for flight id and seats"))
		return nil
	}

	booking, err := m.svc.Reserve(m.ctx, inventory.ReserveInput{
		FlightID:       flightID,
		PassengerName:  m.reserve.value(fieldPassengerName),
		PassengerEmail: m.reserve.value(fieldPassengerEmail),
		Seats:          seats,
	})
	if err != nil {
		m.dialog = actionFailed(m.logger, "reserve seats", err)
		return nil
	}
	m.logger.Infow("reservation created", "booking_id", booking.ID, "flight_id", booking.FlightID, "seats", booking.SeatsReserved)

	m.reserve.setValue(fieldPassengerName, "")
	m.reserve.setValue(fieldPassengerEmail, "")
	m.reserve.setValue(fieldSeats, "1")
	cmd := m.goTo(navigator.Flights)
	if m.dialog == nil {
		m.dialog = infoDialog("Reservation created successfully!")
	}
	return cmd
}

func (m *InventoryModel) updateBookings(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc", "enter", "c":
		return m.goTo(navigator.Flights)
	}
	var cmd tea.Cmd
	m.bookings, cmd = m.bookings.Update(key)
	return cmd
}

func (m *InventoryModel) View() string {
	var body string
	switch m.nav.Current() {
	case navigator.Flights:
		help := "↑↓: select flight  tab: form  v: view reservations  q: exit"
		if !m.onTable {
			help = "tab/↑↓: field  enter: make reservation  esc: flights"
		}
		content := "Available Flights\n" + m.flights.View() + "\n\nMake Reservation\n" + m.reserve.view()
		body = screen("Flight Reservation System", content, help)
	case navigator.ReservationsDialog:
		body = screen("Reservations", m.bookings.View(), fmt.Sprintf("%d reservations  ↑↓: scroll  c/esc: close", len(m.bookingRows)))
	}
	if m.dialog != nil {
		body += "\n" + m.dialog.view()
	}
	return body
}
