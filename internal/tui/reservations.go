package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/navigator"
	"github.com/Domenick1991/flightdesk/internal/service/reservations"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var reservationLabels = []string{
	"Passenger Name",
	"Flight Number",
	"Departure City",
	"Destination City",
	"Date (YYYY-MM-DD)",
	"Seat Number",
}

var homeMenu = []string{"Book Flight", "View Reservations", "Exit"}

// ReservationsModel is the reservation manager: Home, Booking, Reservations and Edit.
type ReservationsModel struct {
	ctx    context.Context
	svc    reservations.ReservationUseCase
	logger *zap.SugaredLogger
	nav    *navigator.Navigator

	menu    int
	booking form
	edit    form
	table   table.Model

	// snapshot of the Reservations view, replaced on every show
	rows []domain.Reservation
	// editID is the reservation loaded into the edit form; 0 when none
	editID int64

	dialog *dialog
	err    error
}

func NewReservationsModel(ctx context.Context, svc reservations.ReservationUseCase, logger *zap.SugaredLogger) (*ReservationsModel, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	m := &ReservationsModel{
		ctx:     ctx,
		svc:     svc,
		logger:  logger,
		booking: newForm(reservationLabels...),
		edit:    newForm(reservationLabels...),
		table: table.New(
			table.WithColumns([]table.Column{
				{Title: "ID", Width: 5},
				{Title: "Passenger Name", Width: 18},
				{Title: "Flight Number", Width: 13},
				{Title: "Departure", Width: 14},
				{Title: "Destination", Width: 14},
				{Title: "Date", Width: 11},
				{Title: "Seat Number", Width: 11},
			}),
			table.WithFocused(true),
			table.WithHeight(12),
		),
	}

	nav, err := navigator.New(navigator.Home,
		navigator.Register(navigator.Home, nil),
		navigator.Register(navigator.Booking, nil),
		navigator.Register(navigator.Reservations, m.loadReservations),
		navigator.Register(navigator.Edit, m.loadEdit),
	)
	if err != nil {
		return nil, err
	}
	m.nav = nav
	return m, nil
}

// Err is the fatal error that ended the program, if any.
func (m *ReservationsModel) Err() error { return m.err }

func (m *ReservationsModel) Current() navigator.View { return m.nav.Current() }

// Rows is the reservation snapshot currently listed.
func (m *ReservationsModel) Rows() []domain.Reservation { return m.rows }

func (m *ReservationsModel) loadReservations(ctx context.Context) error {
	list, err := m.svc.List(ctx)
	if err != nil {
		m.rows = nil
		m.table.SetRows(nil)
		return err
	}
	m.rows = list
	rows := make([]table.Row, 0, len(list))
	for _, r := range list {
		rows = append(rows, table.Row{strconv.FormatInt(r.ID, 10), r.Name, r.FlightNumber, r.Departure, r.Destination, r.Date, r.SeatNumber})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
	return nil
}

func (m *ReservationsModel) loadEdit(ctx context.Context) error {
	if m.editID == 0 {
		return domain.NewValidationError("no reservation selected")
	}
	res, err := m.svc.Get(ctx, m.editID)
	if err != nil {
		return err
	}
	if res == nil {
		return fmt.Errorf("reservation %d: %w", m.editID, domain.ErrNotFound)
	}
	m.edit.setValues(res.Fields())
	return nil
}

func (m *ReservationsModel) selected() (domain.Reservation, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return domain.Reservation{}, false
	}
	return m.rows[i], true
}

func (m *ReservationsModel) Init() tea.Cmd {
	return nil
}

func (m *ReservationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.forward(msg)
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.dialog != nil {
		return m, updateDialog(&m.dialog, key)
	}

	switch m.nav.Current() {
	case navigator.Home:
		return m, m.updateHome(key)
	case navigator.Booking:
		return m, m.updateBooking(key)
	case navigator.Reservations:
		return m, m.updateReservations(key)
	case navigator.Edit:
		return m, m.updateEdit(key)
	}
	return m, nil
}

// forward passes non-key messages (cursor blink and the like) to the active widget.
func (m *ReservationsModel) forward(msg tea.Msg) tea.Cmd {
	switch m.nav.Current() {
	case navigator.Booking:
		return m.booking.update(msg)
	case navigator.Edit:
		return m.edit.update(msg)
	case navigator.Reservations:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return cmd
	}
	return nil
}

func (m *ReservationsModel) goTo(v navigator.View) tea.Cmd {
	cmd, err := show(m.ctx, m.nav, v, &m.err)
	if err != nil {
		m.dialog = actionFailed(m.logger, "show "+string(v), err)
	}
	return cmd
}

func (m *ReservationsModel) updateHome(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "up", "k":
		m.menu = (m.menu + len(homeMenu) - 1) % len(homeMenu)
	case "down", "j", "tab":
		m.menu = (m.menu + 1) % len(homeMenu)
	case "b":
		return m.openBooking()
	case "v":
		return m.goTo(navigator.Reservations)
	case "q", "esc":
		return tea.Quit
	case "enter":
		switch m.menu {
		case 0:
			return m.openBooking()
		case 1:
			return m.goTo(navigator.Reservations)
		default:
			return tea.Quit
		}
	}
	return nil
}

func (m *ReservationsModel) openBooking() tea.Cmd {
	return tea.Batch(m.goTo(navigator.Booking), m.booking.open())
}

func (m *ReservationsModel) updateBooking(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.booking.blur()
		return m.goTo(navigator.Home)
	case "enter":
		return m.submitBooking()
	}
	return m.booking.update(key)
}

func (m *ReservationsModel) submitBooking() tea.Cmd {
	if _, err := m.svc.Create(m.ctx, reservationFromForm(m.booking)); err != nil {
		m.dialog = actionFailed(m.logger, "create reservation", err)
		return nil
	}
	m.booking.reset()
	m.booking.blur()
	cmd := m.goTo(navigator.Home)
	if m.dialog == nil {
		m.dialog = infoDialog("Reservation created successfully!")
	}
	return cmd
}

func (m *ReservationsModel) updateReservations(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		return m.goTo(navigator.Home)
	case "r":
		return m.goTo(navigator.Reservations)
	case "e", "enter":
		return m.editSelected()
	case "d", "delete":
		return m.deleteSelected()
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(key)
	return cmd
}

func (m *ReservationsModel) editSelected() tea.Cmd {
	res, ok := m.selected()
	if !ok {
		m.dialog = warningDialog("Please select a reservation to edit")
		return nil
	}
	m.editID = res.ID
	cmd, err := show(m.ctx, m.nav, navigator.Edit, &m.err)
	if err != nil {
		// Nothing to edit; stay on the listing.
		m.editID = 0
		back, _ := show(m.ctx, m.nav, navigator.Reservations, &m.err)
		m.dialog = actionFailed(m.logger, "load reservation", err)
		return back
	}
	if cmd != nil {
		return cmd
	}
	return m.edit.open()
}

func (m *ReservationsModel) deleteSelected() tea.Cmd {
	res, ok := m.selected()
	if !ok {
		m.dialog = warningDialog("Please select a reservation to delete")
		return nil
	}
	id := res.ID
	m.dialog = confirmDialog("Are you sure you want to delete this reservation?", func() tea.Cmd {
		if err := m.svc.Delete(m.ctx, id); err != nil {
			m.dialog = actionFailed(m.logger, "delete reservation", err)
			return nil
		}
		cmd := m.goTo(navigator.Reservations)
		if m.dialog == nil {
			m.dialog = infoDialog("Reservation deleted successfully!")
		}
		return cmd
	})
	return nil
}

func (m *ReservationsModel) updateEdit(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.edit.blur()
		return m.goTo(navigator.Reservations)
	case "enter":
		return m.submitEdit()
	}
	return m.edit.update(key)
}

func (m *ReservationsModel) submitEdit() tea.Cmd {
	if m.editID == 0 {
		m.dialog = errorDialog(domain.NewValidationError("no reservation selected"))
		return nil
	}
	if err := m.svc.Update(m.ctx, m.editID, reservationFromForm(m.edit)); err != nil {
		m.dialog = actionFailed(m.logger, "update reservation", err)
		return nil
	}
	m.edit.blur()
	cmd := m.goTo(navigator.Reservations)
	if m.dialog == nil {
		m.dialog = infoDialog("Reservation updated successfully!")
	}
	return cmd
}

func reservationFromForm(f form) domain.Reservation {
	v := f.values()
	return domain.Reservation{
		Name:         v[0],
		FlightNumber: v[1],
		Departure:    v[2],
		Destination:  v[3],
		Date:         v[4],
		SeatNumber:   v[5],
	}
}

func (m *ReservationsModel) View() string {
	var body string
	switch m.nav.Current() {
	case navigator.Home:
		body = m.homeView()
	case navigator.Booking:
		body = screen("Book a Flight", m.booking.view(), "tab/↑↓: field  enter: submit  esc: back")
	case navigator.Reservations:
		body = screen("All Reservations", m.table.View(), "↑↓: select  e: edit  d: delete  r: refresh  esc: back")
	case navigator.Edit:
		body = screen("Edit Reservation", m.edit.view(), "tab/↑↓: field  enter: update  esc: back")
	}
	if m.dialog != nil {
		body += "\n" + m.dialog.view()
	}
	return body
}

func (m *ReservationsModel) homeView() string {
	var b strings.Builder
	for i, item := range homeMenu {
		if i == m.menu {
			b.WriteString(cursorStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
	return screen("Flight Reservation System", b.String(), "↑↓: move  enter: select  b: book  v: view  q: exit")
}
