// Package tui implements the interactive expense screen: an entry form,
// three aggregate stat cards, and the record list, on one page.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spendpad/spendpad/internal/config"
	"github.com/spendpad/spendpad/internal/expense"
	"github.com/spendpad/spendpad/internal/logging"
	"github.com/spendpad/spendpad/internal/storage"
)

// focusField identifies which part of the page owns keyboard input.
type focusField int

const (
	fieldDescription focusField = iota
	fieldAmount
	fieldCategory
	fieldList
)

// statusKind selects the styling of the transient status line.
type statusKind int

const (
	statusNone statusKind = iota
	statusSuccess
	statusError
)

// statusTTL is how long a notification stays on screen before auto-dismissing.
const statusTTL = 3 * time.Second

// statusExpiredMsg dismisses the status line. The sequence number guards
// against an old tick clearing a newer message.
type statusExpiredMsg struct {
	seq int
}

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the Bubble Tea model for the expense page.
type Model struct {
	ctx   context.Context
	cfg   *config.Config
	store *expense.Store
	files *storage.FileStore

	description textinput.Model
	amount      textinput.Model
	categories  []expense.Category
	categoryIdx int

	focus    focusField
	selected int

	status     string
	statusKind statusKind
	statusSeq  int

	width  int
	height int

	quitting bool
}

// NewModel creates the expense page model. The store should already be seeded
// with the persisted records; files receives the write-through after every
// mutation.
func NewModel(ctx context.Context, cfg *config.Config, store *expense.Store, files *storage.FileStore) Model {
	description := textinput.New()
	description.Placeholder = "what was it?"
	description.CharLimit = 120
	description.Width = 40
	description.Focus()

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12
	amount.Width = 12

	categories := expense.Categories()
	categoryIdx := 0
	if def, err := expense.ParseCategory(cfg.DefaultCategory); err == nil {
		for i, c := range categories {
			if c == def {
				categoryIdx = i
				break
			}
		}
	}

	return Model{
		ctx:         ctx,
		cfg:         cfg,
		store:       store,
		files:       files,
		description: description,
		amount:      amount,
		categories:  categories,
		categoryIdx: categoryIdx,
		focus:       fieldDescription,
		width:       defaultWidth,
		height:      defaultHeight,
	}
}

// Init starts the text input cursor blink (Bubble Tea interface).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages (Bubble Tea interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusKind = statusNone
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.setFocus(m.nextFocus(1))
		return m, nil

	case "shift+tab":
		m.setFocus(m.nextFocus(-1))
		return m, nil
	}

	if m.focus == fieldList {
		return m.handleListKey(msg)
	}
	return m.handleFormKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := m.store.Len()

	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < count-1 {
			m.selected++
		}

	case "d", "delete", "backspace":
		return m.deleteSelected()
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		return m.submit()
	}

	if m.focus == fieldCategory {
		switch msg.String() {
		case "left", "h":
			m.categoryIdx = (m.categoryIdx + len(m.categories) - 1) % len(m.categories)
		case "right", "l", " ":
			m.categoryIdx = (m.categoryIdx + 1) % len(m.categories)
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateInputs forwards a message to the focused text input.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldAmount:
		m.amount, cmd = m.amount.Update(msg)
	case fieldCategory, fieldList:
		// No input component owns focus.
	}
	return m, cmd
}

func (m Model) nextFocus(dir int) focusField {
	const fieldCount = 4
	return focusField((int(m.focus) + dir + fieldCount) % fieldCount)
}

func (m *Model) setFocus(f focusField) {
	m.focus = f
	m.description.Blur()
	m.amount.Blur()
	switch f {
	case fieldDescription:
		m.description.Focus()
	case fieldAmount:
		m.amount.Focus()
	case fieldCategory, fieldList:
	}
}

// submit runs the add intent: validate, prepend, write through, notify.
// On validation failure the form input is retained for correction.
func (m Model) submit() (tea.Model, tea.Cmd) {
	category := string(m.categories[m.categoryIdx])
	rec, err := m.store.Add(m.description.Value(), m.amount.Value(), category)
	if err != nil {
		var verr *expense.ValidationError
		if errors.As(err, &verr) {
			return m.setStatus(statusError, verr.Error())
		}
		return m.setStatus(statusError, err.Error())
	}

	if err := m.files.Save(m.ctx, m.store.All()); err != nil {
		logger := logging.FromContext(m.ctx)
		logger.Error().Err(err).Msg("write-through failed after add")
		return m.setStatus(statusError, fmt.Sprintf("could not save: %v", err))
	}

	m.description.SetValue("")
	m.amount.SetValue("")
	m.selected = 0
	m.setFocus(fieldDescription)

	return m.setStatus(statusSuccess,
		fmt.Sprintf("added %s %s", rec.Description, FormatAmount(m.cfg.Currency, rec.Amount)))
}

// deleteSelected runs the delete intent for the highlighted record.
func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	records := m.store.All()
	if len(records) == 0 || m.selected >= len(records) {
		return m, nil
	}

	rec := records[m.selected]
	m.store.Remove(rec.ID)

	if err := m.files.Save(m.ctx, m.store.All()); err != nil {
		logger := logging.FromContext(m.ctx)
		logger.Error().Err(err).Msg("write-through failed after delete")
		return m.setStatus(statusError, fmt.Sprintf("could not save: %v", err))
	}

	if m.selected >= m.store.Len() && m.selected > 0 {
		m.selected--
	}

	return m.setStatus(statusSuccess, fmt.Sprintf("deleted %s", rec.Description))
}

// setStatus shows a transient notification and schedules its dismissal.
func (m Model) setStatus(kind statusKind, text string) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusKind = kind
	m.statusSeq++

	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
