// Package boardview is the interactive Q&A board: keyword chips, status
// banners and the card grid.
package boardview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/qb/internal/accordion"
	"github.com/Paintersrp/qb/internal/board"
	"github.com/Paintersrp/qb/internal/config"
	"github.com/Paintersrp/qb/internal/constants"
	"github.com/Paintersrp/qb/internal/layout"
	"github.com/Paintersrp/qb/internal/source"
	"github.com/Paintersrp/qb/internal/tui/hover"
	"github.com/Paintersrp/qb/internal/upload"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptKeyword
	promptUpload
)

const (
	flagSuccess = "success"
	flagStatus  = "status"

	zoneCard    = "card:"
	zoneChip    = "chip:"
	zoneHide    = "hide:"
	zoneReset   = "reset"
	zoneDismiss = "dismiss"
	zoneAdd     = "add"
	zoneUpload  = "upload"
)

type cardCloseMsg struct {
	ticket accordion.Ticket[board.ID]
}

type loadedMsg struct {
	location string
	dataset  board.Dataset
	err      error
}

type Model struct {
	state   board.State
	cfg     *config.Config
	source  *source.Source
	cards   *accordion.Cards[board.ID]
	buttons *hover.Buttons
	expiry  *hover.Expiry
	zones   hover.Map
	answers *answerRenderer
	keys    keyMap
	help    help.Model
	input   textinput.Model
	prompt  promptKind

	cardZones map[string]board.ID
	hoverCard board.ID
	onCard    bool

	focus   int
	scroll  int
	columns int
	status  string
	loading bool
	width   int
	height  int
}

func New(state board.State, cfg *config.Config, src *source.Source) *Model {
	input := textinput.New()
	input.CharLimit = 512

	return &Model{
		state:     state,
		cfg:       cfg,
		source:    src,
		cards:     accordion.NewCards[board.ID](),
		buttons:   hover.NewButtons(cfg.HoverDelay),
		expiry:    hover.NewExpiry(),
		answers:   newAnswerRenderer(cfg.GlamourStyle),
		keys:      newKeyMap(),
		help:      help.New(),
		input:     input,
		cardZones: map[string]board.ID{},
		columns:   1,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// State returns the current board snapshot.
func (m *Model) State() board.State { return m.state }

// Editing reports whether a text prompt is capturing keys.
func (m *Model) Editing() bool { return m.prompt != promptNone }

func (m *Model) Columns() int { return m.columns }

func (m *Model) Focus() int { return m.focus }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.columns = layout.CellColumns(msg.Width, m.cfg.CellWidth, m.cfg.Breakpoints)
		m.input.Width = max(msg.Width-20, 10)
		m.help.Width = msg.Width
		return m, nil

	case cardCloseMsg:
		if req, ok := m.cards.Expire(msg.ticket); ok {
			m.apply(req)
		}
		return m, nil

	case hover.TriggerMsg:
		if button, ok := m.buttons.Fire(msg); ok {
			return m, m.press(button)
		}
		return m, nil

	case hover.ExpireMsg:
		switch flag, _ := m.expiry.Expired(msg); flag {
		case flagSuccess:
			m.state = m.state.ClearSuccess()
		case flagStatus:
			m.status = ""
		}
		return m, nil

	case loadedMsg:
		return m, m.finishLoad(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m, m.handlePromptKey(msg)
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	total := len(m.state.Filtered())

	switch {
	case key.Matches(msg, m.keys.quit):
		m.teardown()
		return tea.Quit
	case key.Matches(msg, m.keys.up):
		m.moveFocus(0, -1, total)
	case key.Matches(msg, m.keys.down):
		m.moveFocus(0, 1, total)
	case key.Matches(msg, m.keys.left):
		m.moveFocus(-1, 0, total)
	case key.Matches(msg, m.keys.right):
		m.moveFocus(1, 0, total)
	case key.Matches(msg, m.keys.toggle):
		if m.focus >= 0 && m.focus < total {
			m.clickCard(m.state.Filtered()[m.focus].ID)
		}
	case key.Matches(msg, m.keys.keyword):
		n := int(msg.Runes[0] - '1')
		if words := m.state.Keywords(); n < len(words) {
			m.selectKeyword(words[n])
		}
	case key.Matches(msg, m.keys.prevWord):
		m.cycleKeyword(-1)
	case key.Matches(msg, m.keys.nextWord):
		m.cycleKeyword(1)
	case key.Matches(msg, m.keys.reset):
		return m.press(zoneReset)
	case key.Matches(msg, m.keys.dismiss):
		return m.press(zoneDismiss)
	case key.Matches(msg, m.keys.hide):
		if word := m.state.Filter(); word != "" {
			return m.press(zoneHide + word)
		}
	case key.Matches(msg, m.keys.add):
		return m.press(zoneAdd)
	case key.Matches(msg, m.keys.upload):
		return m.press(zoneUpload)
	case key.Matches(msg, m.keys.template):
		return m.writeTemplate()
	case key.Matches(msg, m.keys.pageUp):
		m.scroll = max(m.scroll-max(m.height/2, 1), 0)
	case key.Matches(msg, m.keys.pageDown):
		m.scroll += max(m.height/2, 1)
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.cancel):
		m.closePrompt()
		return nil
	case key.Matches(msg, m.keys.submit):
		value := strings.TrimSpace(m.input.Value())
		kind := m.prompt
		m.closePrompt()

		switch kind {
		case promptKeyword:
			m.state = m.state.AddKeyword(value)
		case promptUpload:
			return m.startLoad(value)
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) openPrompt(kind promptKind) tea.Cmd {
	m.prompt = kind
	m.input.Reset()
	switch kind {
	case promptKeyword:
		m.input.Prompt = "Keyword: "
		m.input.Placeholder = "add a custom keyword"
	case promptUpload:
		m.input.Prompt = "Upload: "
		m.input.Placeholder = "path/to/board.json or s3://bucket/key"
	}
	return m.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.Reset()
}

// press runs the action behind a button zone.
func (m *Model) press(zone string) tea.Cmd {
	switch {
	case strings.HasPrefix(zone, zoneChip):
		m.selectKeyword(strings.TrimPrefix(zone, zoneChip))
	case strings.HasPrefix(zone, zoneHide):
		m.state = m.state.HideKeyword(strings.TrimPrefix(zone, zoneHide))
		m.clampFocus()
	case zone == zoneReset:
		m.state = m.state.ResetFilter()
		m.clampFocus()
	case zone == zoneDismiss:
		m.state = m.state.DismissError()
	case zone == zoneAdd:
		return m.openPrompt(promptKeyword)
	case zone == zoneUpload:
		if m.loading {
			return nil
		}
		return m.openPrompt(promptUpload)
	}
	return nil
}

func (m *Model) selectKeyword(word string) {
	m.state = m.state.SetFilter(word)
	m.focus = 0
	m.scroll = 0
}

// cycleKeyword moves the filter delta chips along the keyword list, wrapping
// at either end. With no filter it starts from the first or last chip.
func (m *Model) cycleKeyword(delta int) {
	words := m.state.Keywords()
	if len(words) == 0 {
		return
	}

	next := -1
	for i, word := range words {
		if word == m.state.Filter() {
			next = (i + delta + len(words)) % len(words)
			break
		}
	}
	if next < 0 {
		next = 0
		if delta < 0 {
			next = len(words) - 1
		}
	}
	m.selectKeyword(words[next])
}

func (m *Model) clickCard(id board.ID) {
	m.apply(m.cards.Click(id, m.state.IsOpen(id)))
}

func (m *Model) apply(req accordion.Request[board.ID]) {
	m.state = m.state.Toggle(req.ID, req.Open)
}

func (m *Model) moveFocus(dx, dy, total int) {
	if total == 0 {
		m.focus = 0
		return
	}
	col, row := layout.Position(m.focus, m.columns)
	if i := layout.Index(col+dx, row+dy, m.columns, total); i >= 0 {
		m.focus = i
	}
}

func (m *Model) clampFocus() {
	total := len(m.state.Filtered())
	if m.focus >= total {
		m.focus = max(total-1, 0)
	}
}

func (m *Model) startLoad(location string) tea.Cmd {
	if location == "" {
		return nil
	}
	m.loading = true

	src, timeout := m.source, m.cfg.SourceTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		ds, err := src.Load(ctx, location)
		return loadedMsg{location: location, dataset: ds, err: err}
	}
}

func (m *Model) finishLoad(msg loadedMsg) tea.Cmd {
	m.loading = false

	if msg.err != nil {
		m.state = m.state.UploadFailed(msg.err)
		m.expiry.Cancel(flagSuccess)
		return nil
	}

	m.teardown()
	m.answers.purge()
	m.focus = 0
	m.scroll = 0
	m.state = m.state.Load(msg.dataset)
	return m.expiry.Arm(flagSuccess, m.cfg.SuccessTTL)
}

// teardown cancels every pending card and button timer before the cards go
// away.
func (m *Model) teardown() {
	m.cards.Teardown()
	m.buttons.Reset()
	m.onCard = false
}

func (m *Model) writeTemplate() tea.Cmd {
	err := upload.WriteTemplate(constants.TemplateFile, false)
	switch {
	case errors.Is(err, os.ErrExist):
		m.status = fmt.Sprintf("%s already exists; run `qb template --force` to replace it", constants.TemplateFile)
	case err != nil:
		slog.Error("template write failed", "err", err)
		m.status = fmt.Sprintf("Template failed: %v", err)
	default:
		m.status = fmt.Sprintf("Template written to %s", constants.TemplateFile)
	}
	return m.expiry.Arm(flagStatus, m.cfg.SuccessTTL)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll = max(m.scroll-3, 0)
		return nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll += 3
		return nil
	}

	zone, _ := m.zones.At(msg.X, msg.Y)
	id, onCard := m.cardZones[zone.Key]

	switch msg.Action {
	case tea.MouseActionMotion:
		return m.handleMotion(zone.Key, id, onCard)
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if onCard {
			m.clickCard(id)
			return nil
		}
		if zone.Key != "" {
			m.buttons.Reset()
			return m.press(zone.Key)
		}
	}
	return nil
}

func (m *Model) handleMotion(zone string, id board.ID, onCard bool) tea.Cmd {
	var cmds []tea.Cmd

	if m.onCard && (!onCard || id != m.hoverCard) {
		cmds = append(cmds, m.leaveCard(m.hoverCard))
		m.onCard = false
	}

	button := ""
	switch {
	case onCard && m.onCard:
		m.cards.Move(id)
	case onCard:
		if req, ok := m.cards.Enter(id, m.state.IsOpen(id)); ok {
			m.apply(req)
		}
		m.hoverCard = id
		m.onCard = true
	default:
		button = zone
	}

	cmds = append(cmds, m.buttons.Hover(button, !m.hoverArms(button)))
	return tea.Batch(cmds...)
}

// hoverArms reports whether resting on zone fires it. Chips fire unless they
// are already the active filter.
func (m *Model) hoverArms(zone string) bool {
	switch {
	case strings.HasPrefix(zone, zoneChip):
		return strings.TrimPrefix(zone, zoneChip) != m.state.Filter()
	case zone == zoneReset, zone == zoneDismiss:
		return true
	}
	return false
}

func (m *Model) leaveCard(id board.ID) tea.Cmd {
	ticket := m.cards.Leave(id)
	return tea.Tick(m.cfg.CloseDelay, func(time.Time) tea.Msg {
		return cardCloseMsg{ticket: ticket}
	})
}
