package main

import (
	"colorwars/engine"
	"colorwars/game"
	"colorwars/meta"
	"colorwars/searcher"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

type screen int

const (
	menuScreen screen = iota
	seatsScreen
	gameScreen
)

// settings are fixed for the whole session.
type settings struct {
	size      int
	depth     int
	adversary searcher.Adversary
	seed      uint64
	botDelay  time.Duration
}

// botTurnMsg asks the bot to move. Ticks from an abandoned game carry a
// stale generation and are dropped.
type botTurnMsg struct {
	gen int
}

type model struct {
	settings
	screen  screen
	players int
	seat    int    // seat under the cursor on the seats screen
	humans  []bool // humans[i] is true when player i+1 is human

	match      *game.Match
	bot        *searcher.Bot
	botPlayers int // player count the bot was built for
	placer     *engine.RandomAgent
	cursor     game.Move
	flash      map[game.Move]bool // cells hit by the last explosion
	message    string
	gen        int
}

func newModel(s settings) model {
	return model{
		settings: s,
		screen:   menuScreen,
		players:  game.MinPlayers,
		placer:   engine.NewRandomAgent(s.seed),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.toMenu(), nil
		}
		switch m.screen {
		case menuScreen:
			return m.updateMenu(msg)
		case seatsScreen:
			return m.updateSeats(msg)
		case gameScreen:
			return m.updateGame(msg)
		}
	case botTurnMsg:
		if msg.gen != m.gen || m.screen != gameScreen {
			return m, nil
		}
		return m.playBot()
	}
	return m, nil
}

func (m model) toMenu() model {
	if m.bot != nil {
		m.bot.ClearCache()
	}
	m.screen = menuScreen
	m.match = nil
	m.flash = nil
	m.message = ""
	m.gen++
	return m
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.players = min(m.players+1, game.MaxPlayers)
	case "down", "j":
		m.players = max(m.players-1, game.MinPlayers)
	case "2", "3", "4":
		m.players = int(msg.String()[0] - '0')
	case "enter":
		m.humans = make([]bool, m.players)
		m.humans[0] = true
		m.seat = 0
		m.screen = seatsScreen
	}
	return m, nil
}

func (m model) updateSeats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.seat = max(m.seat-1, 0)
	case "down", "j":
		m.seat = min(m.seat+1, m.players-1)
	case "left", "right", "h", "l", " ", "space":
		humans := make([]bool, len(m.humans))
		copy(humans, m.humans)
		humans[m.seat] = !humans[m.seat]
		m.humans = humans
	case "enter":
		return m.start()
	}
	return m, nil
}

func (m model) start() (tea.Model, tea.Cmd) {
	match, err := game.NewMatch(m.size, m.players)
	if err != nil {
		m.message = err.Error()
		return m, nil
	}
	if m.bot == nil || m.botPlayers != m.players {
		m.bot = searcher.NewBot(m.players, searcher.WithDepth(m.depth), searcher.WithAdversary(m.adversary))
		m.botPlayers = m.players
	}
	m.match = match
	m.screen = gameScreen
	m.cursor = game.Move{X: m.size / 2, Y: m.size / 2}
	m.flash = nil
	m.message = ""
	m.gen++
	log.Info().Int("players", m.players).Int("size", m.size).Msg("game started")
	return m, m.scheduleBot()
}

func (m model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.match.Phase == game.OverPhase {
		if msg.String() == "enter" {
			return m.toMenu(), nil
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.cursor.X = max(m.cursor.X-1, 0)
	case "down", "j":
		m.cursor.X = min(m.cursor.X+1, m.size-1)
	case "left", "h":
		m.cursor.Y = max(m.cursor.Y-1, 0)
	case "right", "l":
		m.cursor.Y = min(m.cursor.Y+1, m.size-1)
	case "enter", " ", "space":
		if !m.humanToMove() {
			return m, nil
		}
		return m.act(m.cursor)
	}
	return m, nil
}

func (m model) humanToMove() bool {
	return m.match != nil && m.match.Phase != game.OverPhase && m.humans[m.match.Current-1]
}

// act places or plays at cell for the current player.
func (m model) act(cell game.Move) (tea.Model, tea.Cmd) {
	player := m.match.Current
	m.flash = nil
	m.message = ""

	if m.match.Phase == game.PlacementPhase {
		if err := m.match.Place(cell); err != nil {
			m.message = "Choose a free cell"
			return m, nil
		}
		log.Debug().Int("player", int(player)).Int("x", cell.X).Int("y", cell.Y).Msg("placed")
		return m, m.scheduleBot()
	}

	affected, err := m.match.PlayTrace(cell)
	if err != nil {
		m.message = "Play one of your own cells"
		return m, nil
	}
	m.flash = make(map[game.Move]bool, len(affected))
	for _, a := range affected {
		m.flash[a] = true
	}
	log.Debug().Int("player", int(player)).Int("x", cell.X).Int("y", cell.Y).Int("hit", len(affected)).Msg("played")

	if m.match.Phase == game.OverPhase {
		log.Info().Int("winner", int(m.match.Winner)).Int("turns", m.match.Turn).Msg("game over")
	}
	return m, m.scheduleBot()
}

func (m model) playBot() (tea.Model, tea.Cmd) {
	if m.match == nil || m.match.Phase == game.OverPhase || m.humanToMove() {
		return m, nil
	}
	player := m.match.Current

	if m.match.Phase == game.PlacementPhase {
		cell, ok := m.placer.Place(m.match.Board, player)
		if !ok {
			m.message = "No free cell left"
			return m, nil
		}
		return m.act(cell)
	}

	decision, ok := m.bot.ChooseMove(m.match.Board, player)
	if !ok {
		// A player still in rotation owns a cell, so this only happens on a
		// corrupted board.
		m.message = fmt.Sprintf("Player %d has no move", player)
		return m, nil
	}
	return m.act(decision.Move)
}

// scheduleBot fires a bot turn after the pacing delay when a bot is to move.
func (m model) scheduleBot() tea.Cmd {
	if m.match == nil || m.match.Phase == game.OverPhase || m.humanToMove() {
		return nil
	}
	gen := m.gen
	return tea.Tick(m.botDelay, func(time.Time) tea.Msg {
		return botTurnMsg{gen: gen}
	})
}

var (
	playerColors = map[game.PlayerID]lipgloss.Color{
		1: lipgloss.Color("9"),
		2: lipgloss.Color("12"),
		3: lipgloss.Color("10"),
		4: lipgloss.Color("11"),
	}
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	flashStyle  = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginLeft(2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func playerStyle(p game.PlayerID) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(playerColors[p]).Bold(true)
}

func (m model) View() string {
	switch m.screen {
	case seatsScreen:
		return m.seatsView()
	case gameScreen:
		return m.gameView()
	default:
		return m.menuView()
	}
}

func (m model) menuView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Color Wars"))
	b.WriteString("\n")
	for p := game.MinPlayers; p <= game.MaxPlayers; p++ {
		marker := "  "
		if p == m.players {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%d players\n", marker, p)
	}
	b.WriteString(helpStyle.Render("up/down: players  enter: choose seats  q: quit"))
	return b.String()
}

func (m model) seatsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Who plays?"))
	b.WriteString("\n")
	for i, human := range m.humans {
		marker := "  "
		if i == m.seat {
			marker = "> "
		}
		kind := "bot"
		if human {
			kind = "human"
		}
		p := game.PlayerID(i + 1)
		fmt.Fprintf(&b, "%s%s %s\n", marker, playerStyle(p).Render(fmt.Sprintf("Player %d", p)), kind)
	}
	if m.message != "" {
		b.WriteString(errorStyle.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("up/down: seat  left/right: human/bot  enter: start  esc: menu"))
	return b.String()
}

func (m model) gameView() string {
	board := m.boardView()
	panel := panelStyle.Render(m.panelView())
	view := lipgloss.JoinHorizontal(lipgloss.Top, board, panel)

	var status string
	switch m.match.Phase {
	case game.OverPhase:
		if m.match.Winner == game.NoPlayer {
			status = "Nobody is left on the board"
		} else {
			status = playerStyle(m.match.Winner).Render(fmt.Sprintf("Player %d wins!", m.match.Winner))
		}
		status += helpStyle.Render("\nenter: menu  q: quit")
	case game.PlacementPhase:
		status = fmt.Sprintf("%s places a starting cell", playerStyle(m.match.Current).Render(fmt.Sprintf("Player %d", m.match.Current)))
	default:
		status = fmt.Sprintf("%s to move", playerStyle(m.match.Current).Render(fmt.Sprintf("Player %d", m.match.Current)))
	}
	if !m.humanToMove() && m.match.Phase != game.OverPhase {
		status += " (thinking...)"
	}
	if m.message != "" {
		status += "\n" + errorStyle.Render(m.message)
	}
	help := helpStyle.Render("arrows: move  enter: play  esc: menu  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, view, status, help)
}

func (m model) boardView() string {
	var b strings.Builder
	board := m.match.Board
	for x := 0; x < board.Size(); x++ {
		for y := 0; y < board.Size(); y++ {
			pos := game.Move{X: x, Y: y}
			cell, _ := board.At(pos)

			text := " . "
			style := emptyStyle
			if cell.Owner != game.NoPlayer {
				text = fmt.Sprintf(" %d ", cell.Count)
				style = playerStyle(cell.Owner)
			}
			if m.flash[pos] {
				style = style.Inherit(flashStyle)
			}
			if pos == m.cursor && m.humanToMove() {
				style = style.Inherit(cursorStyle)
			}
			b.WriteString(style.Render(text))
		}
		if x < board.Size()-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m model) panelView() string {
	var b strings.Builder
	scores := m.match.Scores()
	for p := game.PlayerID(1); int(p) <= m.match.Players; p++ {
		kind := "bot"
		if m.humans[p-1] {
			kind = "human"
		}
		line := fmt.Sprintf("Player %d (%s): %d", p, kind, scores[p])
		if m.match.Phase != game.PlacementPhase && m.match.Board.HasLost(p) {
			line += " out"
		}
		marker := "  "
		if p == m.match.Current && m.match.Phase != game.OverPhase {
			marker = "> "
		}
		b.WriteString(marker + playerStyle(p).Render(line))
		if int(p) < m.match.Players {
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "\n\nTurn %d", m.match.Turn)
	return b.String()
}

func defaultSettings() settings {
	return settings{
		size:      meta.BoardSize,
		depth:     meta.SearchDepth,
		adversary: searcher.NextRival,
		seed:      1,
		botDelay:  meta.BotDelay,
	}
}
