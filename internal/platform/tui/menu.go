package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ladder/internal/core"
	"github.com/vovakirdan/tui-ladder/internal/registry"
	"github.com/vovakirdan/tui-ladder/internal/storage"
)

// menuTopScores is how many scores the main menu lists.
const menuTopScores = 3

type menuItem int

const (
	itemPlay menuItem = iota
	itemSpeed
	itemScores
	itemHelp
	itemQuit
)

var menuLabels = [...]string{
	itemPlay:   "Play",
	itemSpeed:  "Speed",
	itemScores: "High scores",
	itemHelp:   "Instructions",
	itemQuit:   "Exit",
}

var instructions = []string{
	"You are a Lad trapped in a maze. Your mission is to explore the",
	"dark corridors never before seen by human eyes and find hidden",
	"treasures and riches.",
	"",
	"You control Lad by typing the direction buttons and jumping by",
	"typing SPACE. But beware of the falling rocks called Der rocks.",
	"You must find and grasp the treasures (shown as $) BEFORE the",
	"bonus time runs out.",
	"",
	"A new Lad will be awarded for every 10,000 points. Extra points",
	"are awarded for touching the gold statues (shown as &). You will",
	"receive the bonus time points that are left when you have",
	"finished the level.",
	"",
	"Move: W A S D or arrows   Jump: SPACE   Stop: any other key",
	"Pause: ESC   Resume: RETURN   Quit: Q",
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	gameID    string
	title     string
	speeds    []int // move frames per second of each speed; empty hides the item
	speed     int
	items     []menuItem
	cursor    int
	scores    []storage.ScoreEntry
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	showHelp  bool
	quitting  bool
	play      bool
	openScore bool
}

// MenuOptions configure the main menu.
type MenuOptions struct {
	GameID string
	Speeds []int
	Speed  int
}

// NewMenuModel creates the main menu for a registered game.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) MenuModel {
	m := MenuModel{
		gameID:    opts.GameID,
		title:     opts.GameID,
		speeds:    opts.Speeds,
		speed:     core.Clamp(opts.Speed, 0, max(len(opts.Speeds)-1, 0)),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if info, ok := registry.Info(opts.GameID); ok {
		m.title = info.Title
	}
	for it := range menuLabels {
		if menuItem(it) == itemSpeed && len(m.speeds) == 0 {
			continue
		}
		m.items = append(m.items, menuItem(it))
	}
	if store != nil {
		if scores, err := store.TopScores(opts.GameID, menuTopScores); err == nil {
			m.scores = scores
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "left", "a", "h":
		m.changeSpeed(-1)
		return m, nil
	case "right", "d", "l":
		m.changeSpeed(1)
		return m, nil
	case "tab":
		m.openScore = true
		return m, tea.Quit
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch m.items[m.cursor] {
		case itemPlay:
			m.play = true
			return m, tea.Quit
		case itemSpeed:
			m.changeSpeed(1)
		case itemScores:
			m.openScore = true
			return m, tea.Quit
		case itemHelp:
			m.showHelp = true
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// changeSpeed moves the speed setting by delta, wrapping around, when the
// speed item is selected.
func (m *MenuModel) changeSpeed(delta int) {
	if len(m.speeds) == 0 || m.items[m.cursor] != itemSpeed {
		return
	}
	m.speed = (m.speed + delta + len(m.speeds)) % len(m.speeds)
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(spaced(m.title)), m.width, len(spaced(m.title))))
	b.WriteString("\n\n")

	if m.showHelp {
		for _, line := range instructions {
			b.WriteString(centerText(line, m.width, len(instructions[0])))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(menuDim.Render("press any key"), m.width, 0))
		return b.String()
	}

	for i, it := range m.items {
		label := menuLabels[it]
		if it == itemSpeed {
			label = fmt.Sprintf("%s: < %d >", label, m.speed)
		}
		line := "  " + label
		if i == m.cursor {
			line = menuCursor.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width, 20))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("High scores", m.width, 20))
	b.WriteString("\n")
	if len(m.scores) == 0 {
		b.WriteString(centerText(menuDim.Render("  none yet"), m.width, 20))
		b.WriteString("\n")
	}
	for i, s := range m.scores {
		line := fmt.Sprintf("%d. %6d  level %d", i+1, s.Score, s.Level)
		b.WriteString(centerText(line, m.width, 20))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDim.Render(controls), m.width, len(controls)))
	b.WriteString("\n")
	return b.String()
}

// spaced returns "L A D D E R" for "Ladder".
func spaced(title string) string {
	return strings.Join(strings.Split(strings.ToUpper(title), ""), " ")
}

// centerText pads text so a block of the given visible width is centered.
// A zero width uses the length of text.
func centerText(text string, width, block int) string {
	if block == 0 {
		block = lipgloss.Width(text)
	}
	if block >= width {
		return text
	}
	return strings.Repeat(" ", (width-block)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Play            bool
	Speed           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result reports what the player chose.
func (m MenuModel) Result() MenuResult {
	return MenuResult{
		Play:            m.play,
		Speed:           m.speed,
		Config:          m.config,
		WantsScoreboard: m.openScore,
		Quit:            m.quitting || (!m.play && !m.openScore),
	}
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg, opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
