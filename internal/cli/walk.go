package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seamusw/cubesolver"
	"github.com/seamusw/cubesolver/internal/facelet"
	"github.com/seamusw/cubesolver/pkg/types"
)

var walkScramble string

var walkCmd = &cobra.Command{
	Use:   "walk [facelets]",
	Short: "Solve a cube and step through the solution interactively",
	Long: `Solve a cube state and open an interactive viewer that steps through the
solution move by move. Use the left/right arrow keys (or h/l) to move,
g/G to jump to the start/end, q to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWalk,
}

func init() {
	rootCmd.AddCommand(walkCmd)
	walkCmd.Flags().StringVar(&walkScramble, "scramble", "", "Scramble sequence to solve instead of a facelet string")
}

func runWalk(cmd *cobra.Command, args []string) error {
	facelets, err := resolveFacelets(args, walkScramble)
	if err != nil {
		return err
	}

	solver, err := cubesolver.New(
		cubesolver.WithThreads(viper.GetInt("threads")),
		cubesolver.WithTimeout(time.Duration(viper.GetInt("timeout_ms"))*time.Millisecond),
		cubesolver.WithMaxLength(viper.GetInt("max_length")),
	)
	if err != nil {
		return err
	}

	moves, err := solver.Solve(facelets)
	if err != nil {
		return err
	}

	model, err := newWalkModel(facelets, moves)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// walkModel steps through the states a solution passes through.
type walkModel struct {
	moves  []types.Move
	states []string // facelet string after each prefix of the solution
	idx    int
}

var (
	currentMoveStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	doneMoveStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
)

func newWalkModel(facelets string, moves []types.Move) (*walkModel, error) {
	cube, err := facelet.Parse(facelets)
	if err != nil {
		return nil, err
	}

	states := make([]string, 0, len(moves)+1)
	states = append(states, facelets)
	for _, m := range moves {
		cube.Apply(m.Token())
		states = append(states, facelet.Render(cube))
	}
	if !cube.IsSolved() {
		return nil, fmt.Errorf("solution does not solve the given cube")
	}

	return &walkModel{moves: moves, states: states}, nil
}

func (m *walkModel) Init() tea.Cmd {
	return nil
}

func (m *walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l", " ":
			if m.idx < len(m.states)-1 {
				m.idx++
			}
		case "left", "h":
			if m.idx > 0 {
				m.idx--
			}
		case "g", "home":
			m.idx = 0
		case "G", "end":
			m.idx = len(m.states) - 1
		}
	}
	return m, nil
}

func (m *walkModel) View() string {
	var b strings.Builder

	b.WriteString(renderNet(m.states[m.idx]))
	b.WriteString("\n")

	if len(m.moves) == 0 {
		b.WriteString("Already solved.\n")
	} else {
		b.WriteString(fmt.Sprintf("Move %d/%d: ", m.idx, len(m.moves)))
		for i, mv := range m.moves {
			token := mv.Notation()
			switch {
			case i == m.idx:
				token = currentMoveStyle.Render(token)
			case i < m.idx:
				token = doneMoveStyle.Render(token)
			}
			b.WriteString(token)
			if i < len(m.moves)-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ step · g/G jump · q quit"))
	b.WriteString("\n")
	return b.String()
}
