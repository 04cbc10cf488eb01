package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba/internal/liveble"
	"github.com/SeamusWaldron/kociemba/internal/notation"
	"github.com/SeamusWaldron/kociemba/internal/solver"
)

var trackScanTimeout time.Duration

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track a physical smart cube live over Bluetooth",
	Long: `track scans for a nearby smart cube, connects to it, and displays
the rotations it reports as the cube is turned (a running count and the
most recent 20 moves), along with a live
"moves remaining" hint and a notice the instant the cube is solved.`,
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.Flags().DurationVar(&trackScanTimeout, "scan-timeout", 5*time.Second, "how long to scan for a cube before giving up")
}

func runTrack(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := buildSolver(db)
	if err != nil {
		return err
	}

	client, err := liveble.NewClient()
	if err != nil {
		return fmt.Errorf("track: %w", err)
	}

	fmt.Printf("scanning for a cube (%s)...\n", trackScanTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), trackScanTimeout)
	results, err := client.Scan(ctx, trackScanTimeout)
	cancel()
	if err != nil {
		return fmt.Errorf("track: scan failed: %w", err)
	}
	if len(results) == 0 {
		return liveble.ErrDeviceNotFound
	}

	target := results[0]
	fmt.Printf("connecting to %s...\n", target.Name)
	if err := client.Connect(context.Background(), target); err != nil {
		return fmt.Errorf("track: %w", err)
	}
	defer client.Disconnect()

	tracker := liveble.NewTracker(s)
	model := newTrackModel(tracker, target.Name)
	p := tea.NewProgram(model)

	client.SetMessageCallback(func(msg *liveble.Message) {
		if msg.Type != liveble.MsgTypeRotation {
			return
		}
		if err := tracker.ApplyRotationPayload(msg.Payload); err != nil {
			return
		}
		p.Send(trackMoveMsg{})
	})
	client.SetDisconnectCallback(func() {
		p.Send(trackDisconnectMsg{})
	})

	_, err = p.Run()
	return err
}

// trackMoveMsg notifies the TUI that the tracker's state changed.
type trackMoveMsg struct{}

// trackDisconnectMsg notifies the TUI that the BLE link dropped.
type trackDisconnectMsg struct{}

// trackHintMsg carries a refreshed "moves remaining" computation.
type trackHintMsg struct {
	remaining int
	err       error
}

type trackModel struct {
	tracker    *liveble.Tracker
	deviceName string

	lastHint     int
	hintKnown    bool
	disconnected bool
	quitting     bool
}

func newTrackModel(tracker *liveble.Tracker, deviceName string) *trackModel {
	return &trackModel{
		tracker:    tracker,
		deviceName: deviceName,
	}
}

func (m *trackModel) Init() tea.Cmd {
	return m.scheduleHintRefresh()
}

func (m *trackModel) scheduleHintRefresh() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		remaining, err := m.tracker.RemainingMoves(solver.DefaultOptions())
		return trackHintMsg{remaining: remaining, err: err}
	})
}

func (m *trackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.tracker.Reset()
			m.hintKnown = false
			return m, m.scheduleHintRefresh()
		}
		return m, nil

	case trackMoveMsg:
		return m, nil

	case trackDisconnectMsg:
		m.disconnected = true
		return m, nil

	case trackHintMsg:
		if msg.err == nil {
			m.lastHint = msg.remaining
			m.hintKnown = true
		}
		if m.disconnected || m.quitting {
			return m, nil
		}
		return m, m.scheduleHintRefresh()
	}
	return m, nil
}

func (m *trackModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("tracking %s", m.deviceName)))
	b.WriteString("\n\n")

	if m.disconnected {
		b.WriteString(errorStyle.Render("disconnected"))
		b.WriteString("\n")
	} else if m.tracker.IsSolved() {
		b.WriteString(phaseStyle.Render("solved!"))
		b.WriteString("\n")
	} else if m.hintKnown {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d moves remaining (estimate)", m.lastHint)))
		b.WriteString("\n")
	} else {
		b.WriteString(statusStyle.Render("computing estimate..."))
		b.WriteString("\n")
	}

	history := m.tracker.History()
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d moves tracked", len(history))))
	b.WriteString("\n")

	window := history
	if len(window) > 20 {
		window = window[len(window)-20:]
	}
	if len(window) > 0 {
		b.WriteString(moveStyle.Render(notation.FormatSequence(window)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r reset  ·  q quit"))
	b.WriteString("\n")

	return b.String()
}
