// Command chimebox drives an eight-bar chime machine over a serial link.
//
// Usage:
//
//	chimebox [flags]            - interactive song menu (TUI)
//	chimebox play <song-index>  - play one catalog song headless and exit
//	chimebox list               - print the song catalog
//	chimebox version            - show version information
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"chimebox/catalog"
	"chimebox/config"
	"chimebox/debug"
	"chimebox/input"
	"chimebox/player"
	"chimebox/theme"
	"chimebox/tui"
	"chimebox/wire"
)

const version = "0.1.0"

var (
	flagSerial string
	flagBaud   int
	flagMIDI   string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "chimebox",
	Short: "Menu-driven controller for an eight-bar chime machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var playCmd = &cobra.Command{
	Use:   "play <song-index>",
	Short: "Play one catalog song headless and exit",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the song catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for i := 0; i < catalog.Size(); i++ {
			s := catalog.Get(i)
			fmt.Printf("%2d  %-16s  %3d bpm\n", i, s.Title, s.Tempo)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chimebox %s (%s)\n", version, runtime.Version())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSerial, "serial", "", "serial port device (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagBaud, "baud", 0, "serial baud rate (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagMIDI, "midi", "", "MIDI monitor output port (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(playCmd, listCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flagSerial != "" {
		cfg.Serial.Port = flagSerial
	}
	if flagBaud != 0 {
		cfg.Serial.Baud = flagBaud
	}
	if flagMIDI != "" {
		cfg.MIDI.PortName = flagMIDI
	}
	return cfg, nil
}

func runTUI() error {
	if flagDebug {
		if err := debug.Enable(); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
		defer debug.Disable()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Hardware is optional in the TUI: a missing port still gives a
	// working menu, just a silent one.
	var emitters wire.Multi
	status := "serial:-"
	if sp, err := wire.OpenSerial(cfg.Serial.Port, cfg.Serial.Baud); err != nil {
		debug.Log("main", "serial unavailable: %v", err)
	} else {
		defer sp.Close()
		emitters = append(emitters, sp)
		status = "serial:" + cfg.Serial.Port
	}
	if cfg.MIDI.PortName != "" {
		if mon, err := wire.OpenMIDIMonitor(cfg.MIDI.PortName); err != nil {
			debug.Log("main", "midi monitor unavailable: %v", err)
		} else {
			emitters = append(emitters, mon)
			status += "  midi:" + cfg.MIDI.PortName
		}
	}

	ctrl := input.NewController(catalog.Size())
	ctrl.Restore(cfg.UI.LastSelected)
	engine := player.New(emitters, player.SleepClock{})

	m := tui.NewModel(ctrl, engine, theme.New(), cfg, status)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagDebug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 0 || idx >= catalog.Size() {
		return fmt.Errorf("song index must be 0-%d", catalog.Size()-1)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Headless playback is for driving real hardware; here the serial
	// port is required.
	sp, err := wire.OpenSerial(cfg.Serial.Port, cfg.Serial.Baud)
	if err != nil {
		return err
	}
	defer sp.Close()
	emitters := wire.Multi{sp}
	logger.Info("serial port opened", "device", cfg.Serial.Port, "baud", cfg.Serial.Baud)

	if cfg.MIDI.PortName != "" {
		if mon, err := wire.OpenMIDIMonitor(cfg.MIDI.PortName); err != nil {
			logger.Warn("midi monitor unavailable", "port", cfg.MIDI.PortName, "err", err)
		} else {
			emitters = append(emitters, mon)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	song := catalog.Get(idx)
	logger.Info("playing", "song", song.Title, "tempo", song.Tempo)

	engine := player.New(emitters, player.SleepClock{})
	engine.Play(song, func() bool { return ctx.Err() != nil })

	if ctx.Err() != nil {
		logger.Info("playback interrupted", "song", song.Title)
	} else {
		logger.Info("playback finished", "song", song.Title)
	}
	return nil
}
