// Command radiocore-catbridge serves the CAT line protocol over a real
// or pseudo serial link, driving the radio state reducer and TX
// controller from parsed commands and formatting responses back onto
// the wire. This is the only place the internal/hw collaborator
// interfaces are bound to concrete host adapters (pkg/term or
// creack/pty for the serial byte stream, warthog618/go-gpiocdev for the
// PTT relay on Linux) — adapted from the teacher's kissserial.go /
// kissnet.go control-loop/peripheral split.
//
//go:build linux

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/kf7sdr/radiocore/internal/cat"
	"github.com/kf7sdr/radiocore/internal/hw"
	"github.com/kf7sdr/radiocore/internal/persist"
	"github.com/kf7sdr/radiocore/internal/ptype"
	"github.com/kf7sdr/radiocore/internal/radio"
	"github.com/kf7sdr/radiocore/internal/rlog"
	"github.com/kf7sdr/radiocore/internal/txctl"
)

// StationConfig is the YAML-loaded station config: default frequency and
// mode, serial settings, and a seed memory channel list, matching §6's persisted-state layout
// but expressed as the human-editable source the persisted binary
// snapshot is first populated from.
type StationConfig struct {
	DefaultFreqHz int64  `yaml:"default_freq_hz"`
	DefaultMode   string `yaml:"default_mode"`
	SerialDevice  string `yaml:"serial_device"`
	BaudRate      int    `yaml:"baud_rate"`
	Memories      []struct {
		Number int    `yaml:"number"`
		FreqHz int64  `yaml:"freq_hz"`
		Mode   string `yaml:"mode"`
		Name   string `yaml:"name"`
	} `yaml:"memories"`
}

func modeFromName(name string) ptype.Mode {
	switch name {
	case "LSB":
		return ptype.ModeLSB
	case "USB":
		return ptype.ModeUSB
	case "CW":
		return ptype.ModeCW
	case "CW-R":
		return ptype.ModeCWR
	case "AM":
		return ptype.ModeAM
	case "FM":
		return ptype.ModeFM
	default:
		return ptype.ModeUSB
	}
}

func loadConfig(path string) (StationConfig, error) {
	cfg := StationConfig{DefaultFreqHz: 14_074_000, DefaultMode: "USB", BaudRate: 9600}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func openSerial(device string, baud int, usePty bool) (hw.SerialLink, string, error) {
	if usePty {
		link, err := hw.OpenPtySerialLink()
		if err != nil {
			return nil, "", err
		}
		return link, link.SlaveName(), nil
	}
	link, err := hw.OpenTermSerialLink(device, baud)
	return link, device, err
}

func main() {
	var (
		configPath = pflag.String("config", "", "YAML station config path")
		device     = pflag.String("serial", "", "serial device path (overrides config)")
		baud       = pflag.Int("baud", 0, "baud rate (overrides config)")
		usePty     = pflag.Bool("pty", false, "serve CAT over a pseudo-terminal instead of a real serial device")
		discover   = pflag.Bool("discover", false, "list candidate USB serial devices and exit (Linux only)")
		persistOut = pflag.String("persist", "", "path to write a persisted station-state snapshot on exit")
		gpioChip   = pflag.String("gpio-chip", "", "GPIO chip (e.g. gpiochip0) driving the T/R relay; disabled when empty")
		gpioLine   = pflag.Int("gpio-line", 0, "GPIO line offset for the T/R relay")
	)
	pflag.Parse()

	log := rlog.For("catbridge")

	if *discover {
		runDiscover(log)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("loading station config", "err", err)
	}
	if *device != "" {
		cfg.SerialDevice = *device
	}
	if *baud != 0 {
		cfg.BaudRate = *baud
	}

	state := radio.NewState(cfg.DefaultFreqHz, modeFromName(cfg.DefaultMode))

	bank := radio.NewBank()
	for _, m := range cfg.Memories {
		if mfreq, ok := ptype.NewFrequency(m.FreqHz); ok {
			bank.Store(m.Number, mfreq, modeFromName(m.Mode), m.Name)
		}
	}

	link, name, err := openSerial(cfg.SerialDevice, cfg.BaudRate, *usePty)
	if err != nil {
		log.Fatal("opening serial link", "err", err)
	}
	defer link.Close()
	log.Info("serving CAT protocol", "device", name)

	var relay hw.TrRelay
	if *gpioChip != "" {
		r, err := hw.NewGpioTrRelay(*gpioChip, *gpioLine, true)
		if err != nil {
			log.Fatal("opening T/R relay GPIO line", "err", err)
		}
		defer r.Close()
		relay = r
		log.Info("T/R relay armed", "chip", *gpioChip, "line", *gpioLine)
	}

	controller := txctl.NewController()
	parser := cat.NewParser()
	buf := make([]byte, 64)

	for {
		n, err := link.Read(buf)
		if err != nil {
			if err == io.EOF {
				break
			}
			log.Error("serial read failed", "err", err)
			break
		}
		for _, cmd := range parser.PushBytes(buf[:n]) {
			state, controller = handleCommand(log, link, relay, state, controller, cmd)
		}
	}

	if *persistOut != "" {
		snapshot := persist.FromRadioAndBank(state, bank)
		if err := os.WriteFile(*persistOut, persist.Encode(snapshot), 0o644); err != nil {
			log.Error("writing persisted state", "err", err)
		}
	}
}

func handleCommand(log rlogLogger, link hw.SerialLink, relay hw.TrRelay, state radio.State, controller *txctl.Controller, cmd cat.Command) (radio.State, *txctl.Controller) {
	switch cmd.Kind {
	case cat.CmdSetFreqA:
		state = radio.Apply(state, radio.Event{Kind: radio.EvSetFrequency, Frequency: cmd.Freq})
	case cat.CmdReadFreqA:
		writeResponse(log, link, cat.FormatFrequency("FA", state.Frequency.Hz()))
	case cat.CmdSetMode:
		state = radio.Apply(state, radio.Event{Kind: radio.EvSetMode, Mode: ptype.Mode(cmd.Mode)})
	case cat.CmdReadID:
		writeResponse(log, link, cat.FormatID())
	case cat.CmdReadStatus:
		writeResponse(log, link, cat.FormatStatus(state.Frequency.Hz(), state.RitOffset, state.RitOn, state.XitOn, int(state.Mode), state.TxRx == radio.StateTx))
	case cat.CmdTx:
		controller.SetPowerRequested(state.Power)
		state = radio.Apply(state, radio.Event{Kind: radio.EvStartTx})
	case cat.CmdRx:
		state = radio.Apply(state, radio.Event{Kind: radio.EvStopTx})
	case cat.CmdTuneUp:
		state = radio.Apply(state, radio.Event{Kind: radio.EvTune, TuneSteps: 1})
	case cat.CmdTuneDown:
		state = radio.Apply(state, radio.Event{Kind: radio.EvTune, TuneSteps: -1})
	case cat.CmdUnknown:
		log.Debug("unknown CAT command", "prefix", cmd.Prefix)
	}

	actions := controller.Tick(10_000, state.TxRx == radio.StateTx, false, nil, 0)
	applyActions(log, relay, actions)
	return state, controller
}

// applyActions drives the T/R relay collaborator from the controller's
// per-tick actions; a no-op when no relay was configured (e.g. --pty
// bench runs without real hardware attached).
func applyActions(log rlogLogger, relay hw.TrRelay, a txctl.Actions) {
	if relay == nil {
		return
	}
	if a.EnableTrRelay {
		if err := relay.EnableTr(); err != nil {
			log.Error("enabling T/R relay", "err", err)
		}
	}
	if a.DisableTrRelay {
		if err := relay.DisableTr(); err != nil {
			log.Error("disabling T/R relay", "err", err)
		}
	}
}

func writeResponse(log rlogLogger, link hw.SerialLink, resp string) {
	if _, err := link.Write([]byte(resp)); err != nil {
		log.Error("writing CAT response", "err", err)
	}
}

func runDiscover(log rlogLogger) {
	paths, err := hw.DiscoverSerialDevices()
	if err != nil {
		log.Error("discovering serial devices", "err", err)
		return
	}
	if len(paths) == 0 {
		fmt.Println("no candidate serial devices found")
		return
	}
	for _, p := range paths {
		fmt.Println(p)
	}
}

// rlogLogger names the concrete logger type returned by rlog.For so the
// helpers above don't need to import charmbracelet/log directly.
type rlogLogger = interface {
	Info(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
	Debug(msg interface{}, keyvals ...interface{})
	Fatal(msg interface{}, keyvals ...interface{})
}
