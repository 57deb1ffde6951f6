package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skoona/sknSensors-IRService/internal/bridge"
	"github.com/skoona/sknSensors-IRService/internal/command"
	"github.com/skoona/sknSensors-IRService/internal/config"
	"github.com/skoona/sknSensors-IRService/internal/discovery"
	"github.com/skoona/sknSensors-IRService/internal/engine"
	"github.com/skoona/sknSensors-IRService/internal/ir"
	"github.com/skoona/sknSensors-IRService/internal/logging"
	"github.com/skoona/sknSensors-IRService/internal/protocol"
	"github.com/skoona/sknSensors-IRService/internal/server"
)

// Serve command and flags
var (
	configPath string
	logLevel   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the transcoding service",
	Long: `Run the full service: connect to the MQTT broker, poll the IR
receiver for captures, and transmit inbound commands on the IR LED pin.

Configuration is read from a YAML file; every field has a working default
except the broker address and GPIO pin names, which are deployment
specific. A missing file runs entirely on defaults.`,
	Example: `  # Run with defaults (broker on localhost, GPIO17/GPIO27)
  irservice serve

  # Run with a configuration file
  irservice serve --config /etc/irservice.yaml

  # Run with debug logging
  irservice serve --log-level debug`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML configuration file")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides configuration")

	sendCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML configuration file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initLogging(cfg); err != nil {
		return err
	}
	defer logging.Sync()

	logging.Info("Starting irservice",
		zap.String("device", cfg.Device.Name),
		zap.String("broker", cfg.MQTT.Broker),
		zap.String("send_pin", cfg.Pins.Send),
		zap.String("recv_pin", cfg.Pins.Recv),
	)

	tx, err := ir.NewGPIOTransmitter(cfg.Pins.Send)
	if err != nil {
		return fmt.Errorf("failed to open send pin: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rx ir.Receiver
	if cfg.Pins.Recv != "" {
		gpioRx, err := ir.NewGPIOReceiver(cfg.Pins.Recv, 0)
		if err != nil {
			return fmt.Errorf("failed to open recv pin: %w", err)
		}
		go gpioRx.Run(ctx)
		rx = gpioRx
	}

	eng := engine.New(tx, rx, engine.Config{
		PollInterval: cfg.PollInterval(),
		LockTimeout:  cfg.LockTimeout(),
	})

	br := bridge.New(cfg, eng)
	if err := br.Start(); err != nil {
		return fmt.Errorf("failed to start bridge: %w", err)
	}
	defer br.Stop()

	if !cfg.Server.Disabled {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		srv := server.New(addr, cfg.Device.Name, eng)
		go func() {
			if err := srv.Start(); err != nil {
				logging.Error("Status server failed", zap.Error(err))
			}
		}()
		defer srv.Shutdown(context.Background())

		adv, err := discovery.Advertise(cfg.Device.Name, cfg.Server.Port)
		if err != nil {
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		} else {
			defer adv.Shutdown()
		}
	}

	err = eng.Run(ctx)
	logging.Info("Shutting down")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Send command
var sendCmd = &cobra.Command{
	Use:   "send <command>",
	Short: "Transmit a single command and exit",
	Long: `Transmit one canonical command string on the configured IR LED pin.

The command uses the same "protocol,code,bits,repeats" form accepted over
MQTT, including the Raw, Pronto and GlobalCache long forms.`,
	Example: `  # Samsung power toggle
  irservice send "7,E0E040BF,32"

  # Pronto hex with two repeats
  irservice send "25,R2,76,0,A,0,20,60,20,20,BCA"`,
	Args: cobra.ExactArgs(1),
	RunE: runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initLogging(cfg); err != nil {
		return err
	}
	defer logging.Sync()

	tx, err := ir.NewGPIOTransmitter(cfg.Pins.Send)
	if err != nil {
		return fmt.Errorf("failed to open send pin: %w", err)
	}

	eng := engine.New(tx, nil, engine.Config{LockTimeout: cfg.LockTimeout()})
	echo, err := eng.Send(args[0])
	if err != nil {
		return err
	}
	fmt.Println(echo)
	return nil
}

// Decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <command>",
	Short: "Transcode a command offline, without hardware",
	Long: `Parse and dispatch one command string against a loopback transmitter,
then print what would have been sent: the command echo plus the resolved
protocol, bit width and repeat count. Useful for validating command
strings before wiring them into an automation.`,
	Example: `  # Check an NEC command
  irservice decode "3,20DF10EF,32"

  # Check a raw timing burst
  irservice decode "30,38000,8950,4450,600,550,600"`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize("error"); err != nil {
		return err
	}

	loop := ir.NewLoopback()
	eng := engine.New(loop, loop, engine.Config{})

	echo, err := eng.Send(args[0])
	if err != nil {
		return err
	}

	parsed, _ := command.Parse(args[0])
	p := protocol.Protocol(parsed.Protocol)

	fmt.Printf("echo:     %s\n", echo)
	fmt.Printf("protocol: %s (%d)\n", p, parsed.Protocol)
	for _, rec := range loop.Sends() {
		switch rec.Op {
		case "raw":
			fmt.Printf("transmit: %d durations at %d Hz\n", len(rec.Values), rec.FreqHz)
		case "pronto":
			fmt.Printf("transmit: %d pronto values, %d repeats\n", len(rec.Values), rec.Repeats)
		case "globalcache":
			fmt.Printf("transmit: %d globalcache values\n", len(rec.Values))
		case "state":
			fmt.Printf("transmit: %d state bytes, %d repeats\n", len(rec.State), rec.Repeats)
		default:
			fmt.Printf("transmit: code %X, %d bits, %d repeats\n", rec.Code, rec.Bits, rec.Repeats)
		}
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func initLogging(cfg *config.Config) error {
	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if level == "" {
		return logging.InitializeFromEnv()
	}
	return logging.Initialize(level)
}
