// Irservice is an infrared remote-control transcoding service for
// home-automation gateways.
//
// It accepts canonical command strings over MQTT, transcodes them into
// infrared carrier timings for around thirty consumer remote-control
// protocols, and drives a GPIO-attached IR LED stage. Captured remote
// presses are decoded and reported back in the same canonical form. A
// small HTTP server exposes the engine state and a WebSocket status
// stream, and the service advertises itself over mDNS.
//
// Usage:
//
//	irservice serve [flags]
//	irservice send <command> [flags]
//	irservice decode <command>
//
// See 'irservice --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skoona/sknSensors-IRService/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "irservice",
	Short: "Infrared Remote-Control Transcoding Service",
	Long: `A service that transcodes canonical command strings into infrared
transmissions and decoded captures back into command strings.

Commands arrive over MQTT as "protocol,code,bits,repeats" strings (or the
long-form Raw, Pronto and GlobalCache payloads) and are transmitted on a
GPIO-attached IR LED. Captured presses are published to the broker in the
same format.

The 'serve' command runs the full service; 'send' transmits a single
command and exits; 'decode' exercises the transcoding pipeline offline
without touching any hardware.`,
	Version: version.Version,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("irservice %s (commit: %s)\n", version.Version, version.Commit)
	},
}
