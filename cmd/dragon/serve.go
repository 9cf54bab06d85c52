package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dragon SSH server",
	Long: `Start an SSH server that gives every connection its own console.

Each session drives its own run, but all sessions share the storage
backend, so they compete for the same high score.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dragon/host_key

Examples:
  dragon serve                           # Listen on :23234 with auto-generated key
  dragon serve --ssh :2222               # Listen on port 2222
  dragon serve --host-key ./my_host_key  # Use specific host key
  dragon serve --db ./dragon.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", def.HostKeyPath, "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	logger, err := newLogger(os.Stderr, "dragon-ssh")
	if err != nil {
		fail("%v", err)
	}

	backend, history, err := openBackend(cfg)
	if err != nil {
		fail("%v", err)
	}
	defer backend.Close()

	sshCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(sshCfg, cfg, backend, history, logger)
	if err != nil {
		backend.Close()
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting dragon SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		backend.Close()
		fail("%v", err)
	}
}
