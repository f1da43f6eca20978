package main

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/orcatools/orcals/config"
	"github.com/orcatools/orcals/lsp"
)

func newLSPCmd() *cobra.Command {
	var (
		tcpAddress  string
		wsAddress   string
		debug       bool
		verbosity   int
		logFile     string
		configPath  string
		profileMode string
		profileDir  string
	)

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the ORCA input-file language server.

The server speaks LSP over stdio, which is what editors expect. Use
--tcp or --websocket to serve network clients instead. Log output goes
to stderr unless --log redirects it; the protocol channel is never
written to by the logger.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if verbosity == 0 {
				verbosity = cfg.Log.Verbosity
			}
			if logFile == "" {
				logFile = cfg.Log.File
			}

			var logPath *string
			if logFile != "" {
				logPath = &logFile
			}
			commonlog.Configure(verbosity, logPath)

			if profileMode != "" {
				stop, err := startProfile(profileMode, profileDir)
				if err != nil {
					return err
				}
				defer stop()
			}

			server := lsp.NewServer(version, debug, cfg)
			switch {
			case tcpAddress != "":
				return server.RunTCP(tcpAddress)
			case wsAddress != "":
				return server.RunWebSocket(wsAddress)
			default:
				return server.RunStdio()
			}
		},
	}

	cmd.Flags().StringVar(&tcpAddress, "tcp", "", "serve over TCP on this address instead of stdio")
	cmd.Flags().StringVar(&wsAddress, "websocket", "", "serve over WebSocket on this address instead of stdio")
	cmd.Flags().BoolVar(&debug, "debug", false, "log protocol traffic")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	cmd.Flags().StringVar(&logFile, "log", "", "write logs to this file instead of stderr")
	cmd.Flags().StringVar(&configPath, "config", "", "path to an orcals YAML configuration file")
	cmd.Flags().StringVar(&profileMode, "profile", "", "write a pprof profile (cpu or mem)")
	cmd.Flags().StringVar(&profileDir, "profile-dir", "", "directory for profile output")

	return cmd
}

func startProfile(mode, dir string) (func(), error) {
	opts := []func(*profile.Profile){profile.Quiet}
	if dir != "" {
		opts = append(opts, profile.ProfilePath(dir))
	}
	switch mode {
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfile)
	default:
		return nil, fmt.Errorf("unknown profile mode: %s (expected cpu or mem)", mode)
	}
	p := profile.Start(opts...)
	return p.Stop, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
