package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/svcprofile/internal/server"
)

var (
	serveListen      string
	serveCredentials string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "gRPC listen address (default from config)")
	serveCmd.Flags().StringVar(&serveCredentials, "credentials", "", "Path to credentials YAML (default from config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC profiler server",
	Long: "Serves login, form submission and the question dialogue over gRPC.\n" +
		"Every client login gets its own session. The credentials file is\n" +
		"hot-reloaded when it changes.",
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	scfg := server.Config{
		Listen:          cfg.Listen,
		CredentialsPath: cfg.CredentialsPath,
	}
	if serveListen != "" {
		scfg.Listen = serveListen
	}
	if serveCredentials != "" {
		scfg.CredentialsPath = serveCredentials
	}

	srv, err := server.New(scfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if scfg.CredentialsPath != "" {
		reloader, err := server.NewReloader(srv, logger)
		if err != nil {
			logger.Warn("hot-reload disabled", "error", err)
		} else {
			go reloader.Run(ctx)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down profiler server...")
		cancel()
		srv.GracefulStop()
	}()

	fmt.Fprintf(os.Stderr, "svcprofile server listening on %s\n", scfg.Listen)
	if scfg.CredentialsPath != "" {
		fmt.Fprintf(os.Stderr, "Credentials: %s (hot-reload enabled)\n", scfg.CredentialsPath)
	} else {
		fmt.Fprintln(os.Stderr, "Credentials: built-in table")
	}
	fmt.Fprintln(os.Stderr)

	return srv.Serve()
}
