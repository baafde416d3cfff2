package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/imitatus/imitatus/pkg/config"
	"github.com/imitatus/imitatus/pkg/engine"
	"github.com/imitatus/imitatus/pkg/logging"
)

// serveFlags holds the flag values for the serve command.
type serveFlags struct {
	host          string
	port          int
	configFile    string
	debug         bool
	logLevel      string
	logFormat     string
	maxLogEntries int
	readTimeout   int
	writeTimeout  int
}

var serveFlagVals serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock API server (foreground)",
	Long: `Start the mock API server and block until interrupted.

Configuration can come from a JSON or YAML file, from flags, or both;
flags that are set explicitly override file values.`,
	Example: `  # Start with defaults on port 8000
  imitatus serve

  # Start on a custom port with debug error details
  imitatus serve --port 3000 --debug

  # Start from a configuration file
  imitatus serve --config imitatus.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, &serveFlagVals)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	f := &serveFlagVals
	serveCmd.Flags().StringVar(&f.host, "host", "", "Interface to bind (empty = all interfaces)")
	serveCmd.Flags().IntVarP(&f.port, "port", "p", config.DefaultPort, "HTTP server port")
	serveCmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Path to configuration file (JSON or YAML)")
	serveCmd.Flags().BoolVar(&f.debug, "debug", false, "Include error details in 500 responses")
	serveCmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")
	serveCmd.Flags().IntVar(&f.maxLogEntries, "max-log-entries", config.DefaultMaxLogEntries, "Maximum retained request log entries")
	serveCmd.Flags().IntVar(&f.readTimeout, "read-timeout", config.DefaultReadTimeout, "Read timeout in seconds")
	serveCmd.Flags().IntVar(&f.writeTimeout, "write-timeout", config.DefaultWriteTimeout, "Write timeout in seconds")
}

// buildConfig merges the configuration file (if any) with explicitly set
// flags. Flags win over file values.
func buildConfig(cmd *cobra.Command, f *serveFlags) (*config.ServerConfig, error) {
	cfg := config.DefaultConfig()
	if f.configFile != "" {
		loaded, err := config.LoadFromFile(f.configFile)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", f.configFile, err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("host") {
		cfg.Host = f.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = f.port
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = f.debug
	}
	if cmd.Flags().Changed("max-log-entries") {
		cfg.MaxLogEntries = f.maxLogEntries
	}
	if cmd.Flags().Changed("read-timeout") {
		cfg.ReadTimeout = f.readTimeout
	}
	if cmd.Flags().Changed("write-timeout") {
		cfg.WriteTimeout = f.writeTimeout
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

func runServe(cmd *cobra.Command, f *serveFlags) error {
	cfg, err := buildConfig(cmd, f)
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(f.logLevel),
		Format: logging.ParseFormat(f.logFormat),
		Output: os.Stderr,
	})

	srv := engine.NewServer(cfg, engine.WithLogger(log))
	if err := srv.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	fmt.Printf("imitatus listening on http://%s\n", srv.Addr())
	fmt.Printf("  login:      POST /api/login (username %q)\n", cfg.Login.Username)
	fmt.Println("  items:      /api/items, /api/items/{id}")
	fmt.Println("  introspect: GET /debug/vars")
	fmt.Println("Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	<-sigChan
	fmt.Println("\nShutting down...")

	if err := srv.Stop(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
