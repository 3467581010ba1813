package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	serverrun "github.com/rzbill/pulse/internal/cmd/server"
	cfgpkg "github.com/rzbill/pulse/internal/config"
	"github.com/rzbill/pulse/internal/demo"
	"github.com/rzbill/pulse/internal/runtime"
	logpkg "github.com/rzbill/pulse/pkg/log"
)

var version = "dev"

func loadConfig(path string) (cfgpkg.Config, error) {
	cfg, err := cfgpkg.Load(path)
	if err != nil {
		return cfgpkg.Config{}, err
	}
	cfgpkg.FromEnv(&cfg)
	return cfg, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "pulse",
		Short: "Pulse runtime CLI",
		Long:  "Pulse is a frame-synchronized in-process event broadcast runtime. This CLI runs the server and a demo workload.",
	}

	// server
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	var (
		srvConfig  string
		srvHTTP    string
		srvFrameMs int
	)
	serverStartCmd := &cobra.Command{
		Use:   "start",
		Short: "Start the pulse server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(srvConfig)
			if err != nil {
				return err
			}
			if srvFrameMs > 0 {
				cfg.FrameMs = srvFrameMs
			}
			return serverrun.Run(cmd.Context(), serverrun.Options{
				HTTPAddr: srvHTTP,
				Config:   cfg,
			})
		},
	}
	serverStartCmd.Flags().StringVar(&srvConfig, "config", "", "path to JSON config file")
	serverStartCmd.Flags().StringVar(&srvHTTP, "http", "", "HTTP listen address (overrides config)")
	serverStartCmd.Flags().IntVar(&srvFrameMs, "frame-ms", 0, "frame interval in milliseconds (overrides config)")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)

	// demo
	var (
		demoConfig  string
		demoHTTP    string
		demoFrameMs int
		demoPerF    int
		demoFilter  string
	)
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demo workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(demoConfig)
			if err != nil {
				return err
			}
			if demoFrameMs > 0 {
				cfg.FrameMs = demoFrameMs
			}
			if demoPerF > 0 {
				cfg.Demo.EventsPerFrame = demoPerF
			}
			if demoFilter != "" {
				cfg.Demo.Filter = demoFilter
			}
			return serverrun.Run(cmd.Context(), serverrun.Options{
				HTTPAddr: demoHTTP,
				Config:   cfg,
				Setup: func(rt *runtime.Runtime, logger logpkg.Logger) error {
					return demo.Setup(rt, cfg.Demo, logger)
				},
			})
		},
	}
	demoCmd.Flags().StringVar(&demoConfig, "config", "", "path to JSON config file")
	demoCmd.Flags().StringVar(&demoHTTP, "http", "", "HTTP listen address (overrides config)")
	demoCmd.Flags().IntVar(&demoFrameMs, "frame-ms", 0, "frame interval in milliseconds (overrides config)")
	demoCmd.Flags().IntVar(&demoPerF, "events-per-frame", 0, "events the demo producer sends per frame")
	demoCmd.Flags().StringVar(&demoFilter, "filter", "", "CEL expression for the filtered consumer")
	rootCmd.AddCommand(demoCmd)

	// version
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("pulse", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
