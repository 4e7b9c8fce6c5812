package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/eduardofuncao/pgbridge/internal/config"
	"github.com/eduardofuncao/pgbridge/internal/db"
	"github.com/eduardofuncao/pgbridge/internal/spinner"
	"github.com/eduardofuncao/pgbridge/internal/styles"
)

// openAdapter connects the active profile and returns the adapter plus a
// cleanup func. Every internally issued statement goes through the zap
// invoker; set PGBRIDGE_DEBUG=1 to see them.
func openAdapter(cfg *config.Config) (*db.Adapter, func(), error) {
	profile := cfg.Current()
	if profile == nil {
		return nil, nil, fmt.Errorf("no active profile; run pgbridge init first")
	}

	logger := newLogger()
	adapter := db.NewAdapter()

	done := make(chan struct{})
	go spinner.Wait(done)
	err := adapter.Connect(profile.ToParams(), db.NewZapInvoker(logger, adapter))
	close(done)

	if err != nil {
		logger.Sync()
		return nil, nil, fmt.Errorf("connecting to %s: %w", profile.Name, err)
	}

	cleanup := func() {
		adapter.Disconnect()
		logger.Sync()
	}
	return adapter, cleanup, nil
}

func newLogger() *zap.Logger {
	if os.Getenv("PGBRIDGE_DEBUG") == "" {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func handleInit(cfg *config.Config, profile *config.Profile) {
	cfg.Profiles[profile.Name] = profile
	cfg.CurrentProfile = profile.Name

	adapter, cleanup, err := openAdapter(cfg)
	if err != nil {
		log.Fatalf("Could not establish connection to %s: %s", profile.Name, err)
	}
	defer cleanup()

	version, err := adapter.ServerVersion()
	if err != nil {
		log.Fatal("Could not read server version: ", err)
	}

	if err := cfg.Save(); err != nil {
		log.Fatal("Could not save configuration file")
	}
	fmt.Printf("%s %s (server %s)\n",
		styles.Success.Render("✓ connected:"), profile.Name, version)
}

func handleStatus(cfg *config.Config) {
	profile := cfg.Current()
	if profile == nil {
		fmt.Println(styles.Faint.Render("No active profile"))
		return
	}

	info := fmt.Sprintf("%s (%s@%s:%d/%s)",
		profile.Name, profile.Username, profile.Host, profile.Port, profile.Database)

	adapter, cleanup, err := openAdapter(cfg)
	if err != nil {
		fmt.Printf("%s %s\n", styles.Error.Render("○"), styles.Title.Render(info))
		fmt.Printf("  %s\n", styles.Faint.Render("unreachable"))
		return
	}
	defer cleanup()

	statusText := "reachable"
	icon := styles.Success.Render("●")
	if !adapter.Ping() {
		statusText = "unreachable"
		icon = styles.Error.Render("○")
	}

	fmt.Printf("%s Using %s\n", icon, styles.Title.Render(info))
	fmt.Printf("  %d saved queries, %s\n", len(profile.Queries), styles.Faint.Render(statusText))
}

func handleVersion(cfg *config.Config) {
	adapter, cleanup, err := openAdapter(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	version, err := adapter.ServerVersion()
	if err != nil {
		log.Fatal("Could not read server version: ", err)
	}
	fmt.Println("PostgreSQL", version)
}
