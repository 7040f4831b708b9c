package cli

import (
	"context"
	"fmt"
	"net/url"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eleven-am/tick/internal/logger"
	"github.com/eleven-am/tick/internal/server"
	"github.com/eleven-am/tick/internal/service"
	"github.com/eleven-am/tick/internal/store"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the to-do HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	cmd.Flags().StringVar(&listenAddr, "addr", "", "address to listen on (overrides config)")

	return cmd
}

func runServe() error {
	log := logger.CLI()

	path := configFile
	if path == "" {
		path = GetConfigPath()
	}
	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	if listenAddr != "" {
		config.Server.Addr = listenAddr
	}

	log.Info("starting up", "driver", config.Database.Driver, "dsn", redactDSN(config.Database.DSN))

	st, err := store.Open(config.Database.Driver, config.Database.DSN)
	if err != nil {
		return err
	}
	defer st.Close()

	st.DB().SetMaxOpenConns(config.Database.MaxConnections)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := st.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	svc := service.New(st)
	srv := server.New(svc)

	shutdownTimeout := time.Duration(config.Server.ShutdownTimeoutSeconds) * time.Second
	if err := srv.Run(ctx, config.Server.Addr, shutdownTimeout); err != nil {
		return err
	}

	log.Info("shutting down")
	return nil
}

var dsnPasswordPattern = regexp.MustCompile(`password=\S+`)

// redactDSN masks any credential embedded in a connection string before it is
// logged. Plain file paths (the sqlite case) pass through unchanged.
func redactDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
			return u.String()
		}
	}
	return dsnPasswordPattern.ReplaceAllString(dsn, "password=xxxxx")
}
