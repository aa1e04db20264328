package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/launchdash/internal/theme"
	"github.com/theirongolddev/launchdash/internal/web"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web dashboard (default command)",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	result, err := loadTable(showProgress(), logger)
	if err != nil {
		return err
	}

	addr := settings.Server.Addr
	if flagServeAddr != "" {
		addr = flagServeAddr
	}

	svc := web.New(result.Table, web.Config{
		Addr:        addr,
		DataFile:    settings.Data.File,
		Sites:       settings.Dashboard.Sites,
		SliderStep:  settings.Dashboard.SliderStep,
		ChartWidth:  settings.Dashboard.ChartWidth,
		ChartHeight: settings.Dashboard.ChartHeight,
		Theme:       theme.Active,
		CacheHit:    result.CacheHit,
	}, logger)

	ln, err := svc.Listen()
	if err != nil {
		return err
	}
	if !flagQuiet {
		announce(os.Stdout, ln.Addr(), settings.Data.File)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Serve(ctx, ln); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("dashboard stopped")
	return nil
}

// announce prints the bound address. addr comes from the listener so a ":0"
// port shows the port actually chosen.
func announce(w io.Writer, addr net.Addr, dataFile string) {
	_, _ = fmt.Fprintf(w, "  launchdash listening on http://%s\n", addr)
	_, _ = fmt.Fprintf(w, "  Serving %s\n", dataFile)
	_, _ = fmt.Fprintln(w, "  Stop with Ctrl+C")
}
