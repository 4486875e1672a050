package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/thaivocab/internal/digest"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Print a due-words digest periodically until interrupted",
	Long: `Print how many words are due every DIGEST_INTERVAL (default 1h).
Nothing is printed while no words are due.`,
	Args: cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		d := digest.New(a.scheduler, &digest.WriterNotifier{W: cmd.OutOrStdout()}, a.cfg.Digest.Interval, a.log)
		if err := d.Start(); err != nil {
			return err
		}
		a.log.Info("digest started", zap.Duration("interval", a.cfg.Digest.Interval))

		<-ctx.Done()
		d.Stop()
		a.log.Info("digest stopped")
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(digestCmd)
}

