package main

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"photoprint-backend/internal/catalog"
	"photoprint-backend/internal/config"
	"photoprint-backend/internal/faq"
	"photoprint-backend/internal/logging"
	"photoprint-backend/internal/server"
	"photoprint-backend/internal/tracking"
	"photoprint-backend/internal/wizard"
)

var verbose bool

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photoprint",
		Short: "Photo print storefront tools",
		Long: `photoprint runs the storefront API and offers quick operator commands for
price quotes, order status checks and the FAQ text.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development logging")
	cmd.AddCommand(
		newServeCmd(),
		newQuoteCmd(),
		newTrackCmd(),
		newFAQCmd(),
	)
	return cmd
}

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			if verbose {
				logger = logging.NewDevelopment()
			}
			defer logger.Sync()

			return server.Run(cmd.Context(), cfg, logger)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Override PORT")
	return cmd
}

func newQuoteCmd() *cobra.Command {
	var (
		size     string
		quantity int
	)
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a print order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := catalog.ParseSize(size)
			if !ok {
				return fmt.Errorf("unknown size %q (choose 4R, 5R or 8R)", size)
			}
			if quantity < wizard.MinQuantity || quantity > wizard.MaxQuantity {
				return fmt.Errorf("quantity must be between %d and %d", wizard.MinQuantity, wizard.MaxQuantity)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s × %s = %s\n",
				s.Label(), wizard.Copies(quantity), catalog.FormatPeso(catalog.Total(s, quantity)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&size, "size", "s", string(catalog.DefaultSize), "Print size (4R, 5R, 8R)")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", wizard.MinQuantity, "Number of copies (1-10)")
	return cmd
}

func newTrackCmd() *cobra.Command {
	var wait bool
	cmd := &cobra.Command{
		Use:   "track <order-number>",
		Short: "Check an order's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delay := tracking.DefaultDelay
			if !wait {
				delay = 0
			}
			logger := zap.NewNop()
			if verbose {
				logger = logging.NewDevelopment()
			}
			logger.Debug("looking up order", zap.String("order_number", args[0]), zap.Duration("delay", delay))

			res, err := tracking.NewTracker(delay).Track(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Order:  %s\n", res.OrderNumber)
			fmt.Fprintf(out, "Status: %s\n", res.Status)
			fmt.Fprintln(out, res.Message)
			fmt.Fprintln(out, res.Turnaround)
			return nil
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "Simulate the storefront lookup delay")
	return cmd
}

func newFAQCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "faq",
		Short: "Print the FAQ",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := faq.Default()
			if err != nil {
				return err
			}
			text := bluemonday.StrictPolicy()
			out := cmd.OutOrStdout()
			for i, e := range entries {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "Q: %s\n", e.Question)
				answer := html.UnescapeString(text.Sanitize(e.AnswerHTML))
				fmt.Fprintf(out, "A: %s\n", strings.Join(strings.Fields(answer), " "))
			}
			return nil
		},
	}
}
