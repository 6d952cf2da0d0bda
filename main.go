package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gin-gonic/gin"
	"github.com/kube-rca/incident-reporter/internal/client"
	"github.com/kube-rca/incident-reporter/internal/config"
	"github.com/kube-rca/incident-reporter/internal/handler"
	"github.com/kube-rca/incident-reporter/internal/logger"
	"github.com/kube-rca/incident-reporter/internal/report"
	"github.com/kube-rca/incident-reporter/internal/service"
	"github.com/kube-rca/incident-reporter/internal/transcript"
	"github.com/spf13/cobra"
)

var Version = "dev"

var errUsage = errors.New("missing message id")

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// @title Incident Reporter API
// @version 1.0
// @description Local viewer for generated incident reports.
// @BasePath /
func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// CLI 실행 후 프로세스 종료 코드 반환
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

type runOptions struct {
	noOpen  bool
	preview bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts runOptions

	rootCmd := &cobra.Command{
		Use:           "incident-reporter <message-id>",
		Short:         "Generate an incident report from a Slack thread",
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				printUsage(stdout)
				return errUsage
			}
			err := runReport(cmd.Context(), args[0], opts, stdout, stderr)
			if err != nil {
				fmt.Fprintln(stderr, errorStyle.Render("Error: "+err.Error()))
				if errors.Is(err, config.ErrMissingEnv) {
					fmt.Fprintln(stderr, "Please set these variables in a .env file or in your environment.")
				}
			}
			return err
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().BoolVar(&opts.noOpen, "no-open", false, "Do not open the HTML report in a browser")
	rootCmd.Flags().BoolVar(&opts.preview, "preview", false, "Render the Markdown report in the terminal")

	rootCmd.AddCommand(serveCmd(stderr))
	return rootCmd
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: incident-reporter <message-id>")
	fmt.Fprintln(w, "Example: incident-reporter p1753168536411769")
	fmt.Fprintf(w, "Note: Channel ID is set in .env file (default: %s)\n", config.DefaultChannelID)
}

func runReport(ctx context.Context, messageID string, opts runOptions, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logger.Setup(cfg.Log, stderr)

	threadTS, err := transcript.ThreadTS(messageID)
	if err != nil {
		return err
	}
	log.Info("Using thread timestamp", "message_id", messageID, "thread_ts", threadTS)

	location, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		return fmt.Errorf("invalid REPORT_TIMEZONE: %w", err)
	}

	llm, err := client.NewLLMClient(ctx, cfg.LLM)
	if err != nil {
		return err
	}
	slackClient := client.NewSlackClient(cfg.Slack)
	writer := report.NewWriter(cfg.Report.Dir)
	log.Info("Report settings", "provider", cfg.LLM.Provider, "model", llm.Model(), "reports_dir", writer.Dir())

	reporter := service.NewReporter(
		slackClient,
		service.NewTranscriptFormatter(service.NewUserResolver(slackClient), location),
		service.NewIncidentAnalyzer(llm, cfg.LLM.Temperature, cfg.LLM.ResponseFormat == client.ResponseFormatJSONSchema),
		report.NewRenderer(),
		writer,
	)
	if opts.preview {
		reporter.AddPostProcessor(report.NewTerminalPreview(stdout))
	}
	if cfg.Report.OpenBrowser && !opts.noOpen {
		reporter.AddPostProcessor(report.NewBrowserOpener())
	}

	res, err := reporter.Run(ctx, slackClient.ChannelID(), threadTS)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, successStyle.Render("Workflow finished!"))
	if res.Files.HTMLPath != "" {
		fmt.Fprintf(stdout, "HTML report saved to: %s\n", res.Files.HTMLPath)
	}
	if res.Files.MarkdownPath != "" {
		fmt.Fprintf(stdout, "Markdown report saved to: %s\n", res.Files.MarkdownPath)
	}
	return nil
}

func serveCmd(stderr io.Writer) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve generated reports over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Setup(cfg.Log, stderr)
			if port == "" {
				port = cfg.Server.Port
			}

			gin.SetMode(gin.ReleaseMode)
			router := handler.NewRouter(handler.NewReportHandler(service.NewReportCatalog(cfg.Report.Dir)))

			addr := "127.0.0.1:" + port
			slog.Info("Serving incident reports", "addr", "http://"+addr, "dir", cfg.Report.Dir)
			return router.Run(addr)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default: SERVER_PORT or 8080)")
	return cmd
}
