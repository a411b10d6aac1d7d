package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/portalfit/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <csv>",
	Short: "Export the filtered candidates to CSV",
	Long: `Export the candidates matching the filters to a CSV file with a
fixed 21-column layout.

By default the file is written to the configured export directory as
transfer_portal_candidates_<date>.csv. Use --out - to write to stdout.

Examples:
  portalfit export portal.csv
  portalfit export portal.csv --position C --out centers.csv
  portalfit export portal.csv --min-fit 75 --out - > shortlist.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var (
	exportQuery queryFlags
	exportOut   string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportQuery.register(exportCmd, true)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file, or - for stdout (default: dated file in export dir)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	_, r, err := loadRoster(cfg, logger, args[0])
	if err != nil {
		return err
	}

	players, err := exportQuery.apply(cmd, cfg, r.Players)
	if err != nil {
		return err
	}

	// Encode before touching the filesystem so an empty view leaves no file
	var buf bytes.Buffer
	if err := export.Write(&buf, players); err != nil {
		if errors.Is(err, export.ErrNoRows) {
			fmt.Fprintln(cmd.ErrOrStderr(), "No players match the current filters; nothing exported.")
			return nil
		}
		return err
	}

	if exportOut == "-" {
		out := cmd.OutOrStdout()
		if _, err := io.Copy(out, &buf); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintln(out)
		return nil
	}

	path := exportOut
	if path == "" {
		path = cfg.ExportPath(export.Filename(time.Now()))
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	logger.Info("export written",
		zap.String("path", path),
		zap.Int("players", len(players)),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d players to %s\n", len(players), path)
	return nil
}
