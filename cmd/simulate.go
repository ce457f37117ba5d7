package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	app "qc-scanner/internal/application"
	"qc-scanner/internal/domain/entity"
	"qc-scanner/internal/domain/port"
	"qc-scanner/internal/infrastructure/camera"
	"qc-scanner/internal/infrastructure/storage"
)

type simulateOptions struct {
	Count        int
	CameraDevice int
	ModelLabel   string
	Seed         bool
	Random       port.Random
}

func newSimulateCmd() *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a series of manual scans without the bot and print the results",
		Example: `  qc-scanner simulate --count 10
  qc-scanner simulate --camera 0 --label "Wireless Mouse W3"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 5, "number of scans to run")
	cmd.Flags().IntVar(&opts.CameraDevice, "camera", -1, "camera device index (-1 uses a synthetic test pattern)")
	cmd.Flags().StringVar(&opts.ModelLabel, "label", app.DefaultModelLabel, "product model label")
	cmd.Flags().BoolVar(&opts.Seed, "seed", false, "start from the sample records")
	return cmd
}

func runSimulate(ctx context.Context, w io.Writer, opts simulateOptions) error {
	if opts.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", opts.Count)
	}

	var source port.FrameSource = camera.NewPattern(320, 240)
	if opts.CameraDevice >= 0 {
		dev, err := camera.OpenDevice(opts.CameraDevice)
		if err != nil {
			return fmt.Errorf("open camera: %w", err)
		}
		defer dev.Close()
		source = dev
	}

	var seed []entity.InspectionRecord
	if opts.Seed {
		seed = storage.SeedRecords(time.Now())
	}
	records := storage.NewMemoryRecordRepository(seed...)
	scanner := app.NewScanner(records, source, app.ScannerOptions{
		ModelLabel: opts.ModelLabel,
		Random:     opts.Random,
	})

	for i := 1; i <= opts.Count; i++ {
		rec, err := scanner.TriggerManual(ctx)
		if err != nil {
			if errors.Is(err, entity.ErrCaptureUnavailable) {
				fmt.Fprintf(w, "#%d  no frame\n", i)
				continue
			}
			return fmt.Errorf("scan %d: %w", i, err)
		}
		fmt.Fprintf(w, "#%d  %-8s  %5.1f%%  cert=%-5t  %s  %s\n",
			i, rec.Status, rec.Confidence*100, rec.CertificationPresent, defectsLabel(rec.Defects), rec.ID)

		if err := scanner.Reset(); err != nil {
			return fmt.Errorf("reset after scan %d: %w", i, err)
		}
	}

	counts, err := records.Counts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\napproved=%d rejected=%d pending=%d total=%d avg_confidence=%.1f%%\n",
		counts.Approved, counts.Rejected, counts.Pending, counts.Total, counts.AvgConfidence*100)
	return nil
}

func defectsLabel(defects []string) string {
	if len(defects) == 0 {
		return "-"
	}
	return fmt.Sprintf("%q", defects)
}
