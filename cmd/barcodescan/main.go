package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	zxinggo "github.com/arvovision/barcode"
	"github.com/arvovision/barcode/binarizer"
	"github.com/arvovision/barcode/internal/config"
	"github.com/arvovision/barcode/multi"
	"github.com/spf13/cobra"

	// Register all format readers.
	_ "github.com/arvovision/barcode/aztec"
	_ "github.com/arvovision/barcode/datamatrix"
	_ "github.com/arvovision/barcode/oned"
	_ "github.com/arvovision/barcode/pdf417"
	_ "github.com/arvovision/barcode/qrcode"
)

var (
	hybrid      bool
	global      bool
	verbose     bool
	more        bool
	testMode    bool
	tryHarder   bool
	searchMulti bool
	cfgFile     string
)

var rootCmd = &cobra.Command{
	Use:   "barcode-cli [OPTION]... <IMAGE>...",
	Short: "Decode barcodes found in image files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	defaults := config.Default()
	if cfg, err := config.Load(""); err == nil {
		defaults = cfg
	}

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default .barcode-cli.yaml in . or $HOME)")
	rootCmd.Flags().BoolVarP(&hybrid, "hybrid", "h", defaults.Hybrid, "use the hybrid (local adaptive) binarizer")
	rootCmd.Flags().BoolVarP(&global, "global", "g", defaults.Global, "use the global-histogram binarizer")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", defaults.Verbose, "log decode attempts at debug level")
	rootCmd.Flags().BoolVar(&more, "more", false, "print format and point coordinates with each result")
	rootCmd.Flags().BoolVar(&testMode, "test-mode", false, "verify decoded text against a sibling .txt/.bin fixture")
	rootCmd.Flags().BoolVar(&tryHarder, "try-harder", defaults.TryHarder, "spend more effort locating barcodes")
	rootCmd.Flags().BoolVar(&searchMulti, "search-multi", defaults.SearchMulti, "look for more than one barcode per image")
}

func main() {
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if cfgFile == "" {
			return nil
		}
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("hybrid") {
			hybrid = cfg.Hybrid
		}
		if !cmd.Flags().Changed("global") {
			global = cfg.Global
		}
		if !cmd.Flags().Changed("verbose") {
			verbose = cfg.Verbose
		}
		if !cmd.Flags().Changed("try-harder") {
			tryHarder = cfg.TryHarder
		}
		if !cmd.Flags().Changed("search-multi") {
			searchMulti = cfg.SearchMulti
		}
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	exitCode := 0
	for _, path := range args {
		if err := scanAndPrint(cmd, logger, path); err != nil {
			logger.Error("decode failed", "path", path, "error", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			exitCode = 1
		}
	}
	if exitCode != 0 {
		return fmt.Errorf("one or more images failed to decode")
	}
	return nil
}

func scanAndPrint(cmd *cobra.Command, logger *slog.Logger, path string) error {
	results, err := scanFile(logger, path)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no barcode found")
	}

	for i, r := range results {
		if more {
			fmt.Fprintf(cmd.OutOrStdout(), "Format: %s\n", r.Format)
			for pi, pt := range r.Points {
				fmt.Fprintf(cmd.OutOrStdout(), "Point[%d]: %g,%g\n", pi, pt.X, pt.Y)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.Text)

		if testMode {
			want, ok, ferr := readFixture(path)
			if ferr != nil {
				return fmt.Errorf("fixture %s: %w", path, ferr)
			}
			if ok && want != r.Text {
				return fmt.Errorf("result %d mismatches fixture: got %q, want %q", i, r.Text, want)
			}
		}
	}
	return nil
}

// readFixture looks for a sibling <IMAGE>.txt (UTF-8) or <IMAGE>.bin (raw
// bytes) holding the expected payload. Trailing whitespace is significant.
func readFixture(imagePath string) (string, bool, error) {
	ext := filepath.Ext(imagePath)
	base := strings.TrimSuffix(imagePath, ext)

	if data, err := os.ReadFile(base + ".txt"); err == nil {
		return string(data), true, nil
	}
	if data, err := os.ReadFile(base + ".bin"); err == nil {
		return string(data), true, nil
	}
	return "", false, nil
}

func scanFile(logger *slog.Logger, path string) ([]*zxinggo.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	source := zxinggo.NewImageLuminanceSource(img)
	opts := &zxinggo.DecodeOptions{TryHarder: tryHarder}

	bitmaps := selectedBitmaps(source)

	if searchMulti {
		reader := multi.NewGenericMultipleBarcodeReader(zxinggo.NewMultiFormatReader())
		for _, bitmap := range bitmaps {
			results, err := reader.DecodeMultiple(bitmap, opts)
			if err == nil && len(results) > 0 {
				return results, nil
			}
			logger.Debug("search-multi attempt failed", "path", path, "error", err)
		}
		return nil, zxinggo.ErrNotFound
	}

	for _, bitmap := range bitmaps {
		result, err := zxinggo.Decode(bitmap, opts)
		if err == nil {
			return []*zxinggo.Result{result}, nil
		}
		logger.Debug("decode attempt failed", "path", path, "error", err)
	}
	return nil, zxinggo.ErrNotFound
}

// selectedBitmaps builds the binarizer pipeline(s) to try, in order, honoring
// -h/--hybrid and -g/--global. With neither flag set both are attempted,
// global first (cheaper), then hybrid.
func selectedBitmaps(source zxinggo.LuminanceSource) []*zxinggo.BinaryBitmap {
	var bitmaps []*zxinggo.BinaryBitmap
	switch {
	case hybrid && !global:
		bitmaps = append(bitmaps, zxinggo.NewBinaryBitmap(binarizer.NewHybrid(source)))
	case global && !hybrid:
		bitmaps = append(bitmaps, zxinggo.NewBinaryBitmap(binarizer.NewGlobalHistogram(source)))
	default:
		bitmaps = append(bitmaps,
			zxinggo.NewBinaryBitmap(binarizer.NewGlobalHistogram(source)),
			zxinggo.NewBinaryBitmap(binarizer.NewHybrid(source)),
		)
	}
	return bitmaps
}
