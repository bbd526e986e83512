package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "blurctl",
	Short: "Ultra-fast image pipeline with BlurHash placeholders",
	Long: `blurctl — turns megabyte banners/buttons into fast, cache-friendly assets
with instant BlurHash placeholders and zero layout shift.

Generates optimized AVIF/WebP variants, content-addressed filenames,
and a manifest for a BlurHash-aware frontend runtime. Decodes hashes
back to placeholder images on demand.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"blurctl %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[blurctl] "+format+"\n", args...)
	}
}
