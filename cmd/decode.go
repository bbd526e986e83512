package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/AnyUserName/blurhash-go/blurhash"
	"github.com/spf13/cobra"
)

var (
	decodeWidth  int
	decodeHeight int
	decodePunch  float64
)

var decodeCmd = &cobra.Command{
	Use:   "decode <hash> <out.png>",
	Short: "Decode a BlurHash string into a PNG placeholder image",
	Long: `Decodes a BlurHash string produced by build into a small PNG.

If the hash carries a <W:H> size prefix, that aspect is used unless
--width/--height override it. With neither a prefix nor explicit
dimensions, the output defaults to a 32x32 square.`,
	Args: cobra.ExactArgs(2),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().IntVar(&decodeWidth, "width", 0, "output width (0 = infer)")
	decodeCmd.Flags().IntVar(&decodeHeight, "height", 0, "output height (0 = infer)")
	decodeCmd.Flags().Float64Var(&decodePunch, "punch", 1.0, "AC contrast multiplier")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(_ *cobra.Command, args []string) error {
	hash := args[0]
	outPath := args[1]

	pm, err := blurhash.Decode(hash, blurhash.DecodeOptions{
		Width:  decodeWidth,
		Height: decodeHeight,
		Punch:  decodePunch,
	})
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, pm.Width, pm.Height))
	for y := 0; y < pm.Height; y++ {
		for x := 0; x < pm.Width; x++ {
			r, g, b := pm.At(x, y)
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	logVerbose("decoded %dx%d placeholder -> %s", pm.Width, pm.Height, outPath)
	return nil
}
