package main

import (
	"fmt"
	"os"

	"github.com/pstwh/img2pdf/internal/imgio"
	"github.com/pstwh/img2pdf/internal/raster"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect image format, dimensions and alpha channel",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	identifyCmd.Flags().Bool("alpha", false, "Decode pixels to report alpha coverage")
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	checkAlpha, _ := cmd.Flags().GetBool("alpha")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := imgio.Inspect(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fmt.Printf("File:        %s\n", path)
	fmt.Printf("Format:      %s\n", info.Format)
	fmt.Printf("Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Printf("Color model: %s\n", info.ColorModel)
	fmt.Printf("File size:   %d bytes (%.1f KB)\n", len(data), float64(len(data))/1024)

	if checkAlpha {
		img, err := imgio.Decode(data)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", path, err)
		}
		channels := raster.Separate(img)
		if channels.Opaque() {
			fmt.Println("Alpha:       fully opaque")
		} else {
			fmt.Println("Alpha:       partially transparent")
		}
	}

	return nil
}
