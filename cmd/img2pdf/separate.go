package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pstwh/img2pdf/internal/imgio"
	"github.com/pstwh/img2pdf/internal/raster"
	"github.com/spf13/cobra"
)

var separateCmd = &cobra.Command{
	Use:   "separate",
	Short: "Split an image into raw RGB and alpha planes (+ JSON sidecar)",
	RunE:  runSeparate,
}

func init() {
	separateCmd.Flags().StringP("input", "i", "", "Input image file")
	separateCmd.Flags().StringP("output", "o", "", "Output raw RGB file (alpha plane written alongside)")
	separateCmd.MarkFlagRequired("input")
	separateCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(separateCmd)
}

type separateMeta struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	RGB    string `json:"rgb"`
	Alpha  string `json:"alpha"`
}

func runSeparate(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	imgData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	img, err := imgio.Decode(imgData)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	channels := raster.Separate(img)

	if err := os.WriteFile(outputPath, channels.RGB, 0644); err != nil {
		return fmt.Errorf("writing RGB plane: %w", err)
	}

	alphaPath := strings.TrimSuffix(outputPath, ".raw") + ".alpha"
	if err := os.WriteFile(alphaPath, channels.Alpha, 0644); err != nil {
		return fmt.Errorf("writing alpha plane: %w", err)
	}

	// Write JSON sidecar
	meta := separateMeta{
		Width:  img.Width,
		Height: img.Height,
		RGB:    outputPath,
		Alpha:  alphaPath,
	}
	metaJSON, _ := json.MarshalIndent(meta, "", "  ")
	metaPath := strings.TrimSuffix(outputPath, ".raw") + ".json"
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	fmt.Printf("Separated %dx%d → RGB (%d bytes), alpha (%d bytes)\n",
		img.Width, img.Height, len(channels.RGB), len(channels.Alpha))
	fmt.Printf("Sidecar: %s\n", metaPath)
	return nil
}
