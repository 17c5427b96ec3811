package main

import (
	"fmt"
	"os"

	"github.com/pstwh/img2pdf/internal/pdf"
	"github.com/pstwh/img2pdf/internal/raster"
	"github.com/spf13/cobra"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a PDF from raw RGBA pixel data",
	RunE:  runAssemble,
}

func init() {
	assembleCmd.Flags().StringP("input", "i", "", "Input raw RGBA file")
	assembleCmd.Flags().StringP("output", "o", "", "Output PDF file")
	assembleCmd.Flags().Int("width", 0, "Image width")
	assembleCmd.Flags().Int("height", 0, "Image height")
	assembleCmd.MarkFlagRequired("input")
	assembleCmd.MarkFlagRequired("output")
	assembleCmd.MarkFlagRequired("width")
	assembleCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(assembleCmd)
}

func runAssemble(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	pixels, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	expected := width * height * 4
	if len(pixels) != expected {
		return fmt.Errorf("expected %d bytes for %dx%d RGBA, got %d", expected, width, height, len(pixels))
	}

	channels := raster.Separate(&raster.Image{Width: width, Height: height, Pixels: pixels})

	data, err := pdf.Assemble(width, height, channels.RGB, channels.Alpha)
	if err != nil {
		return fmt.Errorf("assembling: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Assembled %dx%d RGBA → %s (%d bytes)\n", width, height, outputPath, len(data))
	return nil
}
