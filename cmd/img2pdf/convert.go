package main

import (
	"fmt"
	"os"

	"github.com/pstwh/img2pdf/internal/pipeline"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input_image> <output_pdf>",
	Short: "Convert an image file to a single-page PDF",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath := args[1]

	imgData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Convert(imgData)
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("PDF created successfully: %s\n", outputPath)
	fmt.Printf("Input:  %s (%dx%d, %d bytes)\n", inputPath, result.Width, result.Height, len(imgData))
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, len(result.Data))

	return nil
}
