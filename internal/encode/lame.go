// Package encode exports the spliced waveform as MP3 through the
// external lame encoder and tags the result with the alert's metadata.
package encode

import (
	"fmt"
	"os"
	"os/exec"
)

// Options configures the lame encoder
type Options struct {
	Quality int  // VBR quality (0-9, lower is better, default 2)
	Verbose bool // Show lame output
}

// DefaultOptions returns sensible defaults for encoding
func DefaultOptions() Options {
	return Options{
		Quality: 2, // -V 2 is high quality VBR (~190 kbps)
		Verbose: false,
	}
}

// MP3 encodes a WAV file to MP3 using lame.
// This is boundary code - calls external lame process.
func MP3(inputPath, outputPath string, opts Options) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file: %w", err)
	}

	args := []string{
		fmt.Sprintf("-V%d", opts.Quality),
		inputPath,
		outputPath,
	}
	if !opts.Verbose {
		args = append([]string{"--quiet"}, args...)
	}

	cmd := exec.Command("lame", args...)
	if opts.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		// Clean up partial output on failure
		os.Remove(outputPath)
		return fmt.Errorf("lame encoding failed: %w", err)
	}

	// Verify output was created
	info, err := os.Stat(outputPath)
	if err != nil {
		return fmt.Errorf("output file not created: %w", err)
	}
	if info.Size() == 0 {
		os.Remove(outputPath)
		return fmt.Errorf("output file is empty")
	}

	return nil
}

// LameAvailable checks if lame is installed and accessible
func LameAvailable() bool {
	_, err := exec.LookPath("lame")
	return err == nil
}
