package converter

import (
	"context"
	"os"
	"os/exec"
)

// videoTier fixes a target bitrate and frame size for one quality label.
type videoTier struct {
	Bitrate string
	Size    string
}

// Tier labels read as "how aggressively to compress": "high" produces the
// smallest output. The mapping is kept as-is for client compatibility.
var videoTiers = map[string]videoTier{
	"high":   {Bitrate: "500k", Size: "640x360"},
	"medium": {Bitrate: "1000k", Size: "854x480"},
	"low":    {Bitrate: "2000k", Size: "1280x720"},
}

// tierFor maps a quality label to its tier. Unrecognized or absent labels
// fall back to the medium tier.
func tierFor(quality string) videoTier {
	if t, ok := videoTiers[quality]; ok {
		return t
	}
	return videoTiers["medium"]
}

// VideoConverter transcodes video through an out-of-process ffmpeg. The
// call blocks until ffmpeg exits; a non-zero exit removes any partial
// output before returning.
type VideoConverter struct {
	ffmpegPath string
}

// NewVideoConverter creates a VideoConverter using the given ffmpeg binary.
func NewVideoConverter(ffmpegPath string) *VideoConverter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &VideoConverter{ffmpegPath: ffmpegPath}
}

// Convert transcodes the video at inputPath to outputPath at the tier
// selected by quality (high|medium|low).
func (c *VideoConverter) Convert(ctx context.Context, inputPath, outputPath, quality string) error {
	tier := tierFor(quality)

	args := []string{
		"-i", inputPath,
		"-b:v", tier.Bitrate,
		"-s", tier.Size,
		"-y",
		outputPath,
	}
	cmd := exec.CommandContext(ctx, c.ffmpegPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.Remove(outputPath)
		return failf("ffmpeg: %v, output: %s", err, output)
	}
	return nil
}
