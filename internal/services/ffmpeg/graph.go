package ffmpeg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	ffmpeggo "github.com/u2takey/ffmpeg-go"

	"endcard/internal/compose"
)

// runtimeFlags precede the assembled graph so progress records land on stdout
// as key=value lines while log output stays on stderr.
var runtimeFlags = []string{"-hide_banner", "-nostdin", "-nostats", "-progress", "pipe:1"}

// Command returns the full ffmpeg argument list for a planned job, without
// the binary name itself.
func Command(job compose.Job) []string {
	return append(append([]string{}, runtimeFlags...), buildStream(job).GetArgs()...)
}

// Preview renders the command line Render would execute for a job.
func Preview(binary string, job compose.Job) string {
	return strings.Join(append([]string{binary}, Command(job)...), " ")
}

// buildStream assembles the three-layer composite: the background stretched to
// the full frame, the chroma-keyed overlay on top of it, and the specific clip
// scaled to its badge width at the configured corner position. Layers shorter
// than the job duration end early instead of holding their last frame.
func buildStream(job compose.Job) *ffmpeggo.Stream {
	background := ffmpeggo.Input(job.Background.Path, inputArgs(job.Background))
	overlay := ffmpeggo.Input(job.Overlay.Path, inputArgs(job.Overlay))
	specific := ffmpeggo.Input(job.Specific.Path, inputArgs(job.Specific))

	frame := formatResolution(job.Resolution)
	base := background.Filter("scale", ffmpeggo.Args{frame})
	keyed := overlay.
		Filter("scale", ffmpeggo.Args{frame}).
		Filter("colorkey", ffmpeggo.Args{
			job.KeyColor,
			formatFloat(job.KeySimilarity, 4),
			formatFloat(job.KeyBlend, 4),
		})
	badge := specific.Filter("scale", ffmpeggo.Args{fmt.Sprintf("%d:-1", job.SpecificWidth)})

	video := ffmpeggo.Filter([]*ffmpeggo.Stream{base, keyed}, "overlay",
		ffmpeggo.Args{"0:0"}, ffmpeggo.KwArgs{"eof_action": "pass"})
	video = ffmpeggo.Filter([]*ffmpeggo.Stream{video, badge}, "overlay",
		ffmpeggo.Args{formatPosition(job.SpecificPosition)}, ffmpeggo.KwArgs{"eof_action": "pass"})

	outputs := []*ffmpeggo.Stream{video}
	if mixed, ok := audioStream(job, background, overlay, specific); ok {
		outputs = append(outputs, mixed)
	}

	return ffmpeggo.Output(outputs, job.OutputPath, outputArgs(job)).OverWriteOutput()
}

// audioStream selects the audio side of the composite: silent jobs map no
// audio at all, a single voiced layer passes through untouched, and two or
// more are summed without attenuation the way the stacked source clips play.
func audioStream(job compose.Job, background, overlay, specific *ffmpeggo.Stream) (*ffmpeggo.Stream, bool) {
	inputs := []*ffmpeggo.Stream{background, overlay, specific}
	var voiced []*ffmpeggo.Stream
	for i, layer := range job.Layers() {
		if layer.HasAudio {
			voiced = append(voiced, inputs[i].Get("a"))
		}
	}
	switch len(voiced) {
	case 0:
		return nil, false
	case 1:
		return voiced[0], true
	default:
		mixed := ffmpeggo.Filter(voiced, "amix", ffmpeggo.Args{}, ffmpeggo.KwArgs{
			"inputs":             len(voiced),
			"duration":           "longest",
			"dropout_transition": 0,
			"normalize":          0,
		})
		return mixed, true
	}
}

func inputArgs(layer compose.Layer) ffmpeggo.KwArgs {
	return ffmpeggo.KwArgs{"t": formatFloat(layer.Trim, 3)}
}

func outputArgs(job compose.Job) ffmpeggo.KwArgs {
	return ffmpeggo.KwArgs{
		"c:v":     job.VideoCodec,
		"c:a":     job.AudioCodec,
		"preset":  job.Preset,
		"r":       job.FrameRate,
		"threads": job.Threads,
		"t":       formatFloat(job.Duration, 3),
		"pix_fmt": "yuv420p",
	}
}

func formatResolution(resolution compose.Resolution) string {
	return fmt.Sprintf("%d:%d", resolution.Width, resolution.Height)
}

func formatPosition(position compose.Position) string {
	return fmt.Sprintf("%s:%s", formatFloat(position.X, 4), formatFloat(position.Y, 4))
}

// formatFloat renders a float rounded to the given precision without
// trailing zeros, so whole seconds stay whole in the argument list.
func formatFloat(value float64, precision int) string {
	scale := math.Pow10(precision)
	return strconv.FormatFloat(math.Round(value*scale)/scale, 'f', -1, 64)
}
