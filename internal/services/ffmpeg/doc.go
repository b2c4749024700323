// Package ffmpeg shells out to the ffmpeg binary to render planned composite
// jobs. The filter graph is assembled with github.com/u2takey/ffmpeg-go and
// the encode runs with -progress on stdout so callers can surface live
// progress while stderr is kept for failure reporting.
package ffmpeg
