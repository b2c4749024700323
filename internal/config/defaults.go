package config

const (
	defaultBackgroundDir = "background"
	defaultSpecificDir   = "cortes"
	defaultOutputDir     = "output"
	defaultOverlayMarker = "Overlay Tela Final"

	defaultDurationSeconds = 20.0
	defaultWidth           = 1280
	defaultHeight          = 720
	defaultSpecificWidth   = 469
	defaultSpecificX       = 733.5
	defaultSpecificY       = 398.8
	defaultKeyColor        = "black"
	defaultKeyThreshold    = 10
	defaultFPS             = 30
	defaultVideoCodec      = "libx264"
	defaultAudioCodec      = "aac"
	defaultPreset          = "medium"
	defaultThreads         = 4

	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with the stock end-screen layout.
func Default() Config {
	return Config{
		Paths: Paths{
			BackgroundDir: defaultBackgroundDir,
			SpecificDir:   defaultSpecificDir,
			OutputDir:     defaultOutputDir,
			OverlayMarker: defaultOverlayMarker,
		},
		Render: Render{
			DurationSeconds: defaultDurationSeconds,
			Width:           defaultWidth,
			Height:          defaultHeight,
			SpecificWidth:   defaultSpecificWidth,
			SpecificX:       defaultSpecificX,
			SpecificY:       defaultSpecificY,
			KeyColor:        defaultKeyColor,
			KeyThreshold:    defaultKeyThreshold,
			FPS:             defaultFPS,
			VideoCodec:      defaultVideoCodec,
			AudioCodec:      defaultAudioCodec,
			Preset:          defaultPreset,
			Threads:         defaultThreads,
		},
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
