package config

const (
	defaultLogDir       = "~/.local/share/nuros/logs"
	defaultBaselinePath = "~/.local/share/nuros/baseline.json"
	defaultReportDir    = "~/.local/share/nuros/reports"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultAPIBind      = "127.0.0.1:8501"

	defaultMaxClipSeconds   = 20.0
	defaultVoiceBandMinHz   = 75.0
	defaultVoiceBandMaxHz   = 500.0
	defaultFrameSeconds     = 0.04
	defaultHopSeconds       = 0.01
	defaultVoicingThreshold = 0.45
	defaultSilenceThreshold = 0.1

	defaultFallbackJitterPercent  = 0.5
	defaultFallbackShimmerPercent = 2.0
	defaultFallbackHNRdB          = 20.0

	defaultJitterHighPercent   = 1.04
	defaultJitterMediumPercent = 0.8
	defaultShimmerHighPercent  = 3.81
	defaultHNRLowDB            = 15.0
	defaultHNRCriticalDB       = 12.0
	defaultF0StdFloorHz        = 10.0
	defaultF0StdCeilingHz      = 40.0

	defaultWomensJitterPercent  = 1.04
	defaultWomensShimmerPercent = 3.8
	defaultThyroidHNRdB         = 16.0

	defaultPregnancyJitterDelta  = 0.2
	defaultPregnancyShimmerDelta = 0.5
	defaultPregnancyHNRDelta     = 1.0
	defaultMenopauseJitterDelta  = 0.3
	defaultMenopauseShimmerDelta = 0.8
	defaultMenopauseHNRDelta     = 2.0

	defaultJitterPenalty      = 15.0
	defaultShimmerPenalty     = 10.0
	defaultHNRPenalty         = 15.0
	defaultHNRCriticalPenalty = 5.0
	defaultF0StdPenalty       = 15.0
	defaultScoreNoiseBand     = 5.0

	defaultDriftAlertPercent = 15.0

	defaultMaxUploadBytes = 8 << 20
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:       defaultLogDir,
			BaselinePath: defaultBaselinePath,
			ReportDir:    defaultReportDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Analysis: Analysis{
			MaxClipSeconds:         defaultMaxClipSeconds,
			VoiceBandMinHz:         defaultVoiceBandMinHz,
			VoiceBandMaxHz:         defaultVoiceBandMaxHz,
			FrameSeconds:           defaultFrameSeconds,
			HopSeconds:             defaultHopSeconds,
			VoicingThreshold:       defaultVoicingThreshold,
			SilenceThreshold:       defaultSilenceThreshold,
			FallbackJitterPercent:  defaultFallbackJitterPercent,
			FallbackShimmerPercent: defaultFallbackShimmerPercent,
			FallbackHNRdB:          defaultFallbackHNRdB,
		},
		Thresholds: Thresholds{
			JitterHighPercent:     defaultJitterHighPercent,
			JitterMediumPercent:   defaultJitterMediumPercent,
			ShimmerHighPercent:    defaultShimmerHighPercent,
			HNRLowDB:              defaultHNRLowDB,
			HNRCriticalDB:         defaultHNRCriticalDB,
			F0StdFloorHz:          defaultF0StdFloorHz,
			F0StdCeilingHz:        defaultF0StdCeilingHz,
			WomensJitterPercent:   defaultWomensJitterPercent,
			WomensShimmerPercent:  defaultWomensShimmerPercent,
			ThyroidHNRdB:          defaultThyroidHNRdB,
			PregnancyJitterDelta:  defaultPregnancyJitterDelta,
			PregnancyShimmerDelta: defaultPregnancyShimmerDelta,
			PregnancyHNRDelta:     defaultPregnancyHNRDelta,
			MenopauseJitterDelta:  defaultMenopauseJitterDelta,
			MenopauseShimmerDelta: defaultMenopauseShimmerDelta,
			MenopauseHNRDelta:     defaultMenopauseHNRDelta,
		},
		Scoring: Scoring{
			JitterPenalty:      defaultJitterPenalty,
			ShimmerPenalty:     defaultShimmerPenalty,
			HNRPenalty:         defaultHNRPenalty,
			HNRCriticalPenalty: defaultHNRCriticalPenalty,
			F0StdPenalty:       defaultF0StdPenalty,
			NoiseBand:          defaultScoreNoiseBand,
		},
		Drift: Drift{
			AlertPercent: defaultDriftAlertPercent,
		},
		API: API{
			Bind:           defaultAPIBind,
			MaxUploadBytes: defaultMaxUploadBytes,
		},
	}
}
