package logging

import "strings"

// ProgressSampler thins out render-progress logs. The engine reports progress
// on every status line it prints; only bucket crossings and stage transitions
// are worth a log record.
type ProgressSampler struct {
	bucketSize float64
	stage      string
	bucket     int
}

// NewProgressSampler returns a sampler that passes one event per bucketSize
// percent (default 5) and every stage transition.
func NewProgressSampler(bucketSize float64) *ProgressSampler {
	if bucketSize <= 0 {
		bucketSize = 5
	}
	return &ProgressSampler{bucketSize: bucketSize, bucket: -1}
}

// ShouldLog reports whether this progress event carries new information.
// Negative percents mean the engine has not reported a position yet; they
// never advance the bucket.
func (s *ProgressSampler) ShouldLog(percent float64, stage string) bool {
	if s == nil {
		return true
	}
	emit := false
	if stage = strings.TrimSpace(stage); stage != "" && stage != s.stage {
		s.stage = stage
		s.bucket = -1
		emit = true
	}
	if percent < 0 {
		return emit
	}
	if percent > 100 {
		percent = 100
	}
	if bucket := int(percent / s.bucketSize); bucket > s.bucket {
		s.bucket = bucket
		emit = true
	}
	return emit
}

// Reset re-arms the sampler for the next clip.
func (s *ProgressSampler) Reset() {
	if s == nil {
		return
	}
	s.stage = ""
	s.bucket = -1
}
