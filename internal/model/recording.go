package model

import "context"

// RecordingState enumerates recording controller states.
type RecordingState string

const (
	// RecordingIdle means no capture is in flight.
	RecordingIdle RecordingState = "idle"
	// RecordingActive means the audio device is acquired and capturing.
	RecordingActive RecordingState = "recording"
	// RecordingProcessing means capture ended and transcription is in flight.
	RecordingProcessing RecordingState = "processing"
)

// AudioCapture is one acquired capture session. Stop releases the device and
// returns everything captured since Open.
type AudioCapture interface {
	Stop() ([]byte, error)
}

// AudioCapturer acquires the audio input device and starts capturing.
type AudioCapturer interface {
	Open(ctx context.Context) (AudioCapture, error)
}

// IngredientSink receives extracted ingredient batches. Merge returns the
// number of genuinely new items after deduplication.
type IngredientSink interface {
	Merge(batch []string) int
}
