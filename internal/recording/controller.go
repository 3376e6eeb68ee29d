package recording

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/savorly/savorly-client/internal/api/rest"
	"github.com/savorly/savorly-client/internal/logger"
	"github.com/savorly/savorly-client/internal/model"
)

// Controller drives the capture lifecycle idle → recording → processing →
// idle. Only one lifecycle may be in flight; Start is rejected while a
// previous one has not settled back to idle.
type Controller struct {
	mu        sync.Mutex
	state     model.RecordingState
	startedAt time.Time
	capture   model.AudioCapture

	capturer  model.AudioCapturer
	extractor model.IngredientAPI
	sink      model.IngredientSink
	notifier  model.Notifier
	logger    *logger.Logger
}

// NewController creates an idle controller.
func NewController(
	capturer model.AudioCapturer,
	extractor model.IngredientAPI,
	sink model.IngredientSink,
	notifier model.Notifier,
	logger *logger.Logger,
) *Controller {
	return &Controller{
		state:     model.RecordingIdle,
		capturer:  capturer,
		extractor: extractor,
		sink:      sink,
		notifier:  notifier,
		logger:    logger,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() model.RecordingState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// StartedAt returns when the active capture began, zero when idle.
func (c *Controller) StartedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.startedAt
}

// Start acquires the audio device and begins capturing. Rejected with
// ErrBusy while recording or processing. Device acquisition failure leaves
// the controller idle and surfaces an error toast; there is no retry.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != model.RecordingIdle {
		c.logger.Debug("Recording controller: start rejected", "state", string(c.state))
		return model.ErrBusy
	}

	capture, err := c.capturer.Open(ctx)
	if err != nil {
		c.logger.Error("Recording controller: failed to acquire device", "error", err.Error())
		c.notifier.Notify("Microphone access denied", model.ToastError)
		return fmt.Errorf("failed to acquire audio device: %w", err)
	}

	c.capture = capture
	c.state = model.RecordingActive
	c.startedAt = time.Now()
	c.notifier.Notify("Recording started...", model.ToastInfo)

	return nil
}

// Stop ends the capture, releases the device, and hands the audio to the
// transcription endpoint. Whatever the outcome, the controller returns to
// idle so a new recording can start.
func (c *Controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	if c.state != model.RecordingActive {
		c.mu.Unlock()
		return model.ErrInvalidState
	}

	capture := c.capture
	c.capture = nil
	c.state = model.RecordingProcessing
	c.mu.Unlock()

	// The device is released here, before the remote call.
	audio, err := capture.Stop()

	defer func() {
		c.mu.Lock()
		c.state = model.RecordingIdle
		c.startedAt = time.Time{}
		c.mu.Unlock()
	}()

	if err != nil {
		c.logger.Error("Recording controller: capture failed", "error", err.Error())
		c.notifier.Notify("Failed to capture audio", model.ToastError)
		return fmt.Errorf("failed to stop capture: %w", err)
	}

	extracted, err := c.extractor.ExtractFromAudio(ctx, audio)
	if err != nil {
		c.logger.Error("Recording controller: transcription failed", "error", err.Error())
		if detail := rest.Detail(err); detail != "" {
			c.notifier.Notify(detail, model.ToastError)
		} else {
			c.notifier.Notify("Failed to process audio", model.ToastError)
		}
		return fmt.Errorf("failed to extract ingredients from audio: %w", err)
	}

	if len(extracted) == 0 {
		c.notifier.Notify("No ingredients detected in the recording", model.ToastInfo)
		return nil
	}

	added := c.sink.Merge(extracted)
	c.logger.Debug("Recording controller: merged extraction",
		"extracted", len(extracted),
		"added", added)
	if added == 0 {
		c.notifier.Notify("No new ingredients", model.ToastInfo)
		return nil
	}
	c.notifier.Notify(fmt.Sprintf("Added %d new ingredients!", added), model.ToastSuccess)

	return nil
}
