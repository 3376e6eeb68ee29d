package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/savorly/savorly-client/internal/api/rest"
	"github.com/savorly/savorly-client/internal/logger"
	"github.com/savorly/savorly-client/internal/model"
)

// Extraction is the free-text ingredient source. It parallels the recording
// controller: both feed the same collector through Merge.
type Extraction struct {
	api      model.IngredientAPI
	sink     model.IngredientSink
	notifier model.Notifier
	logger   *logger.Logger
}

// NewExtraction creates the text extraction service.
func NewExtraction(api model.IngredientAPI, sink model.IngredientSink, notifier model.Notifier, logger *logger.Logger) *Extraction {
	return &Extraction{
		api:      api,
		sink:     sink,
		notifier: notifier,
		logger:   logger,
	}
}

// ExtractFromText sends free text to the extraction endpoint and merges the
// result into the collector. Empty input is rejected locally.
func (e *Extraction) ExtractFromText(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		e.notifier.Notify("Please enter some ingredients", model.ToastWarning)
		return model.ErrEmptyIngredients
	}

	extracted, err := e.api.ExtractFromText(ctx, text)
	if err != nil {
		e.logger.Error("Extraction service: request failed", "error", err.Error())
		if detail := rest.Detail(err); detail != "" {
			e.notifier.Notify(detail, model.ToastError)
		} else {
			e.notifier.Notify("Failed to extract ingredients", model.ToastError)
		}
		return fmt.Errorf("failed to extract ingredients: %w", err)
	}

	if len(extracted) == 0 {
		e.notifier.Notify("No ingredients detected", model.ToastInfo)
		return nil
	}

	added := e.sink.Merge(extracted)
	e.logger.Debug("Extraction service: merged extraction",
		"extracted", len(extracted),
		"added", added)
	if added == 0 {
		e.notifier.Notify("No new ingredients", model.ToastInfo)
		return nil
	}
	e.notifier.Notify(fmt.Sprintf("Added %d new ingredients!", added), model.ToastSuccess)

	return nil
}
