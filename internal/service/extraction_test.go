package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/savorly/savorly-client/internal/api/rest"
	"github.com/savorly/savorly-client/internal/ingredients"
	"github.com/savorly/savorly-client/internal/mocks"
	"github.com/savorly/savorly-client/internal/model"
	"github.com/savorly/savorly-client/internal/testutil"
)

func TestExtraction_EmptyTextNeverReachesNetwork(t *testing.T) {
	ctx := context.Background()
	api := &mocks.IngredientAPI{}
	toasts := &toastRecorder{}
	collector := ingredients.NewCollector(toasts)

	e := NewExtraction(api, collector, toasts, testutil.MakeNoopLogger())

	err := e.ExtractFromText(ctx, "   ")

	require.ErrorIs(t, err, model.ErrEmptyIngredients)
	assert.Equal(t, model.ToastWarning, toasts.last().kind)
	api.AssertNotCalled(t, "ExtractFromText", mock.Anything, mock.Anything)
}

func TestExtraction_MergesAndReportsNewCount(t *testing.T) {
	ctx := context.Background()
	api := &mocks.IngredientAPI{}
	api.On("ExtractFromText", mock.Anything, "tomato and basil").
		Return([]string{"Tomato", "Basil"}, nil)
	toasts := &toastRecorder{}
	collector := ingredients.NewCollector(toasts)
	collector.Merge([]string{"tomato"})

	e := NewExtraction(api, collector, toasts, testutil.MakeNoopLogger())

	require.NoError(t, e.ExtractFromText(ctx, "tomato and basil"))

	assert.Equal(t, []string{"tomato", "basil"}, collector.Items())
	last := toasts.last()
	assert.Equal(t, "Added 1 new ingredients!", last.message)
	assert.Equal(t, model.ToastSuccess, last.kind)
}

func TestExtraction_NothingDetected(t *testing.T) {
	ctx := context.Background()
	api := &mocks.IngredientAPI{}
	api.On("ExtractFromText", mock.Anything, mock.Anything).Return([]string{}, nil)
	toasts := &toastRecorder{}
	collector := ingredients.NewCollector(toasts)

	e := NewExtraction(api, collector, toasts, testutil.MakeNoopLogger())

	require.NoError(t, e.ExtractFromText(ctx, "nothing edible here"))

	assert.Empty(t, collector.Items())
	last := toasts.last()
	assert.Equal(t, "No ingredients detected", last.message)
	assert.Equal(t, model.ToastInfo, last.kind)
}

func TestExtraction_RemoteFailureSurfacesDetail(t *testing.T) {
	ctx := context.Background()
	api := &mocks.IngredientAPI{}
	api.On("ExtractFromText", mock.Anything, mock.Anything).
		Return(nil, &rest.Error{StatusCode: 503, Detail: "extraction unavailable"})
	toasts := &toastRecorder{}
	collector := ingredients.NewCollector(toasts)

	e := NewExtraction(api, collector, toasts, testutil.MakeNoopLogger())

	require.Error(t, e.ExtractFromText(ctx, "tomato"))

	assert.Empty(t, collector.Items())
	last := toasts.last()
	assert.Equal(t, "extraction unavailable", last.message)
	assert.Equal(t, model.ToastError, last.kind)
}
