package ingredients

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savorly/savorly-client/internal/model"
)

type toastRecorder struct {
	mu      sync.Mutex
	entries []recordedToast
}

type recordedToast struct {
	message string
	kind    model.ToastKind
}

func (r *toastRecorder) Notify(message string, kind model.ToastKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, recordedToast{message: message, kind: kind})
}

func TestCollector_Merge_CanonicalizesAndDeduplicates(t *testing.T) {
	c := NewCollector(&toastRecorder{})

	added := c.Merge([]string{"Tomato", " tomato "})

	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"tomato"}, c.Items())
}

func TestCollector_Merge_PreservesOrderAndAppendsNew(t *testing.T) {
	c := NewCollector(&toastRecorder{})

	c.Merge([]string{"onion", "garlic"})
	added := c.Merge([]string{"Garlic", "chicken", "ONION", "rice"})

	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"onion", "garlic", "chicken", "rice"}, c.Items())
}

func TestCollector_Merge_SkipsEmptyStrings(t *testing.T) {
	c := NewCollector(&toastRecorder{})

	added := c.Merge([]string{"  ", "", "egg"})

	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"egg"}, c.Items())
}

func TestCollector_AddOne_Duplicate(t *testing.T) {
	toasts := &toastRecorder{}
	c := NewCollector(toasts)

	require.NoError(t, c.AddOne("Egg"))
	err := c.AddOne(" egg ")

	require.ErrorIs(t, err, model.ErrDuplicateIngredient)
	assert.Equal(t, []string{"egg"}, c.Items())
	require.Len(t, toasts.entries, 1)
	assert.Equal(t, model.ToastWarning, toasts.entries[0].kind)
}

func TestCollector_RemoveAt_OutOfBounds(t *testing.T) {
	c := NewCollector(&toastRecorder{})
	c.Merge([]string{"egg"})

	c.RemoveAt(-1)
	c.RemoveAt(5)

	assert.Equal(t, []string{"egg"}, c.Items())
}

func TestCollector_RemoveAt(t *testing.T) {
	c := NewCollector(&toastRecorder{})
	c.Merge([]string{"egg", "milk", "flour"})

	c.RemoveAt(1)

	assert.Equal(t, []string{"egg", "flour"}, c.Items())
}

func TestCollector_Reset(t *testing.T) {
	c := NewCollector(&toastRecorder{})
	c.Merge([]string{"egg", "milk"})

	c.Reset()

	assert.Empty(t, c.Items())
	assert.Zero(t, c.Len())
}

func TestCollector_NoCanonicalDuplicatesEver(t *testing.T) {
	c := NewCollector(&toastRecorder{})

	c.Merge([]string{"Tomato", "ONION", "basil "})
	_ = c.AddOne("tomato")
	c.RemoveAt(1)
	c.Merge([]string{"onion", "Basil", "salt"})
	_ = c.AddOne(" Salt")

	seen := map[string]bool{}
	for _, item := range c.Items() {
		require.False(t, seen[item], "duplicate entry %q", item)
		seen[item] = true
	}
}
