package fold

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/furl/buffer"
)

func TestKeyMapFor_Platforms(t *testing.T) {
	mac := KeyMapFor("darwin")
	assert.Equal(t, []string{"alt+["}, mac.Fold.Keys())
	assert.Equal(t, []string{"alt+]"}, mac.Unfold.Keys())
	assert.Equal(t, []string{"alt+{"}, mac.FoldAll.Keys())
	assert.Equal(t, []string{"alt+}"}, mac.UnfoldAll.Keys())

	linux := KeyMapFor("linux")
	assert.Equal(t, []string{"ctrl+shift+[", "alt+["}, linux.Fold.Keys())
	assert.Equal(t, []string{"ctrl+alt+]", "alt+}"}, linux.UnfoldAll.Keys())
	assert.Equal(t, linux.Fold.Keys(), KeyMapFor("windows").Fold.Keys())
}

func TestKeyMap_BindingsRunCommands(t *testing.T) {
	km := KeyMapFor("linux")
	bindings := km.Bindings()
	require.Len(t, bindings, 5)

	want := []Command{FoldCode, UnfoldCode, FoldAll, UnfoldAll, ToggleFold}
	for i, b := range bindings {
		assert.Equal(t, reflect.ValueOf(want[i]).Pointer(), reflect.ValueOf(b.Run).Pointer(), "binding %d", i)
		assert.True(t, b.Key.Enabled())
	}

	h := braceHost(t, false, buffer.Cursor(0))
	require.True(t, bindings[2].Run(h))
	assert.Equal(t, []Range{outerA, outerB}, h.folds())
	require.True(t, bindings[3].Run(h))
	assert.Empty(t, h.folds())
}

func TestKeyMap_Help(t *testing.T) {
	km := KeyMapFor("darwin")
	assert.Len(t, km.ShortHelp(), 2)

	full := km.FullHelp()
	require.Len(t, full, 2)
	assert.Equal(t, "toggle fold", full[0][2].Help().Desc)
}
