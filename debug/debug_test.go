package debug

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("NBT_DEBUG_FILE", "1")
	t.Setenv("NBT_DEBUG_EDIT", "nope")
	t.Setenv("NBT_DEBUG_QUERY", "true")
	want := &debug{File: true, Query: true}
	if diff := cmp.Diff(want, fromEnv()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
