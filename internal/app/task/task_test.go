package task

import (
	"context"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	c := &Command[int]{Name: "count", Generation: 4, Run: func(ctx context.Context) int { return 7 }}

	m := Map(c, strconv.Itoa)
	if m.Name != "count" || m.Generation != 4 {
		t.Errorf("Map() lost metadata: %+v", m)
	}
	if got := m.Run(context.Background()); got != "7" {
		t.Errorf("Run() = %q, want 7", got)
	}
}

func TestMapNil(t *testing.T) {
	if got := Map[int, string](nil, strconv.Itoa); got != nil {
		t.Errorf("Map(nil) = %+v, want nil", got)
	}
}
