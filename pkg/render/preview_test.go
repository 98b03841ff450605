package render

import (
	"strings"
	"testing"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

func TestPreview(t *testing.T) {
	c := NewCanvas(4, 3)
	c.PutPixel(math3d.RGB(1, 0, 0), 0, 0)
	c.PutPixel(math3d.RGB(0, 0, 1), 0, 1)

	out := Preview(c)
	if got := strings.Count(out, halfBlock); got != 8 {
		t.Errorf("expected 8 half blocks (4 columns x 2 lines), got %d", got)
	}
}
