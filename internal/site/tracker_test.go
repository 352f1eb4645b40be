package site

import (
	"strings"
	"testing"

	"github.com/mckimdesign/archsite/internal/scroll"
)

// The browser tracker in script.js and scroll.Registry must pick the same
// element. Each case runs the Go rule and names the script line that
// implements the same decision.
func TestScriptTrackerMatchesRegistry(t *testing.T) {
	params := scroll.DefaultParams()
	script, err := buildScript(params)
	if err != nil {
		t.Fatalf("buildScript: %v", err)
	}
	js := string(script)

	// Trigger line at 300px for a 1000px tall viewport.
	phone := scroll.Viewport{Width: 390, Height: 1000}

	tests := []struct {
		name     string
		elements map[int]scroll.Rect
		order    []int
		vp       scroll.Viewport
		want     int
		wantOK   bool
		jsLines  []string
	}{
		{
			name: "equal distance goes to lowest ordinal",
			elements: map[int]scroll.Rect{
				5: {Top: 250, Bottom: 600},
				2: {Top: 350, Bottom: 700},
			},
			order:  []int{5, 2},
			vp:     phone,
			want:   2,
			wantOK: true,
			jsLines: []string{
				`Object.keys(registry).map(Number).sort(function (a, b) { return a - b; })`,
				`if (best === null || dist < bestDist) {`,
			},
		},
		{
			name: "distance equal to threshold is not active",
			elements: map[int]scroll.Rect{
				1: {Top: 300 + params.Threshold, Bottom: 900},
			},
			order:   []int{1},
			vp:      phone,
			wantOK:  false,
			jsLines: []string{`if (dist >= params.threshold) return;`},
		},
		{
			name: "closest within threshold wins",
			elements: map[int]scroll.Rect{
				1: {Top: 180, Bottom: 500},
				2: {Top: 320, Bottom: 700},
			},
			order:   []int{1, 2},
			vp:      phone,
			want:    2,
			wantOK:  true,
			jsLines: []string{`var dist = Math.abs(r.top - trigger);`, `var trigger = height * params.triggerFraction;`},
		},
		{
			name: "viewport at breakpoint is evaluated",
			elements: map[int]scroll.Rect{
				1: {Top: 300, Bottom: 600},
			},
			order:   []int{1},
			vp:      scroll.Viewport{Width: params.Breakpoint, Height: 1000},
			want:    1,
			wantOK:  true,
			jsLines: []string{`if (width > params.breakpoint) return;`},
		},
		{
			name: "wider viewport is not evaluated",
			elements: map[int]scroll.Rect{
				1: {Top: 300, Bottom: 600},
			},
			order:   []int{1},
			vp:      scroll.Viewport{Width: params.Breakpoint + 1, Height: 1000},
			wantOK:  false,
			jsLines: []string{`if (width > params.breakpoint) return;`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := scroll.New(
				scroll.WithBreakpoint(params.Breakpoint),
				scroll.WithTriggerFraction(params.TriggerFraction),
				scroll.WithThreshold(params.Threshold),
			)
			for _, idx := range tt.order {
				reg.Register(idx, tt.elements[idx])
			}
			got, ok := reg.Recompute(tt.vp)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Recompute() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
			for _, line := range tt.jsLines {
				if !strings.Contains(js, line) {
					t.Errorf("script.js is missing %q", line)
				}
			}
		})
	}

	if !strings.Contains(js, `if (!(r.bottom > 0 && r.top < height)) return;`) {
		t.Error("script.js visibility check differs from the registry's")
	}
}
