package scroll

import (
	"sync"
	"testing"
)

// phone is a typical mobile viewport: trigger line at 240px.
var phone = Viewport{Width: 390, Height: 800}

func TestIdleUntilRegistered(t *testing.T) {
	r := New()
	if r.State() != Idle {
		t.Errorf("new registry state = %v", r.State())
	}
	if _, ok := r.Recompute(phone); ok {
		t.Error("empty registry should have no active element")
	}
	r.Register(1, Rect{Top: 240, Bottom: 400})
	if r.State() != Tracking {
		t.Errorf("state = %v, want tracking", r.State())
	}
	r.Unregister(1)
	if r.State() != Idle {
		t.Errorf("state = %v, want idle after last unregister", r.State())
	}
	if _, ok := r.Active(); ok {
		t.Error("idle registry must have null active index")
	}
}

func TestRegisterNilIgnored(t *testing.T) {
	r := New()
	r.Register(1, nil)
	if r.Len() != 0 {
		t.Errorf("Len = %d after nil register", r.Len())
	}
}

func TestRecomputeSelectsClosestToTrigger(t *testing.T) {
	r := New()
	// Five stacked tiles scrolled so that tile 3 is nearest the 240px line.
	tops := map[int]float64{1: -500, 2: -120, 3: 230, 4: 580, 5: 930}
	for idx, top := range tops {
		r.Register(idx, Rect{Top: top, Bottom: top + 340})
	}

	idx, ok := r.Recompute(phone)
	if !ok || idx != 3 {
		t.Fatalf("active = %d,%v want 3", idx, ok)
	}

	// Scroll down 300px: tile 4's top moves to 280, 40px from the line,
	// and tile 3's top to -70, 310px away.
	for idx, top := range tops {
		r.Register(idx, Rect{Top: top - 300, Bottom: top - 300 + 340})
	}
	idx, ok = r.Recompute(phone)
	if !ok || idx != 4 {
		t.Fatalf("after scroll active = %d,%v want 4", idx, ok)
	}
}

func TestRecomputeNullWhenNothingWithinThreshold(t *testing.T) {
	r := New()
	for i := 1; i <= 5; i++ {
		top := 400 + float64(i)*200 // nearest top is 600, 360px from the line
		r.Register(i, Rect{Top: top, Bottom: top + 180})
	}
	if idx, ok := r.Recompute(phone); ok {
		t.Errorf("expected null active, got %d", idx)
	}
}

func TestRecomputeThresholdIsStrict(t *testing.T) {
	r := New()
	r.Register(1, Rect{Top: 240 + DefaultThreshold, Bottom: 600})
	if _, ok := r.Recompute(phone); ok {
		t.Error("an element exactly at the threshold must not qualify")
	}
	r.Register(1, Rect{Top: 240 + DefaultThreshold - 1, Bottom: 600})
	if _, ok := r.Recompute(phone); !ok {
		t.Error("an element just inside the threshold should qualify")
	}
}

func TestRecomputeIgnoresInvisible(t *testing.T) {
	r := New()
	// Within the threshold numerically but scrolled fully above the viewport.
	r.Register(1, Rect{Top: -100, Bottom: 0})
	// Visible and within the threshold, but further than element 1.
	r.Register(2, Rect{Top: 350, Bottom: 500})
	idx, ok := r.Recompute(Viewport{Width: 390, Height: 200})
	// Element 1 ends at the top edge and element 2 starts below the viewport.
	if ok {
		t.Errorf("expected null active, got %d", idx)
	}

	idx, ok = r.Recompute(Viewport{Width: 390, Height: 1000})
	if !ok || idx != 2 {
		t.Errorf("active = %d,%v want 2", idx, ok)
	}
}

func TestUnregisteredNeverSelected(t *testing.T) {
	r := New()
	r.Register(1, Rect{Top: 240, Bottom: 500})
	r.Register(2, Rect{Top: 300, Bottom: 560})
	if idx, _ := r.Recompute(phone); idx != 1 {
		t.Fatalf("active = %d, want 1", idx)
	}

	r.Unregister(1)
	if _, ok := r.Active(); ok {
		t.Error("unregistering the active element should clear it")
	}
	idx, ok := r.Recompute(phone)
	if !ok || idx != 2 {
		t.Errorf("active = %d,%v want 2", idx, ok)
	}

	r.Unregister(2)
	if _, ok := r.Recompute(phone); ok {
		t.Error("no element should be selected after all are unregistered")
	}
}

func TestTieBreakLowestOrdinal(t *testing.T) {
	for attempt := 0; attempt < 20; attempt++ {
		r := New()
		// Same distance above and below the line; registration order varies.
		r.Register(7, Rect{Top: 290, Bottom: 400})
		r.Register(2, Rect{Top: 190, Bottom: 400})
		r.Register(5, Rect{Top: 290, Bottom: 400})
		if idx, _ := r.Recompute(phone); idx != 2 {
			t.Fatalf("tie resolved to %d, want 2", idx)
		}
		r.Unregister(2)
		r.Register(2, Rect{Top: 190, Bottom: 400})
		if idx, _ := r.Recompute(phone); idx != 2 {
			t.Fatalf("tie after re-registration resolved to %d, want 2", idx)
		}
	}
}

func TestDesktopViewportLeavesActiveUntouched(t *testing.T) {
	r := New()
	r.Register(1, Rect{Top: 240, Bottom: 500})
	r.Recompute(phone)

	r.Register(1, Rect{Top: 2000, Bottom: 2200})
	idx, ok := r.Recompute(Viewport{Width: 1440, Height: 900})
	if !ok || idx != 1 {
		t.Errorf("desktop recompute changed active to %d,%v", idx, ok)
	}

	// The breakpoint itself is still evaluated.
	idx, ok = r.Recompute(Viewport{Width: DefaultBreakpoint, Height: 900})
	if ok {
		t.Errorf("expected re-evaluation at the breakpoint, still active %d", idx)
	}
}

func TestSubscribersNotifiedOnlyOnChange(t *testing.T) {
	r := New()
	var got []int
	cancel := r.Subscribe(func(idx int, ok bool) {
		if !ok {
			idx = 0
		}
		got = append(got, idx)
	})

	r.Register(1, Rect{Top: 240, Bottom: 500})
	r.Register(2, Rect{Top: 700, Bottom: 900})
	r.Recompute(phone) // -> 1
	r.Recompute(phone) // unchanged

	r.Register(1, Rect{Top: -400, Bottom: -100})
	r.Register(2, Rect{Top: 250, Bottom: 450})
	r.Recompute(phone) // -> 2

	r.Register(2, Rect{Top: 900, Bottom: 1100})
	r.Recompute(phone) // -> null
	r.Recompute(phone) // unchanged

	want := []int{1, 2, 0}
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d = %d, want %d", i, got[i], want[i])
		}
	}

	cancel()
	cancel()
	r.Register(1, Rect{Top: 240, Bottom: 500})
	r.Recompute(phone)
	if len(got) != len(want) {
		t.Errorf("cancelled subscriber was notified: %v", got)
	}
}

func TestListenerMayReenter(t *testing.T) {
	r := New()
	r.Register(1, Rect{Top: 240, Bottom: 500})
	var seen int
	r.Subscribe(func(idx int, ok bool) {
		seen, _ = r.Active()
		_ = r.Len()
	})
	r.Recompute(phone)
	if seen != 1 {
		t.Errorf("listener saw active %d", seen)
	}
}

func TestElementFuncReadsLiveLayout(t *testing.T) {
	r := New()
	top := 1000.0
	r.Register(1, ElementFunc(func() Rect { return Rect{Top: top, Bottom: top + 200} }))
	if _, ok := r.Recompute(phone); ok {
		t.Fatal("element should start out of range")
	}
	top = 250
	if idx, ok := r.Recompute(phone); !ok || idx != 1 {
		t.Errorf("active = %d,%v want 1", idx, ok)
	}
}

func TestOptions(t *testing.T) {
	r := New(WithBreakpoint(768), WithTriggerFraction(0.5), WithThreshold(50))
	p := r.Params()
	if p.Breakpoint != 768 || p.TriggerFraction != 0.5 || p.Threshold != 50 {
		t.Fatalf("params = %+v", p)
	}
	r.Register(1, Rect{Top: 420, Bottom: 600})
	if _, ok := r.Recompute(Viewport{Width: 390, Height: 800}); !ok {
		t.Error("element 20px from a 400px line should be active")
	}
	if _, ok := r.Recompute(Viewport{Width: 800, Height: 800}); !ok {
		t.Error("viewport above custom breakpoint should leave active untouched")
	}
}

func TestConcurrentUse(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				idx := w*100 + i
				r.Register(idx, Rect{Top: float64(i), Bottom: float64(i) + 100})
				r.Recompute(phone)
				r.Unregister(idx)
			}
		}(w)
	}
	wg.Wait()
	if r.Len() != 0 {
		t.Errorf("Len = %d after concurrent churn", r.Len())
	}
}
