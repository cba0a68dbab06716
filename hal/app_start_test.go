package hal

import (
	"bytes"
	"errors"
	"testing"
)

func TestAppStarterBuildsOnFirstStep(t *testing.T) {
	h := newHostHAL(&bytes.Buffer{}, 4, 4, nil)
	builds, steps := 0, 0
	s := &appStarter{h: h, newApp: func(got HAL) (func() error, error) {
		builds++
		if got != HAL(h) {
			t.Fatalf("newApp got %v, want the runner's HAL", got)
		}
		return func() error { steps++; return nil }, nil
	}}

	if builds != 0 {
		t.Fatal("app built before the first step")
	}
	for i := 0; i < 3; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if builds != 1 || steps != 3 {
		t.Fatalf("builds = %d steps = %d, want 1 and 3", builds, steps)
	}
}

func TestAppStarterKeepsBuildError(t *testing.T) {
	boom := errors.New("no buffer")
	builds := 0
	s := &appStarter{h: newHostHAL(&bytes.Buffer{}, 1, 1, nil), newApp: func(HAL) (func() error, error) {
		builds++
		return nil, boom
	}}
	for i := 0; i < 2; i++ {
		if err := s.Step(); !errors.Is(err, boom) {
			t.Fatalf("Step() err = %v, want %v", err, boom)
		}
	}
	if builds != 1 {
		t.Fatalf("builds = %d, want 1", builds)
	}
	if !errors.Is(s.err, boom) {
		t.Fatalf("err = %v, want %v", s.err, boom)
	}
}
