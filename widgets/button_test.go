package widgets

import (
	"errors"
	"testing"

	rx "github.com/emiliancristea/RX-Framework"
)

func newTestButton() (*Button, *int) {
	clicks := 0
	b := NewButton(1, "OK").
		WithBounds(rx.NewRect(10, 10, 80, 30)).
		WithOnClick(func() error {
			clicks++
			return nil
		})
	return b, &clicks
}

func TestButtonClick(t *testing.T) {
	b, clicks := newTestButton()

	consumed, err := b.HandleEvent(pressAt(20, 20))
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	if !consumed || !b.IsPressed() {
		t.Errorf("after press: consumed = %v, pressed = %v, want true, true", consumed, b.IsPressed())
	}

	consumed, err = b.HandleEvent(releaseAt(25, 25))
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if !consumed {
		t.Error("expected the release to be consumed")
	}
	if *clicks != 1 {
		t.Errorf("clicks = %d, want 1", *clicks)
	}
	if b.IsPressed() {
		t.Error("expected pressed to reset after release")
	}
}

func TestButtonReleaseOutsideDoesNotFire(t *testing.T) {
	b, clicks := newTestButton()

	if _, err := b.HandleEvent(pressAt(20, 20)); err != nil {
		t.Fatalf("press: %v", err)
	}
	consumed, err := b.HandleEvent(releaseAt(200, 200))
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
	// The release still resets and consumes even outside the bounds.
	if !consumed || b.IsPressed() {
		t.Errorf("after outside release: consumed = %v, pressed = %v, want true, false", consumed, b.IsPressed())
	}
}

func TestButtonPressOutsideIgnored(t *testing.T) {
	b, clicks := newTestButton()

	consumed, err := b.HandleEvent(pressAt(200, 200))
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	if consumed || b.IsPressed() {
		t.Errorf("outside press: consumed = %v, pressed = %v, want false, false", consumed, b.IsPressed())
	}

	// A release with no prior press inside must not fire.
	if _, err := b.HandleEvent(releaseAt(20, 20)); err != nil {
		t.Fatalf("release: %v", err)
	}
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
}

func TestButtonHoverConsumesOnChange(t *testing.T) {
	b, _ := newTestButton()

	tests := []struct {
		name         string
		x, y         float64
		wantConsumed bool
		wantHovered  bool
	}{
		{"enter", 20, 20, true, true},
		{"stay inside", 30, 20, false, true},
		{"leave", 200, 200, true, false},
		{"stay outside", 210, 210, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumed, err := b.HandleEvent(moveTo(tt.x, tt.y))
			if err != nil {
				t.Fatalf("move: %v", err)
			}
			if consumed != tt.wantConsumed || b.IsHovered() != tt.wantHovered {
				t.Errorf("consumed = %v, hovered = %v, want %v, %v",
					consumed, b.IsHovered(), tt.wantConsumed, tt.wantHovered)
			}
		})
	}
}

func TestButtonDisabled(t *testing.T) {
	b, clicks := newTestButton()
	b.SetEnabled(false)

	consumed, err := b.HandleEvent(pressAt(20, 20))
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	if consumed || b.IsPressed() {
		t.Error("disabled button must ignore presses")
	}
	if _, err := b.HandleEvent(releaseAt(20, 20)); err != nil {
		t.Fatalf("release: %v", err)
	}
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
}

func TestButtonClickErrorPropagates(t *testing.T) {
	wantErr := errors.New("action failed")
	b := NewButton(1, "OK").
		WithBounds(rx.NewRect(10, 10, 80, 30)).
		WithOnClick(func() error { return wantErr })

	if _, err := b.HandleEvent(pressAt(20, 20)); err != nil {
		t.Fatalf("press: %v", err)
	}
	consumed, err := b.HandleEvent(releaseAt(20, 20))
	if !errors.Is(err, wantErr) {
		t.Fatalf("release error = %v, want %v", err, wantErr)
	}
	if consumed {
		t.Error("expected consumed = false when the click handler fails")
	}
}

func TestButtonMouseLeftClearsState(t *testing.T) {
	b, _ := newTestButton()

	if _, err := b.HandleEvent(moveTo(20, 20)); err != nil {
		t.Fatal(err)
	}
	if _, err := b.HandleEvent(pressAt(20, 20)); err != nil {
		t.Fatal(err)
	}

	consumed, err := b.HandleEvent(rx.MouseLeftEvent{Window: 1})
	if err != nil {
		t.Fatalf("mouse left: %v", err)
	}
	if consumed {
		t.Error("leaving the window must not be consumed")
	}
	if b.IsHovered() || b.IsPressed() {
		t.Errorf("hovered = %v, pressed = %v after leaving the window, want false, false",
			b.IsHovered(), b.IsPressed())
	}
}

func TestButtonStateBackground(t *testing.T) {
	b, _ := newTestButton()
	normal, hover, pressed, disabled := rx.Red, rx.Green, rx.Blue, rx.Gray
	b.SetColors(normal, hover, pressed, disabled)

	if got := b.currentBackground(); got != normal {
		t.Errorf("normal background = %v, want %v", got, normal)
	}
	b.hovered = true
	if got := b.currentBackground(); got != hover {
		t.Errorf("hover background = %v, want %v", got, hover)
	}
	b.pressed = true
	if got := b.currentBackground(); got != pressed {
		t.Errorf("pressed background = %v, want %v", got, pressed)
	}
	b.SetEnabled(false)
	if got := b.currentBackground(); got != disabled {
		t.Errorf("disabled background = %v, want %v", got, disabled)
	}
}

func TestButtonPreferredSize(t *testing.T) {
	b := NewButton(1, "OK")
	size := b.PreferredSize()
	if !approx(size.Width, 2*8+20) || !approx(size.Height, 26) {
		t.Errorf("PreferredSize() = %v, want 36x26", size)
	}
}
