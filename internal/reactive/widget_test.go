package reactive

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func TestConstantRunsOnceBeforeReturn(t *testing.T) {
	test.NewApp()
	scope := NewScope()

	runs := 0
	wrapped := Button(scope).Constant(func(b *widget.Button) {
		runs++
		b.SetText("once")
	})

	if runs != 1 {
		t.Fatalf("constant modifier ran %d times, want 1", runs)
	}
	if wrapped.Ref().Text != "once" {
		t.Errorf("button text = %q, want %q", wrapped.Ref().Text, "once")
	}
}

func TestConstantChains(t *testing.T) {
	test.NewApp()
	scope := NewScope()

	label := Label(scope).
		Constant(func(l *widget.Label) { l.SetText("first") }).
		Constant(func(l *widget.Label) { l.SetText(l.Text + ",second") }).
		Ref()

	if label.Text != "first,second" {
		t.Errorf("label text = %q, want %q", label.Text, "first,second")
	}
}

func TestReactiveRerunsOnSignalChange(t *testing.T) {
	test.NewApp()
	scope := NewScope()
	volume := NewSignal(scope, 50)

	label := Label(scope).Reactive(func(l *widget.Label) {
		l.SetText(fmt.Sprintf("Volume: %d%%", volume.Get()))
	}).Ref()

	if label.Text != "Volume: 50%" {
		t.Fatalf("initial text = %q, want %q", label.Text, "Volume: 50%")
	}

	volume.Set(55)
	if label.Text != "Volume: 55%" {
		t.Errorf("text after change = %q, want %q", label.Text, "Volume: 55%")
	}
}

func TestReactiveZeroRerunsWithoutChange(t *testing.T) {
	test.NewApp()
	scope := NewScope()
	volume := NewSignal(scope, 50)

	runs := 0
	Label(scope).Reactive(func(l *widget.Label) {
		volume.Get()
		runs++
	})

	if runs != 1 {
		t.Fatalf("reactive modifier ran %d times with no dependency change, want 1", runs)
	}
}

func TestRefExposesInnerWidget(t *testing.T) {
	test.NewApp()
	scope := NewScope()

	wrapped := Button(scope)
	if wrapped.Ref() != wrapped.inner {
		t.Fatal("Ref() did not return the wrapped widget")
	}
}

func TestBoxAppendsChildren(t *testing.T) {
	test.NewApp()
	scope := NewScope()

	box := Box(scope).Constant(func(c *fyne.Container) {
		c.Add(Button(scope).Ref())
		c.Add(Button(scope).Ref())
	}).Ref()

	if len(box.Objects) != 2 {
		t.Errorf("box has %d children, want 2", len(box.Objects))
	}
}

func TestWindowRequiresApplicationHandle(t *testing.T) {
	app := test.NewApp()
	scope := NewScope()

	window := Window(scope, app, "pipeweld").Constant(func(w fyne.Window) {
		w.SetContent(Label(scope).Ref())
	}).Ref()

	if window.Title() != "pipeweld" {
		t.Errorf("window title = %q, want %q", window.Title(), "pipeweld")
	}
	if window.Content() == nil {
		t.Error("window content not set")
	}
}
