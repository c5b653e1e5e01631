//go:build js && wasm

// package main provides the Wasm app.
package main

import (
	"context"
	"fmt"
	"html"
	"strings"
	"syscall/js"

	"github.com/theory/isotime/iso"
	"github.com/theory/isotime/iso/cal"
	"github.com/theory/isotime/iso/format"
	"github.com/theory/isotime/iso/ticks"
)

const (
	optLocalTZ int = 1 << iota
	optEpoch
)

func convert(_ js.Value, args []js.Value) any {
	text := args[0].String()
	layout := args[1].String()
	opts := args[2].Int()

	return execute(text, layout, opts)
}

func units(_ js.Value, args []js.Value) any {
	unitsSince := args[0].String()
	value := args[1].Float()
	layout := args[2].String()

	l, err := format.ParseLayout(layout)
	if err != nil {
		return fmt.Sprintf("Error %v", err)
	}
	sec, err := iso.UnitsToEpochSeconds(unitsSince, value)
	if err != nil {
		return fmt.Sprintf("Error %v", err)
	}
	str, err := iso.Format(sec, l)
	if err != nil {
		return fmt.Sprintf("Error %v", err)
	}
	return html.EscapeString(str)
}

func axis(_ js.Value, args []js.Value) any {
	start, err := iso.ToEpochSeconds(args[0].String())
	if err != nil {
		return fmt.Sprintf("Error parsing start: %v", err)
	}
	stop, err := iso.ToEpochSeconds(args[1].String())
	if err != nil {
		return fmt.Sprintf("Error parsing stop: %v", err)
	}
	l, err := format.ParseLayout(args[3].String())
	if err != nil {
		return fmt.Sprintf("Error %v", err)
	}

	ctx := context.Background()
	var b strings.Builder
	for _, sec := range ticks.Generate(ctx, start, stop, args[2].Int()) {
		b.WriteString(iso.SafeFormat(ctx, sec, l, "NaN"))
		b.WriteByte('\n')
	}
	return html.EscapeString(b.String())
}

func main() {
	stream := make(chan struct{})

	js.Global().Set("convert", js.FuncOf(convert))
	js.Global().Set("units", js.FuncOf(units))
	js.Global().Set("ticks", js.FuncOf(axis))
	js.Global().Set("layouts", js.ValueOf(strings.Join(format.LayoutNames(), ",")))
	js.Global().Set("optLocalTZ", js.ValueOf(optLocalTZ))
	js.Global().Set("optEpoch", js.ValueOf(optEpoch))

	<-stream
}

func execute(text, layout string, opts int) string {
	// Use local time zone if requested.
	zone := cal.Zulu
	if opts&optLocalTZ == optLocalTZ {
		zone = cal.Local
	}

	t, err := iso.ParseIn(text, zone)
	if err != nil {
		return fmt.Sprintf("Error parsing %v", err)
	}
	if opts&optEpoch == optEpoch {
		return fmt.Sprint(t.EpochSeconds())
	}

	l, err := format.ParseLayout(layout)
	if err != nil {
		return fmt.Sprintf("Error %v", err)
	}
	return html.EscapeString(t.Format(l))
}
