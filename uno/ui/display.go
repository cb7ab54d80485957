package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/ratel-online/uno/uno/card/color"
)

// Printer writes lines to out, pausing after each one when delay is set.
type Printer struct {
	out   io.Writer
	delay time.Duration
}

func NewPrinter(out io.Writer, delay time.Duration) *Printer {
	if out == nil {
		out = color.Stdout
	}
	return &Printer{out: out, delay: delay}
}

func (p *Printer) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
	p.pause()
}

// Print writes text as is; messages from package msg already end in a newline.
func (p *Printer) Print(text string) {
	fmt.Fprint(p.out, text)
	p.pause()
}

func (p *Printer) pause() {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
}
