package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/asteriods/internal/draw"
	"github.com/tomz197/asteriods/internal/input"
	"github.com/tomz197/asteriods/internal/loop/config"
)

// ErrIdle is returned by RunTerminal when no key arrived within the idle timeout.
var ErrIdle = errors.New("session idle")

// TerminalOptions configures RunTerminal.
type TerminalOptions struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	IdleTimeout  time.Duration     // Zero disables the idle disconnect
}

// RunTerminal drives d on a character terminal with the Input → Update → Draw
// cycle until q/Escape is pressed, the input reaches EOF or ctx is cancelled.
// r delivers raw key bytes and w receives ANSI output; the terminal is
// expected to be in raw mode already.
func RunTerminal(ctx context.Context, r io.Reader, w io.Writer, d *Driver, opts TerminalOptions) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	canvas := draw.NewScaledCanvas(termWidth, termHeight, config.WorldWidth, config.WorldHeight)
	fitCanvas(canvas, termWidth, termHeight)

	stream := input.StartStream(r)
	defer stream.Stop()
	out := draw.NewChunkWriter(w)

	draw.HideCursor(out)
	draw.ClearScreen(out)
	defer func() {
		draw.ClearScreen(out)
		draw.ShowCursor(out)
		_ = out.Flush()
	}()

	lastTime := time.Now()
	lastInput := lastTime

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// ===== INPUT PHASE =====
		events := stream.Poll(frameStart)
		for _, ev := range events {
			if ev.IsExit() {
				return nil
			}
			d.HandleEvent(ev)
		}
		if stream.Closed() {
			return nil
		}
		if len(events) > 0 {
			lastInput = frameStart
		} else if opts.IdleTimeout > 0 && frameStart.Sub(lastInput) > opts.IdleTimeout {
			return ErrIdle
		}

		// ===== UPDATE PHASE =====
		d.Update(dt)

		// ===== DRAW PHASE =====
		if tw, th, err := sizeFunc(); err == nil {
			fitCanvas(canvas, tw, th)
		}
		draw.ClearScreen(out)
		d.Render(canvas)
		if err := canvas.RenderBorder(out); err != nil {
			return err
		}
		if err := canvas.Render(out); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TerminalTargetFrameTime {
			time.Sleep(config.TerminalTargetFrameTime - elapsed)
		}
	}
}

// fitCanvas clamps the canvas to the max render resolution and centers it.
func fitCanvas(c *draw.Canvas, termWidth, termHeight int) {
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(
		termWidth, termHeight, config.TerminalMaxColumns, config.TerminalMaxRows)
	c.Resize(renderWidth, renderHeight)
	c.SetOffset(offsetCol, offsetRow)
}
