package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jgberry/ruff/internal/driver"
	"github.com/jgberry/ruff/internal/pipeline"
	"github.com/jgberry/ruff/internal/ui"
)

type formatOutcome struct {
	results []driver.Result
	err     error
}

// runFormatWithUI runs the formatting pipeline in the background while
// a Bubble Tea program consumes its progress events.
func runFormatWithUI(ctx context.Context, paths []string, opts driver.Options) ([]driver.Result, error) {
	files, err := driver.ListFiles(ctx, paths, opts)
	if err != nil {
		return nil, err
	}

	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = pipeline.ChannelSink{Ch: events}
		results, err := driver.FormatPaths(ctx, paths, optsCopy)
		outcomeCh <- formatOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("formatting", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
