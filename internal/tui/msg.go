package tui

import "github.com/runoshun/pkgcheck/internal/domain"

// Msg is the sealed interface for all progress view messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgStepStarted is sent when a step starts.
type MsgStepStarted struct {
	Index int
}

func (MsgStepStarted) sealed() {}

// MsgStepFinished is sent when a step ends.
type MsgStepFinished struct {
	Result domain.StepResult
	Index  int
}

func (MsgStepFinished) sealed() {}

// MsgRunDone is sent when the rule returns.
type MsgRunDone struct {
	Err    error
	Report *domain.RunReport
}

func (MsgRunDone) sealed() {}
