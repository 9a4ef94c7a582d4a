package infrastructure_test

import (
	"errors"
	"testing"

	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zaptest"

	"github.com/louiepolk/go-discord-catechism/pkg/infrastructure"
)

func TestNewFxLoggerAdapter(t *testing.T) {
	logger := zaptest.NewLogger(t)

	adapter := infrastructure.NewFxLoggerAdapter(logger)

	// Verify it implements the correct interface
	var _ fxevent.Logger = adapter

	if adapter == nil {
		t.Fatal("NewFxLoggerAdapter returned nil")
	}
}

func TestFxLoggerAdapter_LogEvent(t *testing.T) {
	logger := zaptest.NewLogger(t)
	adapter := infrastructure.NewFxLoggerAdapter(logger)

	// Test various event types to ensure no panics
	events := []fxevent.Event{
		&fxevent.OnStartExecuting{
			FunctionName: "testFunc",
			CallerName:   "testCaller",
		},
		&fxevent.OnStartExecuted{
			FunctionName: "testFunc",
			CallerName:   "testCaller",
			Err:          nil,
		},
		&fxevent.OnStopExecuted{
			FunctionName: "testFunc",
			CallerName:   "testCaller",
			Err:          errors.New("stop failed"),
		},
		&fxevent.Provided{
			OutputTypeNames: []string{"*zap.Logger"},
		},
		&fxevent.Invoking{
			FunctionName: "testFunc",
		},
		&fxevent.Started{
			Err: nil,
		},
		&fxevent.Stopped{
			Err: errors.New("shutdown error"),
		},
	}

	// Should not panic
	for _, event := range events {
		adapter.LogEvent(event)
	}
}
