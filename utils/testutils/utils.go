package testutils

import (
	"bytes"
	"log"
	"reflect"
	"testing"

	"github.com/retainedui/cascade/logger"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// CaptureLogs redirects the warning logger to an internal buffer,
// and restores it when the returned function is called.
func CaptureLogs() (logs *bytes.Buffer, restore func()) {
	logs = new(bytes.Buffer)
	prevOut := logger.WarningLogger.Writer()
	prevFlags := logger.WarningLogger.Flags()
	logger.WarningLogger.SetOutput(logs)
	logger.WarningLogger.SetFlags(log.Lmsgprefix)
	return logs, func() {
		logger.WarningLogger.SetOutput(prevOut)
		logger.WarningLogger.SetFlags(prevFlags)
	}
}
