package common

import (
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLogProgressSteps(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	log.SetLevel(log.DebugLevel)

	progress := LogProgress("test")
	for i := 1; i <= 1000; i++ {
		progress(i, 1000)
	}

	// 5% buckets: 0%..100% can fire at most 21 times
	require.NotEmpty(t, hook.Entries)
	require.LessOrEqual(t, len(hook.Entries), 21)
}

func TestLogProgressZeroTotal(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	progress := LogProgress("test")
	progress(1, 0)

	require.Empty(t, hook.Entries)
}

func TestNopProgress(t *testing.T) {
	// must be safe for any arguments
	NopProgress(0, 0)
	NopProgress(-1, 10)
	NopProgress(5, 5)
}
