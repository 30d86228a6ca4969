package haptics

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	mode, err := ParseMode(" Beep ")
	require.NoError(t, err)
	assert.Equal(t, ModeBeep, mode)

	_, err = ParseMode("vibrate")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

type counter struct {
	pulses int
}

func (c *counter) Pulse() {
	c.pulses++
}

func TestMultiFiresEveryPulser(t *testing.T) {
	first, second := &counter{}, &counter{}
	pulser := Multi{first, Nop{}, nil, second}
	pulser.Pulse()
	pulser.Pulse()

	assert.Equal(t, 2, first.pulses)
	assert.Equal(t, 2, second.pulses)
}

func TestNewTraceLogsNextToEffect(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buffer, nil))

	pulser, err := New(ModeOff, Options{Logger: logger, Trace: true})
	require.NoError(t, err)
	require.IsType(t, Multi{}, pulser)
	pulser.Pulse()
	assert.Equal(t, 1, strings.Count(buffer.String(), "msg=pulse"))

	// Log mode already records pulses, so tracing does not double them.
	buffer.Reset()
	pulser, err = New(ModeLog, Options{Logger: logger, Trace: true})
	require.NoError(t, err)
	assert.IsType(t, &Logger{}, pulser)
	pulser.Pulse()
	assert.Equal(t, 1, strings.Count(buffer.String(), "msg=pulse"))

	_, err = New(Mode("buzz"), Options{Trace: true})
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestLoggerPulser(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buffer, nil))

	NewLogger(logger).Pulse()
	assert.Contains(t, buffer.String(), "msg=pulse")
}

func TestNewNonAudioModes(t *testing.T) {
	pulser, err := New(ModeOff, Options{})
	require.NoError(t, err)
	assert.IsType(t, Nop{}, pulser)

	pulser, err = New(ModeLog, Options{})
	require.NoError(t, err)
	assert.IsType(t, &Logger{}, pulser)

	_, err = New(Mode("buzz"), Options{})
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestToneLengthAndEnvelope(t *testing.T) {
	rate := beep.SampleRate(1000)
	streamer := tone(rate, 100, 50*time.Millisecond)

	samples := make([][2]float64, 32)
	total := 0
	peak := 0.0
	for {
		n, ok := streamer.Stream(samples)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			assert.Equal(t, samples[i][0], samples[i][1])
			if v := samples[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
	}
	assert.Equal(t, 50, total)
	assert.LessOrEqual(t, peak, toneAmplitude)
	assert.Greater(t, peak, 0.0)
}

func TestSwitchForwardsToLatestPulser(t *testing.T) {
	first, second := &counter{}, &counter{}
	sw := NewSwitch(first)
	sw.Pulse()

	sw.Set(second)
	sw.Pulse()
	sw.Pulse()

	sw.Set(nil)
	sw.Pulse()

	assert.Equal(t, 1, first.pulses)
	assert.Equal(t, 2, second.pulses)

	var zero Switch
	assert.NotPanics(t, zero.Pulse)
}
