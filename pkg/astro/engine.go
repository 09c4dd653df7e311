package astro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// ChartEngine computes a natal chart from birth details.
type ChartEngine interface {
	Generate(ctx context.Context, dateOfBirth, birthTime, birthLocation string) (*ChartResult, error)
}

// ScriptEngine runs the external ephemeris script as a subprocess. The script
// receives (date, time, location) as arguments and prints the chart as JSON on
// stdout; a non-zero exit with stderr text is an engine failure.
type ScriptEngine struct {
	Interpreter string
	ScriptPath  string
	Timeout     time.Duration

	cache *cache.Cache
}

var _ ChartEngine = &ScriptEngine{}

func NewScriptEngine(interpreter, scriptPath string, timeout time.Duration) *ScriptEngine {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	// Identical birth details always produce the identical chart, so results are
	// memoized to spare repeated subprocess runs.
	c := cache.New(12*time.Hour, 30*time.Minute)
	return &ScriptEngine{
		Interpreter: interpreter,
		ScriptPath:  scriptPath,
		Timeout:     timeout,
		cache:       c,
	}
}

func (e *ScriptEngine) Generate(ctx context.Context, dateOfBirth, birthTime, birthLocation string) (*ChartResult, error) {
	key := cacheKey(dateOfBirth, birthTime, birthLocation)
	if x, found := e.cache.Get(key); found {
		return x.(*ChartResult), nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.Interpreter, buildArgs(e.ScriptPath, dateOfBirth, birthTime, birthLocation)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("chart engine timed out after %s", e.Timeout)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("chart engine failed: %s", msg)
	}

	result, err := parseChartOutput(stdout.Bytes())
	if err != nil {
		return nil, err
	}

	e.cache.Set(key, result, cache.DefaultExpiration)
	return result, nil
}

func buildArgs(scriptPath, dateOfBirth, birthTime, birthLocation string) []string {
	return []string{scriptPath, dateOfBirth, birthTime, birthLocation}
}

func parseChartOutput(out []byte) (*ChartResult, error) {
	var result ChartResult
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("parse chart data: %w", err)
	}
	return &result, nil
}

func cacheKey(dateOfBirth, birthTime, birthLocation string) string {
	return dateOfBirth + "|" + birthTime + "|" + birthLocation
}
