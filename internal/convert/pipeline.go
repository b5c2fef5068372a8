package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/visform/jtbridge/internal/observability"
	"github.com/visform/jtbridge/internal/tools"
)

// Argument keys recognized by the convertAjtToJt command.
const (
	ArgToolPath = "ajt2jt"
	ArgSource   = "ajtSource"
)

const (
	sourceExt = ".ajt"
	targetExt = ".jt"
)

// Pipeline converts textual AJT geometry into binary JT by invoking the
// external converter executable. Each attempt owns a unique temp source and
// target path; concurrent attempts never contend.
type Pipeline struct {
	runner  tools.CommandRunner
	tempDir string
}

// NewPipeline builds a pipeline around runner. A nil runner means local
// execution; an empty tempDir means the OS temp dir.
func NewPipeline(runner tools.CommandRunner, tempDir string) *Pipeline {
	if runner == nil {
		runner = tools.ExecRunner{}
	}
	if strings.TrimSpace(tempDir) == "" {
		tempDir = os.TempDir()
	}
	return &Pipeline{runner: runner, tempDir: tempDir}
}

// Convert runs one conversion attempt. The returned error text is exactly
// the message the client sees in the response payload.
func (p *Pipeline) Convert(args map[string]string) ([]byte, error) {
	started := time.Now()
	out, err := p.convert(args)
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	observability.RecordConversion(outcome, time.Since(started))
	return out, err
}

func (p *Pipeline) convert(args map[string]string) ([]byte, error) {
	toolPath := strings.TrimSpace(args[ArgToolPath])
	if toolPath == "" || !isRegularFile(toolPath) {
		return nil, fmt.Errorf("Path '%s' to AJT to JT converter is not valid.", args[ArgToolPath])
	}
	source := args[ArgSource]
	if strings.TrimSpace(source) == "" {
		return nil, errors.New("No AJT data provided.")
	}

	job := newConversionJob(p.tempDir)
	defer job.cleanup()

	if err := os.WriteFile(job.sourcePath, []byte(source), 0o600); err != nil {
		return nil, err
	}

	res, runErr := p.runner.Run(toolPath, job.sourcePath, job.targetPath)

	// The converter signals failure by writing to stderr; its exit code is
	// not the source of truth.
	if msg := strings.TrimSpace(string(res.Stderr)); msg != "" {
		return nil, errors.New(msg)
	}
	if runErr != nil {
		return nil, runErr
	}

	return os.ReadFile(job.targetPath)
}

// conversionJob owns the ephemeral paths of one conversion attempt. The
// target path shares the source's base name with the JT extension.
type conversionJob struct {
	sourcePath string
	targetPath string
}

func newConversionJob(dir string) conversionJob {
	base := filepath.Join(dir, "ajt2jt-"+uuid.NewString())
	return conversionJob{
		sourcePath: base + sourceExt,
		targetPath: base + targetExt,
	}
}

// cleanup removes both temp paths. Removal errors never reach the caller
// and never change the attempt's outcome.
func (j conversionJob) cleanup() {
	for _, path := range []string{j.sourcePath, j.targetPath} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Debug().Str("path", path).Err(err).Msg("temp cleanup failed")
		}
	}
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
