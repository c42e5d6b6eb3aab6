package donation

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// auditFile is the append-only, human-readable trail of one university's
// settlement run. One line per event; the engine never reads it back.
type auditFile struct {
	f *os.File
}

func openAuditFile(dir string, universityID int, runID string) (*auditFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create audit dir: %w", err)
	}
	name := filepath.Join(dir, fmt.Sprintf("donation_univ%d_%s.log", universityID, runID))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("can't open audit file: %w", err)
	}
	return &auditFile{f: f}, nil
}

func (a *auditFile) Line(format string, args ...any) {
	if a == nil || a.f == nil {
		return
	}
	line := fmt.Sprintf("%s %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
	if _, err := a.f.WriteString(line); err != nil {
		zap.L().Warn("can't write audit line", zap.Error(err))
	}
}

func (a *auditFile) Close() {
	if a == nil || a.f == nil {
		return
	}
	if err := a.f.Close(); err != nil {
		zap.L().Warn("can't close audit file", zap.Error(err))
	}
}
