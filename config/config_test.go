package config

import (
	"os"
	"path/filepath"
	"testing"

	"procinfo/process"
	"procinfo/report"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.IntP("pid", "p", UnsetPID, "")
	fs.StringP("name", "n", "", "")
	fs.String("proc-root", report.DefaultRoot, "")
	fs.String("backend", "procfs", "")
	fs.Int("report-limit", 0, "")
	fs.BoolP("verbose", "v", false, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procinfo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: sshd\nproc_root: /host/proc\nbackend: gopsutil\nreport_limit: 2048\n"), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "sshd", cfg.Name)
	assert.Equal(t, UnsetPID, cfg.PID)
	assert.Equal(t, "/host/proc", cfg.ProcRoot)
	assert.Equal(t, "gopsutil", cfg.Backend)
	assert.Equal(t, 2048, cfg.ReportLimit)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("PROCINFO_PID", "42")
	t.Setenv("PROCINFO_PROC_ROOT", "/tmp/proc")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.PID)
	assert.True(t, cfg.PIDSet)
	assert.Equal(t, "/tmp/proc", cfg.ProcRoot)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procinfo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: gopsutil\nverbose: false\n"), 0o600))

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--pid", "1", "--backend", "procfs", "-v"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.PID)
	assert.True(t, cfg.PIDSet)
	assert.Equal(t, "procfs", cfg.Backend)
	assert.True(t, cfg.Verbose)
}

func TestLoadUnsetFlagsKeepFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procinfo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: cron\n"), 0o600))

	fs := newFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "cron", cfg.Name)
	assert.Equal(t, UnsetPID, cfg.PID)
	assert.False(t, cfg.PIDSet)
}

func TestLoadExplicitNegativePID(t *testing.T) {
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--pid", "-1"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.True(t, cfg.PIDSet)

	_, err = cfg.Selector()
	assert.ErrorIs(t, err, process.ErrInvalidSelector)
}

func TestLoadPIDFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procinfo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pid: 0\n"), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.PIDSet)
	assert.Equal(t, 0, cfg.PID)
}

func TestSelector(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
		want    string
	}{
		{name: "pid", cfg: Config{PID: 1, PIDSet: true}, want: "pid=1"},
		{name: "pid zero", cfg: Config{PID: 0, PIDSet: true}, want: "pid=0"},
		{name: "name", cfg: Config{PID: UnsetPID, Name: "init"}, want: "name=init"},
		{name: "both", cfg: Config{PID: 1, PIDSet: true, Name: "init"}, wantErr: ErrSelectorConflict},
		{name: "neither", cfg: Config{PID: UnsetPID}, wantErr: ErrSelectorMissing},
		{name: "negative pid", cfg: Config{PID: -5, PIDSet: true}, wantErr: process.ErrInvalidSelector},
		{name: "typed unset sentinel", cfg: Config{PID: UnsetPID, PIDSet: true}, wantErr: process.ErrInvalidSelector},
		{name: "long name", cfg: Config{PID: UnsetPID, Name: "a-very-long-process-name"}, wantErr: process.ErrInvalidSelector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := tt.cfg.Selector()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.String())
		})
	}
}
