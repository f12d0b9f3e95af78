package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Open-MSS/mscolab-provision/config"
	"github.com/Open-MSS/mscolab-provision/internal/app"
	"github.com/Open-MSS/mscolab-provision/internal/domain"
	"github.com/Open-MSS/mscolab-provision/pkg/logger"
)

// fakeApp records which mode ran and returns a canned error
type fakeApp struct {
	cfg     *config.Config
	err     error
	ranTest bool
	ranInit bool
}

func (f *fakeApp) Initialize() error { return nil }

func (f *fakeApp) RunTest(ctx context.Context) error {
	f.ranTest = true
	return f.err
}

func (f *fakeApp) RunInit(ctx context.Context) error {
	f.ranInit = true
	return f.err
}

func (f *fakeApp) GetConfig() *config.Config { return f.cfg }
func (f *fakeApp) GetLogger() logger.Logger { return nil }

func withTestConfig(t *testing.T) {
	orig := loadConfig
	loadConfig = func() (*config.Config, error) {
		return &config.Config{LogLevel: "info", Paths: config.PathsConfig{BaseDir: t.TempDir()}}, nil
	}
	t.Cleanup(func() { loadConfig = orig })
}

func newFakeAppFunc(fake *fakeApp) NewAppFunc {
	return func(cfg *config.Config, opts ...app.AppOption) app.AppInterface {
		fake.cfg = cfg
		return fake
	}
}

func TestRun_NoFlags(t *testing.T) {
	withTestConfig(t)
	fake := &fakeApp{}
	var out bytes.Buffer

	code := run([]string{}, &out, newFakeAppFunc(fake))

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "for help, use -h flag")
	assert.False(t, fake.ranTest)
	assert.False(t, fake.ranInit)
}

func TestRun_Modes(t *testing.T) {
	withTestConfig(t)

	t.Run("test", func(t *testing.T) {
		fake := &fakeApp{}
		var out bytes.Buffer
		assert.Equal(t, 0, run([]string{"--test"}, &out, newFakeAppFunc(fake)))
		assert.True(t, fake.ranTest)
		assert.False(t, fake.ranInit)
		require.NotNil(t, fake.cfg)
	})

	t.Run("init", func(t *testing.T) {
		fake := &fakeApp{}
		var out bytes.Buffer
		assert.Equal(t, 0, run([]string{"--init"}, &out, newFakeAppFunc(fake)))
		assert.True(t, fake.ranInit)
		assert.False(t, fake.ranTest)
	})
}

func TestRun_FlagsAreMutuallyExclusive(t *testing.T) {
	withTestConfig(t)
	fake := &fakeApp{}
	var out bytes.Buffer

	code := run([]string{"--test", "--init"}, &out, newFakeAppFunc(fake))

	assert.Equal(t, 1, code)
	assert.False(t, fake.ranTest)
	assert.False(t, fake.ranInit)
}

func TestRun_Errors(t *testing.T) {
	withTestConfig(t)

	t.Run("missing driver exits cleanly", func(t *testing.T) {
		fake := &fakeApp{err: &domain.ErrDriverUnavailable{Driver: "mysql"}}
		var out bytes.Buffer

		code := run([]string{"--test"}, &out, newFakeAppFunc(fake))

		assert.Equal(t, 0, code)
		assert.Contains(t, out.String(), "can't complete data setup")
	})

	t.Run("existing database fails", func(t *testing.T) {
		fake := &fakeApp{err: &domain.ErrDatabaseExists{Name: "mscolab"}}
		var out bytes.Buffer

		code := run([]string{"--test"}, &out, newFakeAppFunc(fake))

		assert.Equal(t, 1, code)
		assert.Contains(t, out.String(), "please drop it")
	})

	t.Run("configuration error fails", func(t *testing.T) {
		orig := loadConfig
		loadConfig = func() (*config.Config, error) { return nil, errors.New("bad env file") }
		defer func() { loadConfig = orig }()

		var out bytes.Buffer
		code := run([]string{"--init"}, &out, newFakeAppFunc(&fakeApp{}))

		assert.Equal(t, 1, code)
		assert.Contains(t, out.String(), "failed to load configuration")
	})
}

func TestMain_UsesExitCode(t *testing.T) {
	withTestConfig(t)

	var exitCode = -1
	origExit := osExit
	osExit = func(code int) { exitCode = code }
	defer func() { osExit = origExit }()

	osExit(run([]string{"--test", "--init"}, &bytes.Buffer{}, newFakeAppFunc(&fakeApp{})))
	assert.Equal(t, 1, exitCode)
}
