package app_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/asyncwalk/internal/adapters/fs"
	"go.trai.ch/asyncwalk/internal/adapters/telemetry"
	"go.trai.ch/asyncwalk/internal/adapters/watcher"
	"go.trai.ch/asyncwalk/internal/app"
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// syncBuffer is a bytes.Buffer safe for concurrent writers and readers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type harness struct {
	app    *app.App
	stdout *syncBuffer
	stderr *syncBuffer
}

func newHarness(t *testing.T, cfg *domain.Config) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	if cfg == nil {
		cfg = domain.DefaultConfig()
	}

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(cfg, nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	h := &harness{stdout: &syncBuffer{}, stderr: &syncBuffer{}}
	h.app = app.New(
		loader,
		fs.NewOSFileSystem(fs.DefaultBatchSize),
		fs.NewHasher(),
		telemetry.NewOTelTracer("asyncwalk-test"),
		log,
		watcher.NewFactory(log),
	).WithOutput(h.stdout, h.stderr)
	return h
}

// writeFiles creates files with the given contents; names ending in "/" are directories.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(p, domain.DirPerm))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
		require.NoError(t, os.WriteFile(p, []byte(content), domain.FilePerm))
	}
}

func records(t *testing.T, s string) []map[string]any {
	t.Helper()

	var out []map[string]any
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

func ofType(recs []map[string]any, typ string) []map[string]any {
	var out []map[string]any
	for _, r := range recs {
		if r["type"] == typ {
			out = append(out, r)
		}
	}
	return out
}
