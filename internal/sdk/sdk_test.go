package sdk

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/scb/internal/config"
)

// zipEntry describes one file of a synthetic SDK archive
type zipEntry struct {
	name    string
	content string
	mode    os.FileMode
}

// buildZipArchive returns the bytes of a zip holding entries in order
func buildZipArchive(t *testing.T, entries []zipEntry) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	for _, e := range entries {
		hdr := &zip.FileHeader{Name: e.name, Method: zip.Deflate}
		if e.mode != 0 {
			hdr.SetMode(e.mode)
		}

		w, err := zw.CreateHeader(hdr)
		require.NoError(t, err, "create zip entry %s", e.name)

		if e.content != "" {
			_, err = w.Write([]byte(e.content))
			require.NoError(t, err, "write zip entry %s", e.name)
		}
	}

	require.NoError(t, zw.Close())

	return buf.Bytes()
}

// newTestStager returns a stager on an in-memory filesystem rooted at "game"
func newTestStager(t *testing.T) (*Stager, afero.Fs, *config.Config, *test.Hook) {
	t.Helper()

	root := "game"
	sdkDir := filepath.Join(root, "steam-sdk")
	cfg := &config.Config{
		Root:          root,
		ConfigDir:     filepath.Join(root, "config"),
		SDKDir:        sdkDir,
		StagedDir:     filepath.Join(sdkDir, "content-builder"),
		ScriptsDir:    "scripts",
		ArchiveMarker: "ContentBuilder",
		ArchiveExt:    ".zip",
		DescriptorExt: ".vdf",
	}

	fs := afero.NewMemMapFs()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	return NewStager(fs, cfg, log), fs, cfg, hook
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}
