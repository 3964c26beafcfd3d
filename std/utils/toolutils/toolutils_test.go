package toolutils_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/named-data/ndnx/std/utils/toolutils"
	"github.com/stretchr/testify/require"
)

func TestReadYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yml")

	var conf struct {
		Core struct {
			LogLevel string `json:"log_level"`
		} `json:"core"`
		Prefixes []string `json:"prefixes"`
	}

	require.NoError(t, os.WriteFile(path, []byte("core:\n  log_level: DEBUG\nprefixes:\n  - ccnx:/a\n"), 0644))
	require.NoError(t, toolutils.ReadYaml(&conf, path))
	require.Equal(t, "DEBUG", conf.Core.LogLevel)
	require.Equal(t, []string{"ccnx:/a"}, conf.Prefixes)

	require.NoError(t, os.WriteFile(path, []byte("unknown: 1\n"), 0644))
	require.Error(t, toolutils.ReadYaml(&conf, path))

	require.Error(t, toolutils.ReadYaml(&conf, filepath.Join(dir, "missing.yml")))
}

func TestStatusPrinter(t *testing.T) {
	buf := &bytes.Buffer{}
	p := toolutils.StatusPrinter{File: buf, Padding: 8}
	p.Print("count", 3)
	p.Print("toolongkey", "x")
	require.Equal(t, "   count=3\ntoolongkey=x\n", buf.String())
}
