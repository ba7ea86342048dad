package rlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_ReturnsScopedLogger(t *testing.T) {
	l := For("txctl")
	assert.NotNil(t, l)
}

func TestDailyFileSink_CreatesFileUnderDir(t *testing.T) {
	dir := t.TempDir()
	f, err := DailyFileSink(dir, "radiocore-%Y%m%d.log")
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, filepath.Dir(f.Name()) == dir || filepath.Dir(f.Name()) == filepath.Clean(dir))
	_, err = os.Stat(f.Name())
	assert.NoError(t, err)
}
