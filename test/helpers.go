package test

import (
	"os"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func getWd(t *testing.T, folder string) string {
	wd, err := os.Getwd()
	assert.NoError(t, err, "failed to get working directory")
	return filepath.Join(wd, folder)
}

func readGenerated(t *testing.T, workingDir string, file string) string {
	data, err := os.ReadFile(filepath.Join(workingDir, "generated", file))
	assert.NoError(t, err, file)
	return string(data)
}
