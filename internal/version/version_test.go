package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.BuildTime)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "v1.2.0", Commit: "abc123", BuildTime: "2026-01-01T00:00:00Z", GoVersion: "go1.23.0", Platform: "linux/amd64"}

	assert.Equal(t, "wordsynth v1.2.0 (abc123, built 2026-01-01T00:00:00Z, go1.23.0 linux/amd64)", info.String())
}
