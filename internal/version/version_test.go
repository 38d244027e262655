package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionInfo(t *testing.T) {
	oldVersion, oldBuild := Version, BuildTime
	t.Cleanup(func() { Version, BuildTime = oldVersion, oldBuild })

	Version, BuildTime = "1.2.3", "2024-01-01"
	assert.Equal(t, "anicompare v1.2.3 (built 2024-01-01)", GetVersionInfo())
	assert.Equal(t, "anicompare/1.2.3", UserAgent())
}
