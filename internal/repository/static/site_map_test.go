package static

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const siteMapYAML = `
image: /static/site.avif
width: 1920
height: 1080
buildings:
  - building_id: 1
    label: Корпус 1
    paths: "100,100,400,100,400,600,100,600"
  - building_id: 2
    label: Корпус 2
    paths: "500,120,800,120,800,640,500,640"
`

func TestParseSiteMap(t *testing.T) {
	siteMap, err := ParseSiteMap([]byte(siteMapYAML))
	require.NoError(t, err)

	assert.Equal(t, "/static/site.avif", siteMap.Image)
	assert.Equal(t, 1920.0, siteMap.Width)
	require.Len(t, siteMap.Buildings, 2)
	assert.Equal(t, int64(2), siteMap.Buildings[1].BuildingID)
	assert.Equal(t, "Корпус 1", siteMap.Buildings[0].Label)
}

func TestParseSiteMap_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "width: [1"},
		{"no size", "image: a.png\nbuildings: []"},
		{"duplicate building", "width: 10\nheight: 10\nbuildings:\n  - building_id: 1\n  - building_id: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSiteMap([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadSiteMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site_map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(siteMapYAML), 0o600))

	repo, err := LoadSiteMap(path, zap.NewNop())
	require.NoError(t, err)

	siteMap, err := repo.GetSiteMap(context.Background())
	require.NoError(t, err)
	assert.Len(t, siteMap.Buildings, 2)

	_, err = LoadSiteMap(filepath.Join(t.TempDir(), "missing.yaml"), zap.NewNop())
	assert.Error(t, err)
}
