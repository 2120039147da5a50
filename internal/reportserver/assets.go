package reportserver

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed assets/*
var embeddedAssets embed.FS

// styleAsset is the logical name of the report stylesheet.
const styleAsset = "report.css"

// AssetResolver maps logical asset names to URLs for the report page.
type AssetResolver struct {
	baseURL  string
	manifest map[string]string
}

// newAssetResolver creates a resolver for embedded or externally hosted assets.
func newAssetResolver(baseURL string, manifest map[string]string) AssetResolver {
	return AssetResolver{
		baseURL:  strings.TrimRight(baseURL, "/"),
		manifest: manifest,
	}
}

// URL resolves a logical asset name through the manifest. Without a base
// URL the embedded /assets/ route is used.
func (r AssetResolver) URL(logicalName string) (string, error) {
	filename, ok := r.manifest[logicalName]
	if !ok {
		return "", fmt.Errorf("reportserver: asset not found: %s", logicalName)
	}
	if r.baseURL == "" {
		return "/assets/" + filename, nil
	}
	return r.baseURL + "/" + filename, nil
}

func embeddedAssetsFS() (fs.FS, error) {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return nil, fmt.Errorf("reportserver: open embedded assets: %w", err)
	}
	return sub, nil
}

// loadEmbeddedManifest reads manifest.json and checks every entry points at
// an embedded file.
func loadEmbeddedManifest() (map[string]string, error) {
	assets, err := embeddedAssetsFS()
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(assets, "manifest.json")
	if err != nil {
		return nil, fmt.Errorf("reportserver: read manifest: %w", err)
	}
	var manifest map[string]string
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("reportserver: parse manifest: %w", err)
	}
	if len(manifest) == 0 {
		return nil, errors.New("reportserver: manifest is empty")
	}
	for logical, filename := range manifest {
		if _, err := fs.Stat(assets, filename); err != nil {
			return nil, fmt.Errorf("reportserver: manifest entry %s: %w", logical, err)
		}
	}
	return manifest, nil
}
