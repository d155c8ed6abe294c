// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sanity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// CDNHost serves uploaded image assets.
const CDNHost = "cdn.sanity.io"

// assetRefPattern matches image asset reference tokens such as
// "image-abc123-800x600-jpg".
var assetRefPattern = regexp.MustCompile(`^image-([A-Za-z0-9]+)-(\d+)x(\d+)-([A-Za-z0-9]+)$`)

// AssetRef is a decoded image asset reference token.
type AssetRef struct {
	ID     string
	Width  int
	Height int
	Format string
}

// ParseAssetRef decodes an "image-<id>-<width>x<height>-<ext>" token.
func ParseAssetRef(ref string) (AssetRef, error) {
	m := assetRefPattern.FindStringSubmatch(ref)
	if m == nil {
		return AssetRef{}, fmt.Errorf("sanity: malformed asset reference %q", ref)
	}

	width, err := strconv.Atoi(m[2])
	if err != nil {
		return AssetRef{}, fmt.Errorf("sanity: asset reference width: %w", err)
	}
	height, err := strconv.Atoi(m[3])
	if err != nil {
		return AssetRef{}, fmt.Errorf("sanity: asset reference height: %w", err)
	}

	return AssetRef{ID: m[1], Width: width, Height: height, Format: m[4]}, nil
}

// URL returns the CDN URL for the asset in the given project and dataset:
// https://cdn.sanity.io/images/<project>/<dataset>/<id>-<w>x<h>.<ext>
func (a AssetRef) URL(id Identity) string {
	return fmt.Sprintf("https://%s/images/%s/%s/%s-%dx%d.%s",
		CDNHost, id.ProjectID, id.Dataset, a.ID, a.Width, a.Height, a.Format)
}

// ImageKind tags the shape an image field arrived in.
type ImageKind int

const (
	ImageNone           ImageKind = iota
	ImageDirectURL                // a plain URL string
	ImageResolvedAsset            // {asset:{url}}
	ImageAssetReference           // {asset:{_ref}}
)

// Image is an image field in any of the shapes the store returns. Decode it
// with encoding/json and turn it into a URL with Resolve.
type Image struct {
	Kind ImageKind
	URL  string   // set for ImageDirectURL and ImageResolvedAsset
	Ref  AssetRef // set for ImageAssetReference
}

// UnmarshalJSON accepts null, a URL string, or an object with an asset that
// carries either a resolved url or a _ref token. Anything else decodes to
// ImageNone rather than failing the surrounding document.
func (img *Image) UnmarshalJSON(data []byte) error {
	*img = Image{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != "" {
			*img = Image{Kind: ImageDirectURL, URL: s}
		}
		return nil
	}

	if data[0] != '{' {
		return nil
	}

	var obj struct {
		Asset *struct {
			URL string `json:"url"`
			Ref string `json:"_ref"`
		} `json:"asset"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	if obj.Asset == nil {
		return nil
	}

	switch {
	case obj.Asset.URL != "":
		*img = Image{Kind: ImageResolvedAsset, URL: obj.Asset.URL}
	case obj.Asset.Ref != "":
		ref, err := ParseAssetRef(obj.Asset.Ref)
		if err == nil {
			*img = Image{Kind: ImageAssetReference, Ref: ref}
		}
	}
	return nil
}

// Resolve returns the canonical URL for the image, or false when the field
// was absent or unrecognised.
func (img Image) Resolve(id Identity) (string, bool) {
	switch img.Kind {
	case ImageDirectURL, ImageResolvedAsset:
		return img.URL, true
	case ImageAssetReference:
		return img.Ref.URL(id), true
	default:
		return "", false
	}
}

// ResolvePtr is Resolve returning nil for a missing image.
func (img Image) ResolvePtr(id Identity) *string {
	u, ok := img.Resolve(id)
	if !ok {
		return nil
	}
	return &u
}
