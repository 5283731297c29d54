package stanza

import "embed"

// EmbeddedAssets holds the default stylesheet so a site works out of the box
// without a static directory. Files in StaticDir with the same name win.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
