// Package httpapi exposes the demo types over HTTP. Request bodies go through
// the binder (schema pre-check, strict decode, Validate) and rejections are
// written in the error-tree wire format, localized from Accept-Language.
package httpapi
