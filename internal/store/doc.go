// Package store implements the on-disk context store: one directory per
// saved context holding the cached ADC credential blob and a metadata
// record, plus a single marker file tracking which context is currently
// active.
//
// Layout under the store root (default ~/.config/gcpctx, override with
// GCPCTX_HOME):
//
//	<root>/.current              active context name, absent when none
//	<root>/<name>/adc.json       opaque credential blob, owner-only
//	<root>/<name>/metadata.yaml  gcloud config, account, project, kubectl context
//
// The store never parses credential blobs; they are captured and restored
// verbatim.
package store
