// SPDX-License-Identifier: EPL-2.0

// Package playback sends rendered compositions to the sound card through
// github.com/ebitengine/oto/v3.
package playback
