// SPDX-License-Identifier: EPL-2.0

// Package playback delivers synthesized streams to the default audio
// device. It is a thin shell around oto: the synthesis core knows
// nothing about devices, and everything here can be replaced by any
// consumer of stream.Source.
package playback
