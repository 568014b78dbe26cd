// SPDX-License-Identifier: EPL-2.0

// Package voice implements the per-voice signal kernels used by package generator.
package voice
