// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package nvorbis

import "github.com/petermattis/goid"

// OwnerID identifies a calling execution context. Cursor isolation is
// per-goroutine, so the ID must be stable for the goroutine's lifetime and
// comparable for equality.
type OwnerID int64

// Returns the identity of the calling goroutine
func currentOwner() OwnerID {
	return OwnerID(goid.Get())
}
