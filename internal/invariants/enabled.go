// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package invariants

import "github.com/colgo/colgo/internal/buildtags"

// Enabled is true if we were built with the "invariants" or "race" build
// tags. Deep validation passes over Mask invariants (mask's
// checkInvariants) are gated behind Enabled so normal builds pay nothing
// for checks that are already guaranteed by construction.
const Enabled = buildtags.Invariants || buildtags.Race
