// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

//go:build hashtable_nocheck

package hashtable

// Validation compiled out: contract violations are undefined behavior.
const paramCheck = false
