// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

//go:build !hashtable_nocheck

package hashtable

// paramCheck gates parameter validation. It is a constant so the
// validation branches fold away entirely under hashtable_nocheck.
const paramCheck = true
