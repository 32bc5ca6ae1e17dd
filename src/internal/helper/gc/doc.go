// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library behind the [Buffer] and [Pool] interfaces
// and uses it to read certificate files and to assemble rendered reports.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
