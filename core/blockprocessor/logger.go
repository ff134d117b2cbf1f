// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package blockprocessor

import (
	log "github.com/erigontech/erigon-lib/log/v3"
)

// StdLogger adapts the package-level erigon-lib/log/v3 root logger to the
// Logger interface this package consults. It is the default a caller
// reaches for; tests and embedders that want a different sink supply their
// own Logger implementation instead.
type StdLogger struct{}

func (StdLogger) Debug(msg string, ctx ...interface{}) { log.Debug(msg, ctx...) }
func (StdLogger) Info(msg string, ctx ...interface{})  { log.Info(msg, ctx...) }
func (StdLogger) Warn(msg string, ctx ...interface{})  { log.Warn(msg, ctx...) }
