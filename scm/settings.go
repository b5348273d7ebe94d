/*
Copyright (C) 2024  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import "github.com/dc0d/onexit"

// SettingsT carries the interpreter-wide toggles a standalone session
// cares about. It is a trimmed descendant of the teacher's
// storage.SettingsT - the schema/partition/storage-engine knobs there
// belong to a database engine, not a bare interpreter, so only the
// tracing toggles survive here.
type SettingsT struct {
	Trace      bool
	TracePrint bool
}

var Settings = SettingsT{}

// InitSettings applies Settings and registers the exit hook that
// flushes and closes any open trace file. Call once at startup after
// Settings has been populated (e.g. from the TISKLISP_TRACE
// environment variable).
func InitSettings() {
	SetTrace(Settings.Trace)
	TracePrint = Settings.TracePrint
	onexit.Register(func() { SetTrace(false) })
}
