// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths to GopherNES resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following will return the
// path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For development builds the base path is ".gophernes" in the current
// directory. For release builds (built with the release tag) the base path is
// in the user's config directory, as returned by os.UserConfigDir(). On a
// modern Linux system the path returned by the example above will be:
//
//	/home/user/.config/gophernes/preferences
//
// In both cases the directory is created if it does not exist.
package paths
